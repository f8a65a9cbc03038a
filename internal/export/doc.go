// Package export renders mock mix downloads and share links for the active
// project. The render is simulated: after a configured delay it writes a
// placeholder MP3 payload named after the project title.
package export
