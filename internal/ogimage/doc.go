// Package ogimage renders the fixed-layout 1200x630 social preview card:
// brand text over a gradient background with a randomized bar-height
// decoration. The image is independent of live project state.
package ogimage
