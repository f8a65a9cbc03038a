// Package project defines the stem and project models plus the in-memory
// store that owns the single active project.
//
// A project only ever comes into existence as the result of a successful
// separation and always carries exactly one stem per fixed stem type. The
// store guards that invariant: mutations go through UpdateStem/Rename/Save,
// identity fields never change, and failed mutations leave the project
// untouched, including its UpdatedAt timestamp.
package project
