package project

import "errors"

var (
	// ErrNoActiveProject is returned by mutations when nothing is loaded.
	ErrNoActiveProject = errors.New("no active project")
	// ErrStemNotFound is returned when a stem id matches no stem in the project.
	ErrStemNotFound = errors.New("stem not found")
	// ErrOutOfRange is returned when a volume or pan value leaves its bounds.
	ErrOutOfRange = errors.New("value out of range")
	// ErrEmptyTitle is returned when a rename would leave the title blank.
	ErrEmptyTitle = errors.New("project title must not be empty")
	// ErrInvalidStemSet is returned when a project does not carry exactly one
	// stem per fixed stem type.
	ErrInvalidStemSet = errors.New("project must contain exactly one stem per type")
)
