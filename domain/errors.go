package domain

import "errors"

var (
	// ErrNotFound is returned by stores when no entity matches the id.
	ErrNotFound = errors.New("not found")

	// ErrCategoryNotFound marks a write that references a category which
	// does not exist.
	ErrCategoryNotFound = errors.New("referenced category does not exist")
)
