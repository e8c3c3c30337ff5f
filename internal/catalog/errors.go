package catalog

import "errors"

var (
	ErrBookNotFound = errors.New("book not found")
	ErrDuplicateID  = errors.New("duplicate book id")
)
