package repository

import "errors"

var (
	ErrCategoryNotExist = errors.New("category not exist")
	ErrTagNotExist      = errors.New("tag not exist")
)
