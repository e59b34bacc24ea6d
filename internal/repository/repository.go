// Package repository contains data access layer abstractions.
// Implementations live in subpackages (postgres, dynamodb) inside this directory.
package repository

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned by implementations that do not surface sql.ErrNoRows.
var ErrNotFound = errors.New("record not found")

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}

// IsNotFound reports whether err means the requested record does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, sql.ErrNoRows)
}
