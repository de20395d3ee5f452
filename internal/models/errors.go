package models

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per failure class. Every typed error below matches
// its sentinel through errors.Is.
var (
	// ErrValidation indicates that a required field was empty or blank
	ErrValidation = errors.New("validation failed")

	// ErrDuplicateName indicates that a deck with the same name already exists
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound indicates that a lookup required by the operation found nothing
	ErrNotFound = errors.New("not found")

	// ErrStorage indicates an underlying database failure
	ErrStorage = errors.New("storage failure")

	// ErrIO indicates a file read or write failure during import or export
	ErrIO = errors.New("io failure")
)

// ValidationError reports an empty or blank required field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s cannot be empty", e.Field)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateNameError reports a deck name collision.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("deck %q already exists", e.Name)
}

func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// NotFoundError reports a missing entity where its presence is mandatory.
type NotFoundError struct {
	Entity string
	ID     int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// StorageError wraps a database failure that is not otherwise classified.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// IOError wraps a file or document failure during import or export.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
