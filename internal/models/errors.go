// AeroCam Hub - Real-time aerocam coordination and WebRTC signaling
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/aerocam-hub
package models

import "fmt"

// Error codes carried in HTTP error bodies.
const (
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeInvalidBody = "INVALID_BODY"
	CodeInternal    = "INTERNAL_ERROR"
)

// ValidationError reports missing or malformed required input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NotFoundError reports that a referenced entity does not exist.
type NotFoundError struct {
	Entity  string
	ID      string
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.ID, e.Message)
}

// NewNotFoundError creates a NotFoundError for the entity with the given id.
func NewNotFoundError(entity, id, message string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id, Message: message}
}

// ConflictError reports a violated state-transition precondition.
type ConflictError struct {
	Entity  string
	ID      string
	State   string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %q in state %q: %s", e.Entity, e.ID, e.State, e.Message)
}

// NewConflictError creates a ConflictError for the entity in its current state.
func NewConflictError(entity, id, state, message string) *ConflictError {
	return &ConflictError{Entity: entity, ID: id, State: state, Message: message}
}

// ErrorResponse is the body of every failed HTTP call.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
