package domain

import "fmt"

// Entity kinds carried by NotFoundError
const (
	EntityClient  = "client"
	EntityPayment = "payment"
)

// ValidationError reports every violated field constraint from a single
// create/update attempt. Nothing is persisted when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// NewValidationError builds a ValidationError from a field→message map
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NotFoundError reports that an identifier did not resolve to a record
type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NewNotFoundError builds a NotFoundError for the given entity kind and id
func NewNotFoundError(entity string, id uint) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// ReferentialIntegrityError reports that a payment's client reference does
// not resolve to an existing client
type ReferentialIntegrityError struct {
	ClientID uint
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("referenced client with ID %d does not exist", e.ClientID)
}

// ConflictError reports an operation rejected to protect referential
// integrity, such as deleting a client that still has payments
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// TransitionError reports an attempt to move a payment out of Approved or
// into an undefined status value
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}
