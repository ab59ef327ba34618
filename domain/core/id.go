package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// ExecutionCase identifies one trained-model configuration under
// comparison. The engine never interprets it; it only needs equality.
type ExecutionCase string

// FoldID identifies one data partition producing an independent
// learning curve.
type FoldID string

// SessionID identifies one evaluation session (reports, viewer runs).
type SessionID ID

func (c ExecutionCase) String() string { return string(c) }
func (f FoldID) String() string        { return string(f) }
func (s SessionID) String() string     { return ID(s).String() }

// NewSessionID mints a fresh session identifier.
func NewSessionID() SessionID { return SessionID(NewID()) }

// ParseExecutionCase parses a string into an ExecutionCase
func ParseExecutionCase(s string) (ExecutionCase, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("execution case cannot be empty")
	}
	return ExecutionCase(s), nil
}

// ParseFoldID parses a string into a FoldID
func ParseFoldID(s string) (FoldID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("fold id cannot be empty")
	}
	return FoldID(s), nil
}
