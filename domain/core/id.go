package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents an opaque identifier
type ID string

// RequestID identifies one inbound HTTP request in logs and response headers
type RequestID ID

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return ID(id.String())
}

// NewRequestID returns a fresh request identifier
func NewRequestID() RequestID {
	return RequestID(NewID())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

func (id RequestID) String() string { return ID(id).String() }

// ParseRequestID accepts a caller-supplied request id. Only ids that are valid UUIDs
// are honoured so that arbitrary header content never reaches the logs.
func ParseRequestID(s string) (RequestID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("request ID cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid request ID: %w", err)
	}
	return RequestID(parsed.String()), nil
}
