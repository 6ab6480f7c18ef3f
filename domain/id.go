package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a random 128-bit identifier as 32 lowercase hex characters.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
