package common

import (
	"github.com/google/uuid"
)

// NewRunID generates a unique pipeline run ID with the "run_" prefix.
// Run IDs are used for log correlation only and never appear in a Report,
// which must stay byte-identical for identical inputs.
// Format: run_<uuid>
func NewRunID() string {
	return "run_" + uuid.New().String()
}
