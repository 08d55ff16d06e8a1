package pipeline

import (
	"github.com/ternarybob/trendscout/internal/personas"
	"github.com/ternarybob/trendscout/internal/signals"
)

// Error taxonomy for the pipeline boundary. Record-level malformation is
// filtered locally and never escalated; only request-level and batch-level
// emptiness reach the caller.
var (
	// ErrEmptySignalSet: no raw record survived normalization. Recoverable;
	// the collaborator maps it to a user-facing empty state.
	ErrEmptySignalSet = signals.ErrEmptySignalSet

	// ErrInvalidPersona: after dropping unknown agent ids, no persona
	// remained.
	ErrInvalidPersona = personas.ErrInvalidPersona
)
