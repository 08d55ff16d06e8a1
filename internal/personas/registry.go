// Package personas defines the closed set of agent personas that score and
// narrate videos. Each persona is a fixed linear weighting over the derived
// metrics plus a deterministic narrative builder; the registry is loaded
// once and immutable for the process lifetime.
package personas

import (
	"errors"
	"fmt"
)

// ErrInvalidPersona is returned when, after dropping unknown agent ids,
// no requested persona remains.
var ErrInvalidPersona = errors.New("invalid persona: no requested agent id matches the registry")

// Persona ids. The set is closed: new personas are added here, not
// registered at runtime.
const (
	PersonaAlgorithmicEye    = "algorithmic-eye"
	PersonaCreatorWhisperer  = "creator-whisperer"
	PersonaMonetizationMaven = "monetization-maven"
)

// Weights is a persona's fixed linear weighting over the three derived
// metrics. The components sum to 1 so scores are comparable across
// personas.
type Weights struct {
	Velocity     float64 `json:"velocity"`
	Differential float64 `json:"differential"`
	Monetization float64 `json:"monetization"`
}

// Sum returns the total of the weight components
func (w Weights) Sum() float64 {
	return w.Velocity + w.Differential + w.Monetization
}

// Persona is one named scoring and narrative strategy. Personas are
// stateless and pure with respect to a video's derived metrics.
type Persona struct {
	ID          string           `json:"id"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	Weights     Weights          `json:"weights"`
	narrate     narrativeBuilder `json:"-"`
}

// Registry holds the known personas in a fixed order
type Registry struct {
	order    []string
	personas map[string]Persona
}

// NewRegistry creates the registry with the built-in persona set
func NewRegistry() *Registry {
	builtin := []Persona{
		{
			ID:          PersonaAlgorithmicEye,
			Label:       "Algorithmic Eye",
			Description: "Detects fast-rising search interest and velocity anomalies across topics.",
			Weights:     Weights{Velocity: 0.45, Differential: 0.45, Monetization: 0.10},
			narrate:     algorithmicEyeNarrative,
		},
		{
			ID:          PersonaCreatorWhisperer,
			Label:       "Creator Whisperer",
			Description: "Highlights collaboration angles and format shifts top creators are testing.",
			Weights:     Weights{Velocity: 0.40, Differential: 0.25, Monetization: 0.35},
			narrate:     creatorWhispererNarrative,
		},
		{
			ID:          PersonaMonetizationMaven,
			Label:       "Monetization Maven",
			Description: "Surfaces niche trends with high RPM potential and sponsor demand.",
			Weights:     Weights{Velocity: 0.20, Differential: 0.20, Monetization: 0.60},
			narrate:     monetizationMavenNarrative,
		},
	}

	registry := &Registry{
		order:    make([]string, 0, len(builtin)),
		personas: make(map[string]Persona, len(builtin)),
	}
	for _, p := range builtin {
		registry.order = append(registry.order, p.ID)
		registry.personas[p.ID] = p
	}
	return registry
}

// Get returns the persona for an id
func (r *Registry) Get(id string) (Persona, bool) {
	p, ok := r.personas[id]
	return p, ok
}

// All returns every known persona in registry order
func (r *Registry) All() []Persona {
	all := make([]Persona, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.personas[id])
	}
	return all
}

// Resolve maps requested agent ids to personas, preserving request order
// and dropping duplicates and unknown ids. The returned slice of unknown
// ids lets the caller log what was ignored. ErrInvalidPersona is returned
// only when nothing resolves.
func (r *Registry) Resolve(agentIDs []string) ([]Persona, []string, error) {
	resolved := make([]Persona, 0, len(agentIDs))
	unknown := make([]string, 0)
	seen := make(map[string]bool, len(agentIDs))

	for _, id := range agentIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		persona, ok := r.personas[id]
		if !ok {
			unknown = append(unknown, id)
			continue
		}
		resolved = append(resolved, persona)
	}

	if len(resolved) == 0 {
		return nil, unknown, fmt.Errorf("%w (requested: %v)", ErrInvalidPersona, agentIDs)
	}

	return resolved, unknown, nil
}
