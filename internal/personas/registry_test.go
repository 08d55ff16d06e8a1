package personas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_WeightsSumToOne(t *testing.T) {
	registry := NewRegistry()

	for _, persona := range registry.All() {
		assert.InDelta(t, 1.0, persona.Weights.Sum(), 1e-9, "persona %s weights must sum to 1", persona.ID)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	registry := NewRegistry()

	t.Run("preserves request order", func(t *testing.T) {
		resolved, unknown, err := registry.Resolve([]string{PersonaMonetizationMaven, PersonaAlgorithmicEye})
		require.NoError(t, err)
		assert.Empty(t, unknown)
		require.Len(t, resolved, 2)
		assert.Equal(t, PersonaMonetizationMaven, resolved[0].ID)
		assert.Equal(t, PersonaAlgorithmicEye, resolved[1].ID)
	})

	t.Run("drops unknown ids silently", func(t *testing.T) {
		resolved, unknown, err := registry.Resolve([]string{"trend-oracle", PersonaCreatorWhisperer})
		require.NoError(t, err)
		assert.Equal(t, []string{"trend-oracle"}, unknown)
		require.Len(t, resolved, 1)
		assert.Equal(t, PersonaCreatorWhisperer, resolved[0].ID)
	})

	t.Run("deduplicates repeated ids", func(t *testing.T) {
		resolved, _, err := registry.Resolve([]string{PersonaAlgorithmicEye, PersonaAlgorithmicEye})
		require.NoError(t, err)
		assert.Len(t, resolved, 1)
	})

	t.Run("all unknown returns ErrInvalidPersona", func(t *testing.T) {
		_, _, err := registry.Resolve([]string{"trend-oracle", "vibe-checker"})
		require.ErrorIs(t, err, ErrInvalidPersona)
	})
}

func TestRegistry_Get(t *testing.T) {
	registry := NewRegistry()

	persona, ok := registry.Get(PersonaMonetizationMaven)
	require.True(t, ok)
	assert.Equal(t, "Monetization Maven", persona.Label)

	_, ok = registry.Get("nope")
	assert.False(t, ok)
}
