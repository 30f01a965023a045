package presets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	p, err := Get("default")
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "default", p.Name)
	assert.Equal(t, 0.1, p.Tolerance)
	assert.Equal(t, 1.0, p.Scale)
}

func TestGetMissing(t *testing.T) {
	p, err := Get("nope")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"draft", "default", "fine"}, names)
}

func TestTolerancesOrdered(t *testing.T) {
	// quality profiles go from coarse to fine
	draft, err := Get("draft")
	require.NoError(t, err)
	fine, err := Get("fine")
	require.NoError(t, err)

	assert.Greater(t, draft.Tolerance, fine.Tolerance)
}
