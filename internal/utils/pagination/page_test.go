package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	p, err := Parse("", "")
	require.NoError(t, err)
	assert.Equal(t, Params{}, p)

	p, err = Parse("50", "100")
	require.NoError(t, err)
	assert.Equal(t, Params{Limit: 50, Offset: 100}, p)

	_, err = Parse("abc", "")
	assert.Error(t, err)

	_, err = Parse("10", "-1")
	assert.Error(t, err)
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(60, 25, 25, 25)
	assert.True(t, m.HasMore)
	require.NotNil(t, m.NextOffset)
	assert.Equal(t, 50, *m.NextOffset)

	last := NewMeta(60, 25, 50, 10)
	assert.False(t, last.HasMore)
	assert.Nil(t, last.NextOffset)

	empty := NewMeta(0, 25, 0, 0)
	assert.False(t, empty.HasMore)
}
