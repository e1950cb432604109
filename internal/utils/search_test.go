package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearch(t *testing.T) {
	decomposed := "й" // и + combining breve
	assert.Equal(t, "й", NormalizeSearch("  "+decomposed+" "))
	assert.Equal(t, "Оффис", NormalizeSearch("Оффис"))
	assert.Equal(t, "", NormalizeSearch("   "))
}
