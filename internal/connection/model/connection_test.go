package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestOrderPair(t *testing.T) {
	a := uuid.New()
	b := uuid.New()

	lo1, hi1 := OrderPair(a, b)
	lo2, hi2 := OrderPair(b, a)

	// Argument order never changes the stored pair.
	assert.Equal(t, lo1, lo2)
	assert.Equal(t, hi1, hi2)
	assert.True(t, lo1.String() < hi1.String())
	assert.ElementsMatch(t, []uuid.UUID{a, b}, []uuid.UUID{lo1, hi1})
}
