package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "arredonda para cima", in: 33.336, want: 33.34},
		{name: "arredonda para baixo", in: -12.344, want: -12.34},
		{name: "NaN", in: math.NaN(), want: 0},
		{name: "infinito", in: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundWithTwoDecimalPlace(tt.in))
		})
	}
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	require.NoError(t, err)
	second, err := GenerateID()
	require.NoError(t, err)

	assert.Len(t, first, idLength)
	assert.NotEqual(t, first, second)
	assert.Regexp(t, "^[A-Za-z0-9]+$", first)
}
