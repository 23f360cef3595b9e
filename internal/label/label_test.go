package label

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLabel_ScaleBoundaries(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "n\n$0"},
		{999, "n\n$999"},
		{1000, "n\n$1k"},
		{1000000, "n\n$1M"},
		{1000000000, "n\n$1B"},
		{1500000, "n\n$1.5M"},
		{-500, "n\n$500"},
		{12.6, "n\n$13"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.value), func(t *testing.T) {
			got, err := GenerateLabel("n", tt.value, "")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateLabel_Growth(t *testing.T) {
	got, err := GenerateLabel("Revenue", 50000, "+15.2%")
	require.NoError(t, err)
	assert.Equal(t, "Revenue\n$50k\n(+15.2%)", got)

	got, err = GenerateLabel("Revenue", 50000, "   ")
	require.NoError(t, err)
	assert.Equal(t, "Revenue\n$50k", got)

	got, err = GenerateLabel("  Revenue ", 50000, " -3% ")
	require.NoError(t, err)
	assert.Equal(t, "Revenue\n$50k\n(-3%)", got)
}

func TestGenerateLabel_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		value   float64
		message string
	}{
		{"empty name", "", 10, "name must be non-empty"},
		{"blank name", " \t", 10, "name must be non-empty"},
		{"NaN", "n", math.NaN(), "value must be finite"},
		{"+Inf", "n", math.Inf(1), "value must be finite"},
		{"-Inf", "n", math.Inf(-1), "value must be finite"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateLabel(tt.label, tt.value, "")
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestGenerateLabel_SignDiscarded(t *testing.T) {
	for _, v := range []float64{0, 1, 999.5, 1234, 98765.4, 5e6, 7.25e9} {
		pos, err := GenerateLabel("x", v, "")
		require.NoError(t, err)
		neg, err := GenerateLabel("x", -v, "")
		require.NoError(t, err)
		assert.Equal(t, pos, neg)
		assert.True(t, strings.HasPrefix(pos, "x\n$"))
	}
}

func TestGenerateLabel_Deterministic(t *testing.T) {
	a, err := GenerateLabel("Costs", 2345678, "+1%")
	require.NoError(t, err)
	b, err := GenerateLabel("Costs", 2345678, "+1%")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, "Costs\n$2.3M\n(+1%)", a)
}

func TestGenerateMultipleLabels_PreservesOrder(t *testing.T) {
	labels, err := GenerateMultipleLabels([]*Node{
		{Name: "A", Value: 100},
		{Name: "B", Value: 2000},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A\n$100", "B\n$2k"}, labels)
}

func TestGenerateMultipleLabels_Empty(t *testing.T) {
	labels, err := GenerateMultipleLabels(nil)
	require.NoError(t, err)
	assert.Empty(t, labels)
}

func TestGenerateMultipleLabels_FailFast(t *testing.T) {
	_, err := GenerateMultipleLabels([]*Node{
		{Name: "A", Value: 100},
		nil,
		{Name: "", Value: 1},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "node 1")
	assert.Contains(t, err.Error(), "each node must be a record")

	_, err = GenerateMultipleLabels([]*Node{
		{Name: "A", Value: 100},
		{Name: "B", Value: math.NaN()},
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "node 1")
	assert.Contains(t, err.Error(), "value must be finite")
}

type recordingLogger struct {
	NopLogger
	infos []string
	warns []string
}

func (r *recordingLogger) Infof(format string, args ...any) {
	r.infos = append(r.infos, fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Warnf(format string, args ...any) {
	r.warns = append(r.warns, fmt.Sprintf(format, args...))
}

func TestGenerator_Logs(t *testing.T) {
	rec := &recordingLogger{}
	g := &Generator{Logger: rec}

	_, err := g.Generate([]*Node{{Name: "A", Value: 1}})
	require.NoError(t, err)
	assert.Equal(t, []string{"generated 1 labels"}, rec.infos)

	_, err = g.Generate([]*Node{{Name: " ", Value: 1}})
	require.Error(t, err)
	require.Len(t, rec.warns, 1)
	assert.Contains(t, rec.warns[0], "node 0")
}

func TestGenerator_ZeroValue(t *testing.T) {
	var g Generator
	labels, err := g.Generate([]*Node{{Name: "A", Value: 1500}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A\n$1.5k"}, labels)
}
