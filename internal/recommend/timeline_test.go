package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMethod(t *testing.T, name string) Method {
	t.Helper()
	m, ok := LookupName(name)
	require.True(t, ok, "method %q not in registry", name)
	return m
}

func TestMatchProductionTime(t *testing.T) {
	blob := "Screen Printing (Qty 100) = 5 working days\nUV Printing (Qty 100) = 4 working days"

	tests := []struct {
		name   string
		blob   string
		method string
		want   string
	}{
		{
			name:   "matches the line mentioning the method",
			blob:   blob,
			method: "UV Printing",
			want:   "UV Printing (Qty 100) = 4 working days",
		},
		{
			name:   "first matching line wins",
			blob:   blob,
			method: "Screen Printing",
			want:   "Screen Printing (Qty 100) = 5 working days",
		},
		{
			name:   "no line mentions the method",
			blob:   blob,
			method: "Embroidery",
			want:   "",
		},
		{
			name:   "empty blob",
			blob:   "",
			method: "Screen Printing",
			want:   "",
		},
		{
			name:   "matched line is trimmed",
			blob:   "  Laser Engraving (Qty 100) = 1 working day  ",
			method: "Laser Engraving",
			want:   "Laser Engraving (Qty 100) = 1 working day",
		},
		{
			name:   "matching is case insensitive",
			blob:   "laser engraving (Qty 100) = 1 working day",
			method: "Laser Engraving",
			want:   "laser engraving (Qty 100) = 1 working day",
		},
		{
			name:   "keyword variant Engrave matches",
			blob:   "Engrave (Qty 50) = 1 working day",
			method: "Laser Engraving",
			want:   "Engrave (Qty 50) = 1 working day",
		},
		{
			name:   "DTF variant matches DTG / DTF",
			blob:   "DTF (Qty 100) = 2 working days",
			method: "DTG / DTF",
			want:   "DTF (Qty 100) = 2 working days",
		},
		{
			name:   "historical Subilimation spelling still matches",
			blob:   "Subilimation (Qty 100) = 3 working days",
			method: "Sublimation",
			want:   "Subilimation (Qty 100) = 3 working days",
		},
		{
			name:   "correct Sublimation spelling matches too",
			blob:   "Sublimation (Qty 100) = 3 working days",
			method: "Sublimation",
			want:   "Sublimation (Qty 100) = 3 working days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchProductionTime(tt.blob, mustMethod(t, tt.method))
			assert.Equal(t, tt.want, got)
		})
	}
}
