package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRegion(t *testing.T) {
	tests := []struct {
		input string
		want  Region
	}{
		{"Sheet1", Region{Sheet: "Sheet1"}},
		{"Sheet1!A1:C5", Region{Sheet: "Sheet1", R1: 1, C1: 1, R2: 5, C2: 3}},
		{"Sheet1!B3", Region{Sheet: "Sheet1", R1: 3, C1: 2, R2: 3, C2: 2}},
		{"Sheet1!C5:A1", Region{Sheet: "Sheet1", R1: 1, C1: 1, R2: 5, C2: 3}},
		{"'My Sheet'!A1:B2", Region{Sheet: "My Sheet", R1: 1, C1: 1, R2: 2, C2: 2}},
	}

	for _, tt := range tests {
		got, err := ParseRegion(tt.input)
		require.NoError(t, err, "ParseRegion(%q)", tt.input)
		assert.Equal(t, tt.want, got, "ParseRegion(%q)", tt.input)
	}
}

func TestParseRegionErrors(t *testing.T) {
	for _, input := range []string{"", "  ", "!A1:B2", "Sheet1!notacell", "Sheet1!A1:???"} {
		_, err := ParseRegion(input)
		assert.Error(t, err, "ParseRegion(%q)", input)
	}
}

func TestRegionString(t *testing.T) {
	assert.Equal(t, "Sheet1", WholeSheet("Sheet1").String())
	assert.Equal(t, "Sheet1!A1:C5", Region{Sheet: "Sheet1", R1: 1, C1: 1, R2: 5, C2: 3}.String())
}

func TestRegionIsWholeSheet(t *testing.T) {
	assert.True(t, WholeSheet("Data").IsWholeSheet())
	assert.False(t, Region{Sheet: "Data", R1: 1, C1: 1, R2: 2, C2: 2}.IsWholeSheet())
}
