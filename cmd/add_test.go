package cmd

import (
	"testing"

	"github.com/chartdeck/chartdeck/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestParseAxes(t *testing.T) {
	got := parseAxes([]string{"month", "total:Total", "count:Count:#36a2eb"})

	assert.Equal(t, []store.Axis{
		{Key: "month"},
		{Key: "total", Label: "Total"},
		{Key: "count", Label: "Count", Color: "#36a2eb"},
	}, got)
}

func TestParseAxes_Empty(t *testing.T) {
	assert.Nil(t, parseAxes(nil))
}

func TestParseVars(t *testing.T) {
	got := parseVars([]string{"year=2024", "flag"})

	assert.Equal(t, []store.Variable{
		{Key: "year", Default: "2024"},
		{Key: "flag", Default: ""},
	}, got)
}
