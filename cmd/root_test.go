package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenStore_FlagWinsOverEnv(t *testing.T) {
	t.Setenv("CHARTDECK_STORE", "/env/charts.json")
	storePath = "/flag/charts.json"
	defer func() { storePath = "" }()

	assert.Equal(t, "/flag/charts.json", openStore().Path())
}

func TestOpenStore_EnvFallback(t *testing.T) {
	t.Setenv("CHARTDECK_STORE", "/env/charts.json")
	storePath = ""

	assert.Equal(t, "/env/charts.json", openStore().Path())
}

func TestOpenStore_Default(t *testing.T) {
	t.Setenv("CHARTDECK_STORE", "")
	storePath = ""

	assert.Equal(t, defaultStorePath, openStore().Path())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "0123456...", truncate("0123456789x", 10))
}
