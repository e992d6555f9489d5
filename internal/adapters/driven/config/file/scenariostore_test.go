package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veldt-labs/prospekt-cli/internal/core/domain"
)

const sampleScenario = `
scenario = "S1"
horizon_end_year = 2040

[indicators.pelts]
method = "cagr"
unit = "thousand pelts"

[indicators.pelts.options]
max_growth = 0.0
max_decline = -0.2

[indicators.companies]
method = "phaseout"
unit = "count"

[indicators.companies.options]
start_year = 2027
end_year = 2033
`

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "S1.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScenario(t, sampleScenario)

	params, err := LoadScenario(path)

	require.NoError(t, err)
	assert.Equal(t, "S1", params.ScenarioID)
	assert.Equal(t, 2040, params.HorizonEndYear)
	require.Len(t, params.Indicators, 2)

	pelts := params.Indicators["pelts"]
	assert.Equal(t, "cagr", pelts.Method)
	assert.Equal(t, "thousand pelts", pelts.Unit)
	assert.Equal(t, -0.2, pelts.Options["max_decline"])

	companies := params.Indicators["companies"]
	assert.Equal(t, "phaseout", companies.Method)
	assert.Equal(t, 2027.0, companies.Options["start_year"])
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadScenario_MalformedTOML(t *testing.T) {
	path := writeScenario(t, "scenario = [broken")

	_, err := LoadScenario(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario file")
}

func TestLoadScenario_InvalidParameters(t *testing.T) {
	// Missing horizon fails domain validation.
	path := writeScenario(t, `
scenario = "S1"

[indicators.pelts]
method = "cagr"
`)

	_, err := LoadScenario(path)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSaveScenario_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "S2.toml")
	params := domain.ScenarioParameters{
		ScenarioID:     "S2",
		HorizonEndYear: 2035,
		Indicators: map[string]domain.IndicatorConfig{
			"jobs": {Method: "holdlast", Unit: "persons"},
			"pelts": {
				Method:  "stepdown",
				Unit:    "thousand pelts",
				Options: map[string]float64{"steps": 3},
			},
		},
	}

	require.NoError(t, SaveScenario(path, params))

	got, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, params, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
