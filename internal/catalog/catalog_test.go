// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/crop-advisor/internal/fixture"
	"github.com/pdiddy/crop-advisor/pkg/types"
)

const cropsYAML = `crops:
  - name: Wheat
    optimal_temp: 24
    optimal_humidity: 55
    water_needs: 180
    optimal_ph: 6.0
    pest_resistance: 7
  - name: Corn
    optimal_temp: 28
    optimal_humidity: 60
    water_needs: 200
    optimal_ph: 6.5
    pest_resistance: 6
  - name: Rice
    optimal_temp: 30
    optimal_humidity: 80
    water_needs: 250
    optimal_ph: 6.0
    pest_resistance: 5
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func ptr(v float64) *float64 { return &v }

// --- crop catalog ---

func TestParseCrops(t *testing.T) {
	crops, err := ParseCrops([]byte(cropsYAML))
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleCatalog(), crops)
}

func TestParseCropsEmpty(t *testing.T) {
	crops, err := ParseCrops([]byte("crops: []\n"))
	require.NoError(t, err)
	require.NotNil(t, crops)
	assert.Empty(t, crops)
}

func TestParseCropsMissingField(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		wantRecord string
		wantField  string
	}{
		{
			name:       "missing numeric field",
			data:       "crops:\n  - name: Barley\n    optimal_temp: 20\n    optimal_humidity: 50\n    water_needs: 150\n    pest_resistance: 6\n",
			wantRecord: `crop "Barley"`,
			wantField:  "optimal_ph",
		},
		{
			name:       "missing name",
			data:       "crops:\n  - name: Oats\n    optimal_temp: 1\n    optimal_humidity: 1\n    water_needs: 1\n    optimal_ph: 1\n    pest_resistance: 1\n  - optimal_temp: 20\n",
			wantRecord: "crop #2",
			wantField:  "name",
		},
		{
			name:       "explicit zero is present",
			data:       "crops:\n  - name: Moss\n    optimal_temp: 0\n    optimal_humidity: 0\n    water_needs: 0\n    optimal_ph: 0\n",
			wantRecord: `crop "Moss"`,
			wantField:  "pest_resistance",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCrops([]byte(tt.data))
			require.Error(t, err)

			var mfe *types.MissingFieldError
			require.True(t, errors.As(err, &mfe), "want *types.MissingFieldError, got %T: %v", err, err)
			assert.Equal(t, tt.wantRecord, mfe.Record)
			assert.Equal(t, tt.wantField, mfe.Field)
		})
	}
}

func TestParseCropsOutOfRangeAccepted(t *testing.T) {
	data := "crops:\n  - name: Odd\n    optimal_temp: -80\n    optimal_humidity: 400\n    water_needs: -5\n    optimal_ph: 20\n    pest_resistance: 99\n"
	crops, err := ParseCrops([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, 20.0, crops[0].OptimalPH)
}

func TestParseCropsMalformed(t *testing.T) {
	_, err := ParseCrops([]byte("crops: [name: {"))
	assert.Error(t, err)

	_, err = ParseCrops([]byte("crops:\n  - name: X\n    optimal_temp: warm\n"))
	assert.Error(t, err)
}

func TestLoadCrops(t *testing.T) {
	crops, err := LoadCrops(writeFile(t, "crops.yaml", cropsYAML))
	require.NoError(t, err)
	assert.Len(t, crops, 3)

	_, err = LoadCrops(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadCropsWrapsMissingField(t *testing.T) {
	path := writeFile(t, "crops.yaml", "crops:\n  - name: Barley\n")
	_, err := LoadCrops(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)

	var mfe *types.MissingFieldError
	assert.True(t, errors.As(err, &mfe))
}

func TestMarshalCropsRoundTrip(t *testing.T) {
	data, err := MarshalCrops(fixture.SampleCatalog())
	require.NoError(t, err)

	crops, err := ParseCrops(data)
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleCatalog(), crops)
}

// --- environment ---

const envYAML = `temperature: 25
humidity: 60
rainfall: 200
soil_ph: 6.5
soil_moisture: 0.35
pest_risk: 3
`

func TestParseEnvironment(t *testing.T) {
	env, err := ParseEnvironment([]byte(envYAML))
	require.NoError(t, err)
	assert.Equal(t, fixture.SampleEnvironment(), env)
}

func TestLoadEnvironment(t *testing.T) {
	env, err := LoadEnvironment(writeFile(t, "env.yaml", envYAML))
	require.NoError(t, err)
	assert.Equal(t, 3.0, env.PestRisk)

	_, err = LoadEnvironment(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestNewEnvironmentMissingField(t *testing.T) {
	raw := RawEnvironment{
		Temperature:  ptr(25),
		Humidity:     ptr(60),
		SoilPH:       ptr(6.5),
		SoilMoisture: ptr(0.3),
		PestRisk:     ptr(2),
	}
	_, err := NewEnvironment(raw)

	var mfe *types.MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "environment", mfe.Record)
	assert.Equal(t, "rainfall", mfe.Field)
}

func TestNewEnvironmentSoilMoistureRange(t *testing.T) {
	base := func(m float64) RawEnvironment {
		return RawEnvironment{
			Temperature: ptr(25), Humidity: ptr(60), Rainfall: ptr(200),
			SoilPH: ptr(6.5), SoilMoisture: ptr(m), PestRisk: ptr(3),
		}
	}

	for _, ok := range []float64{0, 0.5, 1} {
		_, err := NewEnvironment(base(ok))
		assert.NoError(t, err, "soil_moisture %g", ok)
	}

	for _, bad := range []float64{-0.1, 1.01, 35} {
		_, err := NewEnvironment(base(bad))
		var ife *types.InvalidFieldError
		require.True(t, errors.As(err, &ife), "soil_moisture %g", bad)
		assert.Equal(t, "soil_moisture", ife.Field)
		assert.Equal(t, bad, ife.Value)
	}
}

func TestNewEnvironmentPestRiskNotRangeChecked(t *testing.T) {
	raw := RawEnvironment{
		Temperature: ptr(90), Humidity: ptr(-3), Rainfall: ptr(0),
		SoilPH: ptr(15), SoilMoisture: ptr(0.1), PestRisk: ptr(42),
	}
	env, err := NewEnvironment(raw)
	require.NoError(t, err)
	assert.Equal(t, 42.0, env.PestRisk)
}
