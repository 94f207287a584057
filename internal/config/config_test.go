package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, 14.0, cfg.Glider.WingspanM)
	assert.Equal(t, 2.0, cfg.Glider.ChordM)
	assert.Equal(t, 450.0, cfg.Glider.MassKg)
	assert.Equal(t, 0.85, cfg.Glider.OswaldEfficiency)
	assert.Equal(t, 3.73, cfg.Glider.GravityMS2)
	assert.Equal(t, 0.02, cfg.Glider.AirDensityKgM3)
	assert.Equal(t, 10000.0, cfg.Glider.BeginAltitudeM)
	assert.Equal(t, 10.0, cfg.Sweep.MinVelocityMS)
	assert.Equal(t, 120.0, cfg.Sweep.MaxVelocityMS)
	assert.Equal(t, 1000, cfg.Sweep.Samples)
	assert.Equal(t, "airfoils", cfg.Paths.AirfoilDir)
	assert.Equal(t, "plots", cfg.Paths.OutputDir)
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name   string
		envKey string
		envVal string
		check  func(t *testing.T, cfg Config)
	}{
		{
			name:   "GLIDER_MASS_KG valid",
			envKey: "GLIDER_MASS_KG",
			envVal: "620.5",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 620.5, cfg.Glider.MassKg)
			},
		},
		{
			name:   "GLIDER_MASS_KG invalid falls back to default",
			envKey: "GLIDER_MASS_KG",
			envVal: "heavy",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 450.0, cfg.Glider.MassKg)
			},
		},
		{
			name:   "GRAVITY_MS2 valid",
			envKey: "GRAVITY_MS2",
			envVal: "9.81",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 9.81, cfg.Glider.GravityMS2)
			},
		},
		{
			name:   "AIR_DENSITY_KGM3 valid",
			envKey: "AIR_DENSITY_KGM3",
			envVal: "1.225",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 1.225, cfg.Glider.AirDensityKgM3)
			},
		},
		{
			name:   "SWEEP_SAMPLES valid",
			envKey: "SWEEP_SAMPLES",
			envVal: "250",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 250, cfg.Sweep.Samples)
			},
		},
		{
			name:   "SWEEP_SAMPLES invalid falls back to default",
			envKey: "SWEEP_SAMPLES",
			envVal: "lots",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 1000, cfg.Sweep.Samples)
			},
		},
		{
			name:   "SWEEP_MAX_VELOCITY_MS valid",
			envKey: "SWEEP_MAX_VELOCITY_MS",
			envVal: "90",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, 90.0, cfg.Sweep.MaxVelocityMS)
			},
		},
		{
			name:   "AIRFOIL_DIR",
			envKey: "AIRFOIL_DIR",
			envVal: "/data/polars",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/data/polars", cfg.Paths.AirfoilDir)
			},
		},
		{
			name:   "OUTPUT_DIR",
			envKey: "OUTPUT_DIR",
			envVal: "/tmp/out",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "/tmp/out", cfg.Paths.OutputDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envKey, tt.envVal)
			cfg := Load()
			tt.check(t, cfg)
		})
	}
}
