package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Glider GliderConfig
	Sweep  SweepConfig
	Paths  PathsConfig
}

// GliderConfig holds the airframe and environment constants. Defaults
// describe a 450 kg glider in the thin Martian atmosphere.
type GliderConfig struct {
	WingspanM        float64
	ChordM           float64
	MassKg           float64
	OswaldEfficiency float64
	GravityMS2       float64
	AirDensityKgM3   float64
	BeginAltitudeM   float64
}

// SweepConfig holds the velocity sweep bounds and resolution.
type SweepConfig struct {
	MinVelocityMS float64
	MaxVelocityMS float64
	Samples       int
}

// PathsConfig holds input and output locations.
type PathsConfig struct {
	AirfoilDir string
	OutputDir  string
}

// Load reads configuration from environment variables, falling back to defaults.
func Load() Config {
	return Config{
		Glider: GliderConfig{
			WingspanM:        getEnvFloat("GLIDER_WINGSPAN_M", 14),
			ChordM:           getEnvFloat("GLIDER_CHORD_M", 2),
			MassKg:           getEnvFloat("GLIDER_MASS_KG", 450),
			OswaldEfficiency: getEnvFloat("GLIDER_OSWALD_EFFICIENCY", 0.85),
			GravityMS2:       getEnvFloat("GRAVITY_MS2", 3.73),
			AirDensityKgM3:   getEnvFloat("AIR_DENSITY_KGM3", 0.02),
			BeginAltitudeM:   getEnvFloat("BEGIN_ALTITUDE_M", 10000),
		},
		Sweep: SweepConfig{
			MinVelocityMS: getEnvFloat("SWEEP_MIN_VELOCITY_MS", 10),
			MaxVelocityMS: getEnvFloat("SWEEP_MAX_VELOCITY_MS", 120),
			Samples:       getEnvInt("SWEEP_SAMPLES", 1000),
		},
		Paths: PathsConfig{
			AirfoilDir: getEnvString("AIRFOIL_DIR", "airfoils"),
			OutputDir:  getEnvString("OUTPUT_DIR", "plots"),
		},
	}
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}
