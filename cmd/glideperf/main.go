package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/eytandecker/glideperf/internal/config"
	"github.com/eytandecker/glideperf/internal/glide"
	internalmcp "github.com/eytandecker/glideperf/internal/mcp"
	"github.com/eytandecker/glideperf/internal/polar"
	"github.com/eytandecker/glideperf/internal/render"
	"github.com/eytandecker/glideperf/internal/results"
)

func main() {
	if err := run(); err != nil {
		log.Printf("glideperf exited: %v", err)
		os.Exit(1)
	}
}

func run() error {
	serve := flag.Bool("serve", false, "serve computed curves over MCP stdio instead of writing charts")
	flag.Parse()

	cfg := config.Load()

	wingArea := cfg.Glider.WingspanM * cfg.Glider.ChordM
	params := glide.Parameters{
		Weight:           cfg.Glider.MassKg * cfg.Glider.GravityMS2,
		AirDensity:       cfg.Glider.AirDensityKgM3,
		WingArea:         wingArea,
		AspectRatio:      cfg.Glider.WingspanM * cfg.Glider.WingspanM / wingArea,
		OswaldEfficiency: cfg.Glider.OswaldEfficiency,
		BeginAltitude:    cfg.Glider.BeginAltitudeM,
	}
	velocities := glide.Sweep(cfg.Sweep.MinVelocityMS, cfg.Sweep.MaxVelocityMS, cfg.Sweep.Samples)

	curves, err := computeAll(params, velocities, cfg.Paths.AirfoilDir)
	if err != nil {
		return err
	}

	if *serve {
		return serveCurves(curves)
	}

	if err := os.MkdirAll(cfg.Paths.OutputDir, 0o755); err != nil {
		return err
	}
	if err := render.Charts(cfg.Paths.OutputDir, curves); err != nil {
		return err
	}
	log.Printf("wrote charts for %d airfoils to %s", len(curves), cfg.Paths.OutputDir)
	return nil
}

// computeAll loads every registered airfoil polar and computes its curve.
// Any load failure aborts the run: partial output would be misleading.
func computeAll(params glide.Parameters, velocities []float64, airfoilDir string) ([]glide.Curve, error) {
	reg := polar.NewRegistry()

	curves := make([]glide.Curve, 0, len(reg.All()))
	for _, def := range reg.All() {
		ds, err := polar.Load(def.Name, filepath.Join(airfoilDir, def.Filename))
		if err != nil {
			return nil, err
		}
		curves = append(curves, glide.Compute(params, velocities, ds))
	}

	sort.Slice(curves, func(i, j int) bool { return curves[i].Name < curves[j].Name })
	return curves, nil
}

// serveCurves exposes the computed curves as MCP tools over stdio until the
// process receives SIGINT or SIGTERM.
func serveCurves(curves []glide.Curve) error {
	store := results.NewStore()
	for _, c := range curves {
		store.Put(c)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := internalmcp.NewServer(store)
	if err := srv.Run(ctx); !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
