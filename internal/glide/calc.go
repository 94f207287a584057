package glide

import (
	"math"

	"github.com/eytandecker/glideperf/internal/polar"
	"github.com/eytandecker/glideperf/pkg/types"
)

// Parameters holds the physical constants of one glide scenario. Immutable
// once built; Compute never modifies it.
type Parameters struct {
	Weight           float64 // N; the lift the wing must produce in steady glide
	AirDensity       float64 // kg/m³
	WingArea         float64 // m²
	AspectRatio      float64 // wingspan² / wing area
	OswaldEfficiency float64
	BeginAltitude    float64 // m
}

// Curve holds the derived quantities for one airfoil, every slice aligned
// index-for-index with Velocity. NaN marks velocities where the airfoil
// cannot produce the required lift coefficient; it propagates through every
// downstream quantity at that index.
type Curve struct {
	Name          string
	SampleCount   int       // rows in the source polar
	MinCl         float64   // lower bound of the polar's achievable lift coefficient
	MaxCl         float64   // upper bound; lift demands above it are unrepresentable
	Velocity      []float64 // m/s
	RequiredCl    []float64
	AngleOfAttack []float64 // degrees; NaN when unrepresentable
	ZeroLiftCd    []float64 // NaN when unrepresentable
	InducedCd     []float64
	TotalCd       []float64
	LiftDragRatio []float64
	Distance      []float64 // m, horizontal run over flat ground
	SlantDistance []float64 // m, along the glide path
	Time          []float64 // s
}

// Sweep returns n velocities linearly spaced over [min, max] inclusive.
func Sweep(min, max float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	vs := make([]float64, n)
	if n == 1 {
		vs[0] = min
		return vs
	}
	step := (max - min) / float64(n-1)
	for i := range vs {
		vs[i] = min + float64(i)*step
	}
	vs[n-1] = max
	return vs
}

// Compute derives the glide performance curve for one airfoil across the
// velocity sweep. Pure function: identical inputs yield bit-identical output.
func Compute(p Parameters, velocities []float64, ds *types.AirfoilDataset) Curve {
	n := len(velocities)
	c := Curve{
		Name:          ds.Name,
		SampleCount:   len(ds.Samples),
		MinCl:         ds.MinCl(),
		MaxCl:         ds.MaxCl(),
		Velocity:      make([]float64, n),
		RequiredCl:    make([]float64, n),
		AngleOfAttack: make([]float64, n),
		ZeroLiftCd:    make([]float64, n),
		InducedCd:     make([]float64, n),
		TotalCd:       make([]float64, n),
		LiftDragRatio: make([]float64, n),
		Distance:      make([]float64, n),
		SlantDistance: make([]float64, n),
		Time:          make([]float64, n),
	}
	copy(c.Velocity, velocities)

	for i, v := range velocities {
		cl := p.Weight / (0.5 * p.AirDensity * v * v * p.WingArea)
		c.RequiredCl[i] = cl
		c.InducedCd[i] = cl * cl / (math.Pi * p.OswaldEfficiency * p.AspectRatio)

		alpha, cd0, ok := polar.Lookup(ds.Samples, cl)
		if !ok {
			nan := math.NaN()
			c.AngleOfAttack[i] = nan
			c.ZeroLiftCd[i] = nan
			c.TotalCd[i] = nan
			c.LiftDragRatio[i] = nan
			c.Distance[i] = nan
			c.SlantDistance[i] = nan
			c.Time[i] = nan
			continue
		}

		c.AngleOfAttack[i] = alpha
		c.ZeroLiftCd[i] = cd0
		c.TotalCd[i] = cd0 + c.InducedCd[i]
		c.LiftDragRatio[i] = cl / c.TotalCd[i]
		c.Distance[i] = c.LiftDragRatio[i] * p.BeginAltitude
		c.SlantDistance[i] = math.Hypot(c.Distance[i], p.BeginAltitude)
		c.Time[i] = c.SlantDistance[i] / v
	}
	return c
}

// BestGlide returns the maximum lift-to-drag ratio in the curve and the
// velocity it occurs at. ok is false when no point in the sweep is flyable.
func (c Curve) BestGlide() (ratio, velocity float64, ok bool) {
	for i, r := range c.LiftDragRatio {
		if math.IsNaN(r) {
			continue
		}
		if !ok || r > ratio {
			ratio, velocity, ok = r, c.Velocity[i], true
		}
	}
	if !ok {
		return math.NaN(), math.NaN(), false
	}
	return ratio, velocity, true
}

// FlyableRange returns the lowest and highest velocities in the sweep where
// the required lift coefficient is achievable. ok is false when none is.
func (c Curve) FlyableRange() (min, max float64, ok bool) {
	for i, r := range c.LiftDragRatio {
		if math.IsNaN(r) {
			continue
		}
		if !ok {
			min = c.Velocity[i]
			ok = true
		}
		max = c.Velocity[i]
	}
	if !ok {
		return math.NaN(), math.NaN(), false
	}
	return min, max, true
}
