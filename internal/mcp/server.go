package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/eytandecker/glideperf/internal/glide"
	"github.com/eytandecker/glideperf/internal/results"
)

// CurveSource is the subset of results.Store used by the MCP server.
type CurveSource interface {
	Get(name string) (glide.Curve, error)
	Names() []string
}

// Server wraps the MCP SDK server and exposes computed glide performance
// curves as tools.
type Server struct {
	sdk    *mcpsdk.Server
	curves CurveSource
}

// NewServer creates a Server and registers the list_airfoils and
// get_glide_performance tools.
func NewServer(cs CurveSource) *Server {
	s := &Server{
		sdk: mcpsdk.NewServer(&mcpsdk.Implementation{
			Name:    "glideperf",
			Version: "1.0.0",
		}, nil),
		curves: cs,
	}

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "list_airfoils",
		Description: "Lists the analyzed airfoils with their polar sample count, achievable lift-coefficient range, and best glide ratio with the velocity it occurs at.",
	}, s.handleListAirfoils)

	mcpsdk.AddTool(s.sdk, &mcpsdk.Tool{
		Name:        "get_glide_performance",
		Description: "Returns glide performance for one airfoil: best glide ratio, flyable velocity band, maximum glide distance, and optionally the full per-velocity series.",
	}, s.handleGetGlidePerformance)
	return s
}

// Run starts the MCP server over stdio and blocks until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	return s.sdk.Run(ctx, &mcpsdk.StdioTransport{})
}

// Connect connects the server to an existing transport (used in tests).
func (s *Server) Connect(ctx context.Context, t mcpsdk.Transport) (*mcpsdk.ServerSession, error) {
	return s.sdk.Connect(ctx, t, nil)
}

// listAirfoilsInput holds arguments for the list_airfoils tool.
type listAirfoilsInput struct{}

// AirfoilSummary is one entry of the list_airfoils response.
type AirfoilSummary struct {
	Name              string   `json:"name"`
	SampleCount       int      `json:"sample_count"`
	ClMin             float64  `json:"cl_min"`
	ClMax             float64  `json:"cl_max"`
	Flyable           bool     `json:"flyable"`
	BestGlideRatio    *float64 `json:"best_glide_ratio,omitempty"`
	BestGlideVelocity *float64 `json:"best_glide_velocity_ms,omitempty"`
}

// ListAirfoilsResponse is the JSON payload of list_airfoils.
type ListAirfoilsResponse struct {
	Airfoils []AirfoilSummary `json:"airfoils"`
}

func (s *Server) handleListAirfoils(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input listAirfoilsInput,
) (*mcpsdk.CallToolResult, any, error) {
	resp := ListAirfoilsResponse{Airfoils: []AirfoilSummary{}}
	for _, name := range s.curves.Names() {
		c, err := s.curves.Get(name)
		if err != nil {
			return s.errorResult(err), nil, nil
		}

		sum := AirfoilSummary{
			Name:        name,
			SampleCount: c.SampleCount,
			ClMin:       c.MinCl,
			ClMax:       c.MaxCl,
		}
		if ratio, velocity, ok := c.BestGlide(); ok {
			sum.Flyable = true
			sum.BestGlideRatio = &ratio
			sum.BestGlideVelocity = &velocity
		}
		resp.Airfoils = append(resp.Airfoils, sum)
	}
	return textResult(resp)
}

// getGlidePerformanceInput holds arguments for the get_glide_performance tool.
type getGlidePerformanceInput struct {
	Airfoil       string `json:"airfoil"`
	IncludeSeries bool   `json:"include_series,omitempty"`
}

// Series holds the aligned per-velocity sequences. Pointer elements are null
// where the airfoil cannot produce the required lift coefficient.
type Series struct {
	VelocityMS       []float64  `json:"velocity_ms"`
	GlideDistanceM   []*float64 `json:"glide_distance_m"`
	GlideTimeS       []*float64 `json:"glide_time_s"`
	AngleOfAttackDeg []*float64 `json:"angle_of_attack_deg"`
	LiftDragRatio    []*float64 `json:"lift_drag_ratio"`
}

// GlidePerformanceResponse is the JSON payload of get_glide_performance.
type GlidePerformanceResponse struct {
	Airfoil            string  `json:"airfoil"`
	BestGlideRatio     float64 `json:"best_glide_ratio"`
	BestGlideVelocity  float64 `json:"best_glide_velocity_ms"`
	MaxGlideDistanceM  float64 `json:"max_glide_distance_m"`
	FlyableMinVelocity float64 `json:"flyable_min_velocity_ms"`
	FlyableMaxVelocity float64 `json:"flyable_max_velocity_ms"`
	Series             *Series `json:"series,omitempty"`
}

func (s *Server) handleGetGlidePerformance(
	ctx context.Context,
	req *mcpsdk.CallToolRequest,
	input getGlidePerformanceInput,
) (*mcpsdk.CallToolResult, any, error) {
	c, err := s.curves.Get(input.Airfoil)
	if err != nil {
		return s.errorResult(err), nil, nil
	}

	ratio, velocity, ok := c.BestGlide()
	if !ok {
		return s.errorResult(errNotFlyable), nil, nil
	}
	minV, maxV, _ := c.FlyableRange()

	resp := GlidePerformanceResponse{
		Airfoil:            c.Name,
		BestGlideRatio:     ratio,
		BestGlideVelocity:  velocity,
		MaxGlideDistanceM:  maxIgnoringNaN(c.Distance),
		FlyableMinVelocity: minV,
		FlyableMaxVelocity: maxV,
	}
	if input.IncludeSeries {
		resp.Series = &Series{
			VelocityMS:       c.Velocity,
			GlideDistanceM:   nullableSeries(c.Distance),
			GlideTimeS:       nullableSeries(c.Time),
			AngleOfAttackDeg: nullableSeries(c.AngleOfAttack),
			LiftDragRatio:    nullableSeries(c.LiftDragRatio),
		}
	}
	return textResult(resp)
}

var errNotFlyable = errors.New("mcp: no velocity in the sweep is flyable for this airfoil")

// ErrorResponse is returned when a tool call cannot be served.
type ErrorResponse struct {
	Available   bool   `json:"available"`
	Error       string `json:"error"`
	Code        string `json:"code"`
	Recoverable bool   `json:"recoverable"`
	Suggestion  string `json:"suggestion"`
	Timestamp   string `json:"timestamp"`
}

func (s *Server) errorResult(err error) *mcpsdk.CallToolResult {
	resp := ErrorResponse{
		Available: false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	switch {
	case errors.Is(err, results.ErrNotComputed):
		resp.Code = "UNKNOWN_AIRFOIL"
		resp.Recoverable = true
		resp.Suggestion = "Call list_airfoils for the available names."
	case errors.Is(err, errNotFlyable):
		resp.Code = "NOT_FLYABLE"
		resp.Recoverable = false
		resp.Suggestion = "Lower the mass, raise the air density, or extend the velocity sweep."
	default:
		resp.Code = "UNKNOWN_ERROR"
		resp.Recoverable = false
		resp.Suggestion = "Check application logs for details."
	}

	data, _ := json.Marshal(resp)
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
		IsError: true,
	}
}

// textResult marshals v into a single text content block.
func textResult(v any) (*mcpsdk.CallToolResult, any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, nil, err
	}
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: string(data)}},
	}, nil, nil
}

// nullableSeries maps NaN markers to JSON nulls.
func nullableSeries(vals []float64) []*float64 {
	out := make([]*float64, len(vals))
	for i := range vals {
		if math.IsNaN(vals[i]) {
			continue
		}
		v := vals[i]
		out[i] = &v
	}
	return out
}

func maxIgnoringNaN(vals []float64) float64 {
	max := math.NaN()
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	return max
}
