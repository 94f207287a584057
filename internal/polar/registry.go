package polar

import "fmt"

// AirfoilDef names one airfoil and the polar file that measures it.
type AirfoilDef struct {
	Name     string
	Filename string
}

// Predefined airfoil polars, exported from airfoiltools.com at Re 50,000.
var (
	NACA0012  = AirfoilDef{Name: "NACA 0012", Filename: "xf-n0012-il-50000.csv"}
	NACA0009  = AirfoilDef{Name: "NACA 0009", Filename: "xf-n0009sm-il-50000.csv"}
	NACA2414  = AirfoilDef{Name: "NACA 2414", Filename: "xf-n2414-il-50000.csv"}
	NACA2415  = AirfoilDef{Name: "NACA 2415", Filename: "xf-n2415-il-50000.csv"}
	NACA6409  = AirfoilDef{Name: "NACA 6409", Filename: "xf-n6409-il-50000.csv"}
	NACA0006  = AirfoilDef{Name: "NACA 0006", Filename: "xf-naca0006-il-50000.csv"}
	NACA0008  = AirfoilDef{Name: "NACA 0008", Filename: "xf-naca0008-il-50000.csv"}
	NACA0010  = AirfoilDef{Name: "NACA 0010", Filename: "xf-naca0010-il-50000.csv"}
	NACA0012H = AirfoilDef{Name: "NACA 0012H", Filename: "xf-naca0012h-sa-50000.csv"}
	NACA0015  = AirfoilDef{Name: "NACA 0015", Filename: "xf-naca0015-il-50000.csv"}
)

// DefaultAirfoils is the ordered set of airfoils analyzed at startup.
var DefaultAirfoils = []AirfoilDef{
	NACA0012, NACA0009, NACA2414, NACA2415, NACA6409,
	NACA0006, NACA0008, NACA0010, NACA0012H, NACA0015,
}

// Registry holds the allowlist of known airfoils.
type Registry struct {
	defs  map[string]AirfoilDef
	order []AirfoilDef
}

// NewRegistry creates a registry with all predefined airfoils.
func NewRegistry() *Registry {
	r := &Registry{
		defs:  make(map[string]AirfoilDef, len(DefaultAirfoils)),
		order: DefaultAirfoils,
	}
	for _, d := range DefaultAirfoils {
		r.defs[d.Name] = d
	}
	return r
}

// Get returns the AirfoilDef for the given display name, if it exists.
func (r *Registry) Get(name string) (AirfoilDef, bool) {
	def, ok := r.defs[name]
	return def, ok
}

// Validate checks if an airfoil name is in the allowlist.
func (r *Registry) Validate(name string) error {
	if _, ok := r.defs[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAirfoil, name)
	}
	return nil
}

// All returns the registered airfoils in registration order.
func (r *Registry) All() []AirfoilDef {
	return r.order
}
