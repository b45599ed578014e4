package world

// Environment objects are the static catalog of the world: instantiated once
// at boot from the data tables and alive for the process lifetime. Each kind
// is its own struct with an explicit field set — a closed variant, not an
// open-ended bag of attributes.

// EnvObject is the sealed interface over the environment variants.
type EnvObject interface {
	ObjectID() int32
	Label() string
	Kind() string
	Position() (x, z float64)

	envObject()
}

type Village struct {
	ID         int32
	Name       string
	X, Z       float64
	Houses     int
	Population int
}

type Forest struct {
	ID        int32
	Name      string
	X, Z      float64
	TreeCount int
	Density   float64 // trees per 100 square units
}

type Mountain struct {
	ID         int32
	Name       string
	X, Z       float64
	PeakHeight float64
	Snowline   float64
}

type Temple struct {
	ID    int32
	Name  string
	X, Z  float64
	Deity string
	Lit   bool
}

type Market struct {
	ID       int32
	Name     string
	X, Z     float64
	Stalls   int
	OpenFrom int // hour of day
	OpenTo   int
}

func (v *Village) ObjectID() int32 { return v.ID }
func (v *Village) Label() string { return v.Name }
func (v *Village) Kind() string { return "village" }
func (v *Village) Position() (float64, float64) { return v.X, v.Z }
func (v *Village) envObject() {}

func (f *Forest) ObjectID() int32 { return f.ID }
func (f *Forest) Label() string { return f.Name }
func (f *Forest) Kind() string { return "forest" }
func (f *Forest) Position() (float64, float64) { return f.X, f.Z }
func (f *Forest) envObject() {}

func (m *Mountain) ObjectID() int32 { return m.ID }
func (m *Mountain) Label() string { return m.Name }
func (m *Mountain) Kind() string { return "mountain" }
func (m *Mountain) Position() (float64, float64) { return m.X, m.Z }
func (m *Mountain) envObject() {}

func (t *Temple) ObjectID() int32 { return t.ID }
func (t *Temple) Label() string { return t.Name }
func (t *Temple) Kind() string { return "temple" }
func (t *Temple) Position() (float64, float64) { return t.X, t.Z }
func (t *Temple) envObject() {}

func (m *Market) ObjectID() int32 { return m.ID }
func (m *Market) Label() string { return m.Name }
func (m *Market) Kind() string { return "market" }
func (m *Market) Position() (float64, float64) { return m.X, m.Z }
func (m *Market) envObject() {}
