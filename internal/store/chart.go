// Package store implements an embedded store for chart definitions. The
// whole collection lives in a single JSON document on disk; every operation
// reads the full document, transforms it in memory, and writes it back.
// There is no caching between calls and no cross-process locking: two
// concurrent writers race and the last write wins, which is an accepted
// limitation for a single-writer configuration store.
package store

// Axis describes one axis entry of a chart. The store never interprets
// axis descriptors; they pass through to the rendering layer untouched.
type Axis struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Color string `json:"color,omitempty"`
}

// Variable declares a named query parameter with its default value and
// optional UI metadata. Defaults seed the parameter map before
// caller-supplied overrides are layered on top.
type Variable struct {
	Key     string `json:"key"`
	Default any    `json:"defaults"`
	Label   string `json:"label,omitempty"`
	Widget  string `json:"widget,omitempty"`
}

// Chart is one persisted chart definition.
type Chart struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	XAxis   []Axis         `json:"xaxis"`
	YAxis   []Axis         `json:"yaxis"`
	Query   string         `json:"query,omitempty"`
	Vars    []Variable     `json:"vars,omitempty"`
	Filters map[string]any `json:"filters,omitempty"`
}

// Patch is a partial update applied to matching charts. Nil fields are
// left untouched; set fields overwrite the existing value wholesale
// (shallow merge, no per-element merging of slices or maps). The id of a
// chart is assigned once at creation and cannot be patched.
type Patch struct {
	Name    *string
	Query   *string
	XAxis   []Axis
	YAxis   []Axis
	Vars    []Variable
	Filters map[string]any
}

func (p Patch) apply(c *Chart) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Query != nil {
		c.Query = *p.Query
	}
	if p.XAxis != nil {
		c.XAxis = p.XAxis
	}
	if p.YAxis != nil {
		c.YAxis = p.YAxis
	}
	if p.Vars != nil {
		c.Vars = p.Vars
	}
	if p.Filters != nil {
		c.Filters = p.Filters
	}
}
