package entity

// Neighborhood is a leaf of the administrative hierarchy.
type Neighborhood struct {
	Name string `json:"name"`
}

// Municipality groups the neighborhoods of a province subdivision.
type Municipality struct {
	Name          string         `json:"name"`
	Neighborhoods []Neighborhood `json:"neighborhoods"`
}

// Province is the top level of the static administrative hierarchy used by
// the cascading location picker. The hierarchy is loaded once at process
// start and never mutated.
type Province struct {
	Name           string         `json:"name"`
	Municipalities []Municipality `json:"municipalities"`
}

// Municipality returns the named subdivision, if present.
func (p Province) Municipality(name string) (Municipality, bool) {
	for _, m := range p.Municipalities {
		if m.Name == name {
			return m, true
		}
	}

	return Municipality{}, false
}

// Neighborhood returns the named neighborhood, if present.
func (m Municipality) Neighborhood(name string) (Neighborhood, bool) {
	for _, n := range m.Neighborhoods {
		if n.Name == name {
			return n, true
		}
	}

	return Neighborhood{}, false
}
