package scene

import "slices"

// Family tags a category of component a node variant accepts.
type Family string

const (
	FamilySpatial  Family = "spatial"
	FamilyGameplay Family = "gameplay"
	FamilyRender   Family = "render"
	FamilyWorld    Family = "world"
	FamilyStage    Family = "stage"
)

// FamilySet is a small deduplicated set of families.
type FamilySet []Family

// Families builds a FamilySet, dropping duplicates and empty tags.
func Families(fs ...Family) FamilySet {
	out := make(FamilySet, 0, len(fs))
	for _, f := range fs {
		if f != "" && !slices.Contains(out, f) {
			out = append(out, f)
		}
	}
	return out
}

func (s FamilySet) Has(f Family) bool {
	return slices.Contains(s, f)
}

// Intersects reports whether s and other share at least one family.
func (s FamilySet) Intersects(other FamilySet) bool {
	for _, f := range s {
		if other.Has(f) {
			return true
		}
	}
	return false
}

func (s FamilySet) Strings() []string {
	out := make([]string, len(s))
	for i, f := range s {
		out[i] = string(f)
	}
	return out
}

// Multiplicity says how many instances of a component type one node may hold.
type Multiplicity uint8

const (
	Single Multiplicity = iota
	Multiple
)

func (m Multiplicity) String() string {
	if m == Multiple {
		return "multiple"
	}
	return "single"
}
