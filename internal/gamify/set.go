package gamify

import (
	"encoding/json"
	"sort"
)

// Set is a string set that persists as a sorted JSON list. Badges and
// study days are stored this way: membership in memory, a list on disk.
type Set map[string]struct{}

// NewSet returns an empty set.
func NewSet() Set {
	return make(Set)
}

// Add inserts v. Adding an existing member is a no-op.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Has reports membership.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	vals := make([]string, 0, len(s))
	for v := range s {
		vals = append(vals, v)
	}
	sort.Strings(vals)
	return vals
}

// MarshalJSON encodes the set as a sorted list.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON decodes a list into the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	var vals []string
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}
	set := make(Set, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	*s = set
	return nil
}
