package unify

import (
	"github.com/asteroid-lang/asteroid-go/internal/except"
	"github.com/asteroid-lang/asteroid-go/pkg/term"
)

// checkLinear scans bindings for a simple id lval bound more than once to
// unequal targets. Binding the same name twice to structurally equal
// values is tolerated (the two occurrences simply agree); only a genuine
// conflict is a linearity violation.
func checkLinear(bindings []Binding) error {
	seen := make(map[string]term.Node, len(bindings))
	for _, b := range bindings {
		id, ok := b.LVal.(*term.ID)
		if !ok || id.IsWildcard() {
			continue
		}
		if prev, exists := seen[id.Name]; exists {
			if !prev.Equal(b.Value) {
				return except.NewNonLinearPatternError(id.Name)
			}
			continue
		}
		seen[id.Name] = b.Value
	}
	return nil
}
