package core

import "fmt"

// resolveOrder returns a permutation of mods in which every module appears
// after all of its declared dependencies. Modules with no relative ordering
// constraint keep their registration order, so identical registration
// sequences always produce identical orderings.
//
// The input slice is never mutated. An error is returned when the graph has
// a cycle. Dependency names that match no registered module impose no
// ordering constraint here; the registry's own dependency resolution
// decides whether they are fatal.
func resolveOrder(mods []Module) ([]Module, error) {
	byName := make(map[string]Module, len(mods))
	for _, m := range mods {
		byName[m.Name()] = m
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(mods))
	out := make([]Module, 0, len(mods))

	var visit func(m Module) error
	visit = func(m Module) error {
		switch state[m.Name()] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("dependency cycle through module %s", m.Name())
		}
		state[m.Name()] = visiting
		for _, dep := range dependentModuleNames(m) {
			d, ok := byName[dep]
			if !ok {
				continue
			}
			if err := visit(d); err != nil {
				return err
			}
		}
		state[m.Name()] = done
		out = append(out, m)
		return nil
	}

	// Depth-first in registration order keeps the tie-break stable.
	for _, m := range mods {
		if err := visit(m); err != nil {
			return nil, err
		}
	}
	return out, nil
}
