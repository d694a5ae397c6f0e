package spec

// Selection holds the modules a user has confirmed, at most one per
// blueprint id. Confirming an id again replaces the stored module in place,
// so iteration order stays insertion-stable and the composer output stays
// deterministic.
type Selection struct {
	order []string
	byID  map[string]SelectedModule
}

func NewSelection() *Selection {
	return &Selection{byID: make(map[string]SelectedModule)}
}

// Confirm adds or replaces the module keyed by its blueprint id.
func (s *Selection) Confirm(m SelectedModule) {
	if _, ok := s.byID[m.BlueprintID]; !ok {
		s.order = append(s.order, m.BlueprintID)
	}
	s.byID[m.BlueprintID] = m
}

// Remove drops the module for the given blueprint id, if present.
func (s *Selection) Remove(blueprintID string) {
	if _, ok := s.byID[blueprintID]; !ok {
		return
	}
	delete(s.byID, blueprintID)
	for i, id := range s.order {
		if id == blueprintID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Modules returns the confirmed modules in insertion order.
func (s *Selection) Modules() []SelectedModule {
	out := make([]SelectedModule, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Selection) Len() int { return len(s.order) }
