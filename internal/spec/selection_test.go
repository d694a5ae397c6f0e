package spec

import "testing"

func TestSelectionConfirmReplacesInPlace(t *testing.T) {
	s := NewSelection()
	s.Confirm(SelectedModule{BlueprintID: "a", ChosenSubLabels: []string{"one"}})
	s.Confirm(SelectedModule{BlueprintID: "b"})
	s.Confirm(SelectedModule{BlueprintID: "a", ChosenSubLabels: []string{"two"}})

	if s.Len() != 2 {
		t.Fatalf("re-confirming should not grow the selection, len=%d", s.Len())
	}
	mods := s.Modules()
	if mods[0].BlueprintID != "a" || mods[1].BlueprintID != "b" {
		t.Fatalf("replacement should keep insertion order, got %v", mods)
	}
	if len(mods[0].ChosenSubLabels) != 1 || mods[0].ChosenSubLabels[0] != "two" {
		t.Fatalf("replacement should store the latest sub-labels, got %v", mods[0].ChosenSubLabels)
	}
}

func TestSelectionRemove(t *testing.T) {
	s := NewSelection()
	s.Confirm(SelectedModule{BlueprintID: "a"})
	s.Confirm(SelectedModule{BlueprintID: "b"})
	s.Confirm(SelectedModule{BlueprintID: "c"})
	s.Remove("b")
	s.Remove("missing")

	mods := s.Modules()
	if len(mods) != 2 || mods[0].BlueprintID != "a" || mods[1].BlueprintID != "c" {
		t.Fatalf("unexpected modules after remove: %v", mods)
	}
}
