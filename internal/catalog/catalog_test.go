package catalog

import "testing"

func TestLookup(t *testing.T) {
	bp, ok := Lookup("saas-billing")
	if !ok {
		t.Fatalf("saas-billing should be registered")
	}
	if bp.Name != "Subscription Engine" {
		t.Fatalf("unexpected name: %q", bp.Name)
	}
	if _, ok := Lookup("does-not-exist"); ok {
		t.Fatalf("unknown id should not resolve")
	}
}

func TestSub(t *testing.T) {
	bp, _ := Lookup("auth-multi-tenant")
	sub, ok := bp.Sub("Dynamic Roles")
	if !ok {
		t.Fatalf("Dynamic Roles should exist on auth-multi-tenant")
	}
	if sub.Description == "" {
		t.Fatalf("subcapability should carry a description")
	}
	if _, ok := bp.Sub("Nope"); ok {
		t.Fatalf("unknown label should not resolve")
	}
}

func TestRegistryIntegrity(t *testing.T) {
	validCategories := make(map[string]bool)
	for _, c := range Categories {
		validCategories[c.ID] = true
	}

	seen := make(map[string]bool)
	for _, bp := range Blueprints {
		if bp.ID == "" || bp.Name == "" || bp.Prompt == "" {
			t.Fatalf("blueprint %q has empty required fields", bp.ID)
		}
		if seen[bp.ID] {
			t.Fatalf("duplicate blueprint id %q", bp.ID)
		}
		seen[bp.ID] = true
		if !validCategories[bp.Category] {
			t.Fatalf("blueprint %q has unregistered category %q", bp.ID, bp.Category)
		}
		subSeen := make(map[string]bool)
		for _, sub := range bp.Subcapabilities {
			if subSeen[sub.Label] {
				t.Fatalf("blueprint %q has duplicate sub label %q", bp.ID, sub.Label)
			}
			subSeen[sub.Label] = true
		}
	}
}

func TestStackOptionsNonEmpty(t *testing.T) {
	for name, opts := range map[string][]string{
		"frameworks":            Frameworks,
		"stylings":              Stylings,
		"backends":              Backends,
		"toolings":              Toolings,
		"notificationProviders": NotificationProviders,
		"paymentProviders":      PaymentProviders,
	} {
		if len(opts) == 0 {
			t.Fatalf("%s registry is empty", name)
		}
	}
}
