package catalog

// Blueprint is one selectable feature module. The registry is static and
// read-only; handlers and the composer share it freely across sessions.
type Blueprint struct {
	ID              string          `json:"id"`
	Category        string          `json:"category"`
	Name            string          `json:"name"`
	Badge           string          `json:"badge"`
	Prompt          string          `json:"prompt"`
	Subcapabilities []Subcapability `json:"subcategories"`
}

// Subcapability is an independently toggleable facet of a blueprint.
type Subcapability struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var Categories = []Category{
	{ID: "all", Label: "All Modules"},
	{ID: "saas", Label: "SaaS Core"},
	{ID: "ecommerce", Label: "E-commerce"},
	{ID: "booking", Label: "Services & Booking"},
	{ID: "social", Label: "Social & Collab"},
	{ID: "ai", Label: "AI & Data"},
	{ID: "marketing", Label: "Marketing"},
	{ID: "integrations", Label: "Integrations"},
}

var byID map[string]*Blueprint

func init() {
	byID = make(map[string]*Blueprint, len(Blueprints))
	for i := range Blueprints {
		byID[Blueprints[i].ID] = &Blueprints[i]
	}
}

// Lookup returns the blueprint registered under id. The second return is
// false for unknown ids; callers are expected to degrade, not fail.
func Lookup(id string) (*Blueprint, bool) {
	bp, ok := byID[id]
	return bp, ok
}

// Sub returns the subcapability of bp carrying the given label.
func (bp *Blueprint) Sub(label string) (Subcapability, bool) {
	for _, s := range bp.Subcapabilities {
		if s.Label == label {
			return s, true
		}
	}
	return Subcapability{}, false
}
