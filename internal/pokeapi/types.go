package pokeapi

import "strings"

// NoFormsPlaceholder is shown in place of an empty forms list.
const NoFormsPlaceholder = "No data"

// Summary is the minimal identity of a catalog entry. Name is the
// uniqueness key inside a roster.
type Summary struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Detail mirrors the parts of /pokemon/{id-or-name} an entry view renders.
type Detail struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	Forms   []NamedResource `json:"forms"`
	Sprites Sprites         `json:"sprites"`
}

// NamedResource is the catalog's {name, url} reference shape.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Sprites holds image URLs. Only the default front sprite is used.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// FormNames returns the form names in catalog order.
func (d *Detail) FormNames() []string {
	if d == nil {
		return nil
	}
	names := make([]string, 0, len(d.Forms))
	for _, f := range d.Forms {
		names = append(names, f.Name)
	}
	return names
}

// FormsSummary joins form names with ", ", or returns NoFormsPlaceholder when
// there is nothing to join.
func (d *Detail) FormsSummary() string {
	joined := strings.Join(d.FormNames(), ", ")
	if joined == "" {
		return NoFormsPlaceholder
	}
	return joined
}
