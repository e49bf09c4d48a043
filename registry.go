package cinder

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// TemplateFunc produces a projectile configuration for a cast between two
// map points. Template functions must be pure; the factory layers runtime
// parameters and overrides on top of their output.
type TemplateFunc func(from, to Point) ProjectileConfig

// Template is a named, tagged effect recipe owned by a Registry. Immutable
// once registered except through Unregister/Register.
type Template struct {
	ID          string
	Name        string
	Description string
	Category    string
	Tags        []string
	Build       TemplateFunc
	Metadata    map[string]string
	Version     string
	Deprecated  bool
}

// Registry maps template ids to templates, with category and tag indices
// kept consistent on every register/unregister. Construct one per consumer
// (typically one per editor session); there is no ambient global registry,
// which keeps tests isolated.
//
// Registry is not synchronized. Under the engine's single-threaded ticking
// that is free; hosts that mutate it from multiple goroutines must guard
// Register/Unregister themselves.
type Registry struct {
	templates  map[string]Template
	byCategory map[string]map[string]struct{}
	byTag      map[string]map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		templates:  make(map[string]Template),
		byCategory: make(map[string]map[string]struct{}),
		byTag:      make(map[string]map[string]struct{}),
	}
}

// Register adds a template. A duplicate id is overwritten with a warning:
// the old entry is unregistered first, which keeps both indices correct.
func (r *Registry) Register(t Template) error {
	if t.ID == "" {
		return fmt.Errorf("cinder: template id must not be empty")
	}
	if t.Build == nil {
		return fmt.Errorf("cinder: template %q has no build function", t.ID)
	}
	if _, exists := r.templates[t.ID]; exists {
		log.Printf("cinder: template %q re-registered; replacing previous entry", t.ID)
		r.Unregister(t.ID)
	}
	r.templates[t.ID] = t
	if t.Category != "" {
		addIndex(r.byCategory, t.Category, t.ID)
	}
	for _, tag := range t.Tags {
		addIndex(r.byTag, tag, t.ID)
	}
	return nil
}

// Get returns the template for id.
func (r *Registry) Get(id string) (Template, bool) {
	t, ok := r.templates[id]
	return t, ok
}

// Unregister removes a template and its index entries. Reports whether the
// id was present.
func (r *Registry) Unregister(id string) bool {
	t, ok := r.templates[id]
	if !ok {
		return false
	}
	delete(r.templates, id)
	if t.Category != "" {
		dropIndex(r.byCategory, t.Category, id)
	}
	for _, tag := range t.Tags {
		dropIndex(r.byTag, tag, id)
	}
	return true
}

// Len returns the number of registered templates.
func (r *Registry) Len() int { return len(r.templates) }

// IDs returns all registered template ids, sorted.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByCategory returns the sorted ids registered under a category.
func (r *Registry) ByCategory(category string) []string {
	return indexIDs(r.byCategory, category)
}

// ByTag returns the sorted ids carrying a tag.
func (r *Registry) ByTag(tag string) []string {
	return indexIDs(r.byTag, tag)
}

// SearchCriteria filters the registry. Zero-value fields do not filter.
type SearchCriteria struct {
	// Categories matches templates in any of the listed categories.
	Categories []string
	// Tags requires every listed tag to be present.
	Tags []string
	// Name is a case-insensitive substring match on the display name. This
	// is a UI convenience; engine lookups always go by id.
	Name string
	// IncludeDeprecated also returns deprecated templates.
	IncludeDeprecated bool
}

// Search returns the templates matching all criteria, sorted by id. Pure
// filtering; the registry is not modified.
func (r *Registry) Search(c SearchCriteria) []Template {
	var out []Template
	needle := strings.ToLower(c.Name)
	for _, id := range r.IDs() {
		t := r.templates[id]
		if t.Deprecated && !c.IncludeDeprecated {
			continue
		}
		if len(c.Categories) > 0 && !containsString(c.Categories, t.Category) {
			continue
		}
		if !hasAllTags(t.Tags, c.Tags) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Name), needle) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func addIndex(idx map[string]map[string]struct{}, key, id string) {
	set := idx[key]
	if set == nil {
		set = make(map[string]struct{})
		idx[key] = set
	}
	set[id] = struct{}{}
}

func dropIndex(idx map[string]map[string]struct{}, key, id string) {
	set := idx[key]
	if set == nil {
		return
	}
	delete(set, id)
	if len(set) == 0 {
		delete(idx, key)
	}
}

func indexIDs(idx map[string]map[string]struct{}, key string) []string {
	set := idx[key]
	if len(set) == 0 {
		return nil
	}
	ids := make([]string, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func hasAllTags(have, want []string) bool {
	for _, w := range want {
		if !containsString(have, w) {
			return false
		}
	}
	return true
}
