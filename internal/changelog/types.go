package changelog

import (
	"fmt"
	"iter"

	"gopkg.in/yaml.v3"
)

// Document represents the root structure of a changelog YAML file.
// Releases are kept in the order they were written (newest first by
// convention); nothing here sorts them.
type Document struct {
	// Repo is the short "owner/name" path used to build absolute links.
	Repo     string              `yaml:"repo"`
	Releases OrderedMap[Release] `yaml:"releases"`
	// Repos is the dependency repository registry. A nil registry means the
	// document has none, which disables dependency rollups for every release.
	Repos *OrderedMap[DependencyRepoInfo] `yaml:"repos"`
}

// Release is a single version entry. Date is passed through verbatim.
type Release struct {
	Date     string              `yaml:"date"`
	Notice   string              `yaml:"notice"`
	Sections OrderedMap[Section] `yaml:"sections"`
	Packages OrderedMap[Changes] `yaml:"packages"`
	// Repos holds changes rolled up from dependency repositories, keyed by
	// their name in the document registry.
	Repos OrderedMap[Changes] `yaml:"repos"`
}

// Section is a named subdivision within a release (e.g. "Engine", "Tooling").
type Section struct {
	Notice  string  `yaml:"notice"`
	Changes Changes `yaml:"changes"`
}

// DependencyRepoInfo describes a dependency repository referenced by releases.
type DependencyRepoInfo struct {
	Repo        string `yaml:"repo"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// UnmarshalYAML enforces the required document keys.
func (d *Document) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "repo", "releases"); err != nil {
		return err
	}
	type plain Document
	return node.Decode((*plain)(d))
}

// UnmarshalYAML enforces the required release keys.
func (r *Release) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "date"); err != nil {
		return err
	}
	type plain Release
	return node.Decode((*plain)(r))
}

// UnmarshalYAML enforces the required section keys.
func (s *Section) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "changes"); err != nil {
		return err
	}
	type plain Section
	return node.Decode((*plain)(s))
}

// UnmarshalYAML enforces the required dependency repository keys.
func (i *DependencyRepoInfo) UnmarshalYAML(node *yaml.Node) error {
	if err := requireKeys(node, "repo", "name"); err != nil {
		return err
	}
	type plain DependencyRepoInfo
	return node.Decode((*plain)(i))
}

// Changes holds one optional list of entries per category.
// A category that was never written is absent, which is different from a
// category written with an empty list; both render nothing.
type Changes struct {
	lists map[CategoryType][]string
}

// NewChanges builds a Changes block from per-category entry lists.
func NewChanges(lists map[CategoryType][]string) Changes {
	var c Changes
	for cat, entries := range lists {
		c.Set(cat, entries)
	}
	return c
}

// Set stores the entries of a category, marking it present.
func (c *Changes) Set(cat CategoryType, entries []string) {
	if c.lists == nil {
		c.lists = make(map[CategoryType][]string)
	}
	c.lists[cat] = append([]string(nil), entries...)
}

// Get returns the entries of a category and whether the category is present.
func (c Changes) Get(cat CategoryType) ([]string, bool) {
	entries, ok := c.lists[cat]
	return entries, ok
}

// Count returns the total number of entries across all categories.
func (c Changes) Count() int {
	count := 0
	for _, entries := range c.lists {
		count += len(entries)
	}
	return count
}

// UnmarshalYAML decodes a changes block. Unknown category keys are rejected
// so that a typo never silently drops entries; a null value counts as absent.
func (c *Changes) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &ValidationError{Line: node.Line, Message: "changes must be a mapping of category to entries"}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		cat, ok := ParseCategory(keyNode.Value)
		if !ok {
			return &ValidationError{
				Line:    keyNode.Line,
				Field:   keyNode.Value,
				Message: "unknown change category",
			}
		}

		if valueNode.ShortTag() == "!!null" {
			continue
		}

		var entries []string
		if err := valueNode.Decode(&entries); err != nil {
			return fmt.Errorf("decoding %s entries: %w", keyNode.Value, err)
		}
		c.Set(cat, entries)
	}

	return nil
}

// OrderedMap is a string-keyed map that remembers insertion order.
// Reads are safe on a nil map.
type OrderedMap[V any] struct {
	keys   []string
	values map[string]V
}

// Set inserts or replaces a value. Replacing keeps the original position.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates over the entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, key := range m.keys {
			if !yield(key, m.values[key]) {
				return
			}
		}
	}
}

// UnmarshalYAML decodes a YAML mapping, keeping key order and rejecting
// duplicate keys.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return &ValidationError{Line: node.Line, Message: "expected a mapping"}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]

		var key string
		if err := keyNode.Decode(&key); err != nil {
			return fmt.Errorf("line %d: decoding key: %w", keyNode.Line, err)
		}
		if _, exists := m.Get(key); exists {
			return &ValidationError{Line: keyNode.Line, Field: key, Message: "duplicate key"}
		}

		var value V
		if err := valueNode.Decode(&value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		m.Set(key, value)
	}

	return nil
}

// requireKeys checks that a mapping node declares every given key.
func requireKeys(node *yaml.Node, keys ...string) error {
	if node.Kind != yaml.MappingNode {
		return &ValidationError{Line: node.Line, Message: "expected a mapping"}
	}

	declared := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		declared[node.Content[i].Value] = true
	}

	for _, key := range keys {
		if !declared[key] {
			return &ValidationError{Line: node.Line, Field: key, Message: "required field is missing"}
		}
	}
	return nil
}
