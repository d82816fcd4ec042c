package ini

import "iter"

// Item is a single key/value pair parsed from an INI document.
// Key is never empty; Value may be.
type Item struct {
	Key   string
	Value string
}

// Section is a named, insertion-ordered collection of items.
//
// The zero name identifies the global scope. Keys are unique within a
// section: assigning an existing key replaces its value in place
// (last-write-wins) without disturbing insertion order.
type Section struct {
	name  string
	items []*Item
	index map[string]int // key -> position in items
}

func newSection(name string) *Section {
	return &Section{
		name:  name,
		items: make([]*Item, 0),
		index: make(map[string]int),
	}
}

// Name returns the section's name. It is empty for the global scope.
func (s *Section) Name() string { return s.name }

// Len returns the number of items in the section.
func (s *Section) Len() int { return len(s.items) }

// Get retrieves an item by key.
// Returns (nil, false) if the key is not present.
func (s *Section) Get(key string) (*Item, bool) {
	i, ok := s.index[key]
	if !ok {
		return nil, false
	}

	return s.items[i], true
}

// Keys returns the section's keys in insertion order.
func (s *Section) Keys() []string {
	keys := make([]string, len(s.items))
	for i, item := range s.items {
		keys[i] = item.Key
	}

	return keys
}

// Items returns an iterator over the section's items in insertion order.
func (s *Section) Items() iter.Seq[*Item] {
	return func(yield func(*Item) bool) {
		for _, item := range s.items {
			if !yield(item) {
				return
			}
		}
	}
}

// set inserts or replaces the item for key.
func (s *Section) set(key, value string) {
	if i, ok := s.index[key]; ok {
		s.items[i].Value = value

		return
	}

	s.index[key] = len(s.items)
	s.items = append(s.items, &Item{Key: key, Value: value})
}

// Document is the parsed form of an INI input: a global scope of items
// plus an insertion-ordered collection of named sections.
//
// A Document owns all of its sections and items. It is assembled in one
// pass by the parse functions and never mutated afterward, so it may be
// shared freely across goroutines for reads.
type Document struct {
	global   *Section
	sections []*Section
	index    map[string]int // section name -> position in sections
	warnings []Warning
}

func newDocument() *Document {
	return &Document{
		global:   newSection(""),
		sections: make([]*Section, 0),
		index:    make(map[string]int),
	}
}

// Global returns the global (sectionless) scope.
// It always exists, even for empty input.
func (d *Document) Global() *Section { return d.global }

// Get retrieves an item by key from the global scope.
// Returns (nil, false) if the key is not present.
func (d *Document) Get(key string) (*Item, bool) {
	return d.global.Get(key)
}

// Section retrieves a section by name.
// Returns (nil, false) if no section has that name.
func (d *Document) Section(name string) (*Section, bool) {
	i, ok := d.index[name]
	if !ok {
		return nil, false
	}

	return d.sections[i], true
}

// Lookup retrieves an item by key within the named section.
// An empty section name addresses the global scope.
func (d *Document) Lookup(section, key string) (*Item, bool) {
	if section == "" {
		return d.global.Get(key)
	}

	s, ok := d.Section(section)
	if !ok {
		return nil, false
	}

	return s.Get(key)
}

// Len returns the number of named sections.
func (d *Document) Len() int { return len(d.sections) }

// Sections returns an iterator over the named sections in the order their
// headers first appeared.
func (d *Document) Sections() iter.Seq[*Section] {
	return func(yield func(*Section) bool) {
		for _, s := range d.sections {
			if !yield(s) {
				return
			}
		}
	}
}

// Warnings returns the soft errors collected while parsing, in input
// order. A non-empty result still accompanies a valid, best-effort
// Document.
func (d *Document) Warnings() []Warning { return d.warnings }

// section returns the named section, creating it on first use.
// A repeated header name reopens the existing section, so later items
// merge into it and section names stay unique.
func (d *Document) section(name string) *Section {
	if i, ok := d.index[name]; ok {
		return d.sections[i]
	}

	s := newSection(name)
	d.index[name] = len(d.sections)
	d.sections = append(d.sections, s)

	return s
}

func (d *Document) warn(kind WarningKind, lineno int, text string) {
	d.warnings = append(d.warnings, Warning{Kind: kind, Line: lineno, Text: text})
}
