package ini

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzClassify tests the line classifier with random inputs.
func FuzzClassify(f *testing.F) {
	// Seed corpus with known line forms
	f.Add("")
	f.Add("\n")
	f.Add("\r\n")
	f.Add("# comment\n")
	f.Add("; comment\n")
	f.Add("// comment\n")
	f.Add("/* block */\n")
	f.Add("/* open\n")
	f.Add("end */\n")
	f.Add("[section]\n")
	f.Add("[]\n")
	f.Add("[\n")
	f.Add("]\n")
	f.Add("key=value\n")
	f.Add("key=\n")
	f.Add("=value\n")
	f.Add("/")
	f.Add("*")

	f.Fuzz(func(t *testing.T, input string) {
		// Classifier should not panic on any input
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("classify panicked on input %q: %v", input, r)
			}
		}()

		ln := classify(input)

		switch ln.kind {
		case lineSection:
			if ln.name == "" {
				t.Errorf("section line %q extracted an empty name", input)
			}

		case lineKeyValue:
			if ln.key == "" {
				t.Errorf("key-value line %q extracted an empty key", input)
			}

			if strings.TrimSpace(ln.key) != ln.key ||
				strings.TrimSpace(ln.value) != ln.value {
				t.Errorf("parts of %q not trimmed: (%q, %q)",
					input, ln.key, ln.value)
			}

		case lineBlank, lineComment, lineBlockStart,
			lineMalformed, lineUnrecognized:
		}
	})
}

// FuzzParseString tests the parser with random inputs.
func FuzzParseString(f *testing.F) {
	// Seed corpus with known valid documents
	f.Add("a=1\n")
	f.Add("[sec]\nkey=value\n")
	f.Add("a=1\n[sec]\nb=2\n# comment\nc=3\n")
	f.Add("/* start\nignored=1\nend */\nreal=2\n")
	f.Add("[]\n")
	f.Add("[one]\n[one]\ndup=1\n")
	f.Add("k=first\nk=last\n")
	f.Add("/* never closed\n")
	f.Add("\n\n\n")
	f.Add("no separator here\n")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		doc, err := ParseString(t.Context(), input)
		if err != nil {
			t.Fatalf("in-memory parse failed: %v", err)
		}

		if doc == nil {
			t.Fatal("nil document without error")
		}

		// The global scope always exists
		if doc.Global() == nil {
			t.Fatal("missing global scope")
		}

		// Section names are unique and every item is reachable by lookup
		seen := make(map[string]bool)

		for s := range doc.Sections() {
			if s.Name() == "" {
				t.Error("named section with empty name")
			}

			if seen[s.Name()] {
				t.Errorf("duplicate section %q survived", s.Name())
			}

			seen[s.Name()] = true

			for item := range s.Items() {
				got, ok := doc.Lookup(s.Name(), item.Key)
				if !ok || got != item {
					t.Errorf("item %q in section %q unreachable by lookup",
						item.Key, s.Name())
				}
			}
		}

		for item := range doc.Global().Items() {
			got, ok := doc.Get(item.Key)
			if !ok || got != item {
				t.Errorf("global item %q unreachable by lookup", item.Key)
			}
		}
	})
}
