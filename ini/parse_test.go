package ini

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustParse(t *testing.T, input string) *Document {
	t.Helper()

	doc, err := ParseString(t.Context(), input)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	return doc
}

func wantItem(t *testing.T, doc *Document, section, key, value string) {
	t.Helper()

	item, ok := doc.Lookup(section, key)
	if !ok {
		t.Fatalf("item %q not found in scope %q", key, section)
	}

	if item.Value != value {
		t.Errorf("Lookup(%q, %q).Value = %q, want %q",
			section, key, item.Value, value)
	}
}

func TestParseString_GlobalAndSection(t *testing.T) {
	doc := mustParse(t, "a=1\n[sec]\nb=2\n# comment\nc=3\n")

	wantItem(t, doc, "", "a", "1")
	wantItem(t, doc, "sec", "b", "2")
	wantItem(t, doc, "sec", "c", "3")

	if doc.Global().Len() != 1 {
		t.Errorf("global scope has %d items, want 1", doc.Global().Len())
	}

	if doc.Len() != 1 {
		t.Errorf("document has %d sections, want 1", doc.Len())
	}

	if len(doc.Warnings()) != 0 {
		t.Errorf("unexpected warnings: %v", doc.Warnings())
	}
}

func TestParseString_Empty(t *testing.T) {
	doc := mustParse(t, "")

	if doc.Global() == nil || doc.Global().Len() != 0 {
		t.Error("empty input must yield an existing, empty global scope")
	}

	if doc.Len() != 0 {
		t.Errorf("empty input yielded %d sections", doc.Len())
	}

	if len(doc.Warnings()) != 0 {
		t.Errorf("empty input yielded warnings: %v", doc.Warnings())
	}
}

func TestParseString_SingleLine(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		key, value string
	}{
		{"plain", "key=value", "key", "value"},
		{"trimmed", "  key  =  value  \n", "key", "value"},
		{"empty value", "key=", "key", ""},
		{"value with separator", "url=http://host?q=1", "url", "http://host?q=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)

			if doc.Global().Len() != 1 {
				t.Fatalf("global scope has %d items, want 1", doc.Global().Len())
			}

			wantItem(t, doc, "", tt.key, tt.value)
		})
	}
}

func TestParseString_BlockComment(t *testing.T) {
	doc := mustParse(t, "/* start\nignored=1\nend */\nreal=2\n")

	wantItem(t, doc, "", "real", "2")

	if _, ok := doc.Get("ignored"); ok {
		t.Error("item inside block comment was not suppressed")
	}

	if doc.Global().Len() != 1 {
		t.Errorf("global scope has %d items, want 1", doc.Global().Len())
	}
}

func TestParseString_SelfContainedBlockComment(t *testing.T) {
	doc := mustParse(t, "/* note */\na=1\n")

	wantItem(t, doc, "", "a", "1")

	if len(doc.Warnings()) != 0 {
		t.Errorf("self-contained block left parser suspended: %v", doc.Warnings())
	}
}

func TestParseString_BlockCommentSuppressesEverything(t *testing.T) {
	// Section headers, comments, and pairs inside a block are all inert.
	doc := mustParse(t, "/*\n[sec]\nkey=1\n# comment\n*/\nafter=2\n")

	wantItem(t, doc, "", "after", "2")

	if doc.Len() != 0 {
		t.Error("section header inside block comment created a section")
	}
}

func TestParseString_UnterminatedBlockComment(t *testing.T) {
	doc := mustParse(t, "a=1\n/* open\nb=2\n")

	wantItem(t, doc, "", "a", "1")

	if _, ok := doc.Get("b"); ok {
		t.Error("item inside unterminated block was not suppressed")
	}

	warnings := doc.Warnings()
	if len(warnings) != 1 || warnings[0].Kind != WarnUnterminatedBlock {
		t.Fatalf("warnings = %v, want one unterminated-block warning", warnings)
	}
}

func TestParseString_MalformedSection(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty name", "[]\n"},
		{"unclosed", "[sec\n"},
		{"lone open bracket", "[\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := mustParse(t, tt.input)

			if doc.Len() != 0 {
				t.Error("malformed header fabricated a section")
			}

			warnings := doc.Warnings()
			if len(warnings) != 1 || warnings[0].Kind != WarnMalformedSection {
				t.Fatalf("warnings = %v, want one malformed-section warning",
					warnings)
			}

			if warnings[0].Line != 1 {
				t.Errorf("warning line = %d, want 1", warnings[0].Line)
			}
		})
	}
}

func TestParseString_UnrecognizedLine(t *testing.T) {
	doc := mustParse(t, "a=1\nnot a pair\nb=2\n")

	wantItem(t, doc, "", "a", "1")
	wantItem(t, doc, "", "b", "2")

	warnings := doc.Warnings()
	if len(warnings) != 1 || warnings[0].Kind != WarnUnrecognizedLine {
		t.Fatalf("warnings = %v, want one unrecognized-line warning", warnings)
	}

	if warnings[0].Line != 2 || warnings[0].Text != "not a pair" {
		t.Errorf("warning = %+v, want line 2 text %q",
			warnings[0], "not a pair")
	}
}

func TestParseString_MalformedSectionDoesNotSwitchScope(t *testing.T) {
	doc := mustParse(t, "[ok]\na=1\n[]\nb=2\n")

	// After the malformed header, items continue into the open section.
	wantItem(t, doc, "ok", "a", "1")
	wantItem(t, doc, "ok", "b", "2")
}

func TestParseString_DuplicateKeyLastWriteWins(t *testing.T) {
	doc := mustParse(t, "k=first\nk=last\n")

	wantItem(t, doc, "", "k", "last")

	if doc.Global().Len() != 1 {
		t.Errorf("duplicate key produced %d items, want 1", doc.Global().Len())
	}
}

func TestParseString_DuplicateSectionMerges(t *testing.T) {
	doc := mustParse(t, "[s]\na=1\n[t]\nx=9\n[s]\nb=2\n")

	wantItem(t, doc, "s", "a", "1")
	wantItem(t, doc, "s", "b", "2")
	wantItem(t, doc, "t", "x", "9")

	if doc.Len() != 2 {
		t.Errorf("document has %d sections, want 2", doc.Len())
	}
}

func TestParseString_CommentForms(t *testing.T) {
	doc := mustParse(t, "# hash\n; semi\n// slash\na=1\n")

	wantItem(t, doc, "", "a", "1")

	if len(doc.Warnings()) != 0 {
		t.Errorf("comment lines produced warnings: %v", doc.Warnings())
	}
}

func TestParseString_CRLFInput(t *testing.T) {
	doc := mustParse(t, "a=1\r\n[sec]\r\nb=2\r\n")

	wantItem(t, doc, "", "a", "1")
	wantItem(t, doc, "sec", "b", "2")
}

func TestParseString_NoTrailingTerminator(t *testing.T) {
	doc := mustParse(t, "[sec]\nkey=value")

	wantItem(t, doc, "sec", "key", "value")
}

func TestParseReader_RoundTrip(t *testing.T) {
	// Re-serializing sections/items in [section]\nkey=value form and
	// re-parsing yields an equal document, independent of the comments
	// interleaved in the original input.
	input := "g=0\n# noise\n[one]\na=1\n/* gone\nb=hidden\n*/\nb=2\n; more\n[two]\nc=3\n"

	doc := mustParse(t, input)

	var sb strings.Builder

	for item := range doc.Global().Items() {
		sb.WriteString(item.Key + "=" + item.Value + "\n")
	}

	for section := range doc.Sections() {
		sb.WriteString("[" + section.Name() + "]\n")

		for item := range section.Items() {
			sb.WriteString(item.Key + "=" + item.Value + "\n")
		}
	}

	again := mustParse(t, sb.String())

	if again.Global().Len() != doc.Global().Len() || again.Len() != doc.Len() {
		t.Fatalf("round trip changed shape: %d/%d items, %d/%d sections",
			again.Global().Len(), doc.Global().Len(), again.Len(), doc.Len())
	}

	for item := range doc.Global().Items() {
		wantItem(t, again, "", item.Key, item.Value)
	}

	for section := range doc.Sections() {
		for item := range section.Items() {
			wantItem(t, again, section.Name(), item.Key, item.Value)
		}
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.ini")

	content := "name=iniq\n[server]\nport=8080\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	doc, err := ParseFile(t.Context(), path)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	wantItem(t, doc, "", "name", "iniq")
	wantItem(t, doc, "server", "port", "8080")
}

func TestParseFile_SourceUnavailable(t *testing.T) {
	doc, err := ParseFile(t.Context(), filepath.Join(t.TempDir(), "missing.ini"))

	if doc != nil {
		t.Error("unopenable source returned a document")
	}

	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("error = %v, want ErrSourceUnavailable", err)
	}

	// The underlying system error survives the wrap.
	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("underlying path error unreachable from %v", err)
	}
}

func TestParseReader_ReadError(t *testing.T) {
	wantErr := errors.New("disk detached")

	doc, err := ParseReader(t.Context(), &failReader{err: wantErr})

	if doc != nil {
		t.Error("failed read returned a document")
	}

	if !errors.Is(err, ErrReadInput) || !errors.Is(err, wantErr) {
		t.Fatalf("error = %v, want ErrReadInput wrapping %v", err, wantErr)
	}
}

type failReader struct {
	err error
}

func (r *failReader) Read([]byte) (int, error) { return 0, r.err }
