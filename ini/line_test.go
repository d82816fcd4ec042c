package ini

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want lineKind
	}{
		{"empty", "", lineBlank},
		{"newline only", "\n", lineBlank},
		{"crlf only", "\r\n", lineBlank},
		{"hash comment", "# note\n", lineComment},
		{"semicolon comment", "; note\n", lineComment},
		{"double slash comment", "// note\n", lineComment},
		{"lone slash", "/", lineUnrecognized},
		{"lone bracket open", "[", lineMalformed},
		{"lone bracket close", "]", lineUnrecognized},
		{"empty header", "[]\n", lineMalformed},
		{"unclosed header", "[server\n", lineMalformed},
		{"header", "[server]\n", lineSection},
		{"header without terminator", "[server]", lineSection},
		{"pair", "key=value\n", lineKeyValue},
		{"pair empty value", "key=\n", lineKeyValue},
		{"pair empty key", "=value\n", lineUnrecognized},
		{"no separator", "just words\n", lineUnrecognized},
		{"block start", "/* begin\n", lineBlockStart},
		{"self-contained block", "/* note */\n", lineBlockStart},
		{"single char key no sep", "x", lineUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.raw); got.kind != tt.want {
				t.Errorf("classify(%q).kind = %v, want %v",
					tt.raw, got.kind, tt.want)
			}
		})
	}
}

func TestClassify_SectionName(t *testing.T) {
	tests := []struct {
		raw  string
		name string
	}{
		{"[server]\n", "server"},
		{"[a]\n", "a"},
		{"[with spaces]\n", "with spaces"},
		{"[server]\r\n", "server"},
	}

	for _, tt := range tests {
		got := classify(tt.raw)
		if got.kind != lineSection {
			t.Fatalf("classify(%q).kind = %v, want section", tt.raw, got.kind)
		}

		if got.name != tt.name {
			t.Errorf("classify(%q).name = %q, want %q", tt.raw, got.name, tt.name)
		}
	}
}

func TestClassify_KeyValueTrimming(t *testing.T) {
	tests := []struct {
		raw        string
		key, value string
	}{
		{"key=value\n", "key", "value"},
		{"  key  =  value  \n", "key", "value"},
		{"key=\n", "key", ""},
		{"key=a=b=c\n", "key", "a=b=c"},
		{"key = value with spaces \n", "key", "value with spaces"},
		{"key\t=\tvalue\n", "key", "value"},
	}

	for _, tt := range tests {
		got := classify(tt.raw)
		if got.kind != lineKeyValue {
			t.Fatalf("classify(%q).kind = %v, want key-value", tt.raw, got.kind)
		}

		if got.key != tt.key || got.value != tt.value {
			t.Errorf("classify(%q) = (%q, %q), want (%q, %q)",
				tt.raw, got.key, got.value, tt.key, tt.value)
		}
	}
}

func TestClassify_BlockEnd(t *testing.T) {
	tests := []struct {
		raw      string
		blockEnd bool
	}{
		{"/* open\n", false},
		{"/* open */\n", true},
		{"/**/\n", true},
		{"/*\n", false},
	}

	for _, tt := range tests {
		got := classify(tt.raw)
		if got.kind != lineBlockStart {
			t.Fatalf("classify(%q).kind = %v, want block start", tt.raw, got.kind)
		}

		if got.blockEnd != tt.blockEnd {
			t.Errorf("classify(%q).blockEnd = %v, want %v",
				tt.raw, got.blockEnd, tt.blockEnd)
		}
	}
}

func TestIsBlockEnd(t *testing.T) {
	tests := []struct {
		s    string
		want bool
	}{
		{"end */", true},
		{"*/", true},
		{"*", false},
		{"", false},
		{"/*", false},
		{"ignored text", false},
	}

	for _, tt := range tests {
		if got := isBlockEnd(tt.s); got != tt.want {
			t.Errorf("isBlockEnd(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}
