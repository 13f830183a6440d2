package json

import (
	"strings"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
)

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no comments",
			input: `{"key": "value"}`,
			want:  `{"key": "value"}`,
		},
		{
			name:  "single line comment",
			input: "// comment\n{\"key\": \"value\"}",
			want:  "\n{\"key\": \"value\"}",
		},
		{
			name:  "inline comment",
			input: "{\"key\": \"value\"} // comment",
			want:  "{\"key\": \"value\"} ",
		},
		{
			name:  "comment with leading whitespace",
			input: "  // comment\n{\"key\": \"value\"}",
			want:  "\n{\"key\": \"value\"}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(StripComments([]byte(tt.input)))
			if got != tt.want {
				t.Errorf("StripComments() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name     string
		input    string
		opts     format.ParseOptions
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "simple json",
			input:    `{"key": "value"}`,
			wantKeys: []string{"key"},
		},
		{
			name:     "nested json",
			input:    `{"outer": {"inner": "value"}}`,
			wantKeys: []string{"outer"},
		},
		{
			name:     "key order preserved",
			input:    `{"zebra": 1, "apple": 2, "mango": 3}`,
			wantKeys: []string{"zebra", "apple", "mango"},
		},
		{
			name:     "json with comments stripped",
			input:    "// comment\n{\"key\": \"value\"}",
			opts:     format.ParseOptions{StripComments: true},
			wantKeys: []string{"key"},
		},
		{
			name:     "empty input",
			input:    "  \n",
			wantKeys: []string{},
		},
		{
			name:    "invalid json",
			input:   `{invalid}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Parse([]byte(tt.input), tt.opts)
			if (err != nil) != tt.wantErr {
				t.Errorf("Parse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			om, ok := got.(*orderedmap.OrderedMap)
			if !ok {
				t.Fatalf("Parse() returned %T, want *orderedmap.OrderedMap", got)
			}
			gotKeys := om.Keys()
			if len(gotKeys) != len(tt.wantKeys) {
				t.Fatalf("Parse() got keys %v, want %v", gotKeys, tt.wantKeys)
			}
			for i, k := range gotKeys {
				if k != tt.wantKeys[i] {
					t.Errorf("Parse() key[%d] = %q, want %q", i, k, tt.wantKeys[i])
				}
			}
		})
	}
}

func TestHandler_Parse_TopLevelArray(t *testing.T) {
	got, err := New().Parse([]byte(`[{"b": 1, "a": 2}, 3]`), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	list, ok := got.([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("Parse() = %#v, want two-element []any", got)
	}
	first, ok := list[0].(*orderedmap.OrderedMap)
	if !ok {
		t.Fatalf("Parse() element 0 = %T, want *orderedmap.OrderedMap", list[0])
	}
	if keys := first.Keys(); len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Errorf("Parse() element 0 keys = %v, want [b a]", keys)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input string
		want  any
	}{
		{`8080`, int64(8080)},
		{`-3`, int64(-3)},
		{`1.5`, float64(1.5)},
		{`1e3`, float64(1000)},
		{`true`, true},
		{`null`, nil},
		{`"quoted"`, "quoted"},
		{`hello`, "hello"},
		{`007`, "007"},
		{``, ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseValue(tt.input); got != tt.want {
				t.Errorf("ParseValue(%q) = %#v, want %#v", tt.input, got, tt.want)
			}
		})
	}

	if _, ok := ParseValue(`{"a": 1}`).(*orderedmap.OrderedMap); !ok {
		t.Errorf("ParseValue(object) did not return an ordered map")
	}
	if list, ok := ParseValue(`["a", 1]`).([]any); !ok || len(list) != 2 {
		t.Errorf("ParseValue(array) = %#v, want two-element []any", list)
	}
}

func TestHandler_Serialize(t *testing.T) {
	h := New()
	om := orderedmap.New()
	om.Set("zebra", "z")
	om.Set("apple", []any{1, "two"})

	got, err := h.Serialize(om, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	want := "{\n  \"zebra\": \"z\",\n  \"apple\": [\n    1,\n    \"two\"\n  ]\n}\n"
	if string(got) != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}

	tabbed, err := h.Serialize(om, format.SerializeOptions{Indent: "\t"})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.Contains(string(tabbed), "\n\t\"zebra\"") {
		t.Errorf("Serialize() with tab indent = %q", tabbed)
	}
}

func TestHandler_RoundTrip(t *testing.T) {
	h := New()
	input := "{\n  \"b\": {\n    \"y\": 1,\n    \"x\": [\n      true\n    ]\n  },\n  \"a\": null\n}\n"

	tree, err := h.Parse([]byte(input), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	out, err := h.Serialize(tree, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if string(out) != input {
		t.Errorf("round trip = %q, want %q", out, input)
	}
}
