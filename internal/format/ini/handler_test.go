package ini

import (
	"strings"
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/thirteen37/arraypath/internal/format"
	"github.com/thirteen37/arraypath/internal/tree"
)

func TestHandler_Parse(t *testing.T) {
	h := New()

	tests := []struct {
		name     string
		input    string
		wantKeys []string
		wantErr  bool
	}{
		{
			name:     "simple section",
			input:    "[section]\nkey = value",
			wantKeys: []string{"section"},
		},
		{
			name:     "multiple sections",
			input:    "[section1]\nkey1 = value1\n\n[section2]\nkey2 = value2",
			wantKeys: []string{"section1", "section2"},
		},
		{
			name:     "global keys before sections",
			input:    "name = app\n\n[section]\nkey = value",
			wantKeys: []string{"name", "section"},
		},
		{
			name:     "empty section kept",
			input:    "[empty]\n",
			wantKeys: []string{"empty"},
		},
		{
			name:     "empty ini",
			input:    "",
			wantKeys: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Parse([]byte(tt.input), format.ParseOptions{})
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

func TestHandler_Parse_StripCommentsError(t *testing.T) {
	h := New()

	_, err := h.Parse([]byte("[section]\nkey = value"), format.ParseOptions{StripComments: true})
	if err == nil {
		t.Error("Parse() with StripComments should return error for INI")
	}
}

func TestHandler_Parse_Values(t *testing.T) {
	h := New()

	input := `[database]
host = localhost
port = 3306
enabled = true
`

	doc, err := h.Parse([]byte(input), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	pt := tree.New(doc, "")

	// All values should be strings in INI
	if host := pt.Get("database.host", nil); host != "localhost" {
		t.Errorf("host = %v, want 'localhost'", host)
	}
	if port := pt.Get("database.port", nil); port != "3306" {
		t.Errorf("port = %v, want '3306' (string)", port)
	}
	if enabled := pt.Get("database.enabled", nil); enabled != "true" {
		t.Errorf("enabled = %v, want 'true' (string)", enabled)
	}
}

func TestHandler_Serialize(t *testing.T) {
	h := New()

	section := orderedmap.New()
	section.Set("key", "value")
	section.Set("count", 42)
	section.Set("skipped", nil)

	doc := orderedmap.New()
	doc.Set("global", true)
	doc.Set("section", section)

	data, err := h.Serialize(doc, format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	output := string(data)
	for _, want := range []string{"global", "[section]", "key", "value", "count", "42"} {
		if !strings.Contains(output, want) {
			t.Errorf("Serialize() missing %q: %q", want, output)
		}
	}
	if strings.Contains(output, "skipped") {
		t.Errorf("Serialize() wrote nil key: %q", output)
	}
	if strings.Index(output, "global") > strings.Index(output, "[section]") {
		t.Errorf("Serialize() global key after section: %q", output)
	}
}

func TestHandler_Serialize_NotAMap(t *testing.T) {
	if _, err := New().Serialize("scalar", format.SerializeOptions{}); err == nil {
		t.Error("Serialize() of a scalar should fail")
	}
}

func TestHandler_ParseAndSerialize_RoundTrip(t *testing.T) {
	h := New()

	input := `[database]
host = localhost
port = 3306
password = default

[server]
address = 0.0.0.0
`

	doc, err := h.Parse([]byte(input), format.ParseOptions{})
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	pt := tree.New(doc, "")
	pt.Set("database.port", 5432).Delete("database.password").Set("cache.ttl", "60")

	data, err := h.Serialize(pt.Value(), format.SerializeOptions{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	reparsed, err := h.Parse(data, format.ParseOptions{})
	if err != nil {
		t.Fatalf("Re-parse serialized data error = %v", err)
	}

	check := tree.New(reparsed, "")
	if got := check.Get("database.port", nil); got != "5432" {
		t.Errorf("database.port = %v, want '5432'", got)
	}
	if check.Has("database.password") {
		t.Error("database.password should have been deleted")
	}
	if got := check.Get("cache.ttl", nil); got != "60" {
		t.Errorf("cache.ttl = %v, want '60'", got)
	}
	if got := check.Get("server.address", nil); got != "0.0.0.0" {
		t.Errorf("server.address = %v, want '0.0.0.0'", got)
	}
}
