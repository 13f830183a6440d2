package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		want      []string
		indexes   []bool
	}{
		{
			name:      "empty path",
			input:     "",
			separator: ".",
			want:      []string{},
			indexes:   []bool{},
		},
		{
			name:      "simple dotted",
			input:     "a.b.c",
			separator: ".",
			want:      []string{"a", "b", "c"},
			indexes:   []bool{false, false, false},
		},
		{
			name:      "numeric segment",
			input:     "list.2.name",
			separator: ".",
			want:      []string{"list", "2", "name"},
			indexes:   []bool{false, true, false},
		},
		{
			name:      "leading zeros collapse",
			input:     "list.007",
			separator: ".",
			want:      []string{"list", "7"},
			indexes:   []bool{false, true},
		},
		{
			name:      "leading trailing and doubled separators",
			input:     ".a..b.",
			separator: ".",
			want:      []string{"a", "b"},
			indexes:   []bool{false, false},
		},
		{
			name:      "only separators",
			input:     "...",
			separator: ".",
			want:      []string{},
			indexes:   []bool{},
		},
		{
			name:      "signed number stays a string",
			input:     "a.-1",
			separator: ".",
			want:      []string{"a", "-1"},
			indexes:   []bool{false, false},
		},
		{
			name:      "mixed alphanumeric stays a string",
			input:     "a.1b",
			separator: ".",
			want:      []string{"a", "1b"},
			indexes:   []bool{false, false},
		},
		{
			name:      "custom separator",
			input:     "a/b.c/0",
			separator: "/",
			want:      []string{"a", "b.c", "0"},
			indexes:   []bool{false, false, true},
		},
		{
			name:      "multi-character separator",
			input:     "a::b::3",
			separator: "::",
			want:      []string{"a", "b", "3"},
			indexes:   []bool{false, false, true},
		},
		{
			name:      "empty separator falls back to default",
			input:     "a.b",
			separator: "",
			want:      []string{"a", "b"},
			indexes:   []bool{false, false},
		},
		{
			name:      "overflowing digits stay a string",
			input:     "a.99999999999999999999999",
			separator: ".",
			want:      []string{"a", "99999999999999999999999"},
			indexes:   []bool{false, false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input, tt.separator)
			if len(got) != len(tt.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tt.input, got.Segments(), tt.want)
			}
			for i, k := range got {
				if k.String() != tt.want[i] {
					t.Errorf("Parse(%q) key[%d] = %q, want %q", tt.input, i, k.String(), tt.want[i])
				}
				if k.IsIndex() != tt.indexes[i] {
					t.Errorf("Parse(%q) key[%d].IsIndex() = %v, want %v", tt.input, i, k.IsIndex(), tt.indexes[i])
				}
			}
		})
	}
}

func TestNewKey(t *testing.T) {
	assert.Equal(t, 0, NewKey("00").Index())
	assert.Equal(t, NewKey("0"), NewKey("00"))
	assert.Equal(t, -1, NewKey("name").Index())
	assert.Equal(t, "name", NewKey("name").String())
	assert.Equal(t, IndexKey(12), NewKey("012"))
}

func TestParseArrayPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "strings",
			input: `["agent", "default_model"]`,
			want:  []string{"agent", "default_model"},
		},
		{
			name:  "segment containing separator",
			input: `["hosts", "eu.west.1", "port"]`,
			want:  []string{"hosts", "eu.west.1", "port"},
		},
		{
			name:  "integer element",
			input: `["list", 3]`,
			want:  []string{"list", "3"},
		},
		{
			name:  "empty array",
			input: `[]`,
			want:  []string{},
		},
		{
			name:  "digit strings stay literal",
			input: `["codes", "007", "00"]`,
			want:  []string{"codes", "007", "00"},
		},
		{
			name:  "index beyond int32",
			input: `["list", 3000000000]`,
			want:  []string{"list", "3000000000"},
		},
		{
			name:    "index beyond int",
			input:   `["list", 1e19]`,
			wantErr: true,
		},
		{
			name:    "not an array",
			input:   `"a.b"`,
			wantErr: true,
		},
		{
			name:    "negative index",
			input:   `["a", -1]`,
			wantErr: true,
		},
		{
			name:    "fractional index",
			input:   `["a", 1.5]`,
			wantErr: true,
		},
		{
			name:    "object element",
			input:   `["a", {}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArrayPath(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Segments())
		})
	}
}

func TestParseArrayPath_KeyKinds(t *testing.T) {
	p, err := ParseArrayPath(`["1", 1]`)
	require.NoError(t, err)
	assert.False(t, p[0].IsIndex())
	assert.True(t, p[1].IsIndex())
	assert.Equal(t, NameKey("1"), p[0])
	assert.Equal(t, IndexKey(1), p[1])
}

func TestPath_Join(t *testing.T) {
	p := Parse("a.0.b", ".")
	assert.Equal(t, "a.0.b", p.String())
	assert.Equal(t, "a/0/b", p.Join("/"))
	assert.Equal(t, "a.0.b", p.Join(""))
	assert.True(t, p[1].IsIndex())
}
