package boardgamegeek

import (
	"strings"
	"testing"
)

func TestParseXML(t *testing.T) {
	type simple struct {
		Name string `xml:"name"`
	}

	t.Run("valid XML", func(t *testing.T) {
		body := []byte(`<root><name>test</name></root>`)
		result, err := parseXML[simple](body, "parse failed")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Name != "test" {
			t.Errorf("Name = %q, want %q", result.Name, "test")
		}
	})

	t.Run("invalid XML", func(t *testing.T) {
		body := []byte(`not xml`)
		_, err := parseXML[simple](body, "parse failed")
		if err == nil {
			t.Fatal("expected error for invalid XML, got nil")
		}
		pe, ok := err.(*ParseError)
		if !ok {
			t.Fatalf("expected *ParseError, got %T", err)
		}
		if pe.Message != "parse failed" {
			t.Errorf("Message = %q, want %q", pe.Message, "parse failed")
		}
	})
}

func TestDecodeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "entities",
			input: "Cities &amp; Knights",
			want:  "Cities & Knights",
		},
		{
			name:  "numeric newline",
			input: "Build roads.&#10;Build cities.",
			want:  "Build roads.\nBuild cities.",
		},
		{
			name:  "double escaped newline",
			input: "Trade &amp;#10;build",
			want:  "Trade \nbuild",
		},
		{
			name:  "plain text",
			input: "no entities here",
			want:  "no entities here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeHTML(tt.input); got != tt.want {
				t.Errorf("decodeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    int
		wantErr bool
	}{
		{"int", 42, 42, false},
		{"int64", int64(42), 42, false},
		{"float truncates", 7.9, 7, false},
		{"string", "42", 42, false},
		{"string with spaces", " 42 ", 42, false},
		{"bool true", true, 1, false},
		{"bool false", false, 0, false},
		{"bad string", "n/a", 0, true},
		{"nil", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toInt(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("toInt(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("toInt(%v) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    float64
		wantErr bool
	}{
		{"float", 7.15, 7.15, false},
		{"int", 7, 7, false},
		{"string", "7.15", 7.15, false},
		{"bad string", "N/A", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := toFloat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("toFloat(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("toFloat(%v) = %g, want %g", tt.input, got, tt.want)
			}
		})
	}
}

func TestToString(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  string
	}{
		{"string", "CATAN", "CATAN"},
		{"int", 13, "13"},
		{"float", 7.5, "7.5"},
		{"non scalar", []any{"x"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toString(tt.input); got != tt.want {
				t.Errorf("toString(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatDimensions(t *testing.T) {
	if got := formatDimensions(11.8, 11.8, 2.8); got != "11.8 x 11.8 x 2.8" {
		t.Errorf("formatDimensions() = %q, want %q", got, "11.8 x 11.8 x 2.8")
	}
	if got := formatDimensions(0, 0, 0); got != "0 x 0 x 0" {
		t.Errorf("formatDimensions() = %q, want %q", got, "0 x 0 x 0")
	}
}

func TestToJSON(t *testing.T) {
	type sample struct {
		Name string `json:"name"`
		ID   int    `json:"id"`
	}

	result, err := toJSON(sample{Name: "CATAN", ID: 13})
	if err != nil {
		t.Fatalf("toJSON() error = %v", err)
	}
	if !strings.Contains(result, `"name": "CATAN"`) {
		t.Errorf("toJSON() result missing name field: %s", result)
	}
	if !strings.Contains(result, `"id": 13`) {
		t.Errorf("toJSON() result missing id field: %s", result)
	}
}
