package validation

import (
	"strings"
	"testing"
)

type sample struct {
	Name string   `validate:"required,max=5"`
	Tags []string `validate:"max=2,dive,max=3"`
	Code string   `validate:"max=4,maxbytes=4"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name  string
		input sample
		want  string
	}{
		{"valid", sample{Name: "ok", Tags: []string{"a"}}, ""},
		{"missing name", sample{}, "name is required"},
		{"long name", sample{Name: "toolong"}, "name must be at most 5 characters"},
		{"too many tags", sample{Name: "ok", Tags: []string{"a", "b", "c"}}, "tags must contain at most 2 items"},
		{"long tag", sample{Name: "ok", Tags: []string{"abcd"}}, "must be at most 3 characters"},
		{"multibyte within rune limit", sample{Name: "ok", Code: "éé"}, ""},
		{"multibyte over byte limit", sample{Name: "ok", Code: "ééé"}, "code must be at most 4 bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Struct(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.want == "" && msg != "" {
				t.Fatalf("expected valid input, got %q", msg)
			}
			if !strings.Contains(msg, tt.want) {
				t.Errorf("expected %q to contain %q", msg, tt.want)
			}
		})
	}
}
