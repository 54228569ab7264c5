package utils

import (
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestMaxGraphemesValidator(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("maxgraphemes", MaxGraphemesValidator); err != nil {
		t.Fatalf("register validation: %v", err)
	}

	type subject struct {
		Name string `validate:"maxgraphemes=8"`
	}

	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", false},
		{"under limit", "Pothos", false},
		{"at limit", strings.Repeat("a", 8), false},
		{"over limit", strings.Repeat("a", 9), true},
		{"emoji counts as one grapheme", strings.Repeat("🌱", 8), false},
		{"combining marks count once", strings.Repeat("é", 8), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(&subject{Name: tt.value})
			if (err != nil) != tt.wantErr {
				t.Errorf("value %q: err = %v, wantErr = %v", tt.value, err, tt.wantErr)
			}
		})
	}
}
