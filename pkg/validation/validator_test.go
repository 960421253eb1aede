package validation

import (
	"strings"
	"testing"
)

func TestValidateStateName(t *testing.T) {
	valid := []string{"start", "in_fix", "end", "Retest2"}
	for _, name := range valid {
		if err := ValidateStateName(name); err != nil {
			t.Errorf("Expected %q to be valid: %v", name, err)
		}
	}

	invalid := []string{"", "has space", "semi;colon", "dash-ed", strings.Repeat("x", 51)}
	for _, name := range invalid {
		if err := ValidateStateName(name); err == nil {
			t.Errorf("Expected %q to be rejected", name)
		}
	}
}

func TestValidateOutcomeName(t *testing.T) {
	if err := ValidateOutcomeName("critical"); err != nil {
		t.Errorf("Expected valid outcome name: %v", err)
	}
	if err := ValidateOutcomeName("not ok"); err == nil {
		t.Error("Expected invalid outcome name to be rejected")
	}
}

func TestStruct_FriendlyErrors(t *testing.T) {
	type probe struct {
		Name   string  `validate:"required"`
		Weight float64 `validate:"gte=0"`
	}

	if err := Struct(&probe{Name: "ok", Weight: 0.5}); err != nil {
		t.Errorf("Expected valid struct to pass: %v", err)
	}

	err := Struct(&probe{Weight: 0.5})
	if err == nil || !strings.Contains(err.Error(), "required") {
		t.Errorf("Expected a 'required' error, got %v", err)
	}

	err = Struct(&probe{Name: "ok", Weight: -1})
	if err == nil || !strings.Contains(err.Error(), "at least") {
		t.Errorf("Expected an 'at least' error, got %v", err)
	}
}
