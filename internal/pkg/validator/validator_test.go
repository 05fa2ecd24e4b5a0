package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"123e4567-e89b-12d3-a456-426614174000",
		"4F1C6F64-0000-4000-8000-000000000001",
	}
	invalid := []string{
		"123e4567e89b12d3a456",
		"g23e4567-e89b-12d3-a456-426614174000",
		"",
	}
	for _, id := range valid {
		if !IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = false, want true", id)
		}
	}
	for _, id := range invalid {
		if IsValidUUID(id) {
			t.Errorf("IsValidUUID(%q) = true, want false", id)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-08-03"); !ok {
		t.Error("IsValidDate(2026-08-03) = false, want true")
	}
	for _, s := range []string{"03/08/2026", "2026-13-01", "2026-08-32", "", "yesterday"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric("12345") {
		t.Error("IsNumeric(12345) = false, want true")
	}
	for _, s := range []string{"12.5", "-1", "abc", ""} {
		if IsNumeric(s) {
			t.Errorf("IsNumeric(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	kinds := []string{"in", "out"}
	if !IsInSlice("in", kinds) {
		t.Error("IsInSlice(in) = false, want true")
	}
	if IsInSlice("pause", kinds) {
		t.Error("IsInSlice(pause) = true, want false")
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "given_name", Message: "given name is required"},
		{Field: "family_name", Message: "family name is required"},
	}

	if errs.Error() != "given_name: given name is required; family_name: family name is required" {
		t.Errorf("Error() = %q", errs.Error())
	}

	m := errs.ToMap()
	if len(m) != 2 || m["given_name"] != "given name is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
