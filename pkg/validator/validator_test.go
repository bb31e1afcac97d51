package validator_test

import (
	"net/http"
	"testing"

	pkgvalidator "github.com/ghuser/itemsvc/pkg/validator"
)

type sampleStruct struct {
	Addr  string `validate:"required"`
	Level string `validate:"oneof=debug info warn error"`
}

func TestValidate_valid(t *testing.T) {
	s := sampleStruct{Addr: ":3000", Level: "info"}
	if err := pkgvalidator.Validate(&s); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestValidate_missingRequired(t *testing.T) {
	s := sampleStruct{Level: "info"}
	if err := pkgvalidator.Validate(&s); err == nil {
		t.Fatal("expected validation error for missing Addr")
	}
}

func TestFormatValidationErrors_required(t *testing.T) {
	s := sampleStruct{Level: "info"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Addr"] != "This field is required" {
		t.Errorf("unexpected Addr message: %q", m["Addr"])
	}
}

func TestFormatValidationErrors_oneof(t *testing.T) {
	s := sampleStruct{Addr: ":3000", Level: "verbose"}
	err := pkgvalidator.Validate(&s)
	m := pkgvalidator.FormatValidationErrors(err)
	if m["Level"] != "Must be one of: debug info warn error" {
		t.Errorf("unexpected Level message: %q", m["Level"])
	}
}

func TestFormatValidationErrors_nonValidationError(t *testing.T) {
	m := pkgvalidator.FormatValidationErrors(http.ErrNoCookie)
	if len(m) != 0 {
		t.Errorf("expected empty map for non-validation error, got %v", m)
	}
}
