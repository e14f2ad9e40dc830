package errors

import (
	"fmt"
	"testing"
)

func TestNavError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeConfigNotFound, "config not found")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeConfigInvalid, "parse failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	if !Is(wrapped, ErrCodeConfigInvalid) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeConfigNotFound) {
		t.Error("Is should return false for non-matching code")
	}

	detailed := err.WithDetail("path", "/tmp/navpanel.yml").WithDetail("attempt", 2)
	if detailed.Details["path"] != "/tmp/navpanel.yml" {
		t.Error("WithDetail should add details")
	}
}

func TestIsLooksThroughNestedNavErrors(t *testing.T) {
	inner := ConfigValidation("navpanel.yml", []string{"- /modules: missing"})
	outer := Wrap(inner, ErrCodeConfigInvalid, "load failed")
	viaFmt := fmt.Errorf("run: %w", outer)

	if !Is(viaFmt, ErrCodeConfigValidation) {
		t.Error("Is should find the nested validation code")
	}
	if GetCode(viaFmt) != ErrCodeConfigInvalid {
		t.Errorf("GetCode should report the outermost code, got %s", GetCode(viaFmt))
	}

	navErr, ok := As(viaFmt)
	if !ok || navErr != outer {
		t.Error("As should return the outermost NavError")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound("/work")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
	if err.Details["path"] != "/work" {
		t.Error("ConfigNotFound should include path detail")
	}

	err = UnsupportedFormat("modules.ini", ".ini")
	if err.Code != ErrCodeUnsupportedFormat {
		t.Errorf("expected code %s, got %s", ErrCodeUnsupportedFormat, err.Code)
	}
	if err.Details["extension"] != ".ini" {
		t.Error("UnsupportedFormat should include extension detail")
	}

	err = InvalidInput("select", "empty name")
	if err.Details["field"] != "select" {
		t.Error("InvalidInput should include field detail")
	}
}
