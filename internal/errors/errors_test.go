package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "config error",
			code:    "E103",
			wantMsg: "Invalid configuration value",
			wantCat: CategoryConfig,
		},
		{
			name:    "slot error",
			code:    "E201",
			wantMsg: "Region filled more than once",
			wantCat: CategorySlot,
		},
		{
			name:    "document error",
			code:    "E303",
			wantMsg: "Unsupported document format",
			wantCat: CategoryDocument,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryServer, "port %d busy", 3000)
	if err.Message != "port 3000 busy" {
		t.Errorf("Message = %q, want %q", err.Message, "port 3000 busy")
	}
	if err.Error() != "port 3000 busy" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestSlotError_Error(t *testing.T) {
	err := New("E203")
	if got, want := err.Error(), "E203: Required region missing"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err.WithDetailf("layout %q requires %q", "page", "body")
	if got, want := err.Error(), `E203: Required region missing: layout "page" requires "body"`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestSlotError_Wrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	outer := New("E401").Wrap(inner)

	if outer.Unwrap() != inner {
		t.Error("Unwrap() should return wrapped error")
	}
	if outer.Detail != "disk full" {
		t.Errorf("Detail = %q, want wrapped message", outer.Detail)
	}
	if !stderrors.Is(outer, inner) {
		t.Error("errors.Is should find the wrapped error")
	}
}

func TestSlotError_Is(t *testing.T) {
	err := fmt.Errorf("render: %w", New("E201").WithDetail("body x2"))

	if !stderrors.Is(err, New("E201")) {
		t.Error("errors.Is should match by code")
	}
	if stderrors.Is(err, New("E202")) {
		t.Error("errors.Is should not match a different code")
	}
	if Code(err) != "E201" {
		t.Errorf("Code() = %q, want E201", Code(err))
	}
	if Code(fmt.Errorf("plain")) != "" {
		t.Error("Code() of a plain error should be empty")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E301") != nil {
		t.Error("FromError(nil, ...) should return nil")
	}

	se := New("E302")
	wrapped := fmt.Errorf("load: %w", se)
	if FromError(wrapped, "E301") != se {
		t.Error("FromError should return the contained SlotError")
	}

	std := fmt.Errorf("permission denied")
	got := FromError(std, "E301")
	if got.Code != "E301" || got.Wrapped != std {
		t.Errorf("FromError = %+v", got)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := Lookup("E501"); !ok {
		t.Error("E501 should be registered")
	}
	if _, ok := Lookup("E000"); ok {
		t.Error("E000 should not be registered")
	}
}

func TestLocation_String(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil location", nil, ""},
		{"with line", &Location{File: "page.yaml", Line: 4}, "page.yaml:4"},
		{"file only", &Location{File: "page.md"}, "page.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.loc.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E203").
		WithLocation("site/index.yaml", 0).
		WithDetail(`layout "page" requires region "body"`).
		WithSuggestion("Add a body section")

	formatted := err.Format()

	for _, want := range []string{
		"ERROR E203: Required region missing",
		"site/index.yaml",
		`layout "page" requires region "body"`,
		"no child filled",
		"Hint: Add a body section",
	} {
		if !strings.Contains(formatted, want) {
			t.Errorf("Format() missing %q:\n%s", want, formatted)
		}
	}
	if strings.Contains(formatted, "\033[") {
		t.Error("Format() should not contain ANSI codes when colors are disabled")
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E302").WithLocation("page.yaml", 3).WithDetail("bad indent")
	want := "page.yaml:3: E302: Failed to parse document: bad indent"
	if got := err.FormatCompact(); got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four", 9)
	want := []string{"one two", "three", "four"}
	if len(lines) != len(want) {
		t.Fatalf("wrapText = %q, want %q", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if wrapText("   ", 10) != nil {
		t.Error("blank text should produce no lines")
	}
}
