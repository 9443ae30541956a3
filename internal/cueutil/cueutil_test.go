// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestCheckFileSize(t *testing.T) {
	if err := CheckFileSize([]byte("small"), 100, "config.cue"); err != nil {
		t.Fatalf("unexpected error for small file: %v", err)
	}

	err := CheckFileSize(make([]byte, 200), 100, "config.cue")
	if err == nil {
		t.Fatal("expected error for oversized file")
	}
	if !strings.Contains(err.Error(), "config.cue") {
		t.Fatalf("error should name the file: %v", err)
	}
}

func TestFormatErrorNil(t *testing.T) {
	if got := FormatError(nil, "config.cue"); got != nil {
		t.Fatalf("FormatError(nil) = %v", got)
	}
}

func TestFormatErrorIncludesPath(t *testing.T) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { scan?: { exclude?: [...string] } }`)
	user := ctx.CompileString(`scan: exclude: [1]`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	err := unified.Validate(cue.Concrete(false))
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := FormatError(err, "config.cue")
	if !strings.Contains(formatted.Error(), "config.cue") {
		t.Fatalf("formatted error should name the file: %v", formatted)
	}
	if !strings.Contains(formatted.Error(), "exclude") {
		t.Fatalf("formatted error should point at the field: %v", formatted)
	}
}

func TestFormatPath(t *testing.T) {
	tests := []struct {
		path []string
		want string
	}{
		{nil, ""},
		{[]string{"scan"}, "scan"},
		{[]string{"scan", "exclude", "1"}, "scan.exclude[1]"},
		{[]string{"ui", "verbose"}, "ui.verbose"},
	}
	for _, tt := range tests {
		if got := formatPath(tt.path); got != tt.want {
			t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
