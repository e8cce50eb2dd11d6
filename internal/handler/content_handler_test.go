package handler

import (
	"encoding/json"
	"testing"
)

func TestResolveBatchID(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    *uint
		wantErr bool
	}{
		{name: "numeric", raw: `12`, want: uintPtr(12)},
		{name: "numeric string", raw: `"12"`, want: uintPtr(12)},
		{name: "new literal", raw: `"new"`, want: nil},
		{name: "null", raw: `null`, want: nil},
		{name: "missing", raw: ``, want: nil},
		{name: "garbage", raw: `"abc"`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveBatchID(json.RawMessage(tc.raw))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.raw, err)
			}
			switch {
			case tc.want == nil && got != nil:
				t.Fatalf("expected nil id for %q, got %d", tc.raw, *got)
			case tc.want != nil && (got == nil || *got != *tc.want):
				t.Fatalf("expected id %d for %q, got %v", *tc.want, tc.raw, got)
			}
		})
	}
}

func TestRawIDKey(t *testing.T) {
	cases := map[string]string{
		`12`:    "12",
		`"12"`:  "12",
		`"new"`: "new",
		`null`:  "new",
		``:      "new",
	}
	for raw, want := range cases {
		if got := rawIDKey(json.RawMessage(raw)); got != want {
			t.Fatalf("rawIDKey(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestSectionLabel(t *testing.T) {
	cases := map[string]string{
		"skills":     "Skills",
		"tech_stack": "Tech stack",
		"":           "Content",
	}
	for section, want := range cases {
		if got := sectionLabel(section); got != want {
			t.Fatalf("sectionLabel(%q) = %q, want %q", section, got, want)
		}
	}
}

func uintPtr(v uint) *uint {
	return &v
}
