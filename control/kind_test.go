// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

import (
	"errors"
	"testing"
)

func TestKind_StaticData(t *testing.T) {
	cases := []struct {
		kind       Kind
		tag        string
		nativeType string
		group      Group
	}{
		{Button, "div", "", ButtonLike},
		{Link, "a", "", ButtonLike},
		{Checkbox, "input", "checkbox", ButtonLike},
		{Text, "input", "text", TextLike},
		{Email, "input", "email", TextLike},
		{Password, "input", "password", TextLike},
	}
	if len(cases) != len(Kinds) {
		t.Fatalf("table covers %d kinds, want %d", len(cases), len(Kinds))
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := tc.kind.Tag(); got != tc.tag {
				t.Errorf("Tag() = %q, want %q", got, tc.tag)
			}
			if got := tc.kind.NativeType(); got != tc.nativeType {
				t.Errorf("NativeType() = %q, want %q", got, tc.nativeType)
			}
			if got := tc.kind.Group(); got != tc.group {
				t.Errorf("Group() = %v, want %v", got, tc.group)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds {
		got, err := ParseKind(k.String())
		if err != nil {
			t.Fatalf("ParseKind(%q): %v", k, err)
		}
		if got != k {
			t.Fatalf("ParseKind(%q) = %v", k, got)
		}
	}

	if got, err := ParseKind("  PassWord "); err != nil || got != Password {
		t.Fatalf("ParseKind normalizes case and space; got %v, %v", got, err)
	}

	for _, bad := range []string{"", "submit", "radio", "btn"} {
		if _, err := ParseKind(bad); !errors.Is(err, ErrUnknownKind) {
			t.Errorf("ParseKind(%q) err = %v, want ErrUnknownKind", bad, err)
		}
	}
}

func TestKind_ZeroValueIsInvalid(t *testing.T) {
	var k Kind
	if k.Valid() {
		t.Fatal("zero kind must be invalid")
	}
	if k.Tag() != "" || k.NativeType() != "" || k.Group() != 0 {
		t.Fatal("zero kind must not resolve to any static data")
	}
	if _, err := k.MarshalText(); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("MarshalText err = %v", err)
	}
}

func TestKind_TextRoundTrip(t *testing.T) {
	var k Kind
	if err := k.UnmarshalText([]byte("email")); err != nil {
		t.Fatal(err)
	}
	b, err := k.MarshalText()
	if err != nil || string(b) != "email" {
		t.Fatalf("MarshalText = %q, %v", b, err)
	}
	if err := k.UnmarshalText([]byte("number")); !errors.Is(err, ErrUnknownKind) {
		t.Fatalf("UnmarshalText(number) err = %v", err)
	}
}
