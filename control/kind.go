// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

package control

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a control type name is not one of the
// six supported kinds.
var ErrUnknownKind = errors.New("unknown control kind")

// Kind is the closed set of control kinds.
type Kind uint8

const (
	Button Kind = iota + 1
	Link
	Checkbox
	Text
	Email
	Password
)

// Kinds lists every valid kind in declaration order.
var Kinds = []Kind{Button, Link, Checkbox, Text, Email, Password}

// Group is the activation behavior a kind belongs to.
type Group uint8

const (
	// ButtonLike kinds are activated as a discrete action.
	ButtonLike Group = iota + 1
	// TextLike kinds accept text and are submitted as a batch.
	TextLike
)

func (g Group) String() string {
	switch g {
	case ButtonLike:
		return "button-like"
	case TextLike:
		return "text-like"
	}
	return ""
}

// ParseKind resolves a type name to a Kind.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= Button && k <= Password
}

func (k Kind) String() string {
	switch k {
	case Button:
		return "button"
	case Link:
		return "link"
	case Checkbox:
		return "checkbox"
	case Text:
		return "text"
	case Email:
		return "email"
	case Password:
		return "password"
	}
	return ""
}

// Tag returns the element tag the kind renders as.
func (k Kind) Tag() string {
	switch k {
	case Button:
		return "div"
	case Link:
		return "a"
	case Checkbox, Text, Email, Password:
		return "input"
	}
	return ""
}

// NativeType returns the value of the element's native type attribute.
// It is empty for kinds not backed by an input element.
func (k Kind) NativeType() string {
	switch k {
	case Button, Link:
		return ""
	case Checkbox, Text, Email, Password:
		return k.String()
	}
	return ""
}

// Group returns the activation group of the kind.
func (k Kind) Group() Group {
	switch k {
	case Button, Link, Checkbox:
		return ButtonLike
	case Text, Email, Password:
		return TextLike
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
