// Copyright (c) 2026 Keymaster Team
// Navinput - focusable input controls for spatial navigation
// This source code is licensed under the MIT license found in the LICENSE file.

// Package layout reads YAML files that describe a screen of controls.
//
//	title: Sign in
//	controls:
//	  - id: user
//	    type: email
//	    label: E-Mail
//	  - id: remember
//	    type: checkbox
//	    label: Remember me
//	    row: 1
//	  - id: submit
//	    type: button
//	    label: Sign in
//	    row: 1
package layout

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/toeirei/navinput/control"
	"github.com/toeirei/navinput/internal/logging"
)

// ErrDuplicateID is returned when two entries share an id.
var ErrDuplicateID = errors.New("duplicate control id")

// ErrMissingID is returned for entries without an id.
var ErrMissingID = errors.New("control id is required")

type Spec struct {
	Title    string  `yaml:"title"`
	Controls []Entry `yaml:"controls"`
}

type Entry struct {
	ID          string            `yaml:"id"`
	Type        string            `yaml:"type"`
	Label       string            `yaml:"label"`
	Placeholder string            `yaml:"placeholder"`
	Href        string            `yaml:"href"`
	Value       string            `yaml:"value"`
	Checked     bool              `yaml:"checked"`
	Disabled    bool              `yaml:"disabled"`
	TabIndex    any               `yaml:"tabIndex"`
	Row         *int              `yaml:"row"`
	Data        map[string]string `yaml:"data"`

	kind control.Kind
}

// Kind returns the validated kind of the entry.
func (e Entry) Kind() control.Kind {
	return e.kind
}

// Load reads and validates the layout file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read layout: %w", err)
	}
	spec, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// Parse decodes and validates a layout document.
func Parse(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	seen := make(map[string]bool, len(spec.Controls))
	for i := range spec.Controls {
		entry := &spec.Controls[i]
		if entry.ID == "" {
			return nil, fmt.Errorf("controls[%d]: %w", i, ErrMissingID)
		}
		if seen[entry.ID] {
			return nil, fmt.Errorf("controls[%d]: %w: %q", i, ErrDuplicateID, entry.ID)
		}
		seen[entry.ID] = true

		kind, err := control.ParseKind(entry.Type)
		if err != nil {
			return nil, fmt.Errorf("controls[%d] (%s): %w", i, entry.ID, err)
		}
		entry.kind = kind
	}
	return &spec, nil
}

// TabIndexValue returns the explicit tab index of the entry. Values that are not
// whole numbers in the int32 range are ignored so the tab order follows focus.
func (e Entry) TabIndexValue() (int, bool) {
	switch v := e.TabIndex.(type) {
	case nil:
		return 0, false
	case int:
		if inTabRange(int64(v)) {
			return v, true
		}
	case int64:
		if inTabRange(v) {
			return int(v), true
		}
	case uint64:
		if v <= math.MaxInt32 {
			return int(v), true
		}
	case float64:
		if v == math.Trunc(v) && v >= math.MinInt32 && v <= math.MaxInt32 {
			return int(v), true
		}
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32); err == nil {
			return int(n), true
		}
	}
	logging.Debugf("layout: ignoring tabIndex %v on %q", e.TabIndex, e.ID)
	return 0, false
}

func inTabRange(n int64) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

// Props converts the entry into control props. Buttons and links show the
// label as their content.
func (e Entry) Props() control.Props {
	props := control.Props{
		Kind: e.kind,
		Attributes: control.Attributes{
			ID:          e.ID,
			Name:        e.ID,
			Value:       e.Value,
			Placeholder: e.Placeholder,
			Href:        e.Href,
			Checked:     e.Checked,
			Disabled:    e.Disabled,
			Data:        e.Data,
		},
	}
	if n, ok := e.TabIndexValue(); ok {
		props.TabIndex = &n
	}
	if e.kind.Group() == control.ButtonLike && e.kind != control.Checkbox && e.Label != "" {
		props.Children = []control.Node{control.TextNode(e.Label)}
	}
	if e.kind == control.Checkbox && e.Label != "" {
		props.Title = e.Label
	}
	return props
}

// Rows groups entry indexes by row. Entries without a row get one of their
// own; rows keep the order in which they first appear.
func (s *Spec) Rows() [][]int {
	var rows [][]int
	byRow := map[int]int{}
	for i, entry := range s.Controls {
		if entry.Row == nil {
			rows = append(rows, []int{i})
			continue
		}
		if at, ok := byRow[*entry.Row]; ok {
			rows[at] = append(rows[at], i)
			continue
		}
		byRow[*entry.Row] = len(rows)
		rows = append(rows, []int{i})
	}
	return rows
}
