package entity

import (
	"bytes"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Persisted node types.
const (
	LayoutTypeTerminal = "terminal"
	LayoutTypeHSplit   = "hsplit"
	LayoutTypeVSplit   = "vsplit"
	LayoutTypeNotebook = "notebook"
)

// DefaultLayoutName is the layout listed first by launchers.
const DefaultLayoutName = "default"

// LayoutDescription is the persisted form of a window: metadata plus a tree
// of typed node records.
type LayoutDescription struct {
	Name   string      `json:"name"`
	Window WindowMeta  `json:"window"`
	Root   *LayoutNode `json:"root"`
}

// WindowMeta holds the window level fields of a layout.
type WindowMeta struct {
	Title          string `json:"title,omitempty"`
	Size           []int  `json:"size,omitempty"`
	Position       []int  `json:"position,omitempty"`
	Maximized      bool   `json:"maximized,omitempty"`
	Fullscreen     bool   `json:"fullscreen,omitempty"`
	LastActiveTerm string `json:"last_active_term,omitempty"`

	// Malformed lists fields that could not be parsed.
	Malformed []string `json:"-"`
}

// UnmarshalJSON decodes field by field. A badly typed field is recorded in
// Malformed and left zero.
func (m *WindowMeta) UnmarshalJSON(data []byte) error {
	*m = WindowMeta{}
	fields, err := objectFields(data)
	if err != nil {
		m.Malformed = []string{err.Error()}
		return nil
	}
	m.Malformed = decodeFields(fields, map[string]any{
		"title":            &m.Title,
		"size":             &m.Size,
		"position":         &m.Position,
		"maximized":        &m.Maximized,
		"fullscreen":       &m.Fullscreen,
		"last_active_term": &m.LastActiveTerm,
	})
	return nil
}

// LayoutNode is one persisted node. Which fields apply depends on Type:
// terminal uses profile, command, directory, group, uuid and title; hsplit and
// vsplit use ratio and two children; notebook uses active_page, labels,
// last_active_term and children.
type LayoutNode struct {
	Type           string        `json:"type"`
	Order          *int          `json:"order,omitempty"`
	Ratio          *float64      `json:"ratio,omitempty"`
	Profile        string        `json:"profile,omitempty"`
	Command        string        `json:"command,omitempty"`
	Directory      string        `json:"directory,omitempty"`
	Group          *string       `json:"group,omitempty"`
	UUID           string        `json:"uuid,omitempty"`
	Title          string        `json:"title,omitempty"`
	ActivePage     *int          `json:"active_page,omitempty"`
	Labels         []string      `json:"labels,omitempty"`
	LastActiveTerm StringOrList  `json:"last_active_term,omitempty"`
	Children       []*LayoutNode `json:"children,omitempty"`

	// Malformed lists what could not be parsed. A malformed node is
	// replaced by a default terminal when the layout is built.
	Malformed []string `json:"-"`
}

// UnmarshalJSON never fails: parse problems are recorded in Malformed so one
// bad node cannot abort loading the rest of the document.
func (n *LayoutNode) UnmarshalJSON(data []byte) error {
	*n = LayoutNode{}
	fields, err := objectFields(data)
	if err != nil {
		n.Malformed = []string{err.Error()}
		return nil
	}

	var children []json.RawMessage
	n.Malformed = decodeFields(fields, map[string]any{
		"type":             &n.Type,
		"order":            &n.Order,
		"ratio":            &n.Ratio,
		"profile":          &n.Profile,
		"command":          &n.Command,
		"directory":        &n.Directory,
		"group":            &n.Group,
		"uuid":             &n.UUID,
		"title":            &n.Title,
		"active_page":      &n.ActivePage,
		"labels":           &n.Labels,
		"last_active_term": &n.LastActiveTerm,
		"children":         &children,
	})
	for _, raw := range children {
		if isNull(raw) {
			n.Children = append(n.Children, nil)
			continue
		}
		child := &LayoutNode{}
		_ = child.UnmarshalJSON(raw)
		n.Children = append(n.Children, child)
	}
	return nil
}

func objectFields(data []byte) (map[string]json.RawMessage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("expected an object, got %s", abbreviate(data))
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("invalid object: %w", err)
	}
	return fields, nil
}

// decodeFields unmarshals each present key into its target. Targets that
// fail are reset to zero and reported, in key order.
func decodeFields(fields map[string]json.RawMessage, targets map[string]any) []string {
	var bad []string
	for _, key := range slices.Sorted(maps.Keys(targets)) {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		target := targets[key]
		if err := json.Unmarshal(raw, target); err != nil {
			reflect.ValueOf(target).Elem().SetZero()
			bad = append(bad, fmt.Sprintf("invalid %s %s", key, abbreviate(raw)))
		}
	}
	return bad
}

func isNull(raw []byte) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func abbreviate(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" {
		return "nothing"
	}
	if len(s) > 32 {
		s = s[:29] + "..."
	}
	return s
}

// StringOrList accepts either a single string or a list of strings.
// It always encodes as a list.
type StringOrList []string

// UnmarshalJSON implements json.Unmarshaler.
func (s *StringOrList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var single string
		if err := json.Unmarshal(data, &single); err != nil {
			return err
		}
		*s = StringOrList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*s = list
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s StringOrList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(s))
}

// At returns element i, or an empty string.
func (s StringOrList) At(i int) string {
	if i >= 0 && i < len(s) {
		return s[i]
	}
	return ""
}
