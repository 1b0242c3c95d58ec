package entity

import (
	"fmt"
	"sort"
)

// SendMode controls which leaves receive broadcast input.
type SendMode string

const (
	SendOff   SendMode = "off"
	SendGroup SendMode = "group"
	SendAll   SendMode = "all"
)

// ParseSendMode converts a config value into a SendMode.
func ParseSendMode(s string) (SendMode, error) {
	switch SendMode(s) {
	case SendOff, SendGroup, SendAll:
		return SendMode(s), nil
	case "":
		return SendOff, nil
	default:
		return "", fmt.Errorf("unknown send mode %q", s)
	}
}

// VisualState is how a leaf presents itself with respect to broadcasting.
type VisualState int

const (
	VisualInactive VisualState = iota
	VisualTransmit
	VisualReceive
)

func (v VisualState) String() string {
	switch v {
	case VisualTransmit:
		return "transmit"
	case VisualReceive:
		return "receive"
	default:
		return "inactive"
	}
}

// GroupScope selects the subtree GroupAll applies to.
type GroupScope int

const (
	ScopeWindow GroupScope = iota
	ScopeTab
)

// GroupRegistry tracks broadcast group membership of one window.
// Membership is independent of tree position.
type GroupRegistry struct {
	members map[LeafID]string
	mode    SendMode
}

// NewGroupRegistry creates an empty registry in the given mode.
func NewGroupRegistry(mode SendMode) *GroupRegistry {
	if mode == "" {
		mode = SendOff
	}
	return &GroupRegistry{
		members: make(map[LeafID]string),
		mode:    mode,
	}
}

// Mode returns the current send mode.
func (r *GroupRegistry) Mode() SendMode { return r.mode }

// SetMode changes the send mode.
func (r *GroupRegistry) SetMode(mode SendMode) { r.mode = mode }

// SetGroup assigns a leaf to a group. An empty name clears membership.
func (r *GroupRegistry) SetGroup(leaf LeafID, name string) {
	if name == "" {
		delete(r.members, leaf)
		return
	}
	r.members[leaf] = name
}

// GroupOf returns the leaf's group, or an empty string.
func (r *GroupRegistry) GroupOf(leaf LeafID) string {
	return r.members[leaf]
}

// Forget drops every record of a closed leaf.
func (r *GroupRegistry) Forget(leaf LeafID) {
	delete(r.members, leaf)
}

// Groups returns the sorted names of the groups that have members.
func (r *GroupRegistry) Groups() []string {
	seen := make(map[string]struct{})
	for _, name := range r.members {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Members returns the leaves of root that belong to the group, in tree order.
func (r *GroupRegistry) Members(root Node, name string) []LeafID {
	var ids []LeafID
	for _, leaf := range Leaves(root) {
		if name != "" && r.members[leaf.ID] == name {
			ids = append(ids, leaf.ID)
		}
	}
	return ids
}

// GroupAll puts every leaf under scopeRoot into a freshly named group and
// returns that name. tabIndex is only used for ScopeTab names.
func (r *GroupRegistry) GroupAll(scope GroupScope, scopeRoot Node, tabIndex int) string {
	base := "window"
	if scope == ScopeTab {
		base = fmt.Sprintf("tab-%d", tabIndex+1)
	}
	name := r.uniqueName(base)
	for _, leaf := range Leaves(scopeRoot) {
		r.members[leaf.ID] = name
	}
	return name
}

// UngroupAll clears membership of every leaf under scopeRoot.
func (r *GroupRegistry) UngroupAll(scopeRoot Node) {
	for _, leaf := range Leaves(scopeRoot) {
		delete(r.members, leaf.ID)
	}
}

func (r *GroupRegistry) uniqueName(base string) string {
	used := make(map[string]struct{})
	for _, name := range r.members {
		used[name] = struct{}{}
	}
	if _, taken := used[base]; !taken {
		return base
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s-%d", base, i)
		if _, taken := used[candidate]; !taken {
			return candidate
		}
	}
}

// ResolveSendTargets returns the leaves that receive input typed into focused,
// in tree order.
func (r *GroupRegistry) ResolveSendTargets(root Node, focused LeafID) []LeafID {
	switch r.mode {
	case SendAll:
		return LeafIDs(root)
	case SendGroup:
		name := r.members[focused]
		if name == "" {
			return []LeafID{focused}
		}
		targets := r.Members(root, name)
		if len(targets) == 0 {
			return []LeafID{focused}
		}
		return targets
	default:
		return []LeafID{focused}
	}
}

// VisualState computes the broadcast state of leaf given the focused leaf.
// It is never cached.
func (r *GroupRegistry) VisualState(root Node, leaf, focused LeafID) VisualState {
	if leaf == focused {
		return VisualTransmit
	}
	if focused == "" {
		return VisualInactive
	}
	for _, id := range r.ResolveSendTargets(root, focused) {
		if id == leaf {
			return VisualReceive
		}
	}
	return VisualInactive
}

// Snapshot returns a copy of the membership map.
func (r *GroupRegistry) Snapshot() map[LeafID]string {
	out := make(map[LeafID]string, len(r.members))
	for id, name := range r.members {
		out[id] = name
	}
	return out
}
