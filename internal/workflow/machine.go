package workflow

import (
	"errors"
	"fmt"
	"sync"

	"github.com/meditrack/console/internal/policy"
)

// ErrIllegalTransition is returned when a requested status change has no
// edge in the entity's machine, or the edge exists but not for the caller's
// role.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status is an entity lifecycle state as transmitted by the hospital API.
type Status string

// Edge is one legal transition and the roles that may trigger it.
type Edge struct {
	From  Status
	To    Status
	Roles []policy.Role
}

// Machine is a finite status machine for one entity type. Queries are
// read-only and safe for concurrent use; hooks may be registered during
// wiring and are fired by the owning service after a successful transition.
type Machine struct {
	entity  string
	initial Status
	states  map[Status]bool
	edges   []Edge

	mu    sync.RWMutex
	hooks map[Status][]func()
}

// New builds a machine. Every edge endpoint must be a declared state;
// a bad table is a programming error, so New panics on one.
func New(entity string, initial Status, states []Status, edges []Edge) *Machine {
	m := &Machine{
		entity:  entity,
		initial: initial,
		states:  make(map[Status]bool, len(states)),
		edges:   edges,
		hooks:   make(map[Status][]func()),
	}
	for _, s := range states {
		m.states[s] = true
	}
	if !m.states[initial] {
		panic(fmt.Sprintf("workflow %s: initial state %q not declared", entity, initial))
	}
	for _, e := range edges {
		if !m.states[e.From] || !m.states[e.To] {
			panic(fmt.Sprintf("workflow %s: edge %s->%s references undeclared state", entity, e.From, e.To))
		}
	}
	return m
}

// Entity names the entity type this machine governs.
func (m *Machine) Entity() string { return m.entity }

// Initial returns the status assigned at creation.
func (m *Machine) Initial() Status { return m.initial }

// Valid reports whether s is a declared state.
func (m *Machine) Valid(s Status) bool { return m.states[s] }

// CanTransition reports whether an edge from->to exists for the role.
func (m *Machine) CanTransition(from, to Status, r policy.Role) bool {
	for _, e := range m.edges {
		if e.From != from || e.To != to {
			continue
		}
		for _, allowed := range e.Roles {
			if allowed == r {
				return true
			}
		}
	}
	return false
}

// Transitions returns the target states reachable from a status by the
// given role, in edge-table order. A terminal state yields none, so screens
// composing this never offer a control from a terminal state.
func (m *Machine) Transitions(from Status, r policy.Role) []Status {
	var out []Status
	for _, e := range m.edges {
		if e.From != from {
			continue
		}
		for _, allowed := range e.Roles {
			if allowed == r {
				out = append(out, e.To)
				break
			}
		}
	}
	return out
}

// Terminal reports whether a state has no outgoing edges for any role.
func (m *Machine) Terminal(s Status) bool {
	for _, e := range m.edges {
		if e.From == s {
			return false
		}
	}
	return m.states[s]
}

// Check validates a requested transition for a role, wrapping
// ErrIllegalTransition with the offending endpoints.
func (m *Machine) Check(from, to Status, r policy.Role) error {
	if !m.CanTransition(from, to, r) {
		return fmt.Errorf("%w: %s %s -> %s (role %s)", ErrIllegalTransition, m.entity, from, to, r)
	}
	return nil
}

// OnEnter registers a hook fired whenever NotifyEnter is called with the
// given status. Used for cross-entity effects, e.g. a patient request
// reaching REGISTERED prompting a patient-list refresh.
func (m *Machine) OnEnter(to Status, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks[to] = append(m.hooks[to], fn)
}

// NotifyEnter fires the hooks registered for a status. Services call this
// after the hospital API has confirmed the transition.
func (m *Machine) NotifyEnter(to Status) {
	m.mu.RLock()
	hooks := m.hooks[to]
	m.mu.RUnlock()
	for _, fn := range hooks {
		fn()
	}
}
