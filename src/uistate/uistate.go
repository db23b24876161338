package uistate

import (
	"context"
	"sync"
	"time"

	"github.com/stake-plus/stockdesk/src/storage"
)

// DefaultFocusDelay is how long after opening a modal the first interactive
// control gets focus, leaving the unhide transition time to finish.
const DefaultFocusDelay = 100 * time.Millisecond

// Control is the busy state of a named button or input.
type Control struct {
	Label         string `json:"label"`
	OriginalLabel string `json:"originalLabel"`
	Disabled      bool   `json:"disabled"`
}

// State is the per-session UI state the frontend mirrors. At most one modal
// is open at a time.
type State struct {
	OpenModal string                    `json:"openModal,omitempty"`
	Focus     string                    `json:"focus,omitempty"`
	Hidden    map[string]bool           `json:"hidden,omitempty"`
	Busy      map[string]Control        `json:"busy,omitempty"`
	Forms     map[string]map[string]any `json:"forms,omitempty"`
}

func newState() *State {
	return &State{
		Hidden: make(map[string]bool),
		Busy:   make(map[string]Control),
		Forms:  make(map[string]map[string]any),
	}
}

// Manager tracks UI state per session and writes every change through the
// storage helper so a page reload restores it.
type Manager struct {
	mu         sync.Mutex
	sessions   map[string]*State
	store      *storage.Store
	focusDelay time.Duration
}

// NewManager creates a manager. store may be nil for purely in-memory state.
func NewManager(store *storage.Store, focusDelay time.Duration) *Manager {
	if focusDelay <= 0 {
		focusDelay = DefaultFocusDelay
	}
	return &Manager{
		sessions:   make(map[string]*State),
		store:      store,
		focusDelay: focusDelay,
	}
}

// session returns the state for id, loading a persisted snapshot on first
// access. Callers hold m.mu.
func (m *Manager) session(ctx context.Context, id string) *State {
	if s, ok := m.sessions[id]; ok {
		return s
	}
	s := newState()
	if m.store != nil {
		m.store.Get(ctx, id, s)
		if s.Hidden == nil {
			s.Hidden = make(map[string]bool)
		}
		if s.Busy == nil {
			s.Busy = make(map[string]Control)
		}
		if s.Forms == nil {
			s.Forms = make(map[string]map[string]any)
		}
	}
	m.sessions[id] = s
	return s
}

func (m *Manager) persist(ctx context.Context, id string, s *State) {
	if m.store != nil {
		m.store.Set(ctx, id, s)
	}
}

// OpenModal marks modal visible for the session, closing any other open
// modal first, and schedules focus of the modal's first interactive control
// after the focus delay.
func (m *Manager) OpenModal(ctx context.Context, session, modal string) {
	m.mu.Lock()
	s := m.session(ctx, session)
	s.OpenModal = modal
	s.Focus = ""
	m.persist(ctx, session, s)
	m.mu.Unlock()

	time.AfterFunc(m.focusDelay, func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		s := m.session(context.Background(), session)
		// The modal may already be closed again; focus only if it is
		// still the open one.
		if s.OpenModal == modal {
			s.Focus = modal
			m.persist(context.Background(), session, s)
		}
	})
}

// CloseModal hides modal and resets any form draft stashed under it. Closing
// a modal that is not open is a no-op.
func (m *Manager) CloseModal(ctx context.Context, session, modal string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	if s.OpenModal != modal {
		return
	}
	s.OpenModal = ""
	s.Focus = ""
	delete(s.Forms, modal)
	m.persist(ctx, session, s)
}

// CloseOpen closes whichever modal is currently open (the Escape and
// outside-click path) and returns its id, or "" when none was open.
func (m *Manager) CloseOpen(ctx context.Context, session string) string {
	m.mu.Lock()
	open := m.session(ctx, session).OpenModal
	m.mu.Unlock()
	if open == "" {
		return ""
	}
	m.CloseModal(ctx, session, open)
	return open
}

// SetForm stashes a form draft under the modal so the frontend can restore
// half-typed input. CloseModal drops it.
func (m *Manager) SetForm(ctx context.Context, session, modal string, fields map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	s.Forms[modal] = fields
	m.persist(ctx, session, s)
}

// Show unhides a named element.
func (m *Manager) Show(ctx context.Context, session, element string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	delete(s.Hidden, element)
	m.persist(ctx, session, s)
}

// Hide hides a named element.
func (m *Manager) Hide(ctx context.Context, session, element string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	s.Hidden[element] = true
	m.persist(ctx, session, s)
}

// SetBusy puts a control into its busy visual state, remembering the label
// it showed before so ClearBusy can restore it. Re-marking an already busy
// control keeps the first original label.
func (m *Manager) SetBusy(ctx context.Context, session, control, currentLabel, busyLabel string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	original := currentLabel
	if prev, ok := s.Busy[control]; ok {
		original = prev.OriginalLabel
	}
	s.Busy[control] = Control{Label: busyLabel, OriginalLabel: original, Disabled: true}
	m.persist(ctx, session, s)
}

// ClearBusy restores the control's original label and enabled flag, returning
// the label the frontend should put back. A control that was never busy
// returns "".
func (m *Manager) ClearBusy(ctx context.Context, session, control string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)
	prev, ok := s.Busy[control]
	if !ok {
		return ""
	}
	delete(s.Busy, control)
	m.persist(ctx, session, s)
	return prev.OriginalLabel
}

// Snapshot returns a copy of the session's state for the frontend to render.
func (m *Manager) Snapshot(ctx context.Context, session string) State {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.session(ctx, session)

	out := State{
		OpenModal: s.OpenModal,
		Focus:     s.Focus,
		Hidden:    make(map[string]bool, len(s.Hidden)),
		Busy:      make(map[string]Control, len(s.Busy)),
		Forms:     make(map[string]map[string]any, len(s.Forms)),
	}
	for k, v := range s.Hidden {
		out.Hidden[k] = v
	}
	for k, v := range s.Busy {
		out.Busy[k] = v
	}
	for k, v := range s.Forms {
		fields := make(map[string]any, len(v))
		for fk, fv := range v {
			fields[fk] = fv
		}
		out.Forms[k] = fields
	}
	return out
}
