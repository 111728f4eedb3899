package pref

import "sync"

// NewViewKey is the stored key of the view preference.
const NewViewKey = "isNewViewVisible"

// State is the visible side of the toggle.
type State struct {
	NewViewVisible bool `json:"isNewViewVisible"`
}

// ButtonLabel names the action the toggle button performs.
func (s State) ButtonLabel() string {
	if s.NewViewVisible {
		return "Show Original Table"
	}
	return "Show Improved Table"
}

// NewDisplay is the CSS display value of the improved view.
func (s State) NewDisplay() string {
	return display(s.NewViewVisible)
}

// OriginalDisplay is the CSS display value of the original table.
func (s State) OriginalDisplay() string {
	return display(!s.NewViewVisible)
}

// Label names the view currently shown.
func (s State) Label() string {
	if s.NewViewVisible {
		return "Improved"
	}
	return "Original"
}

func display(visible bool) string {
	if visible {
		return "block"
	}
	return "none"
}

// Toggle switches between the improved and the original table. The store
// is read once when the toggle is created and written once per flip.
type Toggle struct {
	mu    sync.Mutex
	store Store
	state State
}

// NewToggle reads the preference from store, showing the improved view
// when it is unset.
func NewToggle(store Store) *Toggle {
	return NewToggleDefault(store, true)
}

// NewToggleDefault is NewToggle with an explicit default for an unset
// preference.
func NewToggleDefault(store Store, def bool) *Toggle {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Toggle{
		store: store,
		state: State{NewViewVisible: store.Bool(NewViewKey, def)},
	}
}

// State returns the current state.
func (t *Toggle) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Flip inverts the visible view and persists it. On a store error the
// state is left unchanged.
func (t *Toggle) Flip() (State, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	next := State{NewViewVisible: !t.state.NewViewVisible}
	if err := t.store.SetBool(NewViewKey, next.NewViewVisible); err != nil {
		return t.state, err
	}
	t.state = next
	return next, nil
}
