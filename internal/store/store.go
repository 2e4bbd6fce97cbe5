// Package store is the process-wide UI state container: a set of named cells
// behind one mutex, with subscriber callbacks for re-render triggers and
// action methods that update several cells atomically.
package store

import (
	"sync"
	"time"
)

// Theme selects the UI color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// User is the signed-in identity.
type User struct {
	ID    string
	Name  string
	Email string
}

// DataItem is a generic record for the data list page. ID is the only
// constrained field.
type DataItem struct {
	ID       string
	Name     string
	Category string
	Status   string
}

// State is one consistent view of every cell, delivered to subscribers.
type State struct {
	Message       string
	User          *User
	Authenticated bool
	Theme         Theme
	SidebarOpen   bool
	CurrentPage   string
	Items         []DataItem
	SearchQuery   string
	Filters       map[string]string
	Notification  *Notification
	SelectedID    string
}

// Subscriber receives a state snapshot after every committed update.
type Subscriber func(State)

// Store holds the application state. The zero value is not usable; call New.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers map[int]Subscriber
	nextSub     int

	// notifyDelay is how long a notification stays visible. Tests shrink it.
	notifyDelay time.Duration
}

// New creates a Store with defaults.
func New() *Store {
	return &Store{
		state: State{
			Theme:       ThemeDark,
			SidebarOpen: true,
			CurrentPage: "home",
			Filters:     map[string]string{},
		},
		subscribers: map[int]Subscriber{},
		notifyDelay: 5 * time.Second,
	}
}

// Subscribe registers a callback invoked with a snapshot after every update.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn Subscriber) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() State {
	snap := s.state
	snap.Items = make([]DataItem, len(s.state.Items))
	copy(snap.Items, s.state.Items)
	snap.Filters = make(map[string]string, len(s.state.Filters))
	for k, v := range s.state.Filters {
		snap.Filters[k] = v
	}
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}
	if s.state.Notification != nil {
		n := *s.state.Notification
		snap.Notification = &n
	}
	return snap
}

// update applies fn under the lock and then publishes one snapshot. All cell
// changes inside fn become visible to readers together.
func (s *Store) update(fn func(*State)) {
	s.mu.Lock()
	fn(&s.state)
	snap := s.snapshotLocked()
	subs := make([]Subscriber, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	for _, sub := range subs {
		sub(snap)
	}
}

// SetMessage updates the banner message cell.
func (s *Store) SetMessage(msg string) {
	s.update(func(st *State) { st.Message = msg })
}

// SetTheme switches the color scheme.
func (s *Store) SetTheme(theme Theme) {
	s.update(func(st *State) { st.Theme = theme })
}

// ToggleSidebar flips the sidebar cell.
func (s *Store) ToggleSidebar() {
	s.update(func(st *State) { st.SidebarOpen = !st.SidebarOpen })
}

// SetCurrentPage records the active page for the routing shell.
func (s *Store) SetCurrentPage(page string) {
	s.update(func(st *State) { st.CurrentPage = page })
}

// SetItems replaces the data list.
func (s *Store) SetItems(items []DataItem) {
	s.update(func(st *State) {
		st.Items = make([]DataItem, len(items))
		copy(st.Items, items)
	})
}

// SetSearchQuery updates the free-text query cell.
func (s *Store) SetSearchQuery(q string) {
	s.update(func(st *State) { st.SearchQuery = q })
}

// SetFilter sets one field filter; an empty value removes it.
func (s *Store) SetFilter(field, value string) {
	s.update(func(st *State) {
		if value == "" {
			delete(st.Filters, field)
			return
		}
		st.Filters[field] = value
	})
}

// SelectItem records the selected item id.
func (s *Store) SelectItem(id string) {
	s.update(func(st *State) { st.SelectedID = id })
}
