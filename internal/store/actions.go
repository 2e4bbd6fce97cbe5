package store

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind categorises a transient notification.
type NotificationKind string

const (
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
	NotifyWarning NotificationKind = "warning"
	NotifyInfo    NotificationKind = "info"
)

// Notification is a transient banner. ID is a unique token per instance so a
// stale clear timer cannot wipe a newer notification.
type Notification struct {
	ID      string
	Kind    NotificationKind
	Message string
}

// Login sets the user and the authenticated flag in one update; no reader can
// observe one without the other.
func (s *Store) Login(user User) {
	s.update(func(st *State) {
		u := user
		st.User = &u
		st.Authenticated = true
	})
}

// Logout clears the user and the authenticated flag together.
func (s *Store) Logout() {
	s.update(func(st *State) {
		st.User = nil
		st.Authenticated = false
	})
}

// ShowNotification displays a notification and schedules it to clear after
// the store's delay. The clear only fires if this notification is still the
// current one: each instance carries its own token, so an earlier
// notification's timer cannot clear a later one.
func (s *Store) ShowNotification(kind NotificationKind, message string) {
	token := uuid.New().String()
	s.update(func(st *State) {
		st.Notification = &Notification{ID: token, Kind: kind, Message: message}
	})

	time.AfterFunc(s.notifyDelay, func() {
		s.update(func(st *State) {
			if st.Notification != nil && st.Notification.ID == token {
				st.Notification = nil
			}
		})
	})
}
