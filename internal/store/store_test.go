package store

import (
	"sync"
	"testing"
	"time"
)

func TestLoginIsAtomic(t *testing.T) {
	s := New()

	var mu sync.Mutex
	var torn bool
	unsub := s.Subscribe(func(st State) {
		mu.Lock()
		defer mu.Unlock()
		// User and Authenticated must always change together.
		if (st.User != nil) != st.Authenticated {
			torn = true
		}
	})
	defer unsub()

	s.Login(User{ID: "u1", Name: "Ada"})

	snap := s.Snapshot()
	if snap.User == nil || snap.User.Name != "Ada" || !snap.Authenticated {
		t.Errorf("login not applied: %+v", snap)
	}

	s.Logout()
	snap = s.Snapshot()
	if snap.User != nil || snap.Authenticated {
		t.Errorf("logout not applied: %+v", snap)
	}

	mu.Lock()
	defer mu.Unlock()
	if torn {
		t.Error("observed user without authenticated flag (or vice versa)")
	}
}

func TestSubscribersSeeEveryUpdate(t *testing.T) {
	s := New()

	var mu sync.Mutex
	var pages []string
	unsub := s.Subscribe(func(st State) {
		mu.Lock()
		pages = append(pages, st.CurrentPage)
		mu.Unlock()
	})
	defer unsub()

	s.SetCurrentPage("docs")
	s.SetCurrentPage("mockups")

	mu.Lock()
	defer mu.Unlock()
	if len(pages) != 2 || pages[0] != "docs" || pages[1] != "mockups" {
		t.Errorf("pages = %v", pages)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := New()

	calls := 0
	unsub := s.Subscribe(func(State) { calls++ })
	s.SetMessage("one")
	unsub()
	s.SetMessage("two")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New()
	s.SetItems([]DataItem{{ID: "1", Name: "Apple"}})

	snap := s.Snapshot()
	snap.Items[0].Name = "mutated"
	snap.Filters["x"] = "y"

	fresh := s.Snapshot()
	if fresh.Items[0].Name != "Apple" {
		t.Error("snapshot mutation leaked into store")
	}
	if len(fresh.Filters) != 0 {
		t.Error("filter mutation leaked into store")
	}
}

func TestNotificationClearsAfterDelay(t *testing.T) {
	s := New()
	s.notifyDelay = 20 * time.Millisecond

	s.ShowNotification(NotifyInfo, "saved")
	if n := s.Snapshot().Notification; n == nil || n.Message != "saved" {
		t.Fatalf("notification not shown: %+v", n)
	}

	waitFor(t, 2*time.Second, func() bool {
		return s.Snapshot().Notification == nil
	}, "notification never cleared")
}

func TestStaleTimerDoesNotClearNewerNotification(t *testing.T) {
	s := New()
	s.notifyDelay = 60 * time.Millisecond

	s.ShowNotification(NotifyInfo, "first")
	time.Sleep(30 * time.Millisecond)
	s.ShowNotification(NotifySuccess, "second")

	// When the first notification's timer fires (~30ms from now), the second
	// must survive it.
	time.Sleep(45 * time.Millisecond)
	n := s.Snapshot().Notification
	if n == nil || n.Message != "second" {
		t.Fatalf("second notification wiped by stale timer: %+v", n)
	}

	// And the second still clears on its own schedule.
	waitFor(t, 2*time.Second, func() bool {
		return s.Snapshot().Notification == nil
	}, "second notification never cleared")
}

func TestNotificationTokensAreUnique(t *testing.T) {
	s := New()
	s.notifyDelay = time.Minute // keep both alive

	s.ShowNotification(NotifyInfo, "a")
	first := s.Snapshot().Notification.ID
	s.ShowNotification(NotifyInfo, "b")
	second := s.Snapshot().Notification.ID

	if first == second {
		t.Error("notification tokens must differ per instance")
	}
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}
