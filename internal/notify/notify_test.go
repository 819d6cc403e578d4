package notify

import "testing"

func TestChangeType_String(t *testing.T) {
	tests := []struct {
		ct   ChangeType
		want string
	}{
		{ChangeSet, "set"},
		{ChangeDelete, "delete"},
		{ChangeReload, "reload"},
		{ChangeType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.ct.String(); got != tt.want {
			t.Errorf("ChangeType(%d).String() = %q, want %q", tt.ct, got, tt.want)
		}
	}
}

func TestNotifier_Subscribe(t *testing.T) {
	n := New()

	var received []Change
	sub := n.Subscribe(func(c Change) {
		received = append(received, c)
	})

	n.NotifySet("font.size", 12.0, 14.0, "options")
	n.NotifyDelete("font.size", 14.0, "options")

	if len(received) != 2 {
		t.Fatalf("received %d changes, want 2", len(received))
	}
	if received[0].Path != "font.size" || received[0].Type != ChangeSet {
		t.Errorf("first change = %+v", received[0])
	}
	if received[1].Type != ChangeDelete {
		t.Errorf("second change type = %v, want delete", received[1].Type)
	}

	sub.Unsubscribe()
	n.NotifySet("font.size", nil, 10.0, "options")
	if len(received) != 2 {
		t.Errorf("received after unsubscribe = %d, want 2", len(received))
	}
}

func TestNotifier_SubscribePath(t *testing.T) {
	n := New()

	var zoomChanges, exact int
	n.SubscribePath("plugins.zoom", func(Change) { zoomChanges++ })
	n.SubscribePath("plugins.zoom.pan.enabled", func(Change) { exact++ })

	n.NotifySet("plugins.zoom.pan.enabled", false, true, "pan")
	n.NotifySet("plugins.zoomed", nil, true, "plugins")
	n.NotifySet("font.size", nil, 12.0, "font")

	if zoomChanges != 1 {
		t.Errorf("zoom observer called %d times, want 1", zoomChanges)
	}
	if exact != 1 {
		t.Errorf("exact observer called %d times, want 1", exact)
	}

	n.NotifyReload("global")
	if zoomChanges != 2 || exact != 2 {
		t.Errorf("reload should reach path observers: zoom=%d exact=%d", zoomChanges, exact)
	}
}

func TestNotifier_ReentrantUnsubscribe(t *testing.T) {
	n := New()

	calls := 0
	var sub *Subscription
	sub = n.Subscribe(func(Change) {
		calls++
		sub.Unsubscribe()
		n.NotifySet("nested", nil, 1.0, "observer")
	})

	n.NotifySet("color", nil, "#fff", "options")
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if n.Count() != 0 {
		t.Errorf("Count = %d, want 0", n.Count())
	}
}

func TestNotifier_Mute(t *testing.T) {
	n := New()
	calls := 0
	n.Subscribe(func(Change) { calls++ })

	unmute := n.Mute()
	n.NotifySet("a", nil, 1.0, "")
	unmute()
	unmute()
	n.NotifySet("a", nil, 2.0, "")

	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestBatch(t *testing.T) {
	n := New()
	calls := 0
	n.Subscribe(func(Change) { calls++ })

	b := n.NewBatch()
	b.Add(Change{Path: "a", Type: ChangeSet})
	b.Add(Change{Path: "b", Type: ChangeSet})
	if b.Len() != 2 {
		t.Errorf("Len = %d, want 2", b.Len())
	}
	if calls != 0 {
		t.Error("batch should not deliver before commit")
	}
	b.Commit()
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}

	b.Add(Change{Path: "c"})
	b.Discard()
	b.Commit()
	if calls != 2 {
		t.Errorf("calls after discard = %d, want 2", calls)
	}
}

func TestNilNotifier(t *testing.T) {
	var n *Notifier
	n.Notify(Change{Path: "x"})
}
