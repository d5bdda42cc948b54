package event

import "testing"

type captureListener struct {
	received []Event
}

func (l *captureListener) OnEvent(e Event) {
	l.received = append(l.received, e)
}

func TestDispatchReachesAllSubscribers(t *testing.T) {
	d := NewDispatcher()
	first := &captureListener{}
	second := &captureListener{}
	d.Subscribe(MobKilled, first)
	d.Subscribe(MobKilled, second)
	d.Dispatch(Event{Type: MobKilled, Data: 42})

	for _, l := range []*captureListener{first, second} {
		if len(l.received) != 1 {
			t.Fatalf("Expected each listener to get one event, got %d", len(l.received))
		}
		if l.received[0].Data != 42 {
			t.Errorf("Expected payload 42, got %v", l.received[0].Data)
		}
	}
}

func TestDispatchFiltersByType(t *testing.T) {
	d := NewDispatcher()
	l := &captureListener{}
	d.Subscribe(PlayerDied, l)
	d.Dispatch(Event{Type: MobKilled})
	d.Dispatch(Event{Type: PlayerDied})
	if len(l.received) != 1 || l.received[0].Type != PlayerDied {
		t.Errorf("Expected only the subscribed type, got %+v", l.received)
	}
}

func TestDispatchWithoutSubscribers(t *testing.T) {
	d := NewDispatcher()
	// Nobody listens: the dispatch must be a no-op, not a panic.
	d.Dispatch(Event{Type: TimeExpired})
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := NewDispatcher()
	kept := &captureListener{}
	dropped := &captureListener{}
	d.Subscribe(MobKilled, kept)
	d.Subscribe(MobKilled, dropped)
	d.Unsubscribe(MobKilled, dropped)
	d.Dispatch(Event{Type: MobKilled})

	if len(kept.received) != 1 {
		t.Errorf("Expected the remaining listener to get the event, got %d", len(kept.received))
	}
	if len(dropped.received) != 0 {
		t.Errorf("Expected nothing after unsubscribing, got %d", len(dropped.received))
	}
}

func TestUnsubscribeUnknownListener(t *testing.T) {
	d := NewDispatcher()
	l := &captureListener{}
	// Removing a listener that never subscribed must not disturb anything.
	d.Unsubscribe(PlayerLeveledUp, l)
	d.Subscribe(PlayerLeveledUp, l)
	d.Unsubscribe(MobKilled, l)
	d.Dispatch(Event{Type: PlayerLeveledUp, Data: 2})
	if len(l.received) != 1 {
		t.Errorf("Expected the subscription to survive unrelated removals, got %d events", len(l.received))
	}
}
