package events

import "testing"

func TestHubPublishToSubscribers(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("p1")
	defer cancel()
	other, cancelOther := h.Subscribe("p2")
	defer cancelOther()

	h.Publish(Event{Type: TypeGenerationStarted, ProjectID: "p1"})

	ev := <-ch
	if ev.Type != TypeGenerationStarted || ev.ProjectID != "p1" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.At.IsZero() {
		t.Fatalf("publish should stamp the event time")
	}
	select {
	case ev := <-other:
		t.Fatalf("subscriber for p2 received p1 event: %+v", ev)
	default:
	}
}

func TestHubCancelClosesChannel(t *testing.T) {
	h := NewHub()
	ch, cancel := h.Subscribe("p1")
	cancel()
	cancel() // idempotent

	if _, ok := <-ch; ok {
		t.Fatalf("channel should be closed after cancel")
	}
	// publishing after cancel must not panic
	h.Publish(Event{Type: TypeGenerationFailed, ProjectID: "p1"})
}

func TestHubPublishNeverBlocks(t *testing.T) {
	h := NewHub()
	_, cancel := h.Subscribe("p1")
	defer cancel()

	// overflow the buffered channel; extra events are dropped
	for i := 0; i < 50; i++ {
		h.Publish(Event{Type: TypeGenerationStarted, ProjectID: "p1"})
	}
}
