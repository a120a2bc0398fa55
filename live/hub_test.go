package live

import (
	"encoding/json"
	"testing"
	"time"

	"lagoon/mq"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send: make(chan []byte, 10),
		Room: "Ab12Cd34",
	}

	hub.register <- client

	hub.NotifyTripEvent(mq.TripEvent{ShortID: "Ab12Cd34", Event: "trip-updated"})

	select {
	case got := <-client.Send:
		var n notification
		if err := json.Unmarshal(got, &n); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		if n.Action != "refresh" || n.ShortID != "Ab12Cd34" {
			t.Fatalf("notification = %+v, want refresh for Ab12Cd34", n)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for notification")
	}

	hub.unregister <- client
}

func TestHubIsolatesRooms(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	other := &Client{
		Send: make(chan []byte, 10),
		Room: "other123",
	}
	hub.register <- other

	hub.NotifyTripEvent(mq.TripEvent{ShortID: "Ab12Cd34", Event: "trip-updated"})

	select {
	case got := <-other.Send:
		t.Fatalf("client in another room received %s", got)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestNotifyTripEventReturnsAfterStop(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	hub.Stop()

	returned := make(chan struct{})
	go func() {
		hub.NotifyTripEvent(mq.TripEvent{ShortID: "Ab12Cd34", Event: "trip-updated"})
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(1 * time.Second):
		t.Fatal("NotifyTripEvent blocked on a stopped hub")
	}
}
