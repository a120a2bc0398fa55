package mq

import (
	"context"
	"encoding/json"
	"log"

	"lagoon/rdx"
)

const tripEventsChannel = "trip-events"

// TripEvent is a trip lifecycle notification fanned out over Redis pub/sub.
type TripEvent struct {
	ShortID string `json:"short_id"`
	UserID  string `json:"user_id"`
	Event   string `json:"event"`
}

// Emit publishes a trip event. Failures are logged, never surfaced; event
// fan-out is best effort.
func Emit(eventName string, content TripEvent) {
	content.Event = eventName

	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event content: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), tripEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// StartTripEventWorker subscribes to the trip events channel and forwards
// each event to the handler (the live hub in production).
func StartTripEventWorker(handle func(TripEvent)) {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, tripEventsChannel)
	ch := sub.Channel()

	log.Println("[TripEventWorker] Listening for trip events...")

	for msg := range ch {
		var event TripEvent
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[TripEventWorker] Failed to parse event: %v", err)
			continue
		}
		handle(event)
	}
}
