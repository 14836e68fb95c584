package mq

import (
	"context"
	"encoding/json"
	"log"

	"eventify/rdx"
)

// Index describes a catalog mutation to be reflected in the owner index.
type Index struct {
	EntityType  string `json:"entity_type"` // event | service
	Method      string `json:"method"`      // create | update | delete
	EntityID    string `json:"entity_id"`
	OrganizerID string `json:"organizer_id"`
}

const channel = "catalog-events"

// Emit publishes a catalog mutation to Redis; the indexing worker applies it
// to the owner index asynchronously. Failures are logged, not surfaced: the
// index is a cache and Mongo stays authoritative.
func Emit(eventName string, content Index) {
	data, err := json.Marshal(content)
	if err != nil {
		log.Printf("[Emit] Failed to marshal %s event: %v", eventName, err)
		return
	}
	if err := rdx.Conn.Publish(context.Background(), channel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s event: %v", eventName, err)
	}
}

// StartIndexingWorker subscribes to catalog events and keeps the
// catalog-item → organizer owner index current.
func StartIndexingWorker() {
	ctx := context.Background()
	sub := rdx.Conn.Subscribe(ctx, channel)
	ch := sub.Channel()

	log.Println("[IndexingWorker] Listening for catalog events...")

	for msg := range ch {
		var event Index
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			log.Printf("[IndexingWorker] Failed to parse event: %v", err)
			continue
		}

		switch event.Method {
		case "delete":
			if err := rdx.DelCatalogOwner(event.EntityID); err != nil {
				log.Printf("[IndexingWorker] Failed to drop owner index for %s: %v", event.EntityID, err)
			}
		default:
			if err := rdx.SetCatalogOwner(event.EntityID, event.OrganizerID); err != nil {
				log.Printf("[IndexingWorker] Failed to index owner for %s: %v", event.EntityID, err)
			}
		}
	}
}
