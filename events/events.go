package events

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventify/db"
	"eventify/models"
	"eventify/mq"
	"eventify/rdx"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// validatePackages checks the package list an organizer submitted. Duplicate
// ticket types are accepted; package lookups pick the first match.
func validatePackages(packages []models.EventPackage) string {
	if len(packages) == 0 {
		return "At least one package is required"
	}
	for _, p := range packages {
		if p.Type != models.TicketGeneral && p.Type != models.TicketVIP {
			return "Package type must be general or vip"
		}
		if p.Name == "" {
			return "Package name is required"
		}
		if p.Price < 0 {
			return "Package price must not be negative"
		}
	}
	return ""
}

func CreateEvent(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Name        string                `json:"name"`
		Date        string                `json:"date"`
		Venue       string                `json:"venue"`
		Description string                `json:"description"`
		Packages    []models.EventPackage `json:"packages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Date == "" || input.Venue == "" || input.Description == "" {
		http.Error(w, "All fields are required: name, date, venue, description, packages", http.StatusBadRequest)
		return
	}
	if msg := validatePackages(input.Packages); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	organizerID := utils.GetUserIDFromRequest(r)
	if organizerID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	event := models.Event{
		EventID:     "e" + utils.GenerateID(14),
		Name:        input.Name,
		Date:        input.Date,
		Venue:       input.Venue,
		Description: input.Description,
		Packages:    input.Packages,
		OrganizerID: organizerID,
		Gallery:     []models.GalleryImage{},
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if _, err := db.EventsCollection.InsertOne(r.Context(), event); err != nil {
		log.Printf("Failed to insert event: %v", err)
		http.Error(w, "Failed to create event", http.StatusInternalServerError)
		return
	}

	mq.Emit("event-created", mq.Index{
		EntityType:  "event",
		Method:      "create",
		EntityID:    event.EventID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Event created successfully",
		"event":   event,
	})
}

func UpdateEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")

	var input struct {
		Name        string                `json:"name"`
		Date        string                `json:"date"`
		Venue       string                `json:"venue"`
		Description string                `json:"description"`
		Packages    []models.EventPackage `json:"packages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	updateFields := bson.M{"updated_at": time.Now()}
	if input.Name != "" {
		updateFields["name"] = input.Name
	}
	if input.Date != "" {
		updateFields["date"] = input.Date
	}
	if input.Venue != "" {
		updateFields["venue"] = input.Venue
	}
	if input.Description != "" {
		updateFields["description"] = input.Description
	}
	if input.Packages != nil {
		if msg := validatePackages(input.Packages); msg != "" {
			http.Error(w, msg, http.StatusBadRequest)
			return
		}
		updateFields["packages"] = input.Packages
	}

	organizerID := utils.GetUserIDFromRequest(r)

	// Not-found and not-owned are indistinguishable to the caller.
	res := db.EventsCollection.FindOneAndUpdate(r.Context(),
		bson.M{"eventid": eventID, "organizerid": organizerID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Event
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	mq.Emit("event-updated", mq.Index{
		EntityType:  "event",
		Method:      "update",
		EntityID:    eventID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Event updated successfully",
		"event":   updated,
	})
}

// DeleteEvent removes the event only. Existing bookings keep their package
// snapshot and a dangling event reference.
func DeleteEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	organizerID := utils.GetUserIDFromRequest(r)

	res, err := db.EventsCollection.DeleteOne(r.Context(), bson.M{
		"eventid":     eventID,
		"organizerid": organizerID,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	// drop the owner index entry before responding; the async event alone
	// could leave a stale entry if the publish fails
	if err := rdx.DelCatalogOwner(eventID); err != nil {
		log.Printf("Failed to drop owner index for %s: %v", eventID, err)
	}

	mq.Emit("event-deleted", mq.Index{
		EntityType:  "event",
		Method:      "delete",
		EntityID:    eventID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Event deleted successfully"})
}
