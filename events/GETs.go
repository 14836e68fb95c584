package events

import (
	"net/http"
	"strconv"

	"eventify/db"
	"eventify/models"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// matchesQuery applies the literal substring filter used by public browsing.
func matchesQuery(e *models.Event, q string) bool {
	return utils.ContainsSubstring(e.Name, q) ||
		utils.ContainsSubstring(e.Venue, q) ||
		utils.ContainsSubstring(e.Description, q)
}

// GetEvents serves public browsing, newest first, optional ?q= substring
// filter and ?page=/&limit= pagination.
func GetEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page := 1
	limit := 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	q := r.URL.Query().Get("q")

	skip := int64((page - 1) * limit)
	int64Limit := int64(limit)

	findOpts := &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: -1}},
	}
	if q == "" {
		findOpts.Skip = &skip
		findOpts.Limit = &int64Limit
	}

	cursor, err := db.EventsCollection.Find(r.Context(), bson.M{}, findOpts)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var events []models.Event
	if err := cursor.All(r.Context(), &events); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if q != "" {
		filtered := []models.Event{}
		for i := range events {
			if matchesQuery(&events[i], q) {
				filtered = append(filtered, events[i])
			}
		}
		events = utils.Paginate(filtered, page, limit)
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Events fetched successfully",
		"events":  events,
	})
}

func GetEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("eventid")

	var event models.Event
	if err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": id}).Decode(&event); err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"event": event})
}

// GetMyEvents lists the requesting organizer's own events.
func GetMyEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)

	cursor, err := db.EventsCollection.Find(r.Context(),
		bson.M{"organizerid": organizerID},
		&options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}},
	)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var events []models.Event
	if err := cursor.All(r.Context(), &events); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if events == nil {
		events = []models.Event{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Events fetched successfully",
		"events":  events,
	})
}

func GetMyEvent(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)

	var event models.Event
	err := db.EventsCollection.FindOne(r.Context(), bson.M{
		"eventid":     ps.ByName("eventid"),
		"organizerid": organizerID,
	}).Decode(&event)
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"event": event})
}
