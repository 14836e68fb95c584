package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"eventify/db"
	"eventify/models"
	"eventify/rdx"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// resolveBookingOwner walks booking → catalog item → organizer. The owner
// index in Redis is consulted first; a miss falls back to the catalog store.
// Returns an error when the catalog item no longer exists; callers must
// fail closed on it.
func resolveBookingOwner(ctx context.Context, b *models.Booking) (string, error) {
	catalogID := b.CatalogID()
	if catalogID == "" {
		return "", errors.New("booking has no catalog reference")
	}

	// A cache hit is trusted only while the catalog item still exists.
	// Index invalidation is asynchronous and best-effort, so a stale entry
	// must never vouch for a deleted item.
	if owner, err := rdx.GetCatalogOwner(catalogID); err == nil && owner != "" {
		if catalogItemExists(ctx, b) {
			return owner, nil
		}
		_ = rdx.DelCatalogOwner(catalogID)
		return "", fmt.Errorf("catalog item %s no longer exists", catalogID)
	}

	if b.EventID != "" {
		var event models.Event
		if err := db.EventsCollection.FindOne(ctx, bson.M{"eventid": b.EventID}).Decode(&event); err != nil {
			return "", fmt.Errorf("event %s not found: %w", b.EventID, err)
		}
		return event.OrganizerID, nil
	}

	var service models.Service
	if err := db.ServicesCollection.FindOne(ctx, bson.M{"serviceid": b.ServiceID}).Decode(&service); err != nil {
		return "", fmt.Errorf("service %s not found: %w", b.ServiceID, err)
	}
	return service.OrganizerID, nil
}

func catalogItemExists(ctx context.Context, b *models.Booking) bool {
	if b.EventID != "" {
		return db.EventsCollection.FindOne(ctx, bson.M{"eventid": b.EventID}).Err() == nil
	}
	return db.ServicesCollection.FindOne(ctx, bson.M{"serviceid": b.ServiceID}).Err() == nil
}

// ---------- Customer handlers ----------

// CreateBooking validates the submission, resolves the package against the
// live catalog item, and persists a snapshot booking. All-or-nothing: any
// rejection leaves no record.
func CreateBooking(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if err := req.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var (
		booking models.Booking
		ownerID string
	)

	if req.EventID != "" {
		var event models.Event
		if err := db.EventsCollection.FindOne(r.Context(), bson.M{"eventid": req.EventID}).Decode(&event); err != nil {
			http.Error(w, "Event not found", http.StatusNotFound)
			return
		}
		b, err := BuildEventBooking(customerID, &event, req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		booking = b
		ownerID = event.OrganizerID
	} else {
		var service models.Service
		err := db.ServicesCollection.FindOne(r.Context(), bson.M{
			"serviceid": req.ServiceID,
			"isActive":  true,
		}).Decode(&service)
		if err != nil {
			http.Error(w, "Service not found", http.StatusNotFound)
			return
		}
		b, err := BuildServiceBooking(customerID, &service, req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		booking = b
		ownerID = service.OrganizerID
	}

	if _, err := db.BookingsCollection.InsertOne(r.Context(), booking); err != nil {
		log.Printf("Failed to insert booking: %v", err)
		http.Error(w, "Failed to create booking", http.StatusInternalServerError)
		return
	}

	broadcastBookingUpdate(ownerID, &booking)

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Booking created successfully",
		"booking": booking,
	})
}

// GetMyBookings lists bookings scoped to the requesting customer only.
func GetMyBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)

	cursor, err := db.BookingsCollection.Find(r.Context(),
		bson.M{"customerid": customerID},
		&options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}},
	)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var bookings []models.Booking
	if err := cursor.All(r.Context(), &bookings); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Bookings fetched successfully",
		"bookings": bookings,
	})
}

func GetMyBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)

	var booking models.Booking
	err := db.BookingsCollection.FindOne(r.Context(), bson.M{
		"bookingid":  ps.ByName("bookingid"),
		"customerid": customerID,
	}).Decode(&booking)
	if err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"booking": booking})
}

// CancelBooking sets the customer's own booking to cancelled. Re-cancelling
// is rejected, not silently accepted. Payment status is left untouched; there
// is no automatic refund.
func CancelBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingid")

	res := db.BookingsCollection.FindOneAndUpdate(r.Context(),
		bson.M{
			"bookingid":  bookingID,
			"customerid": customerID,
			"status":     bson.M{"$ne": models.BookingCancelled},
		},
		bson.M{"$set": bson.M{"status": models.BookingCancelled, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		if err != mongo.ErrNoDocuments {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		// distinguish already-cancelled from unknown/foreign booking
		var existing models.Booking
		lookupErr := db.BookingsCollection.FindOne(r.Context(), bson.M{
			"bookingid":  bookingID,
			"customerid": customerID,
		}).Decode(&existing)
		if lookupErr == nil && !canCancel(existing.Status) {
			http.Error(w, "Booking is already cancelled", http.StatusBadRequest)
			return
		}
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	if ownerID, err := resolveBookingOwner(r.Context(), &updated); err == nil {
		broadcastBookingUpdate(ownerID, &updated)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Booking cancelled successfully",
		"booking": updated,
	})
}

// ---------- Organizer handlers ----------

// GetOrganizerBookings aggregates bookings across every catalog item the
// requesting organizer owns. Bookings carry no organizer reference, so this
// fans out: collect owned event and service ids, then match bookings against
// either id set.
func GetOrganizerBookings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)
	ctx := r.Context()

	eventIDs, err := ownedIDs(ctx, db.EventsCollection, "eventid", organizerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	serviceIDs, err := ownedIDs(ctx, db.ServicesCollection, "serviceid", organizerID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	cursor, err := db.BookingsCollection.Find(ctx,
		organizerBookingsFilter(eventIDs, serviceIDs),
		&options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}},
	)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Bookings fetched successfully",
		"bookings": bookings,
	})
}

// organizerBookingsFilter matches bookings whose catalog reference falls in
// either owned id set. Bookings carry no organizer field; this is the fan-out.
func organizerBookingsFilter(eventIDs, serviceIDs []string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"eventid": bson.M{"$in": eventIDs}},
		bson.M{"serviceid": bson.M{"$in": serviceIDs}},
	}}
}

func ownedIDs(ctx context.Context, coll *mongo.Collection, idField, organizerID string) ([]string, error) {
	cursor, err := coll.Find(ctx, bson.M{"organizerid": organizerID},
		&options.FindOptions{Projection: bson.M{idField: 1}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	ids := []string{}
	for cursor.Next(ctx) {
		var doc bson.M
		if err := cursor.Decode(&doc); err != nil {
			continue
		}
		if id, ok := doc[idField].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, cursor.Err()
}

// UpdateBookingStatus lets the owning organizer accept, reject or complete a
// booking. Ownership is established through the two-hop lookup; a dangling
// catalog reference fails closed. Concurrent updates are last-write-wins.
func UpdateBookingStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingid")

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if !ValidStatusTarget(body.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	var booking models.Booking
	if err := db.BookingsCollection.FindOne(r.Context(), bson.M{"bookingid": bookingID}).Decode(&booking); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	ownerID, err := resolveBookingOwner(r.Context(), &booking)
	if !ownsBooking(ownerID, err, organizerID) {
		http.Error(w, "Not authorized to update this booking", http.StatusForbidden)
		return
	}

	res := db.BookingsCollection.FindOneAndUpdate(r.Context(),
		bson.M{"bookingid": bookingID},
		bson.M{"$set": bson.M{"status": body.Status, "updated_at": time.Now()}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	broadcastBookingUpdate(organizerID, &updated)

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": fmt.Sprintf("Booking %s successfully", body.Status),
		"booking": updated,
	})
}
