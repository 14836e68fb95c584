package pay

import (
	"net/http"
	"time"

	"eventify/db"
	"eventify/models"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PayBooking is the simulated payment step: it marks the customer's own
// booking paid and records a generated payment id. No gateway is involved
// and no money moves. Re-paying a paid booking is rejected.
func PayBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	customerID := utils.GetUserIDFromRequest(r)
	bookingID := ps.ByName("bookingid")

	res := db.BookingsCollection.FindOneAndUpdate(r.Context(),
		bson.M{
			"bookingid":     bookingID,
			"customerid":    customerID,
			"paymentStatus": bson.M{"$ne": models.PaymentPaid},
		},
		bson.M{"$set": bson.M{
			"paymentStatus": models.PaymentPaid,
			"paymentId":     "pay_" + utils.GetUUID(),
			"updated_at":    time.Now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Booking
	if err := res.Decode(&updated); err != nil {
		if err != mongo.ErrNoDocuments {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		lookupErr := db.BookingsCollection.FindOne(r.Context(), bson.M{
			"bookingid":  bookingID,
			"customerid": customerID,
		}).Err()
		if lookupErr == nil {
			http.Error(w, "Booking is already paid", http.StatusBadRequest)
			return
		}
		http.Error(w, "Booking not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Payment successful",
		"booking": updated,
	})
}
