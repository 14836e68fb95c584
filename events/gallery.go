package events

import (
	"net/http"

	"eventify/db"
	"eventify/filemgr"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadGallery appends one image to an owned event's gallery.
func UploadGallery(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	eventID := ps.ByName("eventid")
	organizerID := utils.GetUserIDFromRequest(r)

	// ownership before touching the filesystem
	err := db.EventsCollection.FindOne(r.Context(), bson.M{
		"eventid":     eventID,
		"organizerid": organizerID,
	}).Err()
	if err != nil {
		http.Error(w, "Event not found", http.StatusNotFound)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}

	image, err := filemgr.SaveUploadedImage(file, header, "eventpic")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = db.EventsCollection.UpdateOne(r.Context(),
		bson.M{"eventid": eventID, "organizerid": organizerID},
		bson.M{"$push": bson.M{"gallery": image}},
	)
	if err != nil {
		http.Error(w, "Failed to save image", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Image uploaded successfully",
		"image":   image,
	})
}
