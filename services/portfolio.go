package services

import (
	"net/http"

	"eventify/db"
	"eventify/filemgr"
	"eventify/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadPortfolio appends one image to an owned service's portfolio.
func UploadPortfolio(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("serviceid")
	organizerID := utils.GetUserIDFromRequest(r)

	err := db.ServicesCollection.FindOne(r.Context(), bson.M{
		"serviceid":   serviceID,
		"organizerid": organizerID,
	}).Err()
	if err != nil {
		http.Error(w, "Service not found", http.StatusNotFound)
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

	image, err := filemgr.SaveUploadedImage(file, header, "servicepic")
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	_, err = db.ServicesCollection.UpdateOne(r.Context(),
		bson.M{"serviceid": serviceID, "organizerid": organizerID},
		bson.M{"$push": bson.M{"portfolio": image}},
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
