package services

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

func validatePackages(packages []models.ServicePackage) string {
	if len(packages) == 0 {
		return "At least one package is required"
	}
	for _, p := range packages {
		if p.Name == "" {
			return "Package name is required"
		}
		if p.Price < 0 {
			return "Package price must not be negative"
		}
		if p.Description == "" {
			return "Package description is required"
		}
	}
	return ""
}

func CreateService(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		OrganizerName string                  `json:"organizerName"`
		ServiceType   string                  `json:"serviceType"`
		Location      string                  `json:"location"`
		Rating        float64                 `json:"rating"`
		Description   string                  `json:"description"`
		Packages      []models.ServicePackage `json:"packages"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.OrganizerName == "" || input.ServiceType == "" || input.Location == "" || input.Description == "" {
		http.Error(w, "All fields are required: organizerName, serviceType, location, description, packages", http.StatusBadRequest)
		return
	}
	if msg := validatePackages(input.Packages); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}
	if input.Rating < 0 || input.Rating > 5 {
		http.Error(w, "Rating must be between 0 and 5", http.StatusBadRequest)
		return
	}

	organizerID := utils.GetUserIDFromRequest(r)
	if organizerID == "" {
		http.Error(w, "Invalid user", http.StatusUnauthorized)
		return
	}

	service := models.Service{
		ServiceID:     "s" + utils.GenerateID(14),
		OrganizerName: input.OrganizerName,
		ServiceType:   input.ServiceType,
		Location:      input.Location,
		Rating:        input.Rating,
		Description:   input.Description,
		Packages:      input.Packages,
		Portfolio:     []models.GalleryImage{},
		IsActive:      true,
		OrganizerID:   organizerID,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if _, err := db.ServicesCollection.InsertOne(r.Context(), service); err != nil {
		log.Printf("Failed to insert service: %v", err)
		http.Error(w, "Failed to create service", http.StatusInternalServerError)
		return
	}

	mq.Emit("service-created", mq.Index{
		EntityType:  "service",
		Method:      "create",
		EntityID:    service.ServiceID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Service created successfully",
		"service": service,
	})
}

func UpdateService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("serviceid")

	var input struct {
		OrganizerName string                  `json:"organizerName"`
		ServiceType   string                  `json:"serviceType"`
		Location      string                  `json:"location"`
		Rating        *float64                `json:"rating"`
		Description   string                  `json:"description"`
		Packages      []models.ServicePackage `json:"packages"`
		IsActive      *bool                   `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	updateFields := bson.M{"updated_at": time.Now()}
	if input.OrganizerName != "" {
		updateFields["organizerName"] = input.OrganizerName
	}
	if input.ServiceType != "" {
		updateFields["serviceType"] = input.ServiceType
	}
	if input.Location != "" {
		updateFields["location"] = input.Location
	}
	if input.Rating != nil {
		if *input.Rating < 0 || *input.Rating > 5 {
			http.Error(w, "Rating must be between 0 and 5", http.StatusBadRequest)
			return
		}
		updateFields["rating"] = *input.Rating
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
	if input.IsActive != nil {
		updateFields["isActive"] = *input.IsActive
	}

	organizerID := utils.GetUserIDFromRequest(r)

	res := db.ServicesCollection.FindOneAndUpdate(r.Context(),
		bson.M{"serviceid": serviceID, "organizerid": organizerID},
		bson.M{"$set": updateFields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	var updated models.Service
	if err := res.Decode(&updated); err != nil {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	mq.Emit("service-updated", mq.Index{
		EntityType:  "service",
		Method:      "update",
		EntityID:    serviceID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Service updated successfully",
		"service": updated,
	})
}

// DeleteService hard-deletes the record. Existing bookings keep their
// snapshot and a dangling service reference.
func DeleteService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	serviceID := ps.ByName("serviceid")
	organizerID := utils.GetUserIDFromRequest(r)

	res, err := db.ServicesCollection.DeleteOne(r.Context(), bson.M{
		"serviceid":   serviceID,
		"organizerid": organizerID,
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	// drop the owner index entry before responding; the async event alone
	// could leave a stale entry if the publish fails
	if err := rdx.DelCatalogOwner(serviceID); err != nil {
		log.Printf("Failed to drop owner index for %s: %v", serviceID, err)
	}

	mq.Emit("service-deleted", mq.Index{
		EntityType:  "service",
		Method:      "delete",
		EntityID:    serviceID,
		OrganizerID: organizerID,
	})

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Service deleted successfully"})
}
