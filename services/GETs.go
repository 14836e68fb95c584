package services

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

func matchesQuery(s *models.Service, q string) bool {
	return utils.ContainsSubstring(s.OrganizerName, q) ||
		utils.ContainsSubstring(s.ServiceType, q) ||
		utils.ContainsSubstring(s.Location, q) ||
		utils.ContainsSubstring(s.Description, q)
}

// GetServices serves public browsing, newest first. Only active services are
// visible; optional ?q= literal substring filter and ?page=/&limit=
// pagination.
func GetServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
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

	cursor, err := db.ServicesCollection.Find(r.Context(), bson.M{"isActive": true}, findOpts)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var services []models.Service
	if err := cursor.All(r.Context(), &services); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if q != "" {
		filtered := []models.Service{}
		for i := range services {
			if matchesQuery(&services[i], q) {
				filtered = append(filtered, services[i])
			}
		}
		services = utils.Paginate(filtered, page, limit)
	}
	if services == nil {
		services = []models.Service{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Services fetched successfully",
		"services": services,
	})
}

func GetService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var service models.Service
	err := db.ServicesCollection.FindOne(r.Context(), bson.M{
		"serviceid": ps.ByName("serviceid"),
		"isActive":  true,
	}).Decode(&service)
	if err != nil {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"service": service})
}

// GetMyServices lists the requesting organizer's own services, active or not.
func GetMyServices(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)

	cursor, err := db.ServicesCollection.Find(r.Context(),
		bson.M{"organizerid": organizerID},
		&options.FindOptions{Sort: bson.D{{Key: "created_at", Value: -1}}},
	)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(r.Context())

	var services []models.Service
	if err := cursor.All(r.Context(), &services); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if services == nil {
		services = []models.Service{}
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message":  "Services fetched successfully",
		"services": services,
	})
}

func GetMyService(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	organizerID := utils.GetUserIDFromRequest(r)

	var service models.Service
	err := db.ServicesCollection.FindOne(r.Context(), bson.M{
		"serviceid":   ps.ByName("serviceid"),
		"organizerid": organizerID,
	}).Decode(&service)
	if err != nil {
		http.Error(w, "Service not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"service": service})
}
