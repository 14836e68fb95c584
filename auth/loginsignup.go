package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"eventify/db"
	"eventify/middleware"
	"eventify/models"
	"eventify/rdx"
	"eventify/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// emailTaken checks both principal stores; emails are unique across the
// whole marketplace, not per store.
func emailTaken(ctx context.Context, email string) (bool, error) {
	err := db.CustomersCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if err != mongo.ErrNoDocuments {
		return false, err
	}
	err = db.OrganizersCollection.FindOne(ctx, bson.M{"email": email}).Err()
	if err == nil {
		return true, nil
	}
	if err != mongo.ErrNoDocuments {
		return false, err
	}
	return false, nil
}

func registerCustomerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Email == "" || input.Password == "" {
		http.Error(w, "Name, email and password are required", http.StatusBadRequest)
		return
	}

	taken, err := emailTaken(r.Context(), input.Email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if taken {
		http.Error(w, "User already exists with this email", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	customer := models.Customer{
		CustomerID: "u" + utils.GenerateID(12),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		Password:   string(hashedPassword),
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if _, err := db.CustomersCollection.InsertOne(r.Context(), customer); err != nil {
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("principal:%s", customer.CustomerID), models.UserTypeCustomer); err != nil {
		log.Printf("Failed to cache principal kind: %v", err)
	}

	token, err := middleware.GenerateToken(customer.CustomerID, models.UserTypeCustomer)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Customer registered successfully",
		"token":   token,
		"user": utils.M{
			"id":       customer.CustomerID,
			"name":     customer.Name,
			"email":    customer.Email,
			"phone":    customer.Phone,
			"userType": models.UserTypeCustomer,
		},
	})
}

func registerOrganizerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		BusinessName string `json:"businessName"`
		Email        string `json:"email"`
		Phone        string `json:"phone"`
		ServiceType  string `json:"serviceType"`
		Password     string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.BusinessName == "" || input.Email == "" || input.Password == "" {
		http.Error(w, "Business name, email and password are required", http.StatusBadRequest)
		return
	}

	taken, err := emailTaken(r.Context(), input.Email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if taken {
		http.Error(w, "User already exists with this email", http.StatusBadRequest)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	organizer := models.Organizer{
		OrganizerID:  "o" + utils.GenerateID(12),
		BusinessName: input.BusinessName,
		Email:        input.Email,
		Phone:        input.Phone,
		ServiceType:  input.ServiceType,
		Password:     string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if _, err := db.OrganizersCollection.InsertOne(r.Context(), organizer); err != nil {
		http.Error(w, "Failed to register", http.StatusInternalServerError)
		return
	}

	if err := rdx.RdxSet(fmt.Sprintf("principal:%s", organizer.OrganizerID), models.UserTypeOrganizer); err != nil {
		log.Printf("Failed to cache principal kind: %v", err)
	}

	token, err := middleware.GenerateToken(organizer.OrganizerID, models.UserTypeOrganizer)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"message": "Organizer registered successfully",
		"token":   token,
		"user": utils.M{
			"id":          organizer.OrganizerID,
			"name":        organizer.BusinessName,
			"email":       organizer.Email,
			"phone":       organizer.Phone,
			"serviceType": organizer.ServiceType,
			"userType":    models.UserTypeOrganizer,
		},
	})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email       string `json:"email"`
		Password    string `json:"password"`
		IsOrganizer bool   `json:"isOrganizer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if input.Email == "" || input.Password == "" {
		http.Error(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	// Same rejection for unknown account and wrong password.
	if input.IsOrganizer {
		var organizer models.Organizer
		err := db.OrganizersCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&organizer)
		if err != nil {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		if err := bcrypt.CompareHashAndPassword([]byte(organizer.Password), []byte(input.Password)); err != nil {
			http.Error(w, "Invalid email or password", http.StatusUnauthorized)
			return
		}

		token, err := middleware.GenerateToken(organizer.OrganizerID, models.UserTypeOrganizer)
		if err != nil {
			http.Error(w, "Failed to generate token", http.StatusInternalServerError)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"message": "Login successful",
			"token":   token,
			"user": utils.M{
				"id":          organizer.OrganizerID,
				"name":        organizer.BusinessName,
				"email":       organizer.Email,
				"phone":       organizer.Phone,
				"serviceType": organizer.ServiceType,
				"userType":    models.UserTypeOrganizer,
			},
		})
		return
	}

	var customer models.Customer
	err := db.CustomersCollection.FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&customer)
	if err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := middleware.GenerateToken(customer.CustomerID, models.UserTypeCustomer)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"message": "Login successful",
		"token":   token,
		"user": utils.M{
			"id":       customer.CustomerID,
			"name":     customer.Name,
			"email":    customer.Email,
			"phone":    customer.Phone,
			"userType": models.UserTypeCustomer,
		},
	})
}

func meHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	userType := utils.GetUserTypeFromRequest(r)

	switch userType {
	case models.UserTypeOrganizer:
		var organizer models.Organizer
		if err := db.OrganizersCollection.FindOne(r.Context(), bson.M{"organizerid": userID}).Decode(&organizer); err != nil {
			http.Error(w, "Organizer not found", http.StatusNotFound)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"user": utils.M{
				"id":          organizer.OrganizerID,
				"name":        organizer.BusinessName,
				"email":       organizer.Email,
				"phone":       organizer.Phone,
				"serviceType": organizer.ServiceType,
				"userType":    models.UserTypeOrganizer,
			},
		})
	default:
		var customer models.Customer
		if err := db.CustomersCollection.FindOne(r.Context(), bson.M{"customerid": userID}).Decode(&customer); err != nil {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"user": utils.M{
				"id":       customer.CustomerID,
				"name":     customer.Name,
				"email":    customer.Email,
				"phone":    customer.Phone,
				"address":  customer.Address,
				"userType": models.UserTypeCustomer,
			},
		})
	}
}
