package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"eventify/db"
	"eventify/globals"
	"eventify/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const TokenTTL = 30 * 24 * time.Hour

// JWT claims
type Claims struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"` // customer | organizer
	jwt.RegisteredClaims
}

// GenerateToken signs a bearer token for the given principal.
func GenerateToken(userID, userType string) (string, error) {
	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// ParseBearer validates the Authorization header value and returns its claims.
func ParseBearer(header string) (*Claims, error) {
	if header == "" {
		return nil, fmt.Errorf("missing token")
	}
	if len(header) < 8 || header[:7] != "Bearer " {
		return nil, fmt.Errorf("invalid token format")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(header[7:], claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// principalExists resolves the claims against the store matching the claimed
// kind. A token can outlive the principal it names; the lookup failure is
// how deleted principals are caught.
func principalExists(ctx context.Context, claims *Claims) bool {
	switch claims.UserType {
	case models.UserTypeCustomer:
		err := db.CustomersCollection.FindOne(ctx, bson.M{"customerid": claims.UserID}).Err()
		return err == nil
	case models.UserTypeOrganizer:
		err := db.OrganizersCollection.FindOne(ctx, bson.M{"organizerid": claims.UserID}).Err()
		return err == nil
	}
	return false
}

// Authenticate verifies a bearer token for the expected principal kind and
// attaches the resolved principal id and kind to the request context. One
// verification procedure parameterized by kind; a customer token never
// resolves against the organizer store and vice versa.
func Authenticate(expectedType string, next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := ParseBearer(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if claims.UserType != expectedType {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		if !principalExists(r.Context(), claims) {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.UserTypeKey, claims.UserType)
		next(w, r.WithContext(ctx), ps)
	}
}

// AuthenticateAny accepts either principal kind; used by /api/auth/me.
func AuthenticateAny(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		claims, err := ParseBearer(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		if !principalExists(r.Context(), claims) {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, globals.UserTypeKey, claims.UserType)
		next(w, r.WithContext(ctx), ps)
	}
}
