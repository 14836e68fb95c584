package utils

import (
	"eventify/globals"
	"net/http"
)

func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetUserTypeFromRequest(r *http.Request) string {
	userType, ok := r.Context().Value(globals.UserTypeKey).(string)
	if !ok {
		return ""
	}
	return userType
}
