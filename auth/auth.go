package auth

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func RegisterCustomer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	registerCustomerHandler(w, r)
}
func RegisterOrganizer(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	registerOrganizerHandler(w, r)
}
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	loginHandler(w, r)
}
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	meHandler(w, r)
}
