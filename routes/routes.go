package routes

import (
	"net/http"

	"eventify/auth"
	"eventify/booking"
	"eventify/events"
	"eventify/middleware"
	"eventify/models"
	"eventify/pay"
	"eventify/ratelim"
	"eventify/services"

	"github.com/julienschmidt/httprouter"
)

func RoutesWrapper(router *httprouter.Router, rl *ratelim.RateLimiter) {
	AddAuthRoutes(router, rl)
	AddCatalogRoutes(router, rl)
	AddOrganizerRoutes(router, rl)
	AddBookingRoutes(router, rl)
	AddStaticRoutes(router)
}

func AddAuthRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.POST("/api/auth/register-user", rl.Limit(auth.RegisterCustomer))
	router.POST("/api/auth/register-organizer", rl.Limit(auth.RegisterOrganizer))
	router.POST("/api/auth/login", rl.Limit(auth.Login))
	router.GET("/api/auth/me", middleware.AuthenticateAny(auth.Me))
}

// Public browsing; no token required.
func AddCatalogRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	router.GET("/api/user/events", events.GetEvents)
	router.GET("/api/user/events/:eventid", events.GetEvent)
	router.GET("/api/user/services", services.GetServices)
	router.GET("/api/user/services/:serviceid", services.GetService)
}

func AddOrganizerRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	asOrganizer := func(h httprouter.Handle) httprouter.Handle {
		return middleware.Authenticate(models.UserTypeOrganizer, h)
	}

	router.POST("/api/organizer/events", asOrganizer(events.CreateEvent))
	router.GET("/api/organizer/events", asOrganizer(events.GetMyEvents))
	router.GET("/api/organizer/events/:eventid", asOrganizer(events.GetMyEvent))
	router.PUT("/api/organizer/events/:eventid", asOrganizer(events.UpdateEvent))
	router.DELETE("/api/organizer/events/:eventid", asOrganizer(events.DeleteEvent))
	router.POST("/api/organizer/events/:eventid/gallery", asOrganizer(events.UploadGallery))

	router.POST("/api/organizer/services", asOrganizer(services.CreateService))
	router.GET("/api/organizer/services", asOrganizer(services.GetMyServices))
	router.GET("/api/organizer/services/:serviceid", asOrganizer(services.GetMyService))
	router.PUT("/api/organizer/services/:serviceid", asOrganizer(services.UpdateService))
	router.DELETE("/api/organizer/services/:serviceid", asOrganizer(services.DeleteService))
	router.POST("/api/organizer/services/:serviceid/portfolio", asOrganizer(services.UploadPortfolio))

	router.GET("/api/organizer/bookings", asOrganizer(booking.GetOrganizerBookings))
	router.PUT("/api/organizer/bookings/:bookingid/status", asOrganizer(booking.UpdateBookingStatus))
}

func AddBookingRoutes(router *httprouter.Router, rl *ratelim.RateLimiter) {
	asCustomer := func(h httprouter.Handle) httprouter.Handle {
		return middleware.Authenticate(models.UserTypeCustomer, h)
	}

	router.POST("/api/user/bookings", rl.Limit(asCustomer(booking.CreateBooking)))
	router.GET("/api/user/bookings", asCustomer(booking.GetMyBookings))
	router.GET("/api/user/bookings/:bookingid", asCustomer(booking.GetMyBooking))
	router.PUT("/api/user/bookings/:bookingid/cancel", asCustomer(booking.CancelBooking))
	router.POST("/api/user/bookings/:bookingid/pay", rl.Limit(asCustomer(pay.PayBooking)))
	router.GET("/api/user/bookings/:bookingid/receipt", asCustomer(booking.PrintReceipt))

	router.GET("/ws/bookings", middleware.Authenticate(models.UserTypeOrganizer, booking.HandleWS))
}

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/uploads/*filepath", http.Dir("static/uploads"))
}
