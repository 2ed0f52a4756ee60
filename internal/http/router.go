package api

import (
	"log"
	stdhttp "net/http"

	intconfig "github.com/ErenOzkan1285/GuzelyurtCepte/internal/config"
	h "github.com/ErenOzkan1285/GuzelyurtCepte/internal/http/handlers"
	"github.com/ErenOzkan1285/GuzelyurtCepte/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	adminOnly := []gin.HandlerFunc{middleware.AuthRequired(env.JWTSecret), middleware.RequireRoles("admin")}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		users := api.Group("/users")
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)

		// Customers & bookings
		customers := api.Group("/customers")
		customers.GET("", h.GetCustomers)
		customers.POST("", h.CreateCustomer)
		customers.GET("/:email", h.GetCustomer)
		customers.PUT("/:email", h.UpdateCustomer)
		customers.GET("/:email/trips", h.GetCustomerTrips)
		customers.POST("/:email/trips", h.CreateCustomerBooking)
		customers.GET("/:email/refunded-total", h.GetTotalRefundedCredit)
		customers.GET("/:email/trips/:id/e-ticket", h.GetBookingETicket)

		// Trips & itineraries
		trips := api.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.POST("", append(adminOnly, h.CreateTrip)...)
		trips.GET("/:id", h.GetTrip)
		trips.PUT("/:id/stops", append(adminOnly, h.AttachTripStops)...)
		trips.DELETE("/:id", append(adminOnly, h.DeleteTrip)...)

		// Stops
		stops := api.Group("/stops")
		stops.GET("", h.GetStops)
		stops.POST("", h.CreateStop)
		stops.GET("/:name", h.GetStop)
		stops.PUT("/:name", h.UpdateStop)
		stops.DELETE("/:name", h.DeleteStop)
		// legacy path the mobile client calls for a trip's ordered stops
		stops.GET("/trip/:id", h.GetTripStops)

		// Stop connection graph (persisted, not used for fares)
		connections := api.Group("/connections")
		connections.GET("", h.GetStopConnections)
		connections.POST("", h.UpsertStopConnection)
		connections.DELETE("", h.DeleteStopConnection)

		// Buses
		buses := api.Group("/buses")
		buses.GET("", h.GetBuses)
		buses.GET("/:plate", h.GetBus)
		buses.POST("", append(adminOnly, h.CreateBus)...)
		buses.PUT("/:plate", append(adminOnly, h.UpdateBus)...)
		buses.DELETE("/:plate", append(adminOnly, h.DeleteBus)...)

		// Feedback
		feedback := api.Group("/feedback")
		feedback.GET("", h.GetFeedbacks)
		feedback.POST("", h.CreateFeedback)
		feedback.PATCH("/:id", h.RespondFeedback)
	}

	return r
}
