package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"

	"rentacar/internal/api"
	"rentacar/internal/auth"
	"rentacar/internal/repository"
	"rentacar/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
)

func main() {
	godotenv.Load()
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	database, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	if err := database.Ping(); err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}

	vehicles := repository.NewPostgresVehicleStore(database)
	bookings := repository.NewPostgresBookingStore(database)
	svc := service.NewBookingService(vehicles, bookings)

	jobSvc := service.NewJobService(repository.NewJobRepository(database))
	adminAuthSvc := service.NewAdminAuthService(repository.NewAdminAuthRepository(database))

	bookingHandler := api.NewBookingHandler(svc)
	adminHandler := api.NewAdminHandler(svc)
	adminAuthHandler := api.NewAdminAuthHandler(adminAuthSvc)

	// Expired bookings are swept out and availability flags reconciled
	// on a schedule; both writes in a booking are separate statements,
	// so flags can drift after a mid-operation fault.
	schedule := os.Getenv("RECONCILE_CRON")
	if schedule == "" {
		schedule = "@hourly"
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if err := jobSvc.CleanupExpiredBookings(); err != nil {
			log.Printf("Cron Job error: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule reconciliation job: %v", err)
	}
	c.Start()

	r := mux.NewRouter()

	// Public endpoints
	r.HandleFunc("/api/availability", bookingHandler.CheckAvailability).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.CreateBooking).Methods("POST")
	r.HandleFunc("/api/bookings", bookingHandler.ListBookings).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.GetBooking).Methods("GET")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.UpdateBooking).Methods("PUT")
	r.HandleFunc("/api/bookings/{id}", bookingHandler.CancelBooking).Methods("DELETE")

	// Admin endpoints (protected)
	r.HandleFunc("/admin/login", adminAuthHandler.Login).Methods("POST")
	admin := r.PathPrefix("/admin").Subrouter()
	admin.Use(auth.AdminAuthMiddleware)
	admin.HandleFunc("/bookings", adminHandler.ListBookings).Methods("GET")
	admin.HandleFunc("/bookings/{id}", adminHandler.DeleteBooking).Methods("DELETE")
	admin.HandleFunc("/vehicles", adminHandler.CreateVehicle).Methods("POST")
	admin.HandleFunc("/vehicles/{id}", adminHandler.UpdateVehicle).Methods("PUT")

	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, handlers.LoggingHandler(os.Stdout, corsHandler(r))))
}
