package http

import (
	"net/http"

	"petconnect/internal/delivery/http/handler"
	"petconnect/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	animalHandler        *handler.AnimalHandler
	adoptionHandler      *handler.AdoptionHandler
	rescueHandler        *handler.RescueHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	favoriteHandler      *handler.FavoriteHandler
	donationHandler      *handler.DonationHandler
	productHandler       *handler.ProductHandler
	notificationHandler  *handler.NotificationHandler
	statsHandler         *handler.StatsHandler
	adminUserHandler     *handler.AdminUserHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	animalHandler *handler.AnimalHandler,
	adoptionHandler *handler.AdoptionHandler,
	rescueHandler *handler.RescueHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	favoriteHandler *handler.FavoriteHandler,
	donationHandler *handler.DonationHandler,
	productHandler *handler.ProductHandler,
	notificationHandler *handler.NotificationHandler,
	statsHandler *handler.StatsHandler,
	adminUserHandler *handler.AdminUserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		animalHandler:        animalHandler,
		adoptionHandler:      adoptionHandler,
		rescueHandler:        rescueHandler,
		medicalRecordHandler: medicalRecordHandler,
		favoriteHandler:      favoriteHandler,
		donationHandler:      donationHandler,
		productHandler:       productHandler,
		notificationHandler:  notificationHandler,
		statsHandler:         statsHandler,
		adminUserHandler:     adminUserHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Animal browsing (public)
	api.HandleFunc("/animals", r.animalHandler.GetAnimals).Methods(http.MethodGet)
	api.HandleFunc("/animals/{id}", r.animalHandler.GetAnimal).Methods(http.MethodGet)

	// Animal management (admin / rescue)
	animalStaff := api.PathPrefix("/animals").Subrouter()
	animalStaff.Use(r.authMiddleware.Authenticate)
	animalStaff.Use(middleware.RequireStaff)
	animalStaff.HandleFunc("", r.animalHandler.CreateAnimal).Methods(http.MethodPost)
	animalStaff.HandleFunc("/{id}", r.animalHandler.UpdateAnimal).Methods(http.MethodPatch)
	animalStaff.HandleFunc("/{id}", r.animalHandler.DeleteAnimal).Methods(http.MethodDelete)

	// Adoption requests
	adoption := api.PathPrefix("/adoption-requests").Subrouter()
	adoption.Use(r.authMiddleware.Authenticate)
	adoption.HandleFunc("", r.adoptionHandler.SubmitRequest).Methods(http.MethodPost)
	adoption.HandleFunc("", r.adoptionHandler.GetRequests).Methods(http.MethodGet)

	adoptionReview := api.PathPrefix("/adoption-requests").Subrouter()
	adoptionReview.Use(r.authMiddleware.Authenticate)
	adoptionReview.Use(middleware.RequireAdmin)
	adoptionReview.HandleFunc("/{id}", r.adoptionHandler.ReviewRequest).Methods(http.MethodPatch)

	// Rescue requests
	rescue := api.PathPrefix("/rescue-requests").Subrouter()
	rescue.Use(r.authMiddleware.Authenticate)
	rescue.HandleFunc("", r.rescueHandler.SubmitRequest).Methods(http.MethodPost)
	rescue.HandleFunc("", r.rescueHandler.GetRequests).Methods(http.MethodGet)

	rescueReview := api.PathPrefix("/rescue-requests").Subrouter()
	rescueReview.Use(r.authMiddleware.Authenticate)
	rescueReview.Use(middleware.RequireStaff)
	rescueReview.HandleFunc("/{id}", r.rescueHandler.ReviewRequest).Methods(http.MethodPatch)

	// Medical records
	medicalRead := api.PathPrefix("/medical-records").Subrouter()
	medicalRead.Use(r.authMiddleware.Authenticate)
	medicalRead.HandleFunc("", r.medicalRecordHandler.GetRecordsByAnimal).Methods(http.MethodGet)

	medical := api.PathPrefix("/medical-records").Subrouter()
	medical.Use(r.authMiddleware.Authenticate)
	medical.Use(middleware.RequireMedical)
	medical.HandleFunc("", r.medicalRecordHandler.CreateRecord).Methods(http.MethodPost)
	medical.HandleFunc("/{id}", r.medicalRecordHandler.DeleteRecord).Methods(http.MethodDelete)

	// Favorites
	favorites := api.PathPrefix("/favorites").Subrouter()
	favorites.Use(r.authMiddleware.Authenticate)
	favorites.HandleFunc("", r.favoriteHandler.ToggleFavorite).Methods(http.MethodPost)
	favorites.HandleFunc("", r.favoriteHandler.GetFavorites).Methods(http.MethodGet)

	// Donations
	donations := api.PathPrefix("/donations").Subrouter()
	donations.Use(r.authMiddleware.Authenticate)
	donations.HandleFunc("", r.donationHandler.CreateDonation).Methods(http.MethodPost)
	donations.HandleFunc("", r.donationHandler.GetDonations).Methods(http.MethodGet)

	// Product browsing (public)
	api.HandleFunc("/products", r.productHandler.GetProducts).Methods(http.MethodGet)
	api.HandleFunc("/products/{id:[0-9]+}", r.productHandler.GetProduct).Methods(http.MethodGet)

	// Marketplace purchase (any authenticated user)
	purchase := api.PathPrefix("/products").Subrouter()
	purchase.Use(r.authMiddleware.Authenticate)
	purchase.HandleFunc("/purchase", r.productHandler.Purchase).Methods(http.MethodPost)

	// Product management (admin / rescue)
	productStaff := api.PathPrefix("/products").Subrouter()
	productStaff.Use(r.authMiddleware.Authenticate)
	productStaff.Use(middleware.RequireStaff)
	productStaff.HandleFunc("", r.productHandler.CreateProduct).Methods(http.MethodPost)
	productStaff.HandleFunc("/{id:[0-9]+}", r.productHandler.UpdateProduct).Methods(http.MethodPut)
	productStaff.HandleFunc("/{id:[0-9]+}", r.productHandler.DeleteProduct).Methods(http.MethodDelete)

	// Notifications
	notifications := api.PathPrefix("/notifications").Subrouter()
	notifications.Use(r.authMiddleware.Authenticate)
	notifications.HandleFunc("", r.notificationHandler.GetNotifications).Methods(http.MethodGet)
	notifications.HandleFunc("/{id}/read", r.notificationHandler.MarkRead).Methods(http.MethodPatch)

	// Dashboard
	dashboard := api.PathPrefix("/dashboard").Subrouter()
	dashboard.Use(r.authMiddleware.Authenticate)
	dashboard.HandleFunc("/stats", r.statsHandler.GetStats).Methods(http.MethodGet)

	// Admin user management
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/users", r.adminUserHandler.GetUsers).Methods(http.MethodGet)
	admin.HandleFunc("/users", r.adminUserHandler.CreateUser).Methods(http.MethodPost)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
