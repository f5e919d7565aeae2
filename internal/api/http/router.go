package http

import (
	"movie-rental-backend/internal/security"
	"movie-rental-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the router needs.
type Services struct {
	Genres    service.GenreService
	Movies    service.MovieService
	Customers service.CustomerService
	Rentals   service.RentalService
	Users     service.UserService
	Auth      service.AuthService
}

// NewRouter wires all API routes. Reads are public; writes require a token,
// and genre deletion and user listing additionally require the admin role.
func NewRouter(svcs Services, tokenManager security.TokenManager) *mux.Router {
	router := mux.NewRouter()
	router.Use(WithRequestID, WithLogging)

	authMW := NewAuthMiddleware(tokenManager)
	api := router.PathPrefix("/api").Subrouter()

	genres := NewGenreHandler(svcs.Genres)
	api.HandleFunc("/genres", genres.List).Methods("GET")
	api.HandleFunc("/genres/{id}", genres.Get).Methods("GET")
	api.HandleFunc("/genres", authMW.RequireAuth(genres.Create)).Methods("POST")
	api.HandleFunc("/genres/{id}", authMW.RequireAuth(genres.Update)).Methods("PUT")
	api.HandleFunc("/genres/{id}", authMW.RequireAdmin(genres.Delete)).Methods("DELETE")

	movies := NewMovieHandler(svcs.Movies)
	api.HandleFunc("/movies", movies.List).Methods("GET")
	api.HandleFunc("/movies/{id}", movies.Get).Methods("GET")
	api.HandleFunc("/movies", authMW.RequireAuth(movies.Create)).Methods("POST")
	api.HandleFunc("/movies/{id}", authMW.RequireAuth(movies.Update)).Methods("PUT")
	api.HandleFunc("/movies/{id}", authMW.RequireAuth(movies.Delete)).Methods("DELETE")

	customers := NewCustomerHandler(svcs.Customers)
	api.HandleFunc("/customers", customers.List).Methods("GET")
	api.HandleFunc("/customers/{id}", customers.Get).Methods("GET")
	api.HandleFunc("/customers", authMW.RequireAuth(customers.Create)).Methods("POST")
	api.HandleFunc("/customers/{id}", authMW.RequireAuth(customers.Update)).Methods("PUT")
	api.HandleFunc("/customers/{id}", authMW.RequireAuth(customers.Delete)).Methods("DELETE")

	rentals := NewRentalHandler(svcs.Rentals)
	api.HandleFunc("/rentals", rentals.List).Methods("GET")
	api.HandleFunc("/rentals/{id}", rentals.Get).Methods("GET")
	api.HandleFunc("/rentals", authMW.RequireAuth(rentals.Create)).Methods("POST")
	api.HandleFunc("/returns", authMW.RequireAuth(rentals.Return)).Methods("POST")

	users := NewUserHandler(svcs.Users)
	api.HandleFunc("/users", authMW.RequireAdmin(users.List)).Methods("GET")
	api.HandleFunc("/users", users.Register).Methods("POST")
	api.HandleFunc("/users/me", authMW.RequireAuth(users.Me)).Methods("GET")

	auth := NewAuthHandler(svcs.Auth)
	api.HandleFunc("/auth", auth.Login).Methods("POST")

	return router
}
