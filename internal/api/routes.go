package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// RegisterRoutes sets up all the API endpoints and middleware.
func (s *Server) RegisterRoutes(r *chi.Mux) {
	r.Use(middleware.Logger)    // Logs incoming requests
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.allowedOrigins(),
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300, // How long the browser can cache preflight results
		}))

		// Roster view: paddlers, canoes with derived status, and the seat
		// assignments of one scope (?event= selects an event lineup).
		r.Get("/roster", s.handleGetRoster)

		// Paddler routes
		r.Post("/paddlers", s.handleCreatePaddler)
		r.Put("/paddlers/{paddlerID}", s.handleUpdatePaddler)
		r.Delete("/paddlers/{paddlerID}", s.handleDeletePaddler)

		// Canoe routes
		r.Post("/canoes", s.handleCreateCanoe)
		r.Delete("/canoes/{canoeID}", s.handleDeleteCanoe)

		// Lineup routes
		r.Post("/moves", s.handleMove)
		r.Post("/lineup/optimal", s.handleAssignOptimal)
		r.Post("/lineup/publish", s.handlePublishLineup)

		// Event routes
		r.Get("/events", s.handleGetEvents)
		r.Post("/events", s.handleDefineEvents)
		r.Delete("/events/{eventID}", s.handleDeleteEvent)
		r.Post("/events/{eventID}/notify", s.handleNotifyAttendees)

		// Attendance routes
		r.Get("/events/{eventID}/attendance", s.handleGetAttendance)
		r.Put("/events/{eventID}/attendance/{paddlerID}", s.handleSetAttendance)
		r.Post("/events/{eventID}/attendance/{paddlerID}/toggle", s.handleToggleAttendance)
	})
}

func (s *Server) allowedOrigins() []string {
	if len(s.config.AllowedOrigins) > 0 {
		return s.config.AllowedOrigins
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}
