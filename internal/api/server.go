package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/kaiolohia/roster/internal/config"
	"github.com/kaiolohia/roster/pkg/core/services"
	"github.com/kaiolohia/roster/pkg/db"
)

// Server holds the dependencies shared by all HTTP handlers: the
// application configuration, the store, and the optional Google
// clients used by the publish and notify endpoints.
type Server struct {
	config *config.Config
	store  db.Store
	logger *zap.Logger
	sheets services.SheetWriter
	mailer services.EmailSender
}

// NewServer wires the dependencies into a new Server. sheets and mailer
// may be nil; the endpoints that need them return 503 in that case.
func NewServer(cfg *config.Config, store db.Store, logger *zap.Logger, sheets services.SheetWriter, mailer services.EmailSender) *Server {
	return &Server{
		config: cfg,
		store:  store,
		logger: logger,
		sheets: sheets,
		mailer: mailer,
	}
}

// envelope is the shape of every JSON response body.
type envelope map[string]interface{}

// writeJSON sends a JSON response with the given status code. Marshal
// failures fall back to a plain text 500 since the JSON error format
// itself can't be trusted at that point.
func (s *Server) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		s.logger.Error("Failed to marshal response", zap.Error(err))
		http.Error(w, "Internal Server Error: Failed to marshal JSON", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}

// errorJSON sends a standardized `{"error": "message"}` response.
func (s *Server) errorJSON(w http.ResponseWriter, err error, status ...int) {
	statusCode := http.StatusInternalServerError
	if len(status) > 0 {
		statusCode = status[0]
	}

	s.writeJSON(w, statusCode, envelope{"error": err.Error()})
}
