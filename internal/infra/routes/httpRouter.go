package routes

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"sales-assistant/internal/infra/handlers"
)

type Routes struct {
	Mux                *mux.Router
	GenerationHandlers *handlers.GenerationHandlers
	EmailEditHandlers  *handlers.EmailEditHandlers
}

func NewRoutes(mux *mux.Router, generationHandlers *handlers.GenerationHandlers, emailEditHandlers *handlers.EmailEditHandlers) *Routes {
	return &Routes{Mux: mux, GenerationHandlers: generationHandlers, EmailEditHandlers: emailEditHandlers}
}

func (r *Routes) Init() {
	api := r.Mux.PathPrefix("/api").Subrouter()

	api.HandleFunc("/generate-agenda", r.GenerationHandlers.GenerateAgenda).Methods(http.MethodPost)
	api.HandleFunc("/generate-follow-up", r.GenerationHandlers.GenerateFollowUp).Methods(http.MethodPost)
	api.HandleFunc("/save-email-edit", r.EmailEditHandlers.SaveEmailEdit).Methods(http.MethodPost)
	api.HandleFunc("/get-email-patterns", r.EmailEditHandlers.GetEmailPatterns).Methods(http.MethodGet)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)

	r.Mux.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(map[string]string{"error": "Method not allowed"})
	})
}
