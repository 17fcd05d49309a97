package routes

import (
	"encoding/json"
	"net/http"
	"voice-notes/internal/infra/handlers"

	"github.com/gorilla/mux"
)

type Routes struct {
	Mux           *mux.Router
	SkillHandlers *handlers.SkillHandlers
}

func NewRoutes(mux *mux.Router, skillHandlers *handlers.SkillHandlers) *Routes {
	return &Routes{mux, skillHandlers}
}

func (r *Routes) Init() {
	r.Mux.HandleFunc("/", r.SkillHandlers.SkillWebhook).Methods(http.MethodPost)

	r.Mux.HandleFunc("/healthCheck", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods(http.MethodGet)
}
