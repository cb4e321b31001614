package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"baraholkaCPT/internal/config"
	"baraholkaCPT/internal/database"
	"baraholkaCPT/internal/service"
)

type Handlers struct {
	AdService     service.AdService
	ChatService   service.ChatService
	RewardService service.RewardService
	DB            *database.DB
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(db *database.DB, service *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AdService:     service.Ad,
		ChatService:   service.Chat,
		RewardService: service.Reward,
		DB:            db,
		Cfg:           config,
		Validate:      validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Backend working"))
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.DB != nil {
		if err := h.DB.HealthCheck(); err != nil {
			WriteError(w, "БД недоступна: "+err.Error(), http.StatusServiceUnavailable)
			return
		}
	}

	WriteSuccess(w, MessageResponse{Message: "ok"}, http.StatusOK)
}
