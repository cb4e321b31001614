package handlers

import (
	"encoding/json"
	"net/http"

	"baraholkaCPT/internal/models"
)

type RewardResponse struct {
	Message string         `json:"message"`
	Reward  *models.Reward `json:"reward"`
}

func (h *Handlers) CreateReward(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		UserEmail string `json:"userEmail" validate:"required,email"`
		AdID      string `json:"adId" validate:"required"`
		Value     int    `json:"value"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "email владельца и ID объявления обязательны", http.StatusBadRequest)
		return
	}

	if req.Value < 0 {
		WriteError(w, "Значение награды не может быть отрицательным", http.StatusBadRequest)
		return
	}

	reward, err := h.RewardService.Issue(r.Context(), req.UserEmail, req.AdID, req.Value)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, RewardResponse{Message: "Награда выдана", Reward: reward}, http.StatusCreated)
}

func (h *Handlers) GetUserRewards(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	email := r.URL.Query().Get("email")

	rewards, err := h.RewardService.GetUserRewards(r.Context(), email)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, rewards, http.StatusOK)
}
