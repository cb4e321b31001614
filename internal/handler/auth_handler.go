package handlers

import (
	"encoding/json"
	"net/http"

	"baraholkaCPT/internal/models"
)

// VerifyUser - минимальная проверка предъявленной личности. Аккаунтов и
// сессий в системе нет, личность утверждается парой email/телефон и после
// структурной проверки принимается на веру.
func (h *Handlers) VerifyUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		UserEmail string       `json:"userEmail"`
		UserPhone models.Phone `json:"userPhone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteServiceError(w, decodeError(err))
		return
	}

	if req.UserEmail == "" && req.UserPhone == "" {
		WriteError(w, "Отсутствуют данные пользователя", http.StatusBadRequest)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"message":   "Пользователь подтвержден",
		"userEmail": req.UserEmail,
		"userPhone": req.UserPhone,
	}, http.StatusOK)
}
