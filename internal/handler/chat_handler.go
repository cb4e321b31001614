package handlers

import (
	"encoding/json"
	"net/http"

	"baraholkaCPT/internal/identity"
	"baraholkaCPT/internal/models"
)

type ChatRequestResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type ChatResolveResponse struct {
	Message string              `json:"message"`
	Request *models.ChatRequest `json:"request"`
}

func (h *Handlers) SendChatRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		AdID       string       `json:"adId" validate:"required"`
		BuyerEmail string       `json:"buyerEmail"`
		BuyerPhone models.Phone `json:"buyerPhone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteServiceError(w, decodeError(err))
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует ID объявления", http.StatusBadRequest)
		return
	}

	buyer := identity.Identity{Email: req.BuyerEmail, Phone: req.BuyerPhone.String()}

	request, err := h.ChatService.SendRequest(r.Context(), req.AdID, buyer)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ChatRequestResponse{Message: "Запрос отправлен", RequestID: request.ID}, http.StatusCreated)
}

func (h *Handlers) UpdateChatRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		RequestID   string       `json:"requestId" validate:"required"`
		Status      string       `json:"status" validate:"required,oneof=accepted declined"`
		SellerEmail string       `json:"sellerEmail"`
		SellerPhone models.Phone `json:"sellerPhone"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteServiceError(w, decodeError(err))
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Недопустимый статус или отсутствует ID запроса", http.StatusBadRequest)
		return
	}

	seller := identity.Identity{Email: req.SellerEmail, Phone: req.SellerPhone.String()}

	request, err := h.ChatService.ResolveRequest(r.Context(), req.RequestID, req.Status, seller)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, ChatResolveResponse{Message: "Запрос " + request.Status, Request: request}, http.StatusOK)
}

func (h *Handlers) GetUserRequests(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	caller := identity.Identity{
		Email: r.URL.Query().Get("email"),
		Phone: r.URL.Query().Get("phone"),
	}

	requests, err := h.ChatService.GetUserRequests(r.Context(), caller)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteSuccess(w, requests, http.StatusOK)
}
