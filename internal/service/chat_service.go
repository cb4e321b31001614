package service

import (
	"context"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/identity"
	"baraholkaCPT/internal/models"
	"baraholkaCPT/internal/repository"
)

type ChatService interface {
	SendRequest(ctx context.Context, adID string, buyer identity.Identity) (*models.ChatRequest, error)
	ResolveRequest(ctx context.Context, requestID, status string, seller identity.Identity) (*models.ChatRequest, error)
	GetUserRequests(ctx context.Context, caller identity.Identity) ([]models.ChatRequest, error)
}

type chatService struct {
	chatRepo repository.ChatRequestRepository
	adRepo   repository.AdRepository
}

func NewChatService(chatRepo repository.ChatRequestRepository, adRepo repository.AdRepository) ChatService {
	return &chatService{
		chatRepo: chatRepo,
		adRepo:   adRepo,
	}
}

// SendRequest создает запрос покупателя на контакт с продавцом. Контакты
// продавца снимаются с объявления в момент создания и дальше живут в самом
// запросе, последующие правки объявления их не меняют.
func (s *chatService) SendRequest(ctx context.Context, adID string, buyer identity.Identity) (*models.ChatRequest, error) {
	if adID == "" {
		return nil, apperr.Validation("отсутствует ID объявления")
	}
	if buyer.Empty() {
		return nil, apperr.Validation("требуется email или телефон покупателя")
	}

	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	// защитный инвариант: валидация при создании не пропускает объявление
	// без телефона, но снимок без единого контакта бесполезен
	if ad.UserEmail == "" && ad.UserPhone == "" {
		return nil, apperr.Validation("у продавца нет контактных данных")
	}

	request := &models.ChatRequest{
		AdID:        adID,
		BuyerEmail:  buyer.Email,
		BuyerPhone:  buyer.Phone,
		SellerEmail: ad.UserEmail,
		SellerPhone: ad.UserPhone,
		Status:      models.StatusPending,
	}

	err = s.chatRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}

	return request, nil
}

// ResolveRequest переводит запрос в accepted или declined. Решение принимает
// только сторона, совпавшая со снимком продавца. Повторное решение по уже
// закрытому запросу разрешено и перезаписывает статус.
func (s *chatService) ResolveRequest(ctx context.Context, requestID, status string, seller identity.Identity) (*models.ChatRequest, error) {
	if requestID == "" {
		return nil, apperr.Validation("отсутствует ID запроса")
	}
	if status != models.StatusAccepted && status != models.StatusDeclined {
		return nil, apperr.Validation("недопустимый статус %s", status)
	}
	if seller.Empty() {
		return nil, apperr.Validation("требуется email или телефон продавца")
	}

	request, err := s.chatRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if !identity.Match(seller.Email, seller.Phone, request.SellerEmail, request.SellerPhone) {
		return nil, apperr.Forbidden("продавец не совпадает с запросом")
	}

	err = s.chatRepo.UpdateStatus(ctx, requestID, status, seller.Email, seller.Phone)
	if err != nil {
		return nil, err
	}

	request.Status = status
	return request, nil
}

// GetUserRequests возвращает запросы, где вызывающий - покупатель или
// продавец. Контакты другой стороны раскрываются только по принятому
// запросу, до этого видна лишь своя половина.
func (s *chatService) GetUserRequests(ctx context.Context, caller identity.Identity) ([]models.ChatRequest, error) {
	if caller.Empty() {
		return nil, apperr.Validation("требуется email или телефон")
	}

	requests, err := s.chatRepo.GetByParty(ctx, caller.Email, caller.Phone)
	if err != nil {
		return nil, err
	}

	for i := range requests {
		maskRequest(&requests[i], caller)
	}

	return requests, nil
}

func maskRequest(r *models.ChatRequest, caller identity.Identity) {
	if r.Status == models.StatusAccepted {
		return
	}

	isBuyer := identity.Match(caller.Email, caller.Phone, r.BuyerEmail, r.BuyerPhone)
	isSeller := identity.Match(caller.Email, caller.Phone, r.SellerEmail, r.SellerPhone)

	if isBuyer && !isSeller {
		r.SellerEmail = ""
		r.SellerPhone = ""
	}

	if isSeller && !isBuyer {
		r.BuyerEmail = ""
		r.BuyerPhone = ""
	}
}
