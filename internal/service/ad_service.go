package service

import (
	"context"
	"io"
	"math"
	"strconv"
	"time"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/config"
	"baraholkaCPT/internal/identity"
	"baraholkaCPT/internal/models"
	"baraholkaCPT/internal/repository"
	"baraholkaCPT/internal/storage"

	"github.com/google/uuid"
)

type AdService interface {
	CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error)
	GetActiveAds(ctx context.Context, category string) ([]models.Ad, error)
	GetUserAds(ctx context.Context, caller identity.Identity) ([]models.Ad, error)
	GetAdDetail(ctx context.Context, adID string) (*models.Ad, error)
	UpdateAd(ctx context.Context, req repository.UpdateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error)
	DeleteAd(ctx context.Context, adID string, caller identity.Identity) (*models.Ad, error)
}

type adService struct {
	adRepo  repository.AdRepository
	storage storage.Storage
	cfg     *config.Config
}

func NewAdService(adRepo repository.AdRepository, storage storage.Storage, cfg *config.Config) AdService {
	return &adService{
		adRepo:  adRepo,
		storage: storage,
		cfg:     cfg,
	}
}

func parsePrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, apperr.Validation("цена должна быть числом")
	}
	// ParseFloat пропускает "NaN" и "Inf", а NaN вдобавок проходит
	// проверку на отрицательность
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, apperr.Validation("цена должна быть конечным числом")
	}
	if price < 0 {
		return 0, apperr.Validation("цена не может быть отрицательной")
	}
	return price, nil
}

func (s *adService) CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	if req.Title == "" {
		return nil, apperr.Validation("отсутствует заголовок")
	}
	if req.UserPhone == "" {
		return nil, apperr.Validation("отсутствует телефон")
	}
	if req.Category == "" {
		return nil, apperr.Validation("отсутствует категория")
	}
	if !models.ValidCategory(req.Category) {
		return nil, apperr.Validation("неизвестная категория %s", req.Category)
	}

	price, err := parsePrice(req.PriceInr)
	if err != nil {
		return nil, err
	}

	// по умолчанию телефон в объявлении виден
	showPhone := true
	if req.ShowPhone != nil {
		showPhone = *req.ShowPhone
	}

	now := time.Now()
	ad := &models.Ad{
		ID:          uuid.New().String(),
		UserEmail:   req.UserEmail,
		UserPhone:   req.UserPhone,
		Title:       req.Title,
		Description: req.Description,
		PriceInr:    price,
		Category:    req.Category,
		ShowPhone:   showPhone,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.cfg.AdDuration),
	}

	objectName := ""
	if file != nil {
		uploaded, imageURL, err := s.storage.UploadImage(ctx, ad.ID, fileName, file, size)
		if err != nil {
			return nil, apperr.Dependency(err, "загрузка изображения")
		}
		objectName = uploaded
		ad.ImageURL = imageURL
	}

	err = s.adRepo.Create(ctx, ad)
	if err != nil {
		if objectName != "" {
			s.storage.DeleteImage(ctx, objectName)
		}
		return nil, err
	}

	return ad, nil
}

func (s *adService) GetActiveAds(ctx context.Context, category string) ([]models.Ad, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, apperr.Validation("неизвестная категория %s", category)
	}

	ads, err := s.adRepo.GetActive(ctx, category)
	if err != nil {
		return nil, err
	}

	maskAds(ads)
	return ads, nil
}

func (s *adService) GetUserAds(ctx context.Context, caller identity.Identity) ([]models.Ad, error) {
	if caller.Empty() {
		return nil, apperr.Validation("требуется email или телефон")
	}

	// владелец видит свои объявления без маскирования, включая просроченные
	return s.adRepo.GetByOwner(ctx, caller.Email, caller.Phone)
}

func (s *adService) GetAdDetail(ctx context.Context, adID string) (*models.Ad, error) {
	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	maskAd(ad)
	return ad, nil
}

// UpdateAd меняет только переданные поля. Право на изменение дает строго
// совпадение телефона с владельцем, email здесь не учитывается - это
// наблюдаемая асимметрия с удалением, сохраненная намеренно.
func (s *adService) UpdateAd(ctx context.Context, req repository.UpdateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	if req.AdID == "" {
		return nil, apperr.Validation("отсутствует ID объявления")
	}
	if req.UserPhone == "" {
		return nil, apperr.Validation("отсутствует телефон")
	}

	ad, err := s.adRepo.GetByID(ctx, req.AdID)
	if err != nil {
		return nil, err
	}

	if ad.UserPhone != req.UserPhone {
		return nil, apperr.Forbidden("телефон не совпадает с владельцем объявления")
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, apperr.Validation("заголовок не может быть пустым")
		}
		ad.Title = *req.Title
	}

	if req.Description != nil {
		ad.Description = *req.Description
	}

	if req.PriceInr != nil {
		price, err := parsePrice(*req.PriceInr)
		if err != nil {
			return nil, err
		}
		ad.PriceInr = price
	}

	if req.Category != nil {
		if !models.ValidCategory(*req.Category) {
			return nil, apperr.Validation("неизвестная категория %s", *req.Category)
		}
		ad.Category = *req.Category
	}

	if req.ShowPhone != nil {
		ad.ShowPhone = *req.ShowPhone
	}

	// новая картинка замещает старую, отсутствие файла оставляет прежнюю
	if file != nil {
		_, imageURL, err := s.storage.UploadImage(ctx, ad.ID, fileName, file, size)
		if err != nil {
			return nil, apperr.Dependency(err, "загрузка изображения")
		}
		ad.ImageURL = imageURL
	}

	err = s.adRepo.Update(ctx, ad)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

func (s *adService) DeleteAd(ctx context.Context, adID string, caller identity.Identity) (*models.Ad, error) {
	if adID == "" {
		return nil, apperr.Validation("отсутствует ID объявления")
	}
	if caller.Phone == "" {
		return nil, apperr.Validation("отсутствует телефон")
	}

	ad, err := s.adRepo.GetByID(ctx, adID)
	if err != nil {
		return nil, err
	}

	if !identity.Match(caller.Email, caller.Phone, ad.UserEmail, ad.UserPhone) {
		return nil, apperr.Forbidden("владелец объявления не совпадает")
	}

	err = s.adRepo.Delete(ctx, adID, caller.Email, caller.Phone)
	if err != nil {
		return nil, err
	}

	return ad, nil
}

// maskAd прячет телефон продавца в публичных выдачах, если владелец его
// скрыл. Единственный путь к скрытому телефону - принятый запрос на контакт.
func maskAd(ad *models.Ad) {
	if !ad.ShowPhone {
		ad.UserPhone = ""
	}
}

func maskAds(ads []models.Ad) {
	for i := range ads {
		maskAd(&ads[i])
	}
}
