package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type AdRepositoryImpl struct {
	db *sqlx.DB
}

type CreateAdRequest struct {
	UserEmail   string `json:"userEmail"`
	UserPhone   string `json:"userPhone"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceInr    string `json:"priceInr"`
	Category    string `json:"category"`
	ShowPhone   *bool  `json:"showPhone"`
}

// UpdateAdRequest - частичное обновление: nil-поле означает "оставить как
// было", непустой указатель - установить новое значение.
type UpdateAdRequest struct {
	AdID        string  `json:"adId"`
	UserPhone   string  `json:"userPhone"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	PriceInr    *string `json:"priceInr"`
	Category    *string `json:"category"`
	ShowPhone   *bool   `json:"showPhone"`
}

func NewAdRepository(db *sqlx.DB) *AdRepositoryImpl {
	return &AdRepositoryImpl{db: db}
}

func (r *AdRepositoryImpl) Create(ctx context.Context, ad *models.Ad) error {
	query := `
        INSERT INTO product_ads
        (id, user_email, user_phone, title, description, price_inr, category, image_url, show_phone, created_at, expires_at)
        VALUES
        (:id, :user_email, :user_phone, :title, :description, :price_inr, :category, :image_url, :show_phone, :created_at, :expires_at)
    `

	if ad.ID == "" {
		ad.ID = uuid.New().String()
	}

	if ad.CreatedAt.IsZero() {
		ad.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, ad)
	if err != nil {
		return fmt.Errorf("ошибка при создании объявления: %w", err)
	}

	return nil
}

func (r *AdRepositoryImpl) GetByID(ctx context.Context, adID string) (*models.Ad, error) {
	query := `SELECT * FROM product_ads WHERE id = $1`

	var ad models.Ad
	err := r.db.GetContext(ctx, &ad, query, adID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("объявление с ID %s не найдено", adID)
		}
		return nil, fmt.Errorf("ошибка при получении объявления: %w", err)
	}

	return &ad, nil
}

// GetActive возвращает непросроченные объявления, новые первыми. Пустая
// категория означает отсутствие фильтра.
func (r *AdRepositoryImpl) GetActive(ctx context.Context, category string) ([]models.Ad, error) {
	var ads []models.Ad
	var err error

	if category != "" {
		query := `SELECT * FROM product_ads WHERE expires_at > CURRENT_TIMESTAMP AND category = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &ads, query, category)
	} else {
		query := `SELECT * FROM product_ads WHERE expires_at > CURRENT_TIMESTAMP ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &ads, query)
	}

	if err != nil {
		return nil, fmt.Errorf("ошибка при получении активных объявлений: %w", err)
	}

	return ads, nil
}

// GetByOwner ищет объявления владельца по дизъюнкции email-или-телефон.
// Пустые значения не участвуют в сравнении, иначе пустой email совпал бы
// с любым объявлением без email.
func (r *AdRepositoryImpl) GetByOwner(ctx context.Context, email, phone string) ([]models.Ad, error) {
	query := `SELECT * FROM product_ads WHERE ($1 <> '' AND user_email = $1) OR ($2 <> '' AND user_phone = $2) ORDER BY created_at DESC`

	var ads []models.Ad
	err := r.db.SelectContext(ctx, &ads, query, email, phone)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении объявлений владельца: %w", err)
	}

	return ads, nil
}

// Update перезаписывает объявление. Телефон владельца входит в условие WHERE:
// сменить владельца или обновить чужое объявление нельзя.
func (r *AdRepositoryImpl) Update(ctx context.Context, ad *models.Ad) error {
	query := `
		UPDATE product_ads SET
			title = :title,
			description = :description,
			price_inr = :price_inr,
			category = :category,
			image_url = :image_url,
			show_phone = :show_phone
		WHERE id = :id AND user_phone = :user_phone
	`

	result, err := r.db.NamedExecContext(ctx, query, ad)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("объявление не найдено или телефон не совпадает")
	}

	return nil
}

// Delete удаляет объявление только при совпадении id и владельца по
// email-или-телефон, тем же условием, что и выборка my-ads.
func (r *AdRepositoryImpl) Delete(ctx context.Context, adID, email, phone string) error {
	query := `DELETE FROM product_ads WHERE id = $1 AND (($2 <> '' AND user_email = $2) OR ($3 <> '' AND user_phone = $3))`

	result, err := r.db.ExecContext(ctx, query, adID, email, phone)
	if err != nil {
		return fmt.Errorf("ошибка при удалении объявления: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("объявление не найдено или владелец не совпадает")
	}

	return nil
}
