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

type ChatRequestRepositoryImpl struct {
	db *sqlx.DB
}

func NewChatRequestRepository(db *sqlx.DB) *ChatRequestRepositoryImpl {
	return &ChatRequestRepositoryImpl{db: db}
}

func (r *ChatRequestRepositoryImpl) Create(ctx context.Context, request *models.ChatRequest) error {
	query := `
        INSERT INTO chat_requests
        (id, ad_id, buyer_email, buyer_phone, seller_email, seller_phone, status, created_at)
        VALUES
        (:id, :ad_id, :buyer_email, :buyer_phone, :seller_email, :seller_phone, :status, :created_at)
    `

	if request.ID == "" {
		request.ID = uuid.New().String()
	}

	if request.Status == "" {
		request.Status = models.StatusPending
	}

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, request)
	if err != nil {
		return fmt.Errorf("ошибка при создании запроса на контакт: %w", err)
	}

	return nil
}

func (r *ChatRequestRepositoryImpl) GetByID(ctx context.Context, requestID string) (*models.ChatRequest, error) {
	query := `SELECT * FROM chat_requests WHERE id = $1`

	var request models.ChatRequest
	err := r.db.GetContext(ctx, &request, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("запрос с ID %s не найден", requestID)
		}
		return nil, fmt.Errorf("ошибка при получении запроса: %w", err)
	}

	return &request, nil
}

// UpdateStatus меняет статус запроса. Совпадение продавца входит в WHERE,
// как и при удалении объявления. Перевода из терминального статуса нарочно
// не запрещаем: повторное решение продавца перезаписывает прежнее.
func (r *ChatRequestRepositoryImpl) UpdateStatus(ctx context.Context, requestID, status, sellerEmail, sellerPhone string) error {
	query := `UPDATE chat_requests SET status = $1 WHERE id = $2 AND (($3 <> '' AND seller_email = $3) OR ($4 <> '' AND seller_phone = $4))`

	result, err := r.db.ExecContext(ctx, query, status, requestID, sellerEmail, sellerPhone)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении статуса запроса: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return apperr.NotFound("запрос не найден или продавец не совпадает")
	}

	return nil
}

// GetByParty возвращает запросы, где вызывающий совпал с покупателем ИЛИ
// продавцом, четырехсторонняя дизъюнкция из оригинальной выборки my-requests.
func (r *ChatRequestRepositoryImpl) GetByParty(ctx context.Context, email, phone string) ([]models.ChatRequest, error) {
	query := `SELECT * FROM chat_requests WHERE ($1 <> '' AND (buyer_email = $1 OR seller_email = $1)) OR ($2 <> '' AND (buyer_phone = $2 OR seller_phone = $2)) ORDER BY created_at DESC`

	var requests []models.ChatRequest
	err := r.db.SelectContext(ctx, &requests, query, email, phone)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении запросов: %w", err)
	}

	return requests, nil
}
