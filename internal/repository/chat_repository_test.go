package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/models"
)

var chatColumns = []string{
	"id", "ad_id", "buyer_email", "buyer_phone",
	"seller_email", "seller_phone", "status", "created_at",
}

func testRequest() *models.ChatRequest {
	return &models.ChatRequest{
		ID:          uuid.New().String(),
		AdID:        uuid.New().String(),
		BuyerEmail:  "buyer@example.com",
		BuyerPhone:  "1112223333",
		SellerEmail: "seller@example.com",
		SellerPhone: "9876543210",
		Status:      models.StatusPending,
		CreatedAt:   time.Now(),
	}
}

func requestRow(r *models.ChatRequest) *sqlmock.Rows {
	return sqlmock.NewRows(chatColumns).AddRow(
		r.ID, r.AdID, r.BuyerEmail, r.BuyerPhone,
		r.SellerEmail, r.SellerPhone, r.Status, r.CreatedAt,
	)
}

func TestChatRequestRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChatRequestRepository(db)
	ctx := context.Background()

	t.Run("Успешное создание запроса", func(t *testing.T) {
		request := testRequest()

		mock.ExpectExec(`INSERT INTO chat_requests`).
			WithArgs(
				request.ID,
				request.AdID,
				request.BuyerEmail,
				request.BuyerPhone,
				request.SellerEmail,
				request.SellerPhone,
				models.StatusPending,
				sqlmock.AnyArg(),
			).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, request)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ID и статус проставляются по умолчанию", func(t *testing.T) {
		request := testRequest()
		request.ID = ""
		request.Status = ""

		mock.ExpectExec(`INSERT INTO chat_requests`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, request)

		assert.NoError(t, err)
		assert.NotEmpty(t, request.ID)
		assert.Equal(t, models.StatusPending, request.Status)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		request := testRequest()

		mock.ExpectExec(`INSERT INTO chat_requests`).
			WillReturnError(errors.New("connection failed"))

		err := repo.Create(ctx, request)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании запроса")
	})
}

func TestChatRequestRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChatRequestRepository(db)
	ctx := context.Background()

	t.Run("Успешное получение запроса", func(t *testing.T) {
		expected := testRequest()

		mock.ExpectQuery(`SELECT \* FROM chat_requests WHERE id = \$1`).
			WithArgs(expected.ID).
			WillReturnRows(requestRow(expected))

		request, err := repo.GetByID(ctx, expected.ID)

		require.NoError(t, err)
		assert.Equal(t, expected.ID, request.ID)
		assert.Equal(t, expected.SellerPhone, request.SellerPhone)
	})

	t.Run("Запрос не найден", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM chat_requests WHERE id = \$1`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		request, err := repo.GetByID(ctx, "missing")

		assert.Error(t, err)
		assert.Nil(t, request)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestChatRequestRepository_UpdateStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChatRequestRepository(db)
	ctx := context.Background()

	t.Run("Продавец принимает запрос", func(t *testing.T) {
		mock.ExpectExec(`UPDATE chat_requests SET status = \$1`).
			WithArgs(models.StatusAccepted, "req-1", "seller@example.com", "9876543210").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "req-1", models.StatusAccepted, "seller@example.com", "9876543210")

		assert.NoError(t, err)
	})

	t.Run("Повторное решение перезаписывает статус", func(t *testing.T) {
		// условие WHERE нарочно не проверяет текущий статус
		mock.ExpectExec(`UPDATE chat_requests SET status = \$1`).
			WithArgs(models.StatusDeclined, "req-1", "seller@example.com", "").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, "req-1", models.StatusDeclined, "seller@example.com", "")

		assert.NoError(t, err)
	})

	t.Run("Продавец не совпадает", func(t *testing.T) {
		mock.ExpectExec(`UPDATE chat_requests SET status = \$1`).
			WithArgs(models.StatusAccepted, "req-1", "other@example.com", "1112223333").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, "req-1", models.StatusAccepted, "other@example.com", "1112223333")

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})
}

func TestChatRequestRepository_GetByParty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewChatRequestRepository(db)
	ctx := context.Background()

	t.Run("Четырехсторонняя дизъюнкция покупателя и продавца", func(t *testing.T) {
		expected := testRequest()

		mock.ExpectQuery(`SELECT \* FROM chat_requests WHERE`).
			WithArgs("buyer@example.com", "1112223333").
			WillReturnRows(requestRow(expected))

		requests, err := repo.GetByParty(ctx, "buyer@example.com", "1112223333")

		require.NoError(t, err)
		require.Len(t, requests, 1)
		assert.Equal(t, expected.ID, requests[0].ID)
	})

	t.Run("Пустой результат", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM chat_requests WHERE`).
			WithArgs("nobody@example.com", "").
			WillReturnRows(sqlmock.NewRows(chatColumns))

		requests, err := repo.GetByParty(ctx, "nobody@example.com", "")

		require.NoError(t, err)
		assert.Empty(t, requests)
	})
}
