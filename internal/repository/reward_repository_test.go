package repository

import (
	"context"
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

var rewardColumns = []string{"reward_id", "user_email", "ad_id", "value", "created_at"}

func TestRewardRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRewardRepository(db)
	ctx := context.Background()

	adID := uuid.New().String()

	t.Run("Успешная выдача награды", func(t *testing.T) {
		reward := &models.Reward{
			RewardID:  adID,
			UserEmail: "seller@example.com",
			AdID:      adID,
			Value:     12,
		}

		mock.ExpectExec(`INSERT INTO rewards`).
			WithArgs(adID, "seller@example.com", adID, 12, sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(ctx, reward)

		assert.NoError(t, err)
		assert.False(t, reward.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Повторная выдача за то же объявление", func(t *testing.T) {
		reward := &models.Reward{
			RewardID:  adID,
			UserEmail: "seller@example.com",
			AdID:      adID,
			Value:     7,
		}

		mock.ExpectExec(`INSERT INTO rewards`).
			WillReturnError(errors.New(`pq: duplicate key value violates unique constraint "rewards_pkey"`))

		err := repo.Create(ctx, reward)

		assert.Error(t, err)
		assert.ErrorIs(t, err, apperr.ErrValidation)
		assert.Contains(t, err.Error(), "уже выдана")
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		reward := &models.Reward{RewardID: adID, UserEmail: "seller@example.com", AdID: adID, Value: 7}

		mock.ExpectExec(`INSERT INTO rewards`).
			WillReturnError(errors.New("connection failed"))

		err := repo.Create(ctx, reward)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при создании награды")
	})
}

func TestRewardRepository_GetByUserEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRewardRepository(db)
	ctx := context.Background()

	t.Run("Награды отсортированы по дате", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows(rewardColumns).
			AddRow("ad-2", "seller@example.com", "ad-2", 15, now).
			AddRow("ad-1", "seller@example.com", "ad-1", 5, now.Add(-time.Hour))

		mock.ExpectQuery(`SELECT \* FROM rewards WHERE user_email = \$1 ORDER BY created_at DESC`).
			WithArgs("seller@example.com").
			WillReturnRows(rows)

		rewards, err := repo.GetByUserEmail(ctx, "seller@example.com")

		require.NoError(t, err)
		require.Len(t, rewards, 2)
		assert.Equal(t, "ad-2", rewards[0].RewardID)
	})

	t.Run("Пустой результат", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM rewards WHERE user_email = \$1 ORDER BY created_at DESC`).
			WithArgs("nobody@example.com").
			WillReturnRows(sqlmock.NewRows(rewardColumns))

		rewards, err := repo.GetByUserEmail(ctx, "nobody@example.com")

		require.NoError(t, err)
		assert.Empty(t, rewards)
	})
}
