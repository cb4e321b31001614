package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type RewardRepositoryImpl struct {
	db *sqlx.DB
}

func NewRewardRepository(db *sqlx.DB) *RewardRepositoryImpl {
	return &RewardRepositoryImpl{db: db}
}

// Create сохраняет награду. reward_id детерминированно выводится из id
// объявления, поэтому повторная выдача упирается в первичный ключ.
func (r *RewardRepositoryImpl) Create(ctx context.Context, reward *models.Reward) error {
	query := `
        INSERT INTO rewards
        (reward_id, user_email, ad_id, value, created_at)
        VALUES
        (:reward_id, :user_email, :ad_id, :value, :created_at)
    `

	if reward.CreatedAt.IsZero() {
		reward.CreatedAt = time.Now()
	}

	_, err := r.db.NamedExecContext(ctx, query, reward)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key value") {
			return apperr.Validation("награда за объявление %s уже выдана", reward.AdID)
		}
		return fmt.Errorf("ошибка при создании награды: %w", err)
	}

	return nil
}

func (r *RewardRepositoryImpl) GetByUserEmail(ctx context.Context, email string) ([]models.Reward, error) {
	query := `SELECT * FROM rewards WHERE user_email = $1 ORDER BY created_at DESC`

	var rewards []models.Reward
	err := r.db.SelectContext(ctx, &rewards, query, email)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении наград: %w", err)
	}

	return rewards, nil
}
