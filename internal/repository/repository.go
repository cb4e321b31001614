package repository

import (
	"context"

	"baraholkaCPT/internal/models"

	"github.com/jmoiron/sqlx"
)

type AdRepository interface {
	Create(ctx context.Context, ad *models.Ad) error
	GetByID(ctx context.Context, adID string) (*models.Ad, error)
	GetActive(ctx context.Context, category string) ([]models.Ad, error)
	GetByOwner(ctx context.Context, email, phone string) ([]models.Ad, error)
	Update(ctx context.Context, ad *models.Ad) error
	Delete(ctx context.Context, adID, email, phone string) error
}

type ChatRequestRepository interface {
	Create(ctx context.Context, request *models.ChatRequest) error
	GetByID(ctx context.Context, requestID string) (*models.ChatRequest, error)
	UpdateStatus(ctx context.Context, requestID, status, sellerEmail, sellerPhone string) error
	GetByParty(ctx context.Context, email, phone string) ([]models.ChatRequest, error)
}

type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	GetByUserEmail(ctx context.Context, email string) ([]models.Reward, error)
}

type Repository struct {
	Ad     AdRepository
	Chat   ChatRequestRepository
	Reward RewardRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Ad:     NewAdRepository(db),
		Chat:   NewChatRequestRepository(db),
		Reward: NewRewardRepository(db),
	}
}
