package service

import (
	"baraholkaCPT/internal/config"
	"baraholkaCPT/internal/repository"
	"baraholkaCPT/internal/storage"
)

type Service struct {
	Ad     AdService
	Chat   ChatService
	Reward RewardService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Ad:     NewAdService(rep.Ad, storage, cfg),
		Chat:   NewChatService(rep.Chat, rep.Ad),
		Reward: NewRewardService(rep.Reward, cfg),
	}
}
