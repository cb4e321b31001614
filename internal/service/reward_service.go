package service

import (
	"context"
	"math/rand"

	"baraholkaCPT/internal/apperr"
	"baraholkaCPT/internal/config"
	"baraholkaCPT/internal/models"
	"baraholkaCPT/internal/repository"
)

// DrawFunc возвращает случайное значение награды из включительного диапазона
// [min, max]. Вынесено в тип, чтобы тесты подставляли предсказуемый источник.
type DrawFunc func(min, max int) int

func UniformDraw(min, max int) int {
	return min + rand.Intn(max-min+1)
}

type RewardService interface {
	Issue(ctx context.Context, userEmail, adID string, value int) (*models.Reward, error)
	GetUserRewards(ctx context.Context, email string) ([]models.Reward, error)
}

type rewardService struct {
	rewardRepo repository.RewardRepository
	cfg        *config.Config
	draw       DrawFunc
}

func NewRewardService(rewardRepo repository.RewardRepository, cfg *config.Config) RewardService {
	return NewRewardServiceWithDraw(rewardRepo, cfg, UniformDraw)
}

func NewRewardServiceWithDraw(rewardRepo repository.RewardRepository, cfg *config.Config, draw DrawFunc) RewardService {
	return &rewardService{
		rewardRepo: rewardRepo,
		cfg:        cfg,
		draw:       draw,
	}
}

// Issue выдает награду за созданное объявление. reward_id равен id
// объявления, так что на одно объявление приходится не больше одной награды.
// value <= 0 означает "разыграть из настроенного диапазона"; явно
// переданное значение обязано попадать в тот же диапазон.
func (s *rewardService) Issue(ctx context.Context, userEmail, adID string, value int) (*models.Reward, error) {
	if userEmail == "" {
		return nil, apperr.Validation("отсутствует email владельца")
	}
	if adID == "" {
		return nil, apperr.Validation("отсутствует ID объявления")
	}

	if value <= 0 {
		value = s.draw(s.cfg.RewardMinValue, s.cfg.RewardMaxValue)
	} else if value < s.cfg.RewardMinValue || value > s.cfg.RewardMaxValue {
		return nil, apperr.Validation("значение награды должно быть в диапазоне [%d, %d]",
			s.cfg.RewardMinValue, s.cfg.RewardMaxValue)
	}

	reward := &models.Reward{
		RewardID:  adID,
		UserEmail: userEmail,
		AdID:      adID,
		Value:     value,
	}

	err := s.rewardRepo.Create(ctx, reward)
	if err != nil {
		return nil, err
	}

	return reward, nil
}

func (s *rewardService) GetUserRewards(ctx context.Context, email string) ([]models.Reward, error) {
	if email == "" {
		return nil, apperr.Validation("отсутствует email")
	}

	return s.rewardRepo.GetByUserEmail(ctx, email)
}
