package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"baraholkaCPT/internal/identity"
	"baraholkaCPT/internal/models"
	"baraholkaCPT/internal/repository"
)

type MockAdService struct {
	mock.Mock
}

func (m *MockAdService) CreateAd(ctx context.Context, req repository.CreateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	args := m.Called(ctx, req, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) GetActiveAds(ctx context.Context, category string) ([]models.Ad, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) GetUserAds(ctx context.Context, caller identity.Identity) ([]models.Ad, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdService) GetAdDetail(ctx context.Context, adID string) (*models.Ad, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) UpdateAd(ctx context.Context, req repository.UpdateAdRequest, fileName string, file io.Reader, size int64) (*models.Ad, error) {
	args := m.Called(ctx, req, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdService) DeleteAd(ctx context.Context, adID string, caller identity.Identity) (*models.Ad, error) {
	args := m.Called(ctx, adID, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

type MockChatService struct {
	mock.Mock
}

func (m *MockChatService) SendRequest(ctx context.Context, adID string, buyer identity.Identity) (*models.ChatRequest, error) {
	args := m.Called(ctx, adID, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRequest), args.Error(1)
}

func (m *MockChatService) ResolveRequest(ctx context.Context, requestID, status string, seller identity.Identity) (*models.ChatRequest, error) {
	args := m.Called(ctx, requestID, status, seller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRequest), args.Error(1)
}

func (m *MockChatService) GetUserRequests(ctx context.Context, caller identity.Identity) ([]models.ChatRequest, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRequest), args.Error(1)
}

type MockRewardService struct {
	mock.Mock
}

func (m *MockRewardService) Issue(ctx context.Context, userEmail, adID string, value int) (*models.Reward, error) {
	args := m.Called(ctx, userEmail, adID, value)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reward), args.Error(1)
}

func (m *MockRewardService) GetUserRewards(ctx context.Context, email string) ([]models.Reward, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reward), args.Error(1)
}
