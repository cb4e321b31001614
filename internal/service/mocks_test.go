package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"baraholkaCPT/internal/models"
)

type MockAdRepository struct {
	mock.Mock
}

func (m *MockAdRepository) Create(ctx context.Context, ad *models.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) GetByID(ctx context.Context, adID string) (*models.Ad, error) {
	args := m.Called(ctx, adID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ad), args.Error(1)
}

func (m *MockAdRepository) GetActive(ctx context.Context, category string) ([]models.Ad, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdRepository) GetByOwner(ctx context.Context, email, phone string) ([]models.Ad, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ad), args.Error(1)
}

func (m *MockAdRepository) Update(ctx context.Context, ad *models.Ad) error {
	args := m.Called(ctx, ad)
	return args.Error(0)
}

func (m *MockAdRepository) Delete(ctx context.Context, adID, email, phone string) error {
	args := m.Called(ctx, adID, email, phone)
	return args.Error(0)
}

type MockChatRequestRepository struct {
	mock.Mock
}

func (m *MockChatRequestRepository) Create(ctx context.Context, request *models.ChatRequest) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockChatRequestRepository) GetByID(ctx context.Context, requestID string) (*models.ChatRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ChatRequest), args.Error(1)
}

func (m *MockChatRequestRepository) UpdateStatus(ctx context.Context, requestID, status, sellerEmail, sellerPhone string) error {
	args := m.Called(ctx, requestID, status, sellerEmail, sellerPhone)
	return args.Error(0)
}

func (m *MockChatRequestRepository) GetByParty(ctx context.Context, email, phone string) ([]models.ChatRequest, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChatRequest), args.Error(1)
}

type MockRewardRepository struct {
	mock.Mock
}

func (m *MockRewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	args := m.Called(ctx, reward)
	return args.Error(0)
}

func (m *MockRewardRepository) GetByUserEmail(ctx context.Context, email string) ([]models.Reward, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Reward), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadImage(ctx context.Context, adID string, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, adID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteImage(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
