package models

import (
	"time"
)

// Статусы запроса на контакт. pending - единственный стартовый статус,
// accepted и declined - терминальные.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Categories - закрытый список категорий объявлений.
var Categories = []string{"Books", "Electronics", "Sports", "Clothing & Fashion"}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Ad struct {
	ID          string    `json:"id" db:"id"`
	UserEmail   string    `json:"userEmail" db:"user_email"`
	UserPhone   string    `json:"userPhone" db:"user_phone"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	PriceInr    float64   `json:"priceInr" db:"price_inr"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"imageUrl" db:"image_url"`
	ShowPhone   bool      `json:"showPhone" db:"show_phone"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	ExpiresAt   time.Time `json:"expiresAt" db:"expires_at"`
}

// Active - объявление видимо, пока не истек expires_at. Фоновой чистки нет,
// видимость вычисляется на чтении.
func (a *Ad) Active(now time.Time) bool {
	return now.Before(a.ExpiresAt)
}

type ChatRequest struct {
	ID          string    `json:"id" db:"id"`
	AdID        string    `json:"adId" db:"ad_id"`
	BuyerEmail  string    `json:"buyerEmail" db:"buyer_email"`
	BuyerPhone  string    `json:"buyerPhone" db:"buyer_phone"`
	SellerEmail string    `json:"sellerEmail" db:"seller_email"`
	SellerPhone string    `json:"sellerPhone" db:"seller_phone"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

func (r *ChatRequest) Terminal() bool {
	return r.Status == StatusAccepted || r.Status == StatusDeclined
}

type Reward struct {
	RewardID  string    `json:"rewardId" db:"reward_id"`
	UserEmail string    `json:"userEmail" db:"user_email"`
	AdID      string    `json:"adId" db:"ad_id"`
	Value     int       `json:"value" db:"value"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
