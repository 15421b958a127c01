package entities

import (
	"errors"
	"time"
)

type Order struct {
	ID       string
	UserID   *string
	StatusID *string

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string

	DeliveryMethod  string
	DeliveryAddress *string
	DeliveryCity    *string

	PaymentMethod string
	Subtotal      float64
	Total         float64
	Notes         *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Секрет гостевого доступа, наружу не отдается
	AccessToken string

	Items []OrderItem
}

// IsGuest сообщает, оформлен ли заказ без аккаунта.
func (o Order) IsGuest() bool {
	return o.UserID == nil
}

type OrderItem struct {
	ID             string
	OrderID        string
	ProductID      *string
	ModificationID *string
	ServiceID      *string
	Name           string
	Price          float64
	Quantity       int
	Total          float64
	CreatedAt      time.Time
}

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderID     = errors.New("invalid order id format")
	ErrInvalidAccessToken = errors.New("invalid access token format")
)
