package handler

import (
	"time"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
)

// GuestOrderRequest тело запроса гостевого заказа.
// Поля any: отсутствие и неверный тип различаются при проверке, а не при декодировании.
type GuestOrderRequest struct {
	OrderID     any `json:"orderId" swaggertype:"string" example:"3f2b8c1e-9a4d-4e2f-8b7a-1c2d3e4f5a6b"`
	AccessToken any `json:"accessToken" swaggertype:"string"`
}

// Order представляет гостевой заказ. Токена доступа здесь нет намеренно
type Order struct {
	ID              string      `json:"id"`
	UserID          *string     `json:"user_id"`
	StatusID        *string     `json:"status_id"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   *string     `json:"customer_phone"`
	DeliveryMethod  string      `json:"delivery_method"`
	DeliveryAddress *string     `json:"delivery_address"`
	DeliveryCity    *string     `json:"delivery_city"`
	PaymentMethod   string      `json:"payment_method"`
	Subtotal        float64     `json:"subtotal"`
	Total           float64     `json:"total"`
	Notes           *string     `json:"notes"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"order_items"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ID             string    `json:"id"`
	OrderID        string    `json:"order_id"`
	ProductID      *string   `json:"product_id"`
	ModificationID *string   `json:"modification_id"`
	ServiceID      *string   `json:"service_id"`
	Name           string    `json:"name"`
	Price          float64   `json:"price"`
	Quantity       int       `json:"quantity"`
	Total          float64   `json:"total"`
	CreatedAt      time.Time `json:"created_at"`
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:             i.ID,
		OrderID:        i.OrderID,
		ProductID:      i.ProductID,
		ModificationID: i.ModificationID,
		ServiceID:      i.ServiceID,
		Name:           i.Name,
		Price:          i.Price,
		Quantity:       i.Quantity,
		Total:          i.Total,
		CreatedAt:      i.CreatedAt,
	}
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:              o.ID,
		UserID:          o.UserID,
		StatusID:        o.StatusID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		DeliveryMethod:  o.DeliveryMethod,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryCity:    o.DeliveryCity,
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		Total:           o.Total,
		Notes:           o.Notes,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Items:           items,
	}
}
