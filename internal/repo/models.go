package repo

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
)

type Order struct {
	ID              string         `db:"id"`
	UserID          sql.NullString `db:"user_id"`
	StatusID        sql.NullString `db:"status_id"`
	CustomerName    string         `db:"customer_name"`
	CustomerEmail   string         `db:"customer_email"`
	CustomerPhone   sql.NullString `db:"customer_phone"`
	DeliveryMethod  string         `db:"delivery_method"`
	DeliveryAddress sql.NullString `db:"delivery_address"`
	DeliveryCity    sql.NullString `db:"delivery_city"`
	PaymentMethod   string         `db:"payment_method"`
	Subtotal        float64        `db:"subtotal"`
	Total           float64        `db:"total"`
	Notes           sql.NullString `db:"notes"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
	AccessToken     string         `db:"access_token"`

	// json_agg по order_items, см. orderItemsColumn
	Items []byte `db:"order_items"`
}

// OrderItem повторяет строку order_items в том виде, в котором ее отдает json_agg.
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

func ItemToEntity(i OrderItem) entities.OrderItem {
	return entities.OrderItem{
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

func OrderToEntity(o Order) (entities.Order, error) {
	var items []OrderItem
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return entities.Order{}, fmt.Errorf("failed to decode order items: %w", err)
		}
	}

	order := entities.Order{
		ID:              o.ID,
		UserID:          nullStringToPtr(o.UserID),
		StatusID:        nullStringToPtr(o.StatusID),
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   nullStringToPtr(o.CustomerPhone),
		DeliveryMethod:  o.DeliveryMethod,
		DeliveryAddress: nullStringToPtr(o.DeliveryAddress),
		DeliveryCity:    nullStringToPtr(o.DeliveryCity),
		PaymentMethod:   o.PaymentMethod,
		Subtotal:        o.Subtotal,
		Total:           o.Total,
		Notes:           nullStringToPtr(o.Notes),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		AccessToken:     o.AccessToken,
		Items:           make([]entities.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order, nil
}

func nullStringToPtr(ns sql.NullString) *string {
	if ns.Valid {
		return &ns.String
	}
	return nil
}

func ptrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
