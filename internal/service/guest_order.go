package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
)

type GuestOrderRepo interface {
	// Возвращает entities.ErrOrderNotFound, если под фильтр ничего не подошло
	FindGuestOrder(ctx context.Context, f entities.GuestOrderFilter) (entities.Order, error)
}

type guestOrderService struct {
	logger *slog.Logger
	repo   GuestOrderRepo
}

func NewGuestOrderService(logger *slog.Logger, repo GuestOrderRepo) *guestOrderService {
	return &guestOrderService{
		logger: logger.With(slog.String("service", "guest_order")),
		repo:   repo,
	}
}

// GetGuestOrder отдает гостевой заказ по паре (id, токен доступа).
// Неизвестный id, неверный токен и заказ с владельцем неразличимы: всегда ErrOrderNotFound.
func (s *guestOrderService) GetGuestOrder(ctx context.Context, orderID, accessToken string) (entities.Order, error) {
	if !entities.ValidOrderID(orderID) {
		return entities.Order{}, entities.ErrInvalidOrderID
	}
	if !entities.ValidAccessToken(accessToken) {
		return entities.Order{}, entities.ErrInvalidAccessToken
	}

	order, err := s.repo.FindGuestOrder(ctx, entities.GuestOrderFilter{
		OrderID:     orderID,
		AccessToken: accessToken,
	})
	if errors.Is(err, entities.ErrOrderNotFound) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to find guest order: %w", err)
	}

	// Хранилище уже отфильтровало по токену и владельцу, но ответ не отдаем,
	// пока условие не подтверждено здесь же
	if !order.IsGuest() || subtle.ConstantTimeCompare([]byte(order.AccessToken), []byte(accessToken)) != 1 {
		s.logger.WarnContext(ctx, "store returned order outside guest filter", slog.String("order_id", orderID))
		return entities.Order{}, entities.ErrOrderNotFound
	}

	return order, nil
}
