package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
	"github.com/SergeyBogomolovv/guest-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var orderColumns = []string{
	"o.id", "o.user_id", "o.status_id",
	"o.customer_name", "o.customer_email", "o.customer_phone",
	"o.delivery_method", "o.delivery_address", "o.delivery_city",
	"o.payment_method", "o.subtotal", "o.total", "o.notes",
	"o.created_at", "o.updated_at", "o.access_token",
}

// Позиции подтягиваются тем же запросом, чтобы на запрос был ровно один поход в БД
const orderItemsColumn = `COALESCE((
	SELECT json_agg(oi ORDER BY oi.created_at)
	FROM order_items oi
	WHERE oi.order_id = o.id
), '[]'::json) AS order_items`

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

// NewPostgresRepo ожидает подключение под сервисной ролью: RLS здесь не действует,
// поэтому правило доступа целиком задается GuestOrderPredicate.
func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// GuestOrderPredicate: id совпадает, токен совпадает, владельца нет.
func GuestOrderPredicate(f entities.GuestOrderFilter) sq.Sqlizer {
	return sq.Eq{
		"o.id":           f.OrderID,
		"o.access_token": f.AccessToken,
		"o.user_id":      nil,
	}
}

func (r *postgresRepo) guestOrderQuery(f entities.GuestOrderFilter) (string, []any) {
	return r.qb.Select(orderColumns...).
		Column(orderItemsColumn).
		From("orders o").
		Where(GuestOrderPredicate(f)).
		Limit(1).
		MustSql()
}

func (r *postgresRepo) FindGuestOrder(ctx context.Context, f entities.GuestOrderFilter) (entities.Order, error) {
	query, args := r.guestOrderQuery(f)

	var row Order
	err := r.getContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get guest order: %w", err)
	}

	return OrderToEntity(row)
}

func (r *postgresRepo) SaveOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns(
			"id", "user_id", "status_id",
			"customer_name", "customer_email", "customer_phone",
			"delivery_method", "delivery_address", "delivery_city",
			"payment_method", "subtotal", "total", "notes",
			"created_at", "updated_at", "access_token",
		).
		Values(
			o.ID, ptrToNullString(o.UserID), ptrToNullString(o.StatusID),
			o.CustomerName, o.CustomerEmail, ptrToNullString(o.CustomerPhone),
			o.DeliveryMethod, ptrToNullString(o.DeliveryAddress), ptrToNullString(o.DeliveryCity),
			o.PaymentMethod, o.Subtotal, o.Total, ptrToNullString(o.Notes),
			o.CreatedAt, o.UpdatedAt, o.AccessToken,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		MustSql()

	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}
	return nil
}

func (r *postgresRepo) SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "product_id", "modification_id", "service_id",
			"name", "price", "quantity", "total", "created_at").
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, it := range items {
		q = q.Values(
			it.ID,
			orderID,
			ptrToNullString(it.ProductID),
			ptrToNullString(it.ModificationID),
			ptrToNullString(it.ServiceID),
			it.Name,
			it.Price,
			it.Quantity,
			it.Total,
			it.CreatedAt,
		)
	}

	query, args := q.MustSql()
	_, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.ExecContext(ctx, query, args...)
	}
	return r.db.ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	tx := trm.ExtractTx(ctx)
	if tx != nil {
		return tx.GetContext(ctx, dest, query, args...)
	}
	return r.db.GetContext(ctx, dest, query, args...)
}
