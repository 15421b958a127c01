package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/guest-order-service/internal/config"
	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
	"github.com/SergeyBogomolovv/guest-order-service/internal/postgres"
	"github.com/SergeyBogomolovv/guest-order-service/internal/repo"
	"github.com/SergeyBogomolovv/guest-order-service/pkg/token"
	"github.com/SergeyBogomolovv/guest-order-service/pkg/trm"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type orderSaver interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveItems(ctx context.Context, orderID string, items []entities.OrderItem) error
}

func main() {
	var (
		count       int
		owned       int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "order-generator",
		Short: "Seed guest orders and print their id/token pairs",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.New()
			if err := conf.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}

			db, err := postgres.New(cmd.Context(), conf.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			return generate(cmd.Context(), trm.NewManager(db, nil), repo.NewPostgresRepo(db), count, owned, concurrency)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 10, "number of guest orders")
	cmd.Flags().IntVar(&owned, "owned", 1, "number of orders with an owner (never reachable as guest)")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", 4, "parallel inserts")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("order generator failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func init() {
	godotenv.Load()
}

func generate(ctx context.Context, tx trm.Manager, saver orderSaver, count, owned, concurrency int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i := range count + owned {
		var owner *string
		if i >= count {
			id := uuid.NewString()
			owner = &id
		}

		g.Go(func() error {
			order, err := randomOrder(owner)
			if err != nil {
				return err
			}

			// заказ и позиции пишутся атомарно, как при оформлении
			err = tx.Do(ctx, func(ctx context.Context) error {
				if err := saver.SaveOrder(ctx, order); err != nil {
					return err
				}
				return saver.SaveItems(ctx, order.ID, order.Items)
			})
			if err != nil {
				return err
			}

			kind := "guest"
			if owner != nil {
				kind = "owned"
			}
			fmt.Printf("%s %s %s\n", order.ID, order.AccessToken, kind)
			return nil
		})
	}

	return g.Wait()
}

func randomOrder(owner *string) (entities.Order, error) {
	tok, err := token.Generate()
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now().UTC()
	id := uuid.NewString()
	city := "City" + randomString(4)
	address := fmt.Sprintf("Street %d", rand.Intn(100))

	order := entities.Order{
		ID:              id,
		UserID:          owner,
		CustomerName:    "John Doe",
		CustomerEmail:   fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		DeliveryMethod:  "courier",
		DeliveryAddress: &address,
		DeliveryCity:    &city,
		PaymentMethod:   "card",
		CreatedAt:       now,
		UpdatedAt:       now,
		AccessToken:     tok,
	}

	for range 1 + rand.Intn(3) {
		productID := uuid.NewString()
		qty := 1 + rand.Intn(5)
		price := float64(100+rand.Intn(900)) / 10

		order.Items = append(order.Items, entities.OrderItem{
			ID:        uuid.NewString(),
			OrderID:   id,
			ProductID: &productID,
			Name:      "Item " + randomString(5),
			Price:     price,
			Quantity:  qty,
			Total:     price * float64(qty),
			CreatedAt: now,
		})
		order.Subtotal += price * float64(qty)
	}
	order.Total = order.Subtotal

	return order, nil
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}
