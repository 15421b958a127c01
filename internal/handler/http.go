package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/guest-order-service/internal/entities"
	"github.com/SergeyBogomolovv/guest-order-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

const maxBodyBytes = 1 << 16

const (
	msgOrderIDRequired     = "Order ID is required and must be a string"
	msgAccessTokenRequired = "Access token is required and must be a string"
	msgInvalidOrderID      = "Invalid order ID format"
	msgInvalidAccessToken  = "Invalid access token format"
	msgNotFound            = "Order not found or invalid access token"
	msgInternal            = "Internal server error"
)

type GuestOrderGetter interface {
	GetGuestOrder(ctx context.Context, orderID, accessToken string) (entities.Order, error)
}

type HTTPHandler struct {
	logger *slog.Logger
	svc    GuestOrderGetter
}

func NewHTTPHandler(logger *slog.Logger, svc GuestOrderGetter) *HTTPHandler {
	return &HTTPHandler{
		logger: logger.With(slog.String("handler", "http")),
		svc:    svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(corsHeaders)
		r.Options("/guest-order", h.Preflight)
		r.Post("/guest-order", h.GetGuestOrder)
	})
}

// Preflight отвечает на CORS-запрос браузера. Тело запроса не читается.
func (h *HTTPHandler) Preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetGuestOrder возвращает гостевой заказ по id и токену доступа.
// @Summary      Получить гостевой заказ
// @Description  Возвращает заказ, оформленный без аккаунта, вместе с позициями. Токен в ответ не попадает
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        request  body      GuestOrderRequest  true  "Идентификатор заказа и токен доступа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден или токен неверный"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /guest-order [post]
func (h *HTTPHandler) GetGuestOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	guestOrderRequestsInProgress.Inc()
	defer guestOrderRequestsInProgress.Dec()
	timer := prometheus.NewTimer(guestOrderRequestDuration)
	defer timer.ObserveDuration()

	var req GuestOrderRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := utils.DecodeBody(r, &req); err != nil {
		// не JSON-объект: дальше это просто запрос без полей
		req = GuestOrderRequest{}
	}

	orderID, ok := req.OrderID.(string)
	if !ok || orderID == "" {
		h.writeError(w, outcomeBadRequest, msgOrderIDRequired, http.StatusBadRequest)
		return
	}
	accessToken, ok := req.AccessToken.(string)
	if !ok || accessToken == "" {
		h.writeError(w, outcomeBadRequest, msgAccessTokenRequired, http.StatusBadRequest)
		return
	}

	order, err := h.svc.GetGuestOrder(ctx, orderID, accessToken)

	switch {
	case errors.Is(err, entities.ErrInvalidOrderID):
		h.writeError(w, outcomeBadRequest, msgInvalidOrderID, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrInvalidAccessToken):
		h.writeError(w, outcomeBadRequest, msgInvalidAccessToken, http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		h.writeError(w, outcomeNotFound, msgNotFound, http.StatusNotFound)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to get guest order", slog.Any("error", err), slog.String("order_id", orderID))
		h.writeError(w, outcomeInternalError, msgInternal, http.StatusInternalServerError)
		return
	}

	guestOrderRequestTotal.WithLabelValues(outcomeOK).Inc()
	if err := utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK); err != nil {
		h.logger.ErrorContext(ctx, "failed to write guest order", slog.Any("error", err), slog.String("order_id", orderID))
	}
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, outcome, message string, code int) {
	guestOrderRequestTotal.WithLabelValues(outcome).Inc()
	utils.WriteError(w, message, code)
}

func corsHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
		next.ServeHTTP(w, r)
	})
}
