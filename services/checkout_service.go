package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/providers"
)

// fulfillmentWeekday is the weekly recurring fulfillment day. Invoice due
// dates are pinned to its next occurrence.
const fulfillmentWeekday = time.Friday

const invoiceReminderMessage = "Your order will be fulfilled tomorrow. Please settle the balance."

// CheckoutService drives the payment and invoice transitions of an order.
type CheckoutService interface {
	// Pay settles the order: a payment for its current total when the total
	// is positive, a direct pay-order call when the total is zero. The
	// returned payment is nil on the zero-total path.
	Pay(ctx context.Context, orderID, nonce, idempotencyKey string) (*models.Payment, *ServiceError)

	// CreateInvoice creates an unpublished invoice from the order and returns
	// it together with a re-fetched order snapshot.
	CreateInvoice(ctx context.Context, orderID string) (*models.Invoice, *models.Order, *ServiceError)
}

type checkoutServiceImpl struct {
	provider providers.CommerceProvider
	logger   *zap.Logger
	now      func() time.Time
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(provider providers.CommerceProvider, logger *zap.Logger) CheckoutService {
	return &checkoutServiceImpl{provider: provider, logger: logger, now: time.Now}
}

func (s *checkoutServiceImpl) Pay(ctx context.Context, orderID, nonce, idempotencyKey string) (*models.Payment, *ServiceError) {
	// Re-fetch the order so the charge uses the current total, not a stale
	// one from another session.
	order, err := s.provider.RetrieveOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("Pay: retrieve order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fromProvider("Failed to retrieve order", err)
	}
	if order == nil || order.TotalMoney == nil {
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Order has no total amount"}
	}

	amount, numErr := order.TotalMoney.Amount.Int64()
	if numErr != nil {
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Order total is not a valid amount"}
	}

	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	if amount > 0 {
		payment, err := s.provider.CreatePayment(ctx, &providers.CreatePaymentRequest{
			SourceID:       nonce,
			IdempotencyKey: idempotencyKey,
			AmountMoney:    order.TotalMoney,
			OrderID:        order.ID,
		})
		if err != nil {
			s.logger.Error("Pay: create payment failed", zap.String("order_id", orderID), zap.Error(err))
			return nil, fromProvider("Failed to create payment", err)
		}
		return toPaymentModel(payment), nil
	}

	// A zero-amount payment is invalid; a fully discounted order is settled
	// directly instead.
	if _, err := s.provider.PayOrder(ctx, order.ID, &providers.PayOrderRequest{IdempotencyKey: idempotencyKey}); err != nil {
		s.logger.Error("Pay: pay order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, fromProvider("Failed to pay order", err)
	}
	return nil, nil
}

func (s *checkoutServiceImpl) CreateInvoice(ctx context.Context, orderID string) (*models.Invoice, *models.Order, *ServiceError) {
	order, err := s.provider.RetrieveOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("CreateInvoice: retrieve order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, nil, fromProvider("Failed to retrieve order", err)
	}
	if order == nil {
		return nil, nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Order not found"}
	}

	dueDate := nextFulfillmentDate(s.now())
	req := &providers.CreateInvoiceRequest{
		IdempotencyKey: uuid.NewString(),
		Invoice: &providers.InvoiceData{
			LocationID: order.LocationID,
			OrderID:    order.ID,
			PaymentRequests: []providers.InvoicePaymentRequest{{
				RequestType: "BALANCE",
				DueDate:     dueDate.Format("2006-01-02"),
				Reminders: []providers.InvoiceReminder{{
					RelativeScheduledDays: -1,
					Message:               invoiceReminderMessage,
				}},
			}},
			DeliveryMethod:         "SHARE_MANUALLY",
			AcceptedPaymentMethods: &providers.AcceptedPaymentMethods{Card: true},
		},
	}

	invoice, err := s.provider.CreateInvoice(ctx, req)
	if err != nil {
		s.logger.Error("CreateInvoice failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, nil, fromProvider("Failed to create invoice", err)
	}

	// Return a fresh snapshot so the storefront sees the order as the
	// platform now holds it.
	updated, err := s.provider.RetrieveOrder(ctx, orderID)
	if err != nil {
		s.logger.Error("CreateInvoice: re-retrieve order failed", zap.String("order_id", orderID), zap.Error(err))
		return nil, nil, fromProvider("Failed to retrieve order", err)
	}
	return toInvoiceModel(invoice), toOrderModel(updated), nil
}

// nextFulfillmentDate returns the next occurrence of the fulfillment weekday
// strictly after ref; a ref already on that weekday rolls a full week.
func nextFulfillmentDate(ref time.Time) time.Time {
	days := (int(fulfillmentWeekday) - int(ref.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return ref.AddDate(0, 0, days)
}
