package model

// StatusError reports an illegal status transition. Handlers surface it as a
// 400 with the message unchanged.
type StatusError struct {
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func NewStatusError(message string) *StatusError {
	return &StatusError{Message: message}
}

type OrderStatus string

const (
	OrderStatusPending       OrderStatus = "pending"
	OrderStatusConfirmed     OrderStatus = "confirmed"
	OrderStatusProcessing    OrderStatus = "processing"
	OrderStatusShipped       OrderStatus = "shipped"
	OrderStatusDelivered     OrderStatus = "delivered"
	OrderStatusCancelled     OrderStatus = "cancelled"
	OrderStatusPaid          OrderStatus = "paid"
	OrderStatusPaymentFailed OrderStatus = "payment_failed"
)

// fulfillmentStatuses are the statuses an admin may set directly. The paid /
// payment_failed track is driven only by gateway webhooks.
func fulfillmentStatuses() map[OrderStatus]bool {
	return map[OrderStatus]bool{
		OrderStatusPending:    true,
		OrderStatusConfirmed:  true,
		OrderStatusProcessing: true,
		OrderStatusShipped:    true,
		OrderStatusDelivered:  true,
		OrderStatusCancelled:  true,
	}
}

func (s OrderStatus) IsFulfillment() bool {
	return fulfillmentStatuses()[s]
}

// Ship is the seller-initiated transition to shipped. Only pending orders
// may be shipped.
func (s OrderStatus) Ship() (OrderStatus, error) {
	if s != OrderStatusPending {
		return s, NewStatusError("Only pending orders can be shipped")
	}
	return OrderStatusShipped, nil
}

// Deliver is the seller-initiated transition to delivered. Only shipped
// orders may be delivered.
func (s OrderStatus) Deliver() (OrderStatus, error) {
	if s != OrderStatusShipped {
		return s, NewStatusError("Only shipped orders can be marked as delivered")
	}
	return OrderStatusDelivered, nil
}

// Accept confirms a pending order.
func (s OrderStatus) Accept() (OrderStatus, error) {
	if s != OrderStatusPending {
		return s, NewStatusError("Only pending orders can be accepted")
	}
	return OrderStatusConfirmed, nil
}

// Reject cancels a pending order.
func (s OrderStatus) Reject() (OrderStatus, error) {
	if s != OrderStatusPending {
		return s, NewStatusError("Only pending orders can be rejected")
	}
	return OrderStatusCancelled, nil
}

type PaymentStatus string

const (
	PaymentStatusPending      PaymentStatus = "pending"
	PaymentStatusCompleted    PaymentStatus = "completed"
	PaymentStatusFailed       PaymentStatus = "failed"
	PaymentStatusRefunded     PaymentStatus = "refunded"
	PaymentStatusPaidToSeller PaymentStatus = "paid_to_seller"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded, PaymentStatusPaidToSeller:
		return true
	}
	return false
}

// MarkPaidToSeller transitions a payment to paid_to_seller. Only completed
// payments qualify; failed and refunded are absorbing.
func (s PaymentStatus) MarkPaidToSeller() (PaymentStatus, error) {
	if s != PaymentStatusCompleted {
		return s, NewStatusError("Only completed payments can be marked as paid to seller")
	}
	return PaymentStatusPaidToSeller, nil
}

type PayoutStatus string

const (
	PayoutStatusPending    PayoutStatus = "pending"
	PayoutStatusProcessing PayoutStatus = "processing"
	PayoutStatusPaid       PayoutStatus = "paid"
)

type DeliveryStatus string

const (
	DeliveryStatusPreparing      DeliveryStatus = "preparing"
	DeliveryStatusPickedUp       DeliveryStatus = "picked_up"
	DeliveryStatusInTransit      DeliveryStatus = "in_transit"
	DeliveryStatusOutForDelivery DeliveryStatus = "out_for_delivery"
	DeliveryStatusDelivered      DeliveryStatus = "delivered"
)

// Valid reports membership only. Successive tracking entries have no
// ordering constraint, a delivered entry may directly follow preparing.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPreparing, DeliveryStatusPickedUp, DeliveryStatusInTransit, DeliveryStatusOutForDelivery, DeliveryStatusDelivered:
		return true
	}
	return false
}
