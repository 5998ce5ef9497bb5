package gateway

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

const (
	EventPaymentSucceeded = "payment_intent.succeeded"
	EventPaymentFailed    = "payment_intent.payment_failed"
)

type IntentParams struct {
	AmountCents int64
	OrderID     uint64
	SellerID    uint64
}

type Intent struct {
	ID           string
	ClientSecret string
}

// WebhookEvent is the decoded gateway event envelope. Metadata carries the
// order_id the original intent was created with.
type WebhookEvent struct {
	Type          string
	TransactionID string
	AmountCents   int64
	Metadata      map[string]string
}

// PaymentGateway creates payment intents on the external processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, p IntentParams) (*Intent, error)
}

type stripeGateway struct {
	api *client.API
}

func NewStripeGateway(secretKey string) PaymentGateway {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &stripeGateway{api: api}
}

func (g *stripeGateway) CreateIntent(ctx context.Context, p IntentParams) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())
	params.AddMetadata("order_id", strconv.FormatUint(p.OrderID, 10))
	params.AddMetadata("seller_id", strconv.FormatUint(p.SellerID, 10))

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

// ParseWebhook decodes the gateway event envelope. Payload signatures are not
// checked here, parity with the upstream webhook registration.
func ParseWebhook(payload []byte) (*WebhookEvent, error) {
	var ev stripe.Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return nil, err
	}
	out := &WebhookEvent{Type: string(ev.Type), Metadata: map[string]string{}}
	if ev.Data != nil && len(ev.Data.Raw) > 0 {
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(ev.Data.Raw, &pi); err != nil {
			return nil, err
		}
		out.TransactionID = pi.ID
		out.AmountCents = pi.Amount
		if pi.Metadata != nil {
			out.Metadata = pi.Metadata
		}
	}
	return out, nil
}
