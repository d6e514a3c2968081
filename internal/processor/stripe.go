package processor

import (
	"context"

	stripe "github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"

	"github.com/spec-kit/employee-service/internal/config"
)

// StripeProcessor creates payment intents through the Stripe API.
type StripeProcessor struct {
	api      *client.API
	currency string
}

// NewStripeProcessor builds a processor bound to the configured account.
func NewStripeProcessor(cfg config.StripeConfig) *StripeProcessor {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &StripeProcessor{api: api, currency: cfg.Currency}
}

// CreateIntent creates a pending charge for the amount (in the smallest
// currency unit) and returns its client secret.
func (p *StripeProcessor) CreateIntent(ctx context.Context, amount int64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(p.currency),
	}
	params.Context = ctx

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return "", err
	}
	return intent.ClientSecret, nil
}
