package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/client"
)

const DefaultAPIURL = "https://api.stripe.com"

// StripeClient sells tickets as Checkout Sessions whose payment intent
// carries the Discord user id as metadata. Each call is a single attempt.
type StripeClient struct {
	api        *client.API
	priceID    string
	successURL string
}

type StripeOptions struct {
	APIURL     string
	SecretKey  string
	PriceID    string
	SuccessURL string
	Timeout    time.Duration
}

func NewStripeClient(opts StripeOptions) *StripeClient {
	apiURL := opts.APIURL
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(strings.TrimRight(apiURL, "/")),
		HTTPClient:        &http.Client{Timeout: opts.Timeout},
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     slogLogger{},
	})
	api := &client.API{}
	api.Init(opts.SecretKey, &stripe.Backends{API: backend, Connect: backend, Uploads: backend})
	return &StripeClient{
		api:        api,
		priceID:    opts.PriceID,
		successURL: opts.SuccessURL,
	}
}

func (c *StripeClient) CreateLink(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", errors.New("stripe: user id is required")
	}
	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		Mode:   stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(c.priceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:        stripe.String(c.successURL),
		ClientReferenceID: stripe.String(userID),
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			Metadata: map[string]string{"user_id": userID},
		},
	}
	session, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe: creating checkout session: %w", err)
	}
	if session.URL == "" {
		return "", fmt.Errorf("stripe: checkout session %s has no url", session.ID)
	}
	return session.URL, nil
}

func (c *StripeClient) CheckPaid(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, errors.New("stripe: user id is required")
	}
	params := &stripe.PaymentIntentSearchParams{
		SearchParams: stripe.SearchParams{
			Context: ctx,
			Query:   fmt.Sprintf("status:'succeeded' AND metadata['user_id']:'%s'", escapeSearchValue(userID)),
			Limit:   stripe.Int64(1),
			Single:  true,
		},
	}
	iter := c.api.PaymentIntents.Search(params)
	paid := iter.Next()
	if err := iter.Err(); err != nil {
		return false, fmt.Errorf("stripe: searching payment intents: %w", err)
	}
	return paid, nil
}

// Search query values are single quoted; quotes and backslashes inside them
// must be escaped.
func escapeSearchValue(v string) string {
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(v)
}

// slogLogger routes the SDK's own request logging through slog.
type slogLogger struct{}

func (slogLogger) Debugf(format string, v ...any) { slog.Debug(fmt.Sprintf(format, v...), "component", "stripe") }
func (slogLogger) Infof(format string, v ...any)  { slog.Info(fmt.Sprintf(format, v...), "component", "stripe") }
func (slogLogger) Warnf(format string, v ...any)  { slog.Warn(fmt.Sprintf(format, v...), "component", "stripe") }
func (slogLogger) Errorf(format string, v ...any) { slog.Error(fmt.Sprintf(format, v...), "component", "stripe") }
