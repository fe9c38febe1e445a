// Package stripe is a thin client for the Stripe Checkout Session API. It
// covers only the two calls the payment lifecycle needs: opening a hosted
// checkout session and polling a session's status.
package stripe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"librental-backend/internal/domain"
	"librental-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

// Checkout session statuses as reported by the provider.
const (
	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"
)

type CheckoutSession struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Status      string `json:"status"`
	AmountTotal int64  `json:"amount_total"`
}

type CheckoutParams struct {
	AmountCents int64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

// NewClient builds a client against the given API base URL. Every request
// carries the HTTP client timeout; repeated failures open a circuit breaker
// so a dead provider fails fast instead of stalling request handlers.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "stripe-checkout",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// CreateCheckoutSession opens a hosted checkout session for a single line
// item and returns its id and payment URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("payment_method_types[0]", "card")
	form.Set("line_items[0][price_data][currency]", p.Currency)
	form.Set("line_items[0][price_data][product_data][name]", p.ProductName)
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(p.AmountCents, 10))
	form.Set("line_items[0][quantity]", "1")
	form.Set("success_url", p.SuccessURL)
	form.Set("cancel_url", p.CancelURL)

	return c.do(ctx, http.MethodPost, "/v1/checkout/sessions", form)
}

// GetCheckoutSession fetches the current state of a session.
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	return c.do(ctx, http.MethodGet, "/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
}

func (c *Client) do(ctx context.Context, method, path string, form url.Values) (*CheckoutSession, error) {
	logger.ExternalServiceCall("stripe", method+" "+path)

	result, err := c.breaker.Execute(func() (interface{}, error) {
		var body io.Reader
		if form != nil {
			body = strings.NewReader(form.Encode())
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
		if form != nil {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			req.Header.Set("Idempotency-Key", uuid.NewString())
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 300 {
			var apiErr struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			_ = json.NewDecoder(resp.Body).Decode(&apiErr)
			return nil, fmt.Errorf("stripe returned status %d: %s", resp.StatusCode, apiErr.Error.Message)
		}

		var session CheckoutSession
		if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
			return nil, err
		}
		if session.ID == "" {
			return nil, fmt.Errorf("stripe returned an empty session id")
		}
		return &session, nil
	})

	logger.ExternalServiceResult("stripe", method+" "+path, err)
	if err != nil {
		// Transport failures, API errors and an open breaker all surface
		// the same retryable sentinel to callers.
		return nil, fmt.Errorf("%w: %v", domain.ErrPaymentProvider, err)
	}
	return result.(*CheckoutSession), nil
}
