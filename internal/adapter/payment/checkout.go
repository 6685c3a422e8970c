package checkout

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

	"github.com/google/uuid"

	"loanmarket-backend/internal/domain/payment"
)

// Client talks to the hosted-checkout provider. The provider is a black
// box to the rest of the system: we only hand back session references.
type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

var _ payment.Bridge = (*Client)(nil)

func NewClient(baseURL, secret string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type sessionResponse struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	CustomerEmail string `json:"customer_email"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	Status        string `json:"status"`
	PaymentIntent string `json:"payment_intent"`
	Metadata      struct {
		ApplicationID string `json:"application_id"`
	} `json:"metadata"`
}

func (c *Client) CreateCheckoutSession(ctx context.Context, in payment.CheckoutInput) (*payment.Session, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(in.AmountCents, 10))
	form.Set("currency", in.Currency)
	form.Set("customer_email", in.CustomerEmail)
	form.Set("metadata[application_id]", in.ApplicationID)
	form.Set("success_url", in.SuccessURL)
	form.Set("cancel_url", in.CancelURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+c.secret)
	// Provider-side dedup for network retries.
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("checkout provider: create session: %d %s", resp.StatusCode, string(body))
	}

	var sr sessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("checkout provider: decode session: %w", err)
	}
	return toSession(&sr), nil
}

func (c *Client) GetSession(ctx context.Context, sessionID string) (*payment.Session, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/checkout/sessions/"+url.PathEscape(sessionID), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, payment.ErrSessionNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("checkout provider: get session: %d %s", resp.StatusCode, string(body))
	}

	var sr sessionResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return nil, fmt.Errorf("checkout provider: decode session: %w", err)
	}
	return toSession(&sr), nil
}

func toSession(sr *sessionResponse) *payment.Session {
	return &payment.Session{
		ID:            sr.ID,
		URL:           sr.URL,
		ApplicationID: sr.Metadata.ApplicationID,
		CustomerEmail: sr.CustomerEmail,
		AmountCents:   sr.AmountTotal,
		Currency:      sr.Currency,
		Status:        sr.Status,
		PaymentIntent: sr.PaymentIntent,
	}
}
