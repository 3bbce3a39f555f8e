package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultYooKassaBaseURL = "https://api.yookassa.ru/v3"

	// The provider rejects descriptions longer than 128 characters.
	maxDescriptionLen = 128

	defaultRequestTimeout = 30 * time.Second
)

// YooKassaConfig holds credentials and endpoints for the YooKassa API.
// Credentials are optional at load time so development environments can
// run without them; CreatePayment fails with ErrProviderNotConfigured
// when they are missing.
type YooKassaConfig struct {
	ShopID    string `env:"YOOKASSA_SHOP_ID"`
	SecretKey string `env:"YOOKASSA_SECRET_KEY"`
	BaseURL   string `env:"YOOKASSA_API_URL" envDefault:"https://api.yookassa.ru/v3"`
	ReturnURL string `env:"YOOKASSA_RETURN_URL" envDefault:"https://socialynx.app/payments/success"`
}

// YooKassaProvider implements Provider against the YooKassa payments API.
type YooKassaProvider struct {
	config YooKassaConfig
	client *http.Client
}

// YooKassaOption configures a YooKassaProvider.
type YooKassaOption func(*YooKassaProvider)

// WithHTTPClient substitutes the HTTP client, letting tests point the
// provider at a fake server.
func WithHTTPClient(client *http.Client) YooKassaOption {
	return func(p *YooKassaProvider) {
		if client != nil {
			p.client = client
		}
	}
}

// NewYooKassaProvider creates a provider client for cfg.
func NewYooKassaProvider(cfg YooKassaConfig, opts ...YooKassaOption) *YooKassaProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultYooKassaBaseURL
	}
	p := &YooKassaProvider{
		config: cfg,
		client: &http.Client{Timeout: defaultRequestTimeout},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type yooKassaAmount struct {
	Value    string `json:"value"`
	Currency string `json:"currency"`
}

type yooKassaConfirmation struct {
	Type            string `json:"type"`
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"`
}

type yooKassaCreateRequest struct {
	Amount       yooKassaAmount       `json:"amount"`
	Capture      bool                 `json:"capture"`
	Confirmation yooKassaConfirmation `json:"confirmation"`
	Description  string               `json:"description,omitempty"`
	Metadata     Metadata             `json:"metadata,omitempty"`
}

type yooKassaPayment struct {
	ID           string                `json:"id"`
	Status       string                `json:"status"`
	Confirmation *yooKassaConfirmation `json:"confirmation,omitempty"`
}

// CreatePayment creates a hosted payment session. Every call sends a fresh
// Idempotence-Key, so the provider deduplicates network-level retries of
// this request while distinct user attempts create distinct payments.
func (p *YooKassaProvider) CreatePayment(ctx context.Context, req CreatePaymentRequest) (*CreatedPayment, error) {
	if p.config.ShopID == "" || p.config.SecretKey == "" {
		return nil, ErrProviderNotConfigured
	}

	body, err := json.Marshal(yooKassaCreateRequest{
		Amount: yooKassaAmount{
			Value:    FormatMajorUnits(req.AmountMinorUnits),
			Currency: req.Currency,
		},
		Capture: true,
		Confirmation: yooKassaConfirmation{
			Type:      "redirect",
			ReturnURL: p.config.ReturnURL,
		},
		Description: truncate(req.Description, maxDescriptionLen),
		Metadata:    req.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.BaseURL+"/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Idempotence-Key", uuid.New().String())
	httpReq.SetBasicAuth(p.config.ShopID, p.config.SecretKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", ErrProviderRequestFailed, resp.StatusCode, respBody)
	}

	var created yooKassaPayment
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProviderRequestFailed, err)
	}
	if created.ID == "" || created.Confirmation == nil || created.Confirmation.ConfirmationURL == "" {
		return nil, fmt.Errorf("%w: response missing payment id or confirmation url", ErrProviderRequestFailed)
	}

	return &CreatedPayment{
		ID:              created.ID,
		Status:          created.Status,
		ConfirmationURL: created.Confirmation.ConfirmationURL,
	}, nil
}

// FormatMajorUnits renders a minor-unit amount in the provider's
// major-unit decimal convention: 39900 -> "399.00".
func FormatMajorUnits(minorUnits int64) string {
	return fmt.Sprintf("%d.%02d", minorUnits/100, minorUnits%100)
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
