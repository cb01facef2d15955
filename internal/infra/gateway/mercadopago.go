package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"ecommerce-backend/internal/domain/order"
	"ecommerce-backend/internal/pkg/config"
	"ecommerce-backend/internal/pkg/errs"
	"ecommerce-backend/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

var (
	ErrPreferenceRequest  = errs.New("preference request failed")
	ErrPreferenceResponse = errs.New("preference response incomplete")
)

// MercadoPagoGateway creates hosted-checkout preferences through the Mercado
// Pago REST API.
type MercadoPagoGateway struct {
	client          *http.Client
	baseURL         string
	accessToken     string
	notificationURL string
	environment     string
}

func NewMercadoPagoGateway(cfg config.MercadoPagoConfig, env string) commands.PaymentGateway {
	return &MercadoPagoGateway{
		client:          &http.Client{Timeout: cfg.Timeout},
		baseURL:         cfg.BaseURL,
		accessToken:     cfg.AccessToken,
		notificationURL: cfg.NotificationURL,
		environment:     env,
	}
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int32   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	ExternalReference string           `json:"external_reference"`
	Metadata          map[string]any   `json:"metadata"`
	NotificationURL   string           `json:"notification_url,omitempty"`
}

type preferenceResponse struct {
	ID               string `json:"id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point"`
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, ord *order.Order, currency string) (*commands.ProviderPreference, error) {
	payload := preferenceRequest{
		Items:             buildPreferenceItems(ord, currency),
		ExternalReference: ord.OrderNumber(),
		Metadata: map[string]any{
			"order_id":    ord.ID().String(),
			"environment": g.environment,
		},
		NotificationURL: g.notificationURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to encode preference payload"), ErrPreferenceRequest)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/checkout/preferences", bytes.NewReader(body))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to build preference request"), ErrPreferenceRequest)
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "preference request did not complete"), ErrPreferenceRequest)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, errs.Mark(
			errs.Newf("preference request returned status %d: %s", resp.StatusCode, string(detail)),
			ErrPreferenceRequest,
		)
	}

	var pref preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode preference response"), ErrPreferenceResponse)
	}
	if pref.ID == "" || pref.InitPoint == "" {
		return nil, errs.Mark(errs.New("preference response missing id or init_point"), ErrPreferenceResponse)
	}

	result := &commands.ProviderPreference{
		ProviderPaymentID: pref.ID,
		InitPoint:         pref.InitPoint,
	}
	if pref.SandboxInitPoint != "" {
		result.SandboxInitPoint = &pref.SandboxInitPoint
	}
	return result, nil
}

// Prices are stored in cents but the provider expects major units.
func buildPreferenceItems(ord *order.Order, currency string) []preferenceItem {
	items := make([]preferenceItem, 0, len(ord.Items()))
	for _, item := range ord.Items() {
		unitPrice := decimal.NewFromInt(item.UnitPriceCentsSnapshot()).
			Div(decimal.NewFromInt(100)).
			InexactFloat64()
		items = append(items, preferenceItem{
			Title:      item.ProductNameSnapshot(),
			Quantity:   item.Quantity(),
			UnitPrice:  unitPrice,
			CurrencyID: currency,
		})
	}
	return items
}
