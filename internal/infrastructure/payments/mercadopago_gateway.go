package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"

	"ingressos_checkout/internal/domain/entities"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreatePayment sends the normalized body to Mercado Pago. The body is
// round-tripped through JSON into the SDK request type so the domain
// never depends on SDK struct layout.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, body entities.PaymentRequestBody) (*entities.ProcessorResponse, error) {
	if g != nil && g.mockMode {
		return g.mockCreate(body)
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	log.Printf("[payment][gateway] create start method=%s payload_len=%d", body.PaymentMethodID, len(raw))

	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Printf("[payment][gateway] request mapping failed err=%v", err)
		return nil, err
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed err=%v", err)
		return nil, translateSDKError(err)
	}

	translated, err := processorResponseFromSDK(resp)
	if err != nil {
		log.Printf("[payment][gateway] response mapping failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] create success provider_payment_id=%d provider_status=%s", translated.ID, translated.Status)

	return translated, nil
}

// GetPayment fetches a payment resource by its Mercado Pago id.
func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id int) (*entities.ProcessorResponse, error) {
	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock get payment_id=%d", id)
		return &entities.ProcessorResponse{ID: int64(id), Status: "approved", StatusDetail: "accredited"}, nil
	}
	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] get start payment_id=%d", id)

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed payment_id=%d err=%v", id, err)
		return nil, translateSDKError(err)
	}

	translated, err := processorResponseFromSDK(resp)
	if err != nil {
		log.Printf("[payment][gateway] response mapping failed payment_id=%d err=%v", id, err)
		return nil, err
	}
	log.Printf("[payment][gateway] get success payment_id=%d provider_status=%s", translated.ID, translated.Status)

	return translated, nil
}

func (g *MercadoPagoGateway) mockCreate(body entities.PaymentRequestBody) (*entities.ProcessorResponse, error) {
	resp := &entities.ProcessorResponse{
		ID:           time.Now().UTC().UnixNano(),
		Status:       "approved",
		StatusDetail: "accredited",
	}
	if body.PaymentMethodID == string(entities.PaymentMethodPix) {
		resp.Status = "pending"
		resp.StatusDetail = "pending_waiting_transfer"
		resp.PointOfInteraction = &entities.PointOfInteraction{
			TransactionData: &entities.TransactionData{
				QRCode:       "00020126mockqrcode5204000053039865802BR",
				QRCodeBase64: "bW9jay1xci1jb2Rl",
			},
		}
	}
	log.Printf("[payment][gateway] mock create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return resp, nil
}

// processorResponseFromSDK maps the SDK response onto the domain shape
// via JSON, mirroring the field names of the payment resource.
func processorResponseFromSDK(resp *payment.Response) (*entities.ProcessorResponse, error) {
	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, err
	}
	var translated entities.ProcessorResponse
	if err := json.Unmarshal(raw, &translated); err != nil {
		return nil, err
	}
	return &translated, nil
}

// translateSDKError recovers the structured error body Mercado Pago
// embeds in SDK error strings ({"message":...,"status":...,"cause":[...]})
// so callers can surface cause descriptions and status codes. Errors
// without a parseable body keep their message and no status.
func translateSDKError(err error) error {
	if err == nil {
		return nil
	}

	msg := err.Error()
	start := strings.Index(msg, "{")
	end := strings.LastIndex(msg, "}")
	if start >= 0 && end > start {
		var procErr entities.ProcessorError
		if jsonErr := json.Unmarshal([]byte(msg[start:end+1]), &procErr); jsonErr == nil {
			if procErr.StatusCode != 0 || procErr.Message != "" || len(procErr.Cause) > 0 {
				return &procErr
			}
		}
	}

	return &entities.ProcessorError{Message: msg}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
