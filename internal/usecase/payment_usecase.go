package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strconv"
	"strings"

	"ingressos_checkout/internal/domain/entities"
	"ingressos_checkout/internal/usecase/interfaces"
)

var (
	ErrIncompleteCheckout          = errors.New("incomplete request data")
	ErrUnsupportedPaymentMethod    = errors.New("unsupported payment method")
	ErrCardTokenRequired           = errors.New("token and payment method id required")
	ErrInvalidPaymentID            = errors.New("invalid payment id")
	ErrIncompleteProcessorResponse = errors.New("processor response missing expected fields")
)

// DefaultDescription is used when the checkout does not carry one.
const DefaultDescription = "Ingressos para evento"

var nonDigits = regexp.MustCompile(`\D`)

// IPaymentUseCase normalizes checkout submissions into processor
// requests and translates processor responses back into the client
// contract. Stateless; safe for concurrent use.

type IPaymentUseCase interface {
	CreatePayment(ctx context.Context, checkout entities.Checkout) (entities.PaymentResult, error)
	GetPaymentStatus(ctx context.Context, id string) (entities.PaymentResult, error)
}

type PaymentUseCase struct {
	gateway interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway}
}

// BuildPaymentRequest normalizes a canonical checkout into the
// processor request body. Pure function: no I/O, no hidden state, same
// input always yields the same body.
func BuildPaymentRequest(checkout entities.Checkout) (entities.PaymentRequestBody, error) {
	if checkout.Amount == 0 || checkout.Payer.Email == "" || checkout.Method == "" {
		return entities.PaymentRequestBody{}, ErrIncompleteCheckout
	}

	description := checkout.Description
	if description == "" {
		description = DefaultDescription
	}

	switch checkout.Method {
	case entities.PaymentMethodPix:
		return buildPixRequest(checkout, description)
	case entities.PaymentMethodCard:
		return buildCardRequest(checkout, description)
	default:
		return entities.PaymentRequestBody{}, ErrUnsupportedPaymentMethod
	}
}

func buildPixRequest(checkout entities.Checkout, description string) (entities.PaymentRequestBody, error) {
	document := digitsOnly(checkout.Payer.Document.Number)
	if document == "" {
		return entities.PaymentRequestBody{}, ErrIncompleteCheckout
	}

	return entities.PaymentRequestBody{
		TransactionAmount: checkout.Amount,
		Description:       description,
		PaymentMethodID:   string(entities.PaymentMethodPix),
		Payer: entities.PaymentRequestPayer{
			Email:     checkout.Payer.Email,
			FirstName: checkout.Payer.FirstName,
			LastName:  checkout.Payer.LastName,
			Identification: &entities.Identification{
				Type:   checkout.Payer.Document.Type,
				Number: document,
			},
		},
	}, nil
}

func buildCardRequest(checkout entities.Checkout, description string) (entities.PaymentRequestBody, error) {
	if checkout.Token == "" || checkout.CardMethodID == "" {
		return entities.PaymentRequestBody{}, ErrCardTokenRequired
	}

	installments := checkout.Installments
	if installments <= 0 {
		installments = 1
	}

	body := entities.PaymentRequestBody{
		TransactionAmount: checkout.Amount,
		Description:       description,
		PaymentMethodID:   checkout.CardMethodID,
		Token:             checkout.Token,
		Installments:      installments,
		IssuerID:          checkout.IssuerID,
		Payer: entities.PaymentRequestPayer{
			Email: checkout.Payer.Email,
		},
	}

	if document := digitsOnly(checkout.Payer.Document.Number); document != "" {
		body.Payer.Identification = &entities.Identification{
			Type:   checkout.Payer.Document.Type,
			Number: document,
		}
	}

	return body, nil
}

// ResultFromProcessorResponse translates a successful processor
// response into the client-facing result. For PIX the QR artifacts are
// mandatory; a success response without them is a translation failure,
// never a partial result.
func ResultFromProcessorResponse(resp *entities.ProcessorResponse, method entities.PaymentMethod) (entities.PaymentResult, error) {
	if resp == nil {
		return entities.PaymentResult{}, ErrIncompleteProcessorResponse
	}

	if method == entities.PaymentMethodPix {
		if resp.PointOfInteraction == nil || resp.PointOfInteraction.TransactionData == nil {
			return entities.PaymentResult{}, ErrIncompleteProcessorResponse
		}
		tx := resp.PointOfInteraction.TransactionData
		if tx.QRCodeBase64 == "" || tx.QRCode == "" {
			return entities.PaymentResult{}, ErrIncompleteProcessorResponse
		}
		return entities.PaymentResult{
			ID:            resp.ID,
			Status:        resp.Status,
			QRCodeImage:   tx.QRCodeBase64,
			CopyPasteCode: tx.QRCode,
		}, nil
	}

	return entities.PaymentResult{
		ID:           resp.ID,
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
	}, nil
}

func (u *PaymentUseCase) CreatePayment(ctx context.Context, checkout entities.Checkout) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] create start method=%s amount=%.2f", checkout.Method, checkout.Amount)

	body, err := BuildPaymentRequest(checkout)
	if err != nil {
		log.Printf("[payment][usecase] normalization failed method=%s err=%v", checkout.Method, err)
		return entities.PaymentResult{}, err
	}

	resp, err := u.gateway.CreatePayment(ctx, body)
	if err != nil {
		log.Printf("[payment][usecase] gateway create failed method=%s err=%v", checkout.Method, err)
		return entities.PaymentResult{}, err
	}

	result, err := ResultFromProcessorResponse(resp, checkout.Method)
	if err != nil {
		log.Printf("[payment][usecase] response translation failed method=%s err=%v", checkout.Method, err)
		return entities.PaymentResult{}, err
	}

	log.Printf("[payment][usecase] create success method=%s payment_id=%d status=%s", checkout.Method, result.ID, result.Status)
	return result, nil
}

// GetPaymentStatus fetches a payment by id and returns its current
// status. Method-specific branching does not apply here: the method is
// unknown at lookup time and the status fields are method-agnostic.
func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, id string) (entities.PaymentResult, error) {
	paymentID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil || paymentID <= 0 {
		log.Printf("[payment][usecase] invalid payment id %q", id)
		return entities.PaymentResult{}, ErrInvalidPaymentID
	}

	resp, err := u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[payment][usecase] gateway get failed payment_id=%d err=%v", paymentID, err)
		return entities.PaymentResult{}, err
	}
	if resp == nil {
		return entities.PaymentResult{}, ErrIncompleteProcessorResponse
	}

	log.Printf("[payment][usecase] status lookup success payment_id=%d status=%s", resp.ID, resp.Status)
	return entities.PaymentResult{
		ID:           resp.ID,
		Status:       resp.Status,
		StatusDetail: resp.StatusDetail,
	}, nil
}

func digitsOnly(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}
