package entities

import "fmt"

// PaymentMethod discriminates the two checkout flows we accept.
//
// Values are case-sensitive; anything else is rejected before the
// processor is called.

type PaymentMethod string

const (
	PaymentMethodPix  PaymentMethod = "pix"
	PaymentMethodCard PaymentMethod = "card"
)

// Identification is a payer identity document (e.g. CPF/CNPJ).
type Identification struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// Payer is the canonical payer identity extracted from any checkout
// payload variant. Document may still contain formatting characters
// here; the normalizer strips them before transmission.
type Payer struct {
	Email     string
	FirstName string
	LastName  string
	Document  Identification
}

// Checkout is the canonical checkout submission. The HTTP DTOs adapt
// every observed payload shape (flat Brick fields, nested order/payer)
// into this struct; no validation happens until normalization.

type Checkout struct {
	Method       PaymentMethod
	Amount       float64
	Description  string
	Payer        Payer
	Token        string
	CardMethodID string
	Installments int
	IssuerID     string
}

// PaymentRequestBody is the body sent to the payment processor.
//
// A single struct covers both variants: card-only fields carry
// omitempty so the PIX body stays minimal.

type PaymentRequestBody struct {
	TransactionAmount float64             `json:"transaction_amount"`
	Description       string              `json:"description"`
	PaymentMethodID   string              `json:"payment_method_id"`
	Token             string              `json:"token,omitempty"`
	Installments      int                 `json:"installments,omitempty"`
	IssuerID          string              `json:"issuer_id,omitempty"`
	Payer             PaymentRequestPayer `json:"payer"`
}

type PaymentRequestPayer struct {
	Email          string          `json:"email"`
	FirstName      string          `json:"first_name,omitempty"`
	LastName       string          `json:"last_name,omitempty"`
	Identification *Identification `json:"identification,omitempty"`
}

// ProcessorResponse is the subset of the processor's payment resource
// this service consumes. Status values are opaque processor-owned
// strings and are passed through unchanged.

type ProcessorResponse struct {
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *PointOfInteraction `json:"point_of_interaction,omitempty"`
}

// PointOfInteraction carries the PIX redemption artifacts.
type PointOfInteraction struct {
	TransactionData *TransactionData `json:"transaction_data,omitempty"`
}

type TransactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

// PaymentResult is the client-facing success shape. QR fields are only
// present for PIX creations; StatusDetail is present for card creations
// and status lookups.

type PaymentResult struct {
	ID            int64  `json:"id"`
	Status        string `json:"status"`
	StatusDetail  string `json:"status_detail,omitempty"`
	QRCodeImage   string `json:"qrCodeImage,omitempty"`
	CopyPasteCode string `json:"copyPasteCode,omitempty"`
}

// ProcessorError is the structured failure reported by the payment
// processor: an HTTP-ish status, a top-level message and an optional
// cause list whose descriptions are the most specific detail available.

type ProcessorError struct {
	StatusCode int                   `json:"status"`
	Message    string                `json:"message"`
	Cause      []ProcessorErrorCause `json:"cause,omitempty"`
}

type ProcessorErrorCause struct {
	Description string `json:"description"`
}

func (e *ProcessorError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("processor error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("processor error: %s", e.Message)
}

// ClientMessage picks the most specific human-readable detail: the
// first cause description when present, otherwise the top-level
// message. Empty when the processor supplied neither; callers apply
// their own fallback text.
func (e *ProcessorError) ClientMessage() string {
	for _, c := range e.Cause {
		if c.Description != "" {
			return c.Description
		}
	}
	return e.Message
}
