package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"ingressos_checkout/internal/domain/entities"
)

// Numeric accepts JSON numbers and numeric strings. Brick payloads have
// shipped both over time (installments in particular), so every numeric
// field in the checkout payload binds through this type and is only
// parsed when resolved.
type Numeric string

func (n *Numeric) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var unquoted string
		if err := json.Unmarshal(b, &unquoted); err != nil {
			return err
		}
		s = strings.TrimSpace(unquoted)
	}
	*n = Numeric(s)
	return nil
}

func (n Numeric) String() string { return string(n) }

func (n Numeric) Float64() (float64, bool) {
	v, err := strconv.ParseFloat(string(n), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func (n Numeric) Int() (int, bool) {
	if v, err := strconv.Atoi(string(n)); err == nil {
		return v, true
	}
	// Brick sometimes serializes installments as "3.0".
	if f, ok := n.Float64(); ok && f == float64(int(f)) {
		return int(f), true
	}
	return 0, false
}

// CheckoutRequest accepts every checkout payload variant observed from
// the web client: the flat Payment Brick shape (transaction_amount,
// payment_method_id, token, payer.identification) and the older nested
// shape (paymentMethod, order.totalValue, payer.fullName/cpf). Resolve*
// methods reconcile them into the canonical entities.Checkout; they do
// not validate, the normalizer does.

type CheckoutRequest struct {
	PaymentMethod     string                `json:"paymentMethod"`
	PaymentMethodID   string                `json:"payment_method_id"`
	TransactionAmount Numeric               `json:"transaction_amount"`
	Description       string                `json:"description"`
	Token             string                `json:"token"`
	Installments      Numeric               `json:"installments"`
	IssuerID          Numeric               `json:"issuer_id"`
	Order             *OrderRequest         `json:"order"`
	Payer             *CheckoutPayerRequest `json:"payer"`
}

type OrderRequest struct {
	TotalValue Numeric `json:"totalValue"`
}

type CheckoutPayerRequest struct {
	Email          string                 `json:"email"`
	FirstName      string                 `json:"first_name"`
	LastName       string                 `json:"last_name"`
	FullName       string                 `json:"fullName"`
	CPF            string                 `json:"cpf"`
	Identification *IdentificationRequest `json:"identification"`
}

type IdentificationRequest struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// ResolveMethod maps the payload onto a payment method selector. The
// explicit paymentMethod field wins; the Brick shape carries only
// payment_method_id, where "pix" selects PIX and any card brand (e.g.
// "master") selects the card flow. Empty means no selector was sent.
func (r CheckoutRequest) ResolveMethod() entities.PaymentMethod {
	if m := strings.TrimSpace(r.PaymentMethod); m != "" {
		return entities.PaymentMethod(m)
	}
	switch id := strings.TrimSpace(r.PaymentMethodID); {
	case id == string(entities.PaymentMethodPix):
		return entities.PaymentMethodPix
	case id != "":
		return entities.PaymentMethodCard
	}
	return ""
}

// ResolveAmount prefers the flat transaction_amount and falls back to
// the nested order total. Unparseable amounts resolve to zero and fail
// the normalizer's presence check.
func (r CheckoutRequest) ResolveAmount() float64 {
	if v, ok := r.TransactionAmount.Float64(); ok {
		return v
	}
	if r.Order != nil {
		if v, ok := r.Order.TotalValue.Float64(); ok {
			return v
		}
	}
	return 0
}

func (r CheckoutRequest) ResolvePayer() entities.Payer {
	if r.Payer == nil {
		return entities.Payer{}
	}

	p := entities.Payer{
		Email:     strings.TrimSpace(r.Payer.Email),
		FirstName: strings.TrimSpace(r.Payer.FirstName),
		LastName:  strings.TrimSpace(r.Payer.LastName),
	}

	if p.FirstName == "" && p.LastName == "" {
		p.FirstName, p.LastName = splitFullName(r.Payer.FullName)
	}

	if r.Payer.Identification != nil {
		p.Document = entities.Identification{
			Type:   strings.TrimSpace(r.Payer.Identification.Type),
			Number: strings.TrimSpace(r.Payer.Identification.Number),
		}
	}
	if p.Document.Number == "" {
		if cpf := strings.TrimSpace(r.Payer.CPF); cpf != "" {
			p.Document = entities.Identification{Type: "CPF", Number: cpf}
		}
	}

	return p
}

// ResolveInstallments parses installments, defaulting to 1 when absent,
// unparseable or non-positive.
func (r CheckoutRequest) ResolveInstallments() int {
	if v, ok := r.Installments.Int(); ok && v > 0 {
		return v
	}
	return 1
}

// ToCheckout builds the canonical checkout. Card fields are carried
// verbatim; the normalizer decides whether they are required.
func (r CheckoutRequest) ToCheckout() entities.Checkout {
	return entities.Checkout{
		Method:       r.ResolveMethod(),
		Amount:       r.ResolveAmount(),
		Description:  strings.TrimSpace(r.Description),
		Payer:        r.ResolvePayer(),
		Token:        strings.TrimSpace(r.Token),
		CardMethodID: strings.TrimSpace(r.PaymentMethodID),
		Installments: r.ResolveInstallments(),
		IssuerID:     r.IssuerID.String(),
	}
}

func splitFullName(full string) (first, last string) {
	full = strings.TrimSpace(full)
	if full == "" {
		return "", ""
	}
	parts := strings.SplitN(full, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.TrimSpace(parts[1])
}
