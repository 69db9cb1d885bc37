package request

import (
	"encoding/json"
	"testing"

	"ingressos_checkout/internal/domain/entities"
)

func TestNumeric_UnmarshalJSON(t *testing.T) {
	var payload struct {
		Amount       Numeric `json:"amount"`
		Installments Numeric `json:"installments"`
		Missing      Numeric `json:"missing"`
	}

	if err := json.Unmarshal([]byte(`{"amount":50.5,"installments":"3"}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := payload.Amount.Float64(); !ok || v != 50.5 {
		t.Fatalf("expected 50.5, got %v ok=%v", v, ok)
	}
	if v, ok := payload.Installments.Int(); !ok || v != 3 {
		t.Fatalf("expected 3, got %v ok=%v", v, ok)
	}
	if _, ok := payload.Missing.Float64(); ok {
		t.Fatalf("expected missing field to not parse")
	}

	var nullable struct {
		Amount Numeric `json:"amount"`
	}
	if err := json.Unmarshal([]byte(`{"amount":null}`), &nullable); err != nil {
		t.Fatalf("unexpected error for null: %v", err)
	}
	if _, ok := nullable.Amount.Float64(); ok {
		t.Fatalf("expected null to not parse")
	}
}

func TestNumeric_Int(t *testing.T) {
	cases := []struct {
		in   Numeric
		want int
		ok   bool
	}{
		{"3", 3, true},
		{"3.0", 3, true},
		{"3.5", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, ok := tc.in.Int()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Numeric(%q).Int() = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}

func TestCheckoutRequest_ResolveMethod(t *testing.T) {
	cases := []struct {
		name string
		req  CheckoutRequest
		want entities.PaymentMethod
	}{
		{"explicit pix", CheckoutRequest{PaymentMethod: "pix"}, entities.PaymentMethodPix},
		{"explicit card", CheckoutRequest{PaymentMethod: "card"}, entities.PaymentMethodCard},
		{"explicit unknown passes through for the normalizer to reject", CheckoutRequest{PaymentMethod: "boleto"}, "boleto"},
		{"brick pix", CheckoutRequest{PaymentMethodID: "pix"}, entities.PaymentMethodPix},
		{"brick card brand", CheckoutRequest{PaymentMethodID: "master"}, entities.PaymentMethodCard},
		{"no selector", CheckoutRequest{}, ""},
		{"explicit wins over brick id", CheckoutRequest{PaymentMethod: "pix", PaymentMethodID: "master"}, entities.PaymentMethodPix},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.req.ResolveMethod(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestCheckoutRequest_ResolveAmount(t *testing.T) {
	flat := CheckoutRequest{TransactionAmount: "120.50"}
	if got := flat.ResolveAmount(); got != 120.5 {
		t.Fatalf("expected 120.5, got %v", got)
	}

	nested := CheckoutRequest{Order: &OrderRequest{TotalValue: "50"}}
	if got := nested.ResolveAmount(); got != 50 {
		t.Fatalf("expected 50, got %v", got)
	}

	flatWins := CheckoutRequest{TransactionAmount: "10", Order: &OrderRequest{TotalValue: "50"}}
	if got := flatWins.ResolveAmount(); got != 10 {
		t.Fatalf("expected flat amount to win, got %v", got)
	}

	for _, raw := range []string{"abc", "NaN", "Inf"} {
		invalid := CheckoutRequest{TransactionAmount: Numeric(raw)}
		if got := invalid.ResolveAmount(); got != 0 {
			t.Fatalf("expected 0 for amount %q, got %v", raw, got)
		}
	}
}

func TestCheckoutRequest_ResolvePayer(t *testing.T) {
	t.Run("brick shape", func(t *testing.T) {
		req := CheckoutRequest{Payer: &CheckoutPayerRequest{
			Email:          "a@b.com",
			FirstName:      "Ana",
			LastName:       "Silva",
			Identification: &IdentificationRequest{Type: "CPF", Number: "123.456.789-00"},
		}}

		p := req.ResolvePayer()
		if p.Email != "a@b.com" || p.FirstName != "Ana" || p.LastName != "Silva" {
			t.Fatalf("unexpected payer: %+v", p)
		}
		// Formatting is preserved here; the normalizer strips it.
		if p.Document.Type != "CPF" || p.Document.Number != "123.456.789-00" {
			t.Fatalf("unexpected document: %+v", p.Document)
		}
	})

	t.Run("nested shape with fullName and cpf", func(t *testing.T) {
		req := CheckoutRequest{Payer: &CheckoutPayerRequest{
			Email:    "a@b.com",
			FullName: "Ana Maria Silva",
			CPF:      "123.456.789-00",
		}}

		p := req.ResolvePayer()
		if p.FirstName != "Ana" || p.LastName != "Maria Silva" {
			t.Fatalf("unexpected name split: %+v", p)
		}
		if p.Document.Type != "CPF" || p.Document.Number != "123.456.789-00" {
			t.Fatalf("unexpected document: %+v", p.Document)
		}
	})

	t.Run("single word full name", func(t *testing.T) {
		req := CheckoutRequest{Payer: &CheckoutPayerRequest{FullName: "Ana"}}
		p := req.ResolvePayer()
		if p.FirstName != "Ana" || p.LastName != "" {
			t.Fatalf("unexpected name split: %+v", p)
		}
	})

	t.Run("no payer", func(t *testing.T) {
		p := CheckoutRequest{}.ResolvePayer()
		if p.Email != "" || p.Document.Number != "" {
			t.Fatalf("expected zero payer, got %+v", p)
		}
	})
}

func TestCheckoutRequest_ResolveInstallments(t *testing.T) {
	cases := []struct {
		name string
		in   Numeric
		want int
	}{
		{"absent", "", 1},
		{"non-numeric", "abc", 1},
		{"zero", "0", 1},
		{"negative", "-2", 1},
		{"string three", "3", 3},
		{"number three", "3", 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := CheckoutRequest{Installments: tc.in}
			if got := req.ResolveInstallments(); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}

func TestCheckoutRequest_ToCheckout(t *testing.T) {
	raw := `{
		"payment_method_id": "master",
		"transaction_amount": 120.5,
		"token": "tok-1",
		"installments": "3",
		"issuer_id": 25,
		"payer": {
			"email": "a@b.com",
			"identification": {"type": "CPF", "number": "123.456.789-00"}
		}
	}`

	var req CheckoutRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	co := req.ToCheckout()
	if co.Method != entities.PaymentMethodCard {
		t.Fatalf("expected card, got %q", co.Method)
	}
	if co.Amount != 120.5 || co.Token != "tok-1" || co.CardMethodID != "master" {
		t.Fatalf("unexpected checkout: %+v", co)
	}
	if co.Installments != 3 {
		t.Fatalf("expected 3 installments, got %d", co.Installments)
	}
	if co.IssuerID != "25" {
		t.Fatalf("expected issuer id 25, got %q", co.IssuerID)
	}
}
