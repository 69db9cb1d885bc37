package interfaces

import (
	"context"

	"ingressos_checkout/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment processor (Mercado Pago).
//
// Failures carry the processor's structured detail as
// *entities.ProcessorError whenever it is available; callers translate
// it into the client-facing contract.

type IPaymentGateway interface {
	CreatePayment(ctx context.Context, body entities.PaymentRequestBody) (*entities.ProcessorResponse, error)
	GetPayment(ctx context.Context, id int) (*entities.ProcessorResponse, error)
}
