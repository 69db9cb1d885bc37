package response

import "ingressos_checkout/internal/domain/entities"

// PaymentResponse is the client-facing payment shape for creations and
// status lookups. QR fields only appear on PIX creations.

type PaymentResponse struct {
	ID            int64  `json:"id"`
	Status        string `json:"status"`
	StatusDetail  string `json:"status_detail,omitempty"`
	QRCodeImage   string `json:"qrCodeImage,omitempty"`
	CopyPasteCode string `json:"copyPasteCode,omitempty"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResponse {
	return PaymentResponse{
		ID:            r.ID,
		Status:        r.Status,
		StatusDetail:  r.StatusDetail,
		QRCodeImage:   r.QRCodeImage,
		CopyPasteCode: r.CopyPasteCode,
	}
}
