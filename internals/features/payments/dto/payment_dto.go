package dto

// SettlePaymentRequest is the body of POST /payments: the client's assertion
// that a charge completed, carrying the references the settlement workflow
// mutates.
type SettlePaymentRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	ClassID         string  `json:"classId" validate:"required"`
	SelectedClassID string  `json:"selectedClassId" validate:"required"`
	TransactionID   string  `json:"transactionId" validate:"omitempty,max=255"`
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
}

type CreateSnapTokenRequest struct {
	Price float64 `json:"price" validate:"required,gt=0"`
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Email string  `json:"email" validate:"required,email"`
}
