package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* ===================== Enums (string) ===================== */

const (
	PaymentStatusPaid = "paid"
)

const (
	PaymentProviderStripe   = "stripe"
	PaymentProviderMidtrans = "midtrans"
	PaymentProviderOther    = "other"
)

/* ===================== Model ===================== */

// PaymentModel is the append-only settlement log: rows are inserted by the
// settlement workflow and never updated or deleted. A row is durable evidence
// the purchase occurred, whatever happens to the later settlement steps.
type PaymentModel struct {
	PaymentID uuid.UUID `gorm:"column:payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"payment_id"`

	PaymentEmail    string  `gorm:"column:payment_email;size:255;not null;index" json:"email"`
	PaymentAmount   float64 `gorm:"column:payment_amount;type:numeric(10,2);not null;check:payment_amount >= 0" json:"amount"`
	PaymentCurrency string  `gorm:"column:payment_currency;type:varchar(8);not null;default:'usd'" json:"currency"`

	PaymentClassID     uuid.UUID `gorm:"column:payment_class_id;type:uuid;not null" json:"classId"`
	PaymentSelectionID uuid.UUID `gorm:"column:payment_selection_id;type:uuid;not null" json:"selectedClassId"`

	PaymentGatewayProvider string            `gorm:"column:payment_gateway_provider;type:varchar(20);not null;default:'stripe'" json:"gateway_provider"`
	PaymentTransactionID   *string           `gorm:"column:payment_transaction_id;size:255" json:"transaction_id,omitempty"`
	PaymentStatus          string            `gorm:"column:payment_status;type:varchar(20);not null;default:'paid'" json:"status"`
	PaymentMeta            datatypes.JSONMap `gorm:"column:payment_meta;type:jsonb" json:"meta,omitempty"`

	PaymentCreatedAt time.Time `gorm:"column:payment_created_at;autoCreateTime" json:"created_at"`
}

func (PaymentModel) TableName() string { return "payments" }
