package model

import (
	"time"

	"github.com/google/uuid"
)

// SelectionModel is a cart entry: a user's intent to enroll in a class before
// payment. It lives only between "added to cart" and "settled or removed";
// the settlement workflow is the writer that destroys it on payment.
type SelectionModel struct {
	SelectionID      uuid.UUID `gorm:"column:selection_id;type:uuid;default:gen_random_uuid();primaryKey" json:"selection_id"`
	SelectionEmail   string    `gorm:"column:selection_email;size:255;not null;index" json:"email"`
	SelectionClassID uuid.UUID `gorm:"column:selection_class_id;type:uuid;not null" json:"class_id"`

	SelectionCreatedAt time.Time `gorm:"column:selection_created_at;autoCreateTime" json:"created_at"`
}

func (SelectionModel) TableName() string { return "selections" }
