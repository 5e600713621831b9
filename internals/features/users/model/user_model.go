package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel maps the users table. Role is one of the closed set in
// internals/constants; an empty role means the user registered but was never
// granted anything. Students is a derived counter kept on instructor records
// by the settlement workflow only.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:100;not null" json:"name"`
	Email    string    `gorm:"size:255;unique;not null" json:"email"`
	Password string    `gorm:"size:255" json:"-"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`
	PhotoURL *string   `gorm:"size:512" json:"photoURL,omitempty"`
	Role     string    `gorm:"type:varchar(20);not null;default:''" json:"role"`
	Students int       `gorm:"not null;default:0;check:students >= 0" json:"students"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
