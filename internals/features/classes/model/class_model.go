package model

import (
	"time"

	"github.com/google/uuid"
)

// Class status lifecycle: submitted pending, moved to approved/rejected by
// admin review (outside this service's surface).
const (
	ClassStatusPending  = "pending"
	ClassStatusApproved = "approved"
	ClassStatusRejected = "rejected"
)

// ClassModel maps the classes table. ClassEnrolled and ClassAvailableSeats
// are mutated exclusively by the settlement workflow, one atomic SQL
// increment each; their sum should stay at the original capacity but that is
// not enforced transactionally.
type ClassModel struct {
	ClassID uuid.UUID `gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`

	ClassName           string  `gorm:"column:class_name;size:255;not null" json:"name"`
	ClassImageURL       *string `gorm:"column:class_image_url;size:512" json:"image,omitempty"`
	ClassInstructorName string  `gorm:"column:class_instructor_name;size:100;not null" json:"instructor"`
	ClassEmail          string  `gorm:"column:class_email;size:255;not null;index" json:"email"`

	ClassPrice          float64 `gorm:"column:class_price;type:numeric(10,2);not null;check:class_price >= 0" json:"price"`
	ClassEnrolled       int     `gorm:"column:class_enrolled;not null;default:0;check:class_enrolled >= 0" json:"enrolled"`
	ClassAvailableSeats int     `gorm:"column:class_available_seats;not null;default:0;check:class_available_seats >= 0" json:"available_seats"`

	ClassStatus string `gorm:"column:class_status;type:varchar(20);not null;default:'pending'" json:"status"`

	ClassCreatedAt time.Time `gorm:"column:class_created_at;autoCreateTime" json:"created_at"`
	ClassUpdatedAt time.Time `gorm:"column:class_updated_at;autoUpdateTime" json:"updated_at"`
}

func (ClassModel) TableName() string { return "classes" }
