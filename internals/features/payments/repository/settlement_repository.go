package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "artsadventure_backend/internals/features/classes/model"
	"artsadventure_backend/internals/features/payments/model"
	"artsadventure_backend/internals/features/payments/service"
	selectionModel "artsadventure_backend/internals/features/selections/model"
	userModel "artsadventure_backend/internals/features/users/model"
)

// SettlementRepository is the gorm implementation of service.Store. Counter
// updates are single atomic SQL increments; there is no transaction spanning
// the five settlement steps.
type SettlementRepository struct {
	DB *gorm.DB
}

func NewSettlementRepository(db *gorm.DB) *SettlementRepository {
	return &SettlementRepository{DB: db}
}

func (r *SettlementRepository) InsertPayment(ctx context.Context, p *model.PaymentModel) error {
	return r.DB.WithContext(ctx).Create(p).Error
}

func (r *SettlementRepository) DeleteSelection(ctx context.Context, selectionID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).
		Where("selection_id = ?", selectionID).
		Delete(&selectionModel.SelectionModel{})
	return res.RowsAffected, res.Error
}

func (r *SettlementRepository) IncrementEnrolled(ctx context.Context, classID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		UpdateColumn("class_enrolled", gorm.Expr("class_enrolled + 1"))
	return res.RowsAffected, res.Error
}

func (r *SettlementRepository) DecrementAvailableSeats(ctx context.Context, classID uuid.UUID) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Where("class_id = ?", classID).
		UpdateColumn("class_available_seats", gorm.Expr("class_available_seats - 1"))
	return res.RowsAffected, res.Error
}

func (r *SettlementRepository) FindClassOwnerEmail(ctx context.Context, classID uuid.UUID) (string, error) {
	var email string
	err := r.DB.WithContext(ctx).
		Model(&classModel.ClassModel{}).
		Select("class_email").
		Where("class_id = ?", classID).
		Take(&email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", service.ErrNotFound
	}
	return email, err
}

func (r *SettlementRepository) IncrementInstructorStudents(ctx context.Context, email string) (int64, error) {
	res := r.DB.WithContext(ctx).
		Model(&userModel.UserModel{}).
		Where("email = ?", email).
		UpdateColumn("students", gorm.Expr("students + 1"))
	return res.RowsAffected, res.Error
}
