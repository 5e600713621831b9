package dto

type CreateSelectionRequest struct {
	Email   string `json:"email" validate:"required,email"`
	ClassID string `json:"classId" validate:"required,uuid"`
}
