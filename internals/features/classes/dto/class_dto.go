package dto

// CreateClassRequest is the instructor submission payload. The owning email
// always comes from the verified token, never the body.
type CreateClassRequest struct {
	Name           string  `json:"name" validate:"required,min=2,max=255"`
	Image          string  `json:"image" validate:"omitempty,url"`
	Price          float64 `json:"price" validate:"required,gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"required,gte=1"`
}
