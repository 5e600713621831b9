package dto

// CreateUserRequest is the registration payload. Password is optional: users
// arriving through Google sign-in have none.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	PhotoURL string `json:"photoURL" validate:"omitempty,url"`
	Password string `json:"password" validate:"omitempty,min=6"`
}
