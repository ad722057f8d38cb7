package models

// RegisterRequest is the body of POST /api/register.
// No field is mandatory; empty values are stored as given.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	UserID int64      `json:"userId" validate:"required"`
	Items  OrderItems `json:"items" validate:"required"`
}

// ChangePasswordRequest is the body of PUT /api/user/{id}/password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword" validate:"required"`
}
