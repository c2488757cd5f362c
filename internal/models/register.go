package models

// RegisterRequest represents the registration form
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=150"`

	// Password, at least 8 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=8"`

	// Password confirmation, must match password
	// required: true
	// example: secret123
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// example: User registered successfully
	Message string `json:"message"`

	// Where to go next
	// example: /login
	Location string `json:"location"`
}
