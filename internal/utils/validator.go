package utils

import (
	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator library
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		validate: validator.New(),
	}
}

// SignupPayload validation
type SignupPayload struct {
	Name     string `validate:"required,max=100"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=8,max=128"`
}

// LoginPayload validation
type LoginPayload struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// TodoPayload validation
type TodoPayload struct {
	Title string `validate:"required,max=255"`
}

// Validate validates a struct
func (v *Validator) Validate(data interface{}) error {
	return v.validate.Struct(data)
}
