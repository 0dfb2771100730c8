package models

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// LoginRequest carries the raw login form values.
type LoginRequest struct {
	Username string `validate:"required"`
	PIN      string `validate:"required,numeric"`
}

// TransferRequest carries the raw transfer form values.
// Amount is the already-parsed numeric input; empty or invalid input
// parses to zero and fails the gt=0 rule, same as the reference UI.
type TransferRequest struct {
	To     string  `validate:"required"`
	Amount float64 `validate:"required,gt=0"`
}

// LoanRequest carries the raw loan form value.
type LoanRequest struct {
	Amount float64 `validate:"required,gt=0"`
}

// CloseRequest carries the close-account confirmation values.
type CloseRequest struct {
	Username string `validate:"required"`
	PIN      string `validate:"required,numeric"`
}

func (r LoginRequest) Validate() error { return validate.Struct(r) }

func (r TransferRequest) Validate() error { return validate.Struct(r) }

func (r LoanRequest) Validate() error { return validate.Struct(r) }

func (r CloseRequest) Validate() error { return validate.Struct(r) }

// ParseAmount turns a raw input string into a float64 amount.
// Invalid or empty input yields 0, which downstream validation rejects.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParsePIN turns a raw input string into a numeric PIN.
// Invalid input yields -1, which can never match a stored PIN.
func ParsePIN(raw string) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return v
}
