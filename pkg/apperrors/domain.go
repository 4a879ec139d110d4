package apperrors

import (
	"fmt"
	"net/http"
)

// Factories and predefined variables for the business domains of the
// application: auth, membership, trainer assignment, shop.

// ErrNotFound converts a repository miss (gorm.ErrRecordNotFound and
// friends) into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// ErrConflict is the general conflict factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// --- auth ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already registered",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// --- membership ---

var ErrPlanNotFound = New(
	CodeNotFound,
	"membership",
	"Plan not found",
	http.StatusNotFound,
)

var ErrInvalidPlanTier = New(
	CodeInvalidOperation,
	"membership",
	"Invalid plan. Use PREMIUM | GOLD | SILVER",
	http.StatusBadRequest,
)

var ErrMembershipRequired = New(
	CodeForbidden,
	"membership",
	"An active membership plan is required to select trainers",
	http.StatusForbidden,
)

var ErrPlanWithoutTrainers = New(
	CodeForbidden,
	"membership",
	"Your plan does not allow selecting trainers. Please upgrade your membership",
	http.StatusForbidden,
)

// ErrTrainerLimitReached names the concrete limit in the message.
func ErrTrainerLimitReached(limit int) *AppError {
	return New(
		CodeLimitExceeded,
		"membership",
		fmt.Sprintf("You can select up to %d trainer(s)", limit),
		http.StatusForbidden,
	)
}

// --- trainers ---

var ErrTrainerNotFound = New(
	CodeNotFound,
	"trainer",
	"Trainer not found",
	http.StatusNotFound,
)

var ErrTrainerEmailTaken = New(
	CodeAlreadyExists,
	"trainer",
	"Trainer email already in use",
	http.StatusConflict,
)

var ErrTrainerAlreadySelected = New(
	CodeConflict,
	"trainer",
	"You have already selected a trainer. To change, pass replace=true",
	http.StatusConflict,
)

var ErrUserNotAssigned = New(
	CodeForbidden,
	"trainer",
	"User not assigned to you",
	http.StatusForbidden,
)

// --- shop ---

var ErrProductNotFound = New(
	CodeNotFound,
	"shop",
	"Product not found",
	http.StatusNotFound,
)

var ErrCartItemNotFound = New(
	CodeNotFound,
	"shop",
	"Item not in cart",
	http.StatusNotFound,
)

var ErrEmptyCart = New(
	CodeInvalidOperation,
	"shop",
	"Cart is empty",
	http.StatusBadRequest,
)

var ErrProductReferenced = New(
	CodeConflict,
	"shop",
	"Cannot delete product because it is referenced by existing orders. Consider archiving instead",
	http.StatusConflict,
)

// ErrInsufficientStock identifies the offending product.
func ErrInsufficientStock(productName string) *AppError {
	return New(
		CodeConflict,
		"shop",
		fmt.Sprintf("Insufficient stock for %s", productName),
		http.StatusConflict,
	)
}

var ErrOrderNotFound = New(
	CodeNotFound,
	"shop",
	"Order not found",
	http.StatusNotFound,
)
