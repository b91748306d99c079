package apperrors

import (
	"net/http"
)

// =========================================================================
// Routing
// =========================================================================

var ErrRouteNotFound = New(
	CodeNotFound,
	"route",
	"Route not found",
	http.StatusNotFound,
)

// =========================================================================
// Auth & account
// =========================================================================

var ErrEmailRequired = New(
	CodeEmailRequired,
	"validation",
	"Email is required",
	http.StatusBadRequest,
)

var ErrFirstNameRequired = New(
	CodeFirstNameRequired,
	"validation",
	"First name is required",
	http.StatusBadRequest,
)

var ErrLastNameRequired = New(
	CodeLastNameRequired,
	"validation",
	"Last name is required",
	http.StatusBadRequest,
)

var ErrPasswordRequired = New(
	CodePasswordRequired,
	"validation",
	"Password is required",
	http.StatusBadRequest,
)

// ErrPasswordTooShort is returned for passwords under 8 characters.
var ErrPasswordTooShort = New(
	CodePasswordTooShort,
	"validation",
	"Password must be at least 8 characters",
	http.StatusBadRequest,
)

var ErrEmailAlreadyRegistered = New(
	CodeEmailAlreadyRegistered,
	"auth",
	"Email is already registered",
	http.StatusConflict,
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrCurrentPasswordIncorrect = New(
	CodeCurrentPasswordIncorrect,
	"auth",
	"Current password is incorrect",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid authentication token",
	http.StatusUnauthorized,
)

var ErrUserNotFound = New(
	CodeUserNotFound,
	"user",
	"User not found",
	http.StatusNotFound,
)

// =========================================================================
// Tutors
// =========================================================================

var ErrInvalidTutorID = New(
	CodeInvalidTutorID,
	"tutor",
	"Invalid tutor ID format",
	http.StatusBadRequest,
)

var ErrTutorNotFound = New(
	CodeTutorNotFound,
	"tutor",
	"Tutor not found",
	http.StatusNotFound,
)

var ErrContactFieldsRequired = New(
	CodeContactFieldsRequired,
	"validation",
	"Missing required fields: tutorEmail, tutorName, message",
	http.StatusBadRequest,
)

var ErrEmailNotConfigured = New(
	CodeEmailNotConfigured,
	"email",
	"Email service is not configured",
	http.StatusInternalServerError,
)

var ErrEmailSendFailed = New(
	CodeEmailSendFailed,
	"email",
	"Failed to send email",
	http.StatusInternalServerError,
)
