package apperrors

// ErrorCode is the machine-readable code returned to clients.
type ErrorCode string

// Generic codes
const (
	CodeInternalError    ErrorCode = "INTERNAL_ERROR"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeNotFound         ErrorCode = "NOT_FOUND"

	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeInvalidToken ErrorCode = "INVALID_TOKEN"
)

// Auth and account codes
const (
	CodeEmailRequired            ErrorCode = "EMAIL_REQUIRED"
	CodeFirstNameRequired        ErrorCode = "FIRST_NAME_REQUIRED"
	CodeLastNameRequired         ErrorCode = "LAST_NAME_REQUIRED"
	CodePasswordRequired         ErrorCode = "PASSWORD_REQUIRED"
	CodePasswordTooShort         ErrorCode = "PASSWORD_TOO_SHORT"
	CodeEmailAlreadyRegistered   ErrorCode = "EMAIL_ALREADY_REGISTERED"
	CodeInvalidCredentials       ErrorCode = "INVALID_CREDENTIALS"
	CodeCurrentPasswordIncorrect ErrorCode = "CURRENT_PASSWORD_INCORRECT"
	CodeUserNotFound             ErrorCode = "USER_NOT_FOUND"

	CodeAccountCreationFailed ErrorCode = "ACCOUNT_CREATION_FAILED"
	CodeSigninFailed          ErrorCode = "SIGNIN_FAILED"
	CodeUpdateFailed          ErrorCode = "UPDATE_FAILED"
)

// Tutor directory codes
const (
	CodeInvalidTutorID        ErrorCode = "INVALID_TUTOR_ID"
	CodeTutorNotFound         ErrorCode = "TUTOR_NOT_FOUND"
	CodeContactFieldsRequired ErrorCode = "CONTACT_FIELDS_REQUIRED"
	CodeEmailNotConfigured    ErrorCode = "EMAIL_NOT_CONFIGURED"
	CodeEmailSendFailed       ErrorCode = "EMAIL_SEND_FAILED"

	CodeTutorSearchFailed ErrorCode = "TUTOR_SEARCH_FAILED"
	CodeTutorFetchFailed  ErrorCode = "TUTOR_FETCH_FAILED"
	CodeContactFailed     ErrorCode = "CONTACT_FAILED"
)
