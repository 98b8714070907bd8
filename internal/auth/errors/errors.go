package errors

import "errors"

var (
	ErrNotFound = errors.New("credential not found")

	ErrEmailTaken = errors.New("email already registered")
)

// Provider codes for identity failures. Responses carry only the fixed
// sentence from UserMessage; raw backend detail stays in the logs.
const (
	CodeEmailInUse        = "auth/email-already-in-use"
	CodeWeakPassword      = "auth/weak-password"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserDisabled      = "auth/user-disabled"
	CodeTooManyRequests   = "auth/too-many-requests"
	CodeNetwork           = "auth/network-request-failed"
)

var userMessages = map[string]string{
	CodeEmailInUse:        "This email is already registered",
	CodeWeakPassword:      "Password should be at least 6 characters",
	CodeInvalidCredential: "Invalid email or password",
	CodeUserDisabled:      "This account has been disabled",
	CodeTooManyRequests:   "Too many attempts. Please try again later",
	CodeNetwork:           "Network error. Please check your connection",
}

// UserMessage maps a provider code to its user-facing sentence. Unknown
// codes get a generic fallback rather than leaking the code itself.
func UserMessage(code string) string {
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return "Authentication failed. Please try again"
}
