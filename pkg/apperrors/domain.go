package apperrors

import "net/http"

// Predefined domain errors. Handlers compare with apperrors.As / direct
// equality; services return these instead of ad-hoc strings so the HTTP
// mapping stays in one place.

// --- Auth & users ---

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"Email already in use",
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

var ErrUserSuspended = New(
	CodeForbidden,
	"auth",
	"Your account has been suspended",
	http.StatusForbidden,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

// ErrUnknownUser: the target of an operation does not resolve to a user.
var ErrUnknownUser = New(
	CodeNotFound,
	"users",
	"User not found",
	http.StatusNotFound,
)

// --- Interest ledger ---

// ErrSelfInterest: a user tried to express interest in themselves.
var ErrSelfInterest = New(
	CodeInvalidOperation,
	"interest",
	"Cannot express interest in yourself",
	http.StatusBadRequest,
)

// ErrDuplicateInterest: the (from, to) edge already exists. Surfaced as a
// distinguishable conflict so the UI can render "already liked".
var ErrDuplicateInterest = New(
	CodeConflict,
	"interest",
	"Interest already expressed for this user",
	http.StatusConflict,
)

// ErrStartupNotFound also covers ownership failures so that startup ids of
// other members cannot be probed.
var ErrStartupNotFound = New(
	CodeNotFound,
	"startups",
	"Startup not found",
	http.StatusNotFound,
)

// --- Matches & conversations ---

// ErrMatchNotFound doubles as the authorization failure for conversations:
// a non-participant gets the same 404 as a missing match, so match existence
// never leaks.
var ErrMatchNotFound = New(
	CodeNotFound,
	"matches",
	"Match not found",
	http.StatusNotFound,
)

var ErrMessageTooLong = New(
	CodeValidationFailed,
	"conversations",
	"Message body must be between 1 and 1000 characters",
	http.StatusBadRequest,
)
