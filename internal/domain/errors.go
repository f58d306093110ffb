package domain

import "errors"

// ErrorKind classifies why a lookup failed
type ErrorKind string

const (
	KindInvalidInput      ErrorKind = "invalid_input"
	KindMissingCredential ErrorKind = "missing_credential"
	KindNetworkFailure    ErrorKind = "network_failure"
	KindUpstreamError     ErrorKind = "upstream_error"
	KindMalformedResponse ErrorKind = "malformed_response"
)

// User-facing messages
const (
	MsgEmptyQuery        = "Please enter a city name"
	MsgMissingCredential = "API key is missing. Please set OPENWEATHER_API_KEY in your environment or .env file"
	MsgFetchFailed       = "Failed to fetch weather data"
	MsgMalformedResponse = "Received incomplete weather data"
)

var (
	// ErrLookupInFlight is returned when a search is submitted while another is loading
	ErrLookupInFlight = errors.New("a weather lookup is already in progress")

	// ErrPreferenceNotFound indicates the requested preference key was never written
	ErrPreferenceNotFound = errors.New("preference not found")
)

// LookupError is a classified lookup failure. It never carries partial data.
type LookupError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

// NewLookupError creates a LookupError wrapping an optional cause
func NewLookupError(kind ErrorKind, message string, cause error) *LookupError {
	return &LookupError{Kind: kind, Message: message, Err: cause}
}

func (e *LookupError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// AsLookupError classifies any error as a LookupError.
// Unclassified errors are treated as network failures.
func AsLookupError(err error) *LookupError {
	if err == nil {
		return nil
	}
	var le *LookupError
	if errors.As(err, &le) {
		return le
	}
	return NewLookupError(KindNetworkFailure, MsgFetchFailed, err)
}

// IsKind reports whether err is a LookupError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var le *LookupError
	return errors.As(err, &le) && le.Kind == kind
}
