package model

import "errors"

// Sentinel errors for programmatic checking.
var (
	ErrReportUnreadable  = errors.New("coverage report unreadable")
	ErrInvalidThreshold  = errors.New("threshold must be between 0 and 100")
	ErrInvalidDisplayCap = errors.New("display cap must not be negative")
	ErrInvalidPattern    = errors.New("invalid glob pattern")
	ErrUnknownFormat     = errors.New("unknown output format")
	ErrNoMarkers         = errors.New("at least one library marker is required")
)

// ErrorCode is the machine-readable form of an error, logged as the "code"
// attribute when a run fails.
type ErrorCode string

const (
	ECNone           ErrorCode = ""
	ECReadError      ErrorCode = "ERR_READ_REPORT"
	ECConfigError    ErrorCode = "ERR_CONFIG"
	ECInvalidPattern ErrorCode = "ERR_INVALID_PATTERN"
	ECUnknownFormat  ErrorCode = "ERR_UNKNOWN_FORMAT"
	ECUnknown        ErrorCode = "ERR_UNKNOWN"
)

// CodeFor maps an error to its ErrorCode.
func CodeFor(err error) ErrorCode {
	switch {
	case err == nil:
		return ECNone
	case errors.Is(err, ErrReportUnreadable):
		return ECReadError
	case errors.Is(err, ErrInvalidPattern):
		return ECInvalidPattern
	case errors.Is(err, ErrUnknownFormat):
		return ECUnknownFormat
	case errors.Is(err, ErrInvalidThreshold),
		errors.Is(err, ErrInvalidDisplayCap),
		errors.Is(err, ErrNoMarkers):
		return ECConfigError
	default:
		return ECUnknown
	}
}
