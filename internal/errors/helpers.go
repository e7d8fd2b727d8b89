package errors

import (
	"errors"
)

// As is a wrapper around errors.As that works with our Error type
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is checks if an error matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// GetCode extracts the error code from an error
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Code
	}

	return CodeInternal
}

// GetMeta extracts metadata from an error
func GetMeta(err error) map[string]interface{} {
	if err == nil {
		return nil
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Meta
	}

	return nil
}

// GetMessage extracts the caller facing message from an error
func GetMessage(err error) string {
	if err == nil {
		return ""
	}

	var customErr *Error
	if errors.As(err, &customErr) {
		return customErr.Message
	}

	return err.Error()
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return GetCode(err) == CodeNotFound
}

// IsInvalidArgument checks if an error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return GetCode(err) == CodeInvalidArgument
}

// IsConfiguration checks if an error is a configuration error
func IsConfiguration(err error) bool {
	return GetCode(err) == CodeConfiguration
}

// IsPlacementExhausted checks if an error is a placement warning
func IsPlacementExhausted(err error) bool {
	return GetCode(err) == CodePlacementExhausted
}

// IsNavigationUnavailable checks if an error is a navigation warning
func IsNavigationUnavailable(err error) bool {
	return GetCode(err) == CodeNavigationUnavailable
}

// IsRecoverable reports whether err is a warning the caller should log and move past
func IsRecoverable(err error) bool {
	return err != nil && GetCode(err).Recoverable()
}
