package errors

import "google.golang.org/grpc/codes"

// Code classifies an error
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"
	CodeUnimplemented      Code = "UNIMPLEMENTED"

	// CodeConfiguration means maze or agent parameters make generation impossible.
	// Fatal to the request, raised before any partial state is built.
	CodeConfiguration Code = "CONFIGURATION"

	// CodePlacementExhausted means population ran out of free cells.
	// Recoverable: whatever was placed stays placed.
	CodePlacementExhausted Code = "PLACEMENT_EXHAUSTED"

	// CodeNavigationUnavailable means the navigation port could not resolve a point.
	// Recoverable: agents redraw or go idle.
	CodeNavigationUnavailable Code = "NAVIGATION_UNAVAILABLE"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// Recoverable reports whether callers are expected to log and continue
func (c Code) Recoverable() bool {
	return c == CodePlacementExhausted || c == CodeNavigationUnavailable
}

// GRPCCode returns the corresponding gRPC code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeOK:
		return codes.OK
	case CodeCanceled:
		return codes.Canceled
	case CodeInvalidArgument, CodeConfiguration:
		return codes.InvalidArgument
	case CodeNotFound:
		return codes.NotFound
	case CodeAlreadyExists:
		return codes.AlreadyExists
	case CodeFailedPrecondition:
		return codes.FailedPrecondition
	case CodePlacementExhausted:
		return codes.ResourceExhausted
	case CodeUnavailable, CodeNavigationUnavailable:
		return codes.Unavailable
	case CodeUnimplemented:
		return codes.Unimplemented
	case CodeInternal:
		return codes.Internal
	default:
		return codes.Unknown
	}
}

// codeFromGRPC converts a gRPC code to our error code
func codeFromGRPC(c codes.Code) Code {
	switch c {
	case codes.OK:
		return CodeOK
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.ResourceExhausted:
		return CodePlacementExhausted
	case codes.Unavailable:
		return CodeUnavailable
	case codes.Unimplemented:
		return CodeUnimplemented
	default:
		return CodeInternal
	}
}
