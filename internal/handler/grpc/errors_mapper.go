package grpc

import (
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/failure"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var statusCodeMap = map[int]codes.Code{
	http.StatusBadRequest:         codes.InvalidArgument,
	http.StatusUnauthorized:       codes.Unauthenticated,
	http.StatusForbidden:          codes.PermissionDenied,
	http.StatusNotFound:           codes.NotFound,
	http.StatusRequestTimeout:     codes.DeadlineExceeded,
	http.StatusGatewayTimeout:     codes.DeadlineExceeded,
	http.StatusTooManyRequests:    codes.ResourceExhausted,
	http.StatusServiceUnavailable: codes.Unavailable,
}

// codeFromStatus maps an HTTP status to the closest gRPC code.
func codeFromStatus(httpStatus int) codes.Code {
	if code, ok := statusCodeMap[httpStatus]; ok {
		return code
	}
	if httpStatus >= http.StatusInternalServerError {
		return codes.Internal
	}
	return codes.FailedPrecondition
}

// toStatus renders a classified failure as a gRPC status error carrying the
// client-visible message.
func toStatus(err *failure.Error) error {
	return status.Error(codeFromStatus(err.Code), err.Message())
}
