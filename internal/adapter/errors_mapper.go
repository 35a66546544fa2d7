package adapter

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-service-common/internal/failure"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/go-resty/resty/v2"
)

// mapDecodeResult turns the outcome of a decode call into a verdict and the
// metrics outcome label it belongs to.
//
// Only 200 allows. Any other status S denies with {S, StatusText(S)}; the
// validator's body is never forwarded to clients. A call that produced no
// response at all denies with 500 and the plain status text; the transport
// error is kept as the cause for logs.
func mapDecodeResult(resp *resty.Response, err error) (Verdict, string) {
	if err != nil {
		return Deny(failure.Conceal(http.StatusInternalServerError, fmt.Errorf("decode request: %w", err))), metrics.OutcomeFailed
	}

	if resp.StatusCode() == http.StatusOK {
		return Allow(), metrics.OutcomeAllowed
	}

	return Deny(failure.Wrap(resp.StatusCode(), nil)), metrics.OutcomeRejected
}
