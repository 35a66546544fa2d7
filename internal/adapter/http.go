package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-service-common/internal/config"
	"github.com/MKhiriev/go-service-common/internal/logger"
	"github.com/MKhiriev/go-service-common/internal/metrics"
	"github.com/MKhiriev/go-service-common/internal/utils"
	"github.com/MKhiriev/go-service-common/models"
)

// DefaultAuthTimeout bounds a decode call when the configuration leaves
// Server.AuthTimeout at zero.
const DefaultAuthTimeout = 5 * time.Second

const decodePath = "/decode"

type httpTokenDecoder struct {
	client *utils.HTTPClient

	logger  *logger.Logger
	metrics *metrics.Metrics
}

// NewHTTPTokenDecoder constructs an HTTP/REST implementation of
// [TokenDecoder]. It normalises and validates the base URL from
// cfg.AuthEndpoint and configures the underlying HTTP client with the
// resolved base URL and cfg.Server.AuthTimeout (or [DefaultAuthTimeout]).
//
// Returns an error if cfg.AuthEndpoint is empty or cannot be parsed as a
// valid URL. Callers that allow a missing endpoint should not build a
// decoder at all; the guard chain reports that case per request.
func NewHTTPTokenDecoder(cfg *config.ServiceConfig, logger *logger.Logger, m *metrics.Metrics) (TokenDecoder, error) {
	baseURL, err := normalizeBaseURL(cfg.AuthEndpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid auth endpoint: %w", err)
	}

	timeout := cfg.Server.AuthTimeout
	if timeout <= 0 {
		timeout = DefaultAuthTimeout
	}

	return &httpTokenDecoder{
		client:  utils.NewHTTPClient(baseURL, timeout),
		logger:  logger,
		metrics: m,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrAddressWithoutHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Decode implements [TokenDecoder]. It POSTs {"token": token} to
// POST {authEndpoint}/decode and maps the response status to a verdict.
func (d *httpTokenDecoder) Decode(ctx context.Context, token string) Verdict {
	start := time.Now()

	resp, err := d.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.DecodeRequest{Token: token}).
		Post(decodePath)

	verdict, outcome := mapDecodeResult(resp, err)
	d.metrics.ObserveDecode(outcome, time.Since(start))

	if !verdict.Allowed() {
		d.logger.Debug().
			Str("outcome", outcome).
			Int("code", verdict.Err().Code).
			Err(verdict.Err()).
			Msg("token rejected by validator")
	}

	return verdict
}
