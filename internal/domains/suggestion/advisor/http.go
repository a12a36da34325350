package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"lavender/config"
	"lavender/infras/otel"
	"lavender/internal/domains/suggestion/model"
	"lavender/shared/constant"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout      = 10 * time.Second
	maxResponseBodySize = 1 << 20
)

type httpAdvisor struct {
	endpoint string
	apiKey   string
	client   *http.Client
	otel     otel.Otel
}

// NewHTTP returns an advisor that posts the request as JSON to the configured endpoint.
func NewHTTP(cfg *config.Config, otel otel.Otel) Advisor {
	timeout := time.Duration(cfg.Suggestion.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &httpAdvisor{
		endpoint: cfg.Suggestion.Endpoint,
		apiKey:   cfg.Suggestion.APIKey,
		client:   &http.Client{Timeout: timeout},
		otel:     otel,
	}
}

func (a *httpAdvisor) Suggest(ctx context.Context, req model.Request) (res model.Response, err error) {
	ctx, scope := a.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".Suggest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	body, err := json.Marshal(req)
	if err != nil {
		return res, fmt.Errorf("failed to marshal suggestion request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(body))
	if err != nil {
		return res, fmt.Errorf("failed to create suggestion request: %w", err)
	}

	httpReq.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	if a.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(httpReq)
	if err != nil {
		return res, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err != nil {
		return res, fmt.Errorf("failed to read suggestion response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("suggestion service returned an error")

		return res, fmt.Errorf("suggestion service responded with status %d", resp.StatusCode)
	}

	if err = json.Unmarshal(respBody, &res); err != nil {
		return res, fmt.Errorf("failed to decode suggestion response: %w", err)
	}

	return res, nil
}
