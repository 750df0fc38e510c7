package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"venuebook/internal/infra"
	"venuebook/internal/pkg/config"
)

// Client talks to the remote reservation service. It performs no retries:
// a failed call is fatal to the attempt and reported upward as-is.
type Client struct {
	hc      *http.Client
	baseURL string
	apiKey  string
	logger  *slog.Logger
}

func NewClient(cfg config.GatewayConfig, logger *slog.Logger) *Client {
	return &Client{
		hc:      &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string) (int, []byte, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, infra.WrapGatewayErr("failed to encode request body", err, infra.KindTransport)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, infra.WrapGatewayErr("failed to build request", err, infra.KindTransport)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return 0, nil, infra.WrapGatewayErr("reservation service unreachable", err, infra.KindTransport)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close response body", "error", closeErr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, infra.WrapGatewayErr("failed to read response body", err, infra.KindTransport)
	}
	return resp.StatusCode, respBody, nil
}

// remoteMessage digs a human-readable message out of an error body. Both the
// flat {"message": ...} and the enveloped {"error": {"message": ...}} shapes
// are seen in the wild.
func remoteMessage(body []byte, fallback string) string {
	var flat struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &flat); err == nil && flat.Message != "" {
		return flat.Message
	}
	var enveloped struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &enveloped); err == nil && enveloped.Error.Message != "" {
		return enveloped.Error.Message
	}
	return fallback
}

func statusError(status int, body []byte) error {
	fallback := fmt.Sprintf("reservation service returned status %d", status)
	msg := remoteMessage(body, fallback)

	switch {
	case status == http.StatusConflict:
		return infra.NewGatewayErr(msg, infra.KindConflict)
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return infra.NewGatewayErr(msg, infra.KindUnauthorized)
	case status == http.StatusNotFound:
		return infra.NewGatewayErr(msg, infra.KindNotFound)
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		return infra.NewGatewayErr(msg, infra.KindInvalidPayload)
	case status >= 500:
		return infra.NewGatewayErr(msg, infra.KindRemoteFailure)
	default:
		return infra.NewGatewayErr(msg, infra.KindRemoteFailure)
	}
}
