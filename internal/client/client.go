package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"

	"uni-seeder/internal/config/env"
	"uni-seeder/internal/utils/errcode"
)

// Call describes one request against the remote API.
type Call struct {
	Method string
	Path   string
	Token  string
	Body   any
	Expect int
}

// Client issues one request at a time against the remote API and classifies
// every outcome into a Result. It never retries.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *logrus.Logger
	tracer  trace.Tracer
}

func NewClient(log *logrus.Logger, config *env.Config) *Client {
	c := &Client{
		baseURL: strings.TrimRight(config.API.BaseURL, "/"),
		http:    &http.Client{Timeout: config.GetAPITimeout()},
		log:     log,
		tracer:  otel.Tracer("Client"),
	}
	if config.API.RatePerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(config.API.RatePerSecond), 1)
	}
	return c
}

// Do sends call and, when the response carries the expected status and out
// is non-nil, decodes the body into out. A body that cannot be decoded is
// reported as a transport fault.
func (c *Client) Do(ctx context.Context, call Call, out any) Result {
	spanCtx, span := c.tracer.Start(ctx, "Client.Do", trace.WithAttributes(
		attribute.String("http.method", call.Method),
		attribute.String("http.path", call.Path),
	))
	defer span.End()

	logger := c.log.WithContext(spanCtx).WithFields(logrus.Fields{
		"method": call.Method,
		"path":   call.Path,
	})

	result := c.do(spanCtx, call, out)
	span.SetAttributes(attribute.Int("http.status_code", result.Status))
	if !result.OK() {
		span.SetStatus(codes.Error, string(result.Kind))
		logger.WithField("kind", result.Kind).Debug("request failed")
	} else {
		logger.WithField("status", result.Status).Debug("request succeeded")
	}
	return result
}

func (c *Client) do(ctx context.Context, call Call, out any) Result {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return transportFault(0, err)
		}
	}

	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return transportFault(0, fmt.Errorf("encode request: %w", err))
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, c.baseURL+call.Path, body)
	if err != nil {
		return transportFault(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if call.Token != "" {
		req.Header.Set("Authorization", "Bearer "+call.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return transportFault(0, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFault(resp.StatusCode, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode != call.Expect {
		return Result{
			Kind:   StatusHTTPError,
			Status: resp.StatusCode,
			Detail: strings.TrimSpace(string(raw)),
			Err:    fmt.Errorf("%w: got %d, want %d", errcode.ErrUnexpectedStatus, resp.StatusCode, call.Expect),
		}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return Result{
				Kind:   StatusTransportError,
				Status: resp.StatusCode,
				Detail: fmt.Sprintf("%s: %v", errcode.ErrMalformedResponse, err),
				Err:    fmt.Errorf("%w: %v", errcode.ErrMalformedResponse, err),
			}
		}
	}

	return Result{Kind: StatusSuccess, Status: resp.StatusCode}
}

func transportFault(status int, err error) Result {
	return Result{
		Kind:   StatusTransportError,
		Status: status,
		Detail: err.Error(),
		Err:    fmt.Errorf("%w: %v", errcode.ErrTransport, err),
	}
}
