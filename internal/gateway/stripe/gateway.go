package stripe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"fastshift/internal/entities"
	retrierconfig "fastshift/pkg/retrier"
	"fastshift/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"

	intentsPath = "/v1/payment_intents"

	maxResponseBytes = 1 << 20
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// ErrUpstreamFailure провайдер платежей недоступен или ответил ошибкой.
var ErrUpstreamFailure = errors.New("payment provider failure")

type Gateway struct {
	client  httpDoer
	retrier retrier
	baseURL string
	apiKey  string
}

func New(client httpDoer, baseURL, apiKey string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableError,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// statusError не-2xx ответ провайдера, код нужен для решения о ретрае.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.code, e.body)
}

// CreateIntent создает payment intent. Сумма уходит в минимальных единицах
// валюты, как того требует API провайдера. Idempotency-Key защищает от
// двойного создания при ретраях.
func (g *Gateway) CreateIntent(ctx context.Context, amount float64, currency string) (*entities.PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(int64(math.Round(amount*100)), 10))
	form.Set("currency", currency)

	idempotencyKey := uuid.NewString()

	var resp intentResponse
	err := g.executeWithMetrics(ctx, "CreateIntent", func(ctx context.Context) error {
		return g.postForm(ctx, intentsPath, form, idempotencyKey, &resp)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create intent: %w", ErrUpstreamFailure, err)
	}

	if resp.ClientSecret == "" {
		return nil, fmt.Errorf("%w: create intent: empty client secret", ErrUpstreamFailure)
	}

	return &entities.PaymentIntent{ClientSecret: resp.ClientSecret}, nil
}

func (g *Gateway) postForm(ctx context.Context, path string, form url.Values, idempotencyKey string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Idempotency-Key", idempotencyKey)

	httpResp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode < http.StatusOK || httpResp.StatusCode >= http.StatusMultipleChoices {
		return &statusError{code: httpResp.StatusCode, body: string(body)}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var stErr *statusError
	if errors.As(err, &stErr) {
		return stErr.code == http.StatusTooManyRequests || stErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки ретраим, ошибки сборки запроса и декодирования нет
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	statusCode := getStatusCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, statusCode).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, statusCode).Inc()
	}

	return err
}

func getStatusCode(err error) string {
	if err == nil {
		return "200"
	}
	var stErr *statusError
	if errors.As(err, &stErr) {
		return strconv.Itoa(stErr.code)
	}
	return "network_error"
}
