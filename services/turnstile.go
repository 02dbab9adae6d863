package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freevector_app_go/config"
	"freevector_app_go/services/telemetry"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var (
	// ErrTurnstileFailed is returned when a form submission fails the captcha check
	ErrTurnstileFailed = errors.New("turnstile verification failed")
	// ErrTurnstileMissing is returned when the form carried no widget token
	ErrTurnstileMissing = errors.New("turnstile token missing")
)

// turnstileVerifyURL is the default siteverify endpoint; tests point it at a local server
var turnstileVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

const turnstileTimeout = 10 * time.Second

type TurnstileResponse struct {
	Success     bool      `json:"success"`
	ChallengeTS time.Time `json:"challenge_ts"`
	Hostname    string    `json:"hostname"`
	Action      string    `json:"action"`
	ErrorCodes  []string  `json:"error-codes"`
}

// TurnstileVerifier checks widget tokens posted by the contact sales form.
type TurnstileVerifier struct {
	Secret string
	// Hostname, when set, must match the hostname the widget was solved on
	Hostname string
	Endpoint string
	Client   *http.Client
}

// NewTurnstileVerifier builds a verifier for cfg. The widget hostname is only
// enforced in production, where APP_URL is the public origin.
func NewTurnstileVerifier(cfg *config.Config) *TurnstileVerifier {
	v := &TurnstileVerifier{
		Secret:   cfg.TurnstileSecretKey,
		Endpoint: turnstileVerifyURL,
		Client:   &http.Client{Timeout: turnstileTimeout},
	}
	if cfg.IsProduction() {
		if u, err := url.Parse(cfg.AppURL); err == nil {
			v.Hostname = u.Hostname()
		}
	}
	return v
}

// Verify posts token to siteverify and returns nil when Cloudflare accepts it.
// Rejections wrap ErrTurnstileFailed with the reported error codes.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrTurnstileMissing
	}
	if v.Secret == "" {
		return fmt.Errorf("%w: no secret key configured", ErrTurnstileFailed)
	}

	ctx, span := telemetry.Tracer().Start(ctx, "turnstile.verify")
	defer span.End()

	result, err := v.siteverify(ctx, token, remoteIP)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	span.SetAttributes(
		attribute.Bool("turnstile.success", result.Success),
		attribute.String("turnstile.hostname", result.Hostname),
	)

	if !result.Success {
		return fmt.Errorf("%w, error codes: %v", ErrTurnstileFailed, result.ErrorCodes)
	}
	if v.Hostname != "" && !strings.EqualFold(result.Hostname, v.Hostname) {
		return fmt.Errorf("%w: token solved on %q, want %q", ErrTurnstileFailed, result.Hostname, v.Hostname)
	}
	return nil
}

func (v *TurnstileVerifier) siteverify(ctx context.Context, token, remoteIP string) (*TurnstileResponse, error) {
	form := url.Values{
		"secret":          {v.Secret},
		"response":        {token},
		"idempotency_key": {uuid.NewString()},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	endpoint := v.Endpoint
	if endpoint == "" {
		endpoint = turnstileVerifyURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build turnstile request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := v.Client
	if client == nil {
		client = &http.Client{Timeout: turnstileTimeout}
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to verify token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned %s", resp.Status)
	}

	var result TurnstileResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode turnstile response: %w", err)
	}
	return &result, nil
}
