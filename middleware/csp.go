package middleware

import (
	"context"
	"crypto/rand"
	"strings"

	"freevector_app_go/config"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// nonceSource is replaced by the request nonce when the header is rendered
const nonceSource = "'nonce'"

const (
	unpkgOrigin     = "https://unpkg.com"
	turnstileOrigin = "https://challenges.cloudflare.com"
)

// Directive is one CSP directive and its sources
type Directive struct {
	Name    string
	Sources []string
}

// Policy is a Content-Security-Policy in header order.
type Policy []Directive

// NewPolicy returns the policy for the public pages. Scripts load from
// unpkg (htmx, Lucide) or carry the request nonce; the Turnstile origin is
// only allowed when the contact form renders the widget.
func NewPolicy(cfg *config.Config) Policy {
	p := Policy{
		{"default-src", []string{"'self'"}},
		{"script-src", []string{"'self'", nonceSource, unpkgOrigin}},
		{"style-src", []string{"'self'", "'unsafe-inline'"}},
		{"img-src", []string{"'self'", "data:"}},
		{"connect-src", []string{"'self'"}},
		{"frame-src", []string{"'none'"}},
		{"object-src", []string{"'none'"}},
		{"base-uri", []string{"'self'"}},
		{"form-action", []string{"'self'"}},
	}
	if cfg.TurnstileEnabled() {
		p = p.Allow("script-src", turnstileOrigin).
			Allow("connect-src", turnstileOrigin).
			Set("frame-src", turnstileOrigin)
	}
	if cfg.IsProduction() {
		p = append(p, Directive{Name: "upgrade-insecure-requests"})
	}
	return p
}

// Allow returns a copy of p with sources appended to the named directive,
// adding the directive when missing.
func (p Policy) Allow(name string, sources ...string) Policy {
	out := p.clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Sources = append(out[i].Sources, sources...)
			return out
		}
	}
	return append(out, Directive{Name: name, Sources: sources})
}

// Set returns a copy of p with the named directive's sources replaced
func (p Policy) Set(name string, sources ...string) Policy {
	out := p.clone()
	for i := range out {
		if out[i].Name == name {
			out[i].Sources = sources
			return out
		}
	}
	return append(out, Directive{Name: name, Sources: sources})
}

func (p Policy) clone() Policy {
	out := make(Policy, len(p))
	for i, d := range p {
		out[i] = Directive{Name: d.Name, Sources: append([]string(nil), d.Sources...)}
	}
	return out
}

// Header renders the policy with nonce substituted into the nonce placeholder.
func (p Policy) Header(nonce string) string {
	var b strings.Builder
	for i, d := range p {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Name)
		for _, src := range d.Sources {
			b.WriteByte(' ')
			if src == nonceSource {
				src = "'nonce-" + nonce + "'"
			}
			b.WriteString(src)
		}
	}
	return b.String()
}

// GenerateNonce returns a fresh random nonce
func GenerateNonce() string {
	return rand.Text()
}

// CSPNonce gives every request its own script nonce, stores it for the
// views and sends policy with it.
func CSPNonce(policy Policy) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce := GenerateNonce()

			c.Set(string(NonceKey), nonce)
			c.SetRequest(c.Request().WithContext(context.WithValue(c.Request().Context(), NonceKey, nonce)))
			c.Response().Header().Set(echo.HeaderContentSecurityPolicy, policy.Header(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
