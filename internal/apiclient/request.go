// Package apiclient talks to the remote tracking service. Every operation
// builds a fresh authenticated request from the stored configuration, sends
// exactly one HTTP request and routes the response through Classify.
package apiclient

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/valter-silva-au/umsebenzi/pkg/models"
	"golang.org/x/oauth2"
)

// Resource endpoints, relative to the configured host.
const (
	ProjectsEndpoint = "/projects/"
	TasksEndpoint    = "/tasks/"
)

// RequestIDHeader carries a per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// ConfigLoader supplies the host and token. It is consulted on every Build.
type ConfigLoader interface {
	LoadConfig() (*models.Config, error)
}

// Request is an absolute URL paired with a client that authenticates every
// request it sends.
type Request struct {
	Client *http.Client
	URL    string
}

// Sub returns a copy of r addressing a sub-resource of an instance URL,
// e.g. Sub("status") on .../tasks/WEB-1/ gives .../tasks/WEB-1/status/.
func (r *Request) Sub(segment string) *Request {
	u := r.URL
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return &Request{Client: r.Client, URL: u + strings.Trim(segment, "/") + "/"}
}

// WithQuery returns a copy of r with q appended as the query string. Empty
// values are dropped.
func (r *Request) WithQuery(q url.Values) *Request {
	clean := url.Values{}
	for k, vs := range q {
		for _, v := range vs {
			if v != "" {
				clean.Add(k, v)
			}
		}
	}
	if len(clean) == 0 {
		return &Request{Client: r.Client, URL: r.URL}
	}
	return &Request{Client: r.Client, URL: r.URL + "?" + clean.Encode()}
}

// Builder composes Requests from the stored configuration.
type Builder struct {
	loader ConfigLoader
	base   http.RoundTripper

	// UserAgent is sent with every request when non-empty.
	UserAgent string
}

// NewBuilder creates a Builder. A nil base uses http.DefaultTransport.
func NewBuilder(loader ConfigLoader, base http.RoundTripper) *Builder {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Builder{loader: loader, base: base}
}

// Build loads the configuration and returns the URL for endpoint, or for the
// instance below it when instance is non-empty. Each call returns a new
// client; nothing is cached between calls.
func (b *Builder) Build(endpoint, instance string) (*Request, error) {
	cfg, err := b.loader.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = models.DefaultAuthScheme
	}
	token := &oauth2.Token{AccessToken: cfg.Credentials, TokenType: scheme}

	client := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(token),
			Base:   &headerTransport{base: b.base, userAgent: b.UserAgent},
		},
	}

	return &Request{Client: client, URL: JoinURL(cfg.Host, endpoint, instance)}, nil
}

// JoinURL appends endpoint to host and, when instance is non-empty,
// instance followed by a trailing slash.
func JoinURL(host, endpoint, instance string) string {
	u := strings.TrimRight(host, "/") + endpoint
	if instance == "" {
		return u
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u + url.PathEscape(instance) + "/"
}

// headerTransport sets the JSON content headers and a request id.
type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())
	r.Header.Set("Accept", "application/json")
	r.Header.Set("Content-Type", "application/json")
	if t.userAgent != "" {
		r.Header.Set("User-Agent", t.userAgent)
	}
	if r.Header.Get(RequestIDHeader) == "" {
		r.Header.Set(RequestIDHeader, uuid.NewString())
	}
	return t.base.RoundTrip(r)
}
