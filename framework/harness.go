package framework

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// TestHarness is the fixture shared by every test in a run: an HTTP client bound to the base URL
// of the service under test. It is immutable after construction, so tests may use it
// concurrently.
type TestHarness struct {
	baseURL *url.URL
	client  *http.Client
	logger  Logger
}

// NewTestHarness creates a TestHarness for the specified base URL.
//
// The URL must be absolute, but it is not contacted here; if the service cannot be reached, that
// will surface as a TransportError from the first request.
func NewTestHarness(baseURL string, debugLogger Logger) (*TestHarness, error) {
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("base URL must not be empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must be an absolute http or https URL", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""

	return &TestHarness{
		baseURL: u,
		client:  &http.Client{Transport: newTransport()},
		logger:  debugLogger,
	}, nil
}

// newTransport keeps the default transport settings, except that it speaks HTTP/1.1 only; a
// non-nil empty TLSNextProto map turns off HTTP/2 negotiation.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ForceAttemptHTTP2 = false
	t.TLSNextProto = make(map[string]func(string, *tls.Conn) http.RoundTripper)
	return t
}

// BaseURL returns the normalized base URL, which always ends in a slash.
func (h *TestHarness) BaseURL() string {
	return h.baseURL.String()
}

// ResolveURL returns the absolute URL for a path relative to the base URL. A leading slash in
// the path does not discard the base URL's own path.
func (h *TestHarness) ResolveURL(path string) (*url.URL, error) {
	rel, err := url.Parse(strings.TrimLeft(path, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid request path %q: %w", path, err)
	}
	if rel.IsAbs() || rel.Host != "" {
		return nil, fmt.Errorf("request path %q must be relative to the base URL", path)
	}
	return h.baseURL.ResolveReference(rel), nil
}
