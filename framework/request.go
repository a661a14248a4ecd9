package framework

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// Request describes one HTTP request to the service under test.
type Request struct {
	Method string
	// Path is relative to the base URL and may contain a query string.
	Path  string
	Query url.Values
	// Body, if not nil, is sent as JSON.
	Body    interface{}
	Headers http.Header
}

// NewRequest creates a Request with no body.
func NewRequest(method, path string) Request {
	return Request{Method: method, Path: path}
}

// WithJSONBody returns a copy of the request that will send the JSON encoding of body.
func (r Request) WithJSONBody(body interface{}) Request {
	r.Body = body
	return r
}

// WithQuery returns a copy of the request with a query parameter added.
func (r Request) WithQuery(name, value string) Request {
	q := url.Values{}
	for k, v := range r.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Add(name, value)
	r.Query = q
	return r
}

// WithHeader returns a copy of the request with a header added.
func (r Request) WithHeader(name, value string) Request {
	h := r.Headers.Clone()
	if h == nil {
		h = make(http.Header)
	}
	h.Add(name, value)
	r.Headers = h
	return r
}

// Response is what came back from the service. StatusCode and Header are always available,
// whether or not the body could be decoded.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// HeaderValue returns the first value of a response header, or "" if there is none.
func (r *Response) HeaderValue(name string) string {
	return r.Header.Get(name)
}

// Decode parses the response body as JSON. An empty body leaves into unchanged.
func (r *Response) Decode(into interface{}) error {
	if len(bytes.TrimSpace(r.Body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, into); err != nil {
		return &DecodeError{StatusCode: r.StatusCode, Body: string(r.Body), Err: err}
	}
	return nil
}

// Execute sends a request and, if into is not nil, decodes the response body into it.
//
// If no response was received, it returns a nil Response and a *TransportError. If the body
// could not be decoded, it returns the Response and a *DecodeError. No request is retried.
//
// Log output goes to logger and also to the harness's own debug logger, if either is set.
func (h *TestHarness) Execute(req Request, into interface{}, logger Logger) (*Response, error) {
	logger = MultiLogger(h.logger, logger)
	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	u, err := h.ResolveURL(req.Path)
	if err != nil {
		return nil, err
	}
	if len(req.Query) != 0 {
		q := u.Query()
		for k, vs := range req.Query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	var body io.Reader
	var data []byte
	if req.Body != nil {
		data, err = json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("could not encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequest(method, u.String(), body)
	if err != nil {
		return nil, err
	}
	for k, vs := range req.Headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if httpReq.Header.Get("Accept") == "" {
		httpReq.Header.Set("Accept", "application/json")
	}
	if data != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.NewString()
	httpReq.Header.Set(requestIDHeader, requestID)

	logger = PrefixedLogger(logger, "["+requestID+"] ")
	if data != nil {
		logger.Printf("%s %s %s", method, u, string(data))
	} else {
		logger.Printf("%s %s", method, u)
	}

	resp, err := h.client.Do(httpReq)
	if err != nil {
		logger.Printf("Request failed: %s", err)
		return nil, &TransportError{Method: method, URL: u.String(), Err: err}
	}
	respData, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		logger.Printf("Error reading response body: %s", err)
		return nil, &TransportError{Method: method, URL: u.String(), Err: fmt.Errorf("reading response body: %w", err)}
	}
	logger.Printf("Response status %d: %s", resp.StatusCode, string(respData))

	ret := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respData,
		RequestID:  requestID,
	}
	if into != nil {
		if err := ret.Decode(into); err != nil {
			return ret, err
		}
	}
	return ret, nil
}
