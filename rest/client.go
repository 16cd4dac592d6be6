package rest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"runtime"
	"strings"
	"time"

	"github.com/telesign/telesign-go/constants"
	"github.com/telesign/telesign-go/credentials"
	"github.com/telesign/telesign-go/requestctx"
	"github.com/telesign/telesign-go/signing"
)

// Options defines the construction time configuration of a Client.
type Options struct {
	// APIHost is the scheme+host requests are sent to.
	APIHost string

	// Timeout bounds a whole exchange including reading the response body.
	Timeout time.Duration

	// Proxy routes all traffic through a forward proxy when set.
	Proxy *url.URL

	// Transport overrides the http.RoundTripper, e.g. for metrics
	// instrumentation or test stubs. Takes precedence over Proxy.
	Transport http.RoundTripper

	// HTTPClient replaces the whole client. When set Timeout, Proxy and
	// Transport are ignored.
	HTTPClient *http.Client
}

// RequestOptions are per-call overrides. Fixing Date and Nonce makes the
// signature of a call fully deterministic, which is what the server expects
// when replaying a troubleshooting request and what tests rely on.
type RequestOptions struct {
	Date  string
	Nonce string
}

// Client dispatches signed requests to the REST API. It holds no mutable
// state after construction so a single instance can be shared between
// goroutines as long as its transport is safe for concurrent use (the
// net/http default is).
type Client struct {
	creds      credentials.Credentials
	apiHost    string
	userAgent  string
	httpClient *http.Client
}

// New builds a Client for the given credentials. Without option functions
// requests go to the production API host with a 10 second timeout.
func New(creds credentials.Credentials, optFns ...func(*Options)) *Client {
	opts := Options{
		APIHost: constants.DefaultAPIHost,
		Timeout: constants.DefaultTimeout,
	}
	for _, optFn := range optFns {
		optFn(&opts)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		transport := opts.Transport
		if transport == nil && opts.Proxy != nil {
			transport = &http.Transport{Proxy: http.ProxyURL(opts.Proxy)}
		}
		httpClient = &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
		}
	}
	return &Client{
		creds:      creds,
		apiHost:    strings.TrimSuffix(opts.APIHost, "/"),
		userAgent:  buildUserAgent(),
		httpClient: httpClient,
	}
}

//The User-Agent is purely informational: SDK, runtime and HTTP library identifiers.
func buildUserAgent() string {
	return fmt.Sprintf(
		"%s/%s go/%s net-http/%s",
		constants.SDKName, constants.SDKVersion, runtime.Version(), runtime.Version(),
	)
}

// Post dispatches a signed POST request with fields in the request body.
func (c *Client) Post(ctx context.Context, resource string, fields *Fields, optFns ...func(*RequestOptions)) (*Response, error) {
	return c.Execute(ctx, http.MethodPost, resource, fields, optFns...)
}

// Get dispatches a signed GET request with fields in the query string.
func (c *Client) Get(ctx context.Context, resource string, fields *Fields, optFns ...func(*RequestOptions)) (*Response, error) {
	return c.Execute(ctx, http.MethodGet, resource, fields, optFns...)
}

// Put dispatches a signed PUT request with fields in the request body.
func (c *Client) Put(ctx context.Context, resource string, fields *Fields, optFns ...func(*RequestOptions)) (*Response, error) {
	return c.Execute(ctx, http.MethodPut, resource, fields, optFns...)
}

// Delete dispatches a signed DELETE request with fields in the query string.
func (c *Client) Delete(ctx context.Context, resource string, fields *Fields, optFns ...func(*RequestOptions)) (*Response, error) {
	return c.Execute(ctx, http.MethodDelete, resource, fields, optFns...)
}

func methodCarriesBody(method string) bool {
	return method == http.MethodPost || method == http.MethodPut
}

// Execute performs one signed call: encode fields, derive the auth headers,
// place the fields in body or query depending on the method and hand the
// request to the HTTP client. Transport errors come back wrapped with method
// and resource for context but otherwise unchanged, and every completed
// exchange is a Response regardless of its status code.
func (c *Client) Execute(ctx context.Context, method string, resource string, fields *Fields, optFns ...func(*RequestOptions)) (*Response, error) {
	var reqOpts RequestOptions
	for _, optFn := range optFns {
		optFn(&reqOpts)
	}

	encodedFields := fields.Encode()
	signedHeaders, err := signing.GenerateHeaders(c.creds, method, resource, encodedFields, signing.Options{
		Date:      reqOpts.Date,
		Nonce:     reqOpts.Nonce,
		UserAgent: c.userAgent,
	})
	if err != nil {
		return nil, err
	}

	targetUrl := c.apiHost + resource
	var body io.Reader
	if methodCarriesBody(method) {
		body = strings.NewReader(encodedFields)
	} else if encodedFields != "" {
		separator := "?"
		if strings.Contains(resource, "?") {
			separator = "&"
		}
		targetUrl += separator + encodedFields
	}

	ctx = requestctx.Ensure(ctx)
	req, err := http.NewRequestWithContext(ctx, method, targetUrl, body)
	if err != nil {
		return nil, err
	}
	for headerName, headerValue := range signedHeaders {
		//Direct map writes keep the lower case x-ts-* names exactly as signed.
		req.Header[headerName] = []string{headerValue}
	}

	startTime := time.Now()
	slog.LogAttrs(
		ctx,
		slog.LevelDebug,
		"Request start",
		slog.String("Method", method),
		slog.String("Resource", resource),
	)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, resource, err)
	}
	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: reading response body: %w", method, resource, err)
	}
	slog.LogAttrs(
		ctx,
		slog.LevelDebug,
		"Request end",
		slog.String("Method", method),
		slog.String("Resource", resource),
		slog.Int("HTTP status", resp.StatusCode),
		slog.Int64("Total ms", time.Since(startTime).Milliseconds()),
	)

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}
