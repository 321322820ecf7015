// Package transport performs the authenticated HTTPS exchanges with
// the registrar: document submission and status polling over a
// mutual-TLS channel. It interprets HTTP status codes into a thin
// error mapping and hands the raw response back unchanged.
package transport

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rezonia/orangedata-go/internal/model"
)

const defaultTimeout = 10 * time.Second

// Config describes the registrar endpoint and the client credentials.
// The certificate fields may be left empty when the endpoint does not
// require mutual TLS (local bridges, tests).
type Config struct {
	BaseURL string
	INN     string

	ClientCertFile string
	ClientKeyFile  string
	CACertFile     string

	Timeout time.Duration
	Verbose bool
}

// Response is the raw registrar reply.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Processing reports whether a status poll answered 202: the document
// was accepted but not fiscalized yet.
func (r *Response) Processing() bool {
	return r.StatusCode == 202
}

// Client is the registrar HTTP client.
type Client struct {
	baseURL    *url.URL
	inn        string
	httpClient *http.Client
	verbose    bool
}

// New builds a client from config, loading TLS credentials when given.
func New(cfg Config) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid registrar URL %q: %w", cfg.BaseURL, err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.ClientCertFile != "" {
		tlsCfg, err := buildTLSConfig(cfg)
		if err != nil {
			return nil, err
		}
		httpClient.Transport = &http.Transport{TLSClientConfig: tlsCfg}
	}

	return &Client{
		baseURL:    base,
		inn:        cfg.INN,
		httpClient: httpClient,
		verbose:    cfg.Verbose,
	}, nil
}

func buildTLSConfig(cfg Config) (*tls.Config, error) {
	cert, err := tls.LoadX509KeyPair(cfg.ClientCertFile, cfg.ClientKeyFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load client certificate: %w", err)
	}
	tlsCfg := &tls.Config{Certificates: []tls.Certificate{cert}}

	if cfg.CACertFile != "" {
		caPEM, err := os.ReadFile(cfg.CACertFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(caPEM) {
			return nil, fmt.Errorf("no certificates found in %s", cfg.CACertFile)
		}
		tlsCfg.RootCAs = pool
	}
	return tlsCfg, nil
}

// SendOrder submits a signed order document.
func (c *Client) SendOrder(ctx context.Context, canonical []byte, signature string) (*Response, error) {
	return c.submit(ctx, "/api/v2/documents/", canonical, signature)
}

// OrderStatus polls the processing state of an order document.
func (c *Client) OrderStatus(ctx context.Context, id string) (*Response, error) {
	return c.status(ctx, fmt.Sprintf("/api/v2/documents/%s/status/%s", c.inn, url.PathEscape(id)))
}

// SendCorrection submits a signed correction document. Format 1.2
// corrections go to their own endpoint pair.
func (c *Client) SendCorrection(ctx context.Context, rev model.Revision, canonical []byte, signature string) (*Response, error) {
	return c.submit(ctx, correctionPath(rev), canonical, signature)
}

// CorrectionStatus polls the processing state of a correction document.
func (c *Client) CorrectionStatus(ctx context.Context, rev model.Revision, id string) (*Response, error) {
	return c.status(ctx, fmt.Sprintf("%s%s/status/%s", correctionPath(rev), c.inn, url.PathEscape(id)))
}

func correctionPath(rev model.Revision) string {
	if rev == model.Revision12 {
		return "/api/v2/corrections12/"
	}
	return "/api/v2/corrections/"
}

func (c *Client) submit(ctx context.Context, path string, canonical []byte, signature string) (*Response, error) {
	endpoint := c.resolve(path)
	if c.verbose {
		log.Printf("[TRANSPORT] POST %s (%d bytes)", endpoint, len(canonical))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(canonical))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature", signature)

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return resp, mapSubmitStatus(resp.StatusCode)
}

func (c *Client) status(ctx context.Context, path string) (*Response, error) {
	endpoint := c.resolve(path)
	if c.verbose {
		log.Printf("[TRANSPORT] GET %s", endpoint)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	return resp, mapStatusStatus(resp.StatusCode)
}

func (c *Client) do(req *http.Request) (*Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("registrar request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read registrar response: %w", err)
	}

	if c.verbose {
		log.Printf("[TRANSPORT] %d (%d bytes)", resp.StatusCode, len(body))
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Body:       body,
		Header:     resp.Header,
	}, nil
}

func (c *Client) resolve(path string) string {
	ref := &url.URL{Path: path}
	return c.baseURL.ResolveReference(ref).String()
}
