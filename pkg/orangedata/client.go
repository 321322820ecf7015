package orangedata

import (
	"context"
	"time"

	"github.com/rezonia/orangedata-go/internal/builder"
	"github.com/rezonia/orangedata-go/internal/model"
	"github.com/rezonia/orangedata-go/internal/signature"
	"github.com/rezonia/orangedata-go/internal/transport"
	"github.com/rezonia/orangedata-go/internal/validate"
)

// Options configure a Client.
type Options struct {
	INN    string
	APIURL string
	// Group is the default device group; "Main" when empty.
	Group string

	// SignKeyFile is the PEM signing key path. SignKeyPEM takes
	// precedence when set; Signer overrides both.
	SignKeyFile string
	SignKeyPEM  []byte
	Signer      signature.Signer

	ClientCertFile string
	ClientKeyFile  string
	CACertFile     string

	Timeout time.Duration
	Verbose bool
}

// Client combines the document builder, the signing collaborator and
// the registrar transport behind the original client surface. It keeps
// one in-progress order and one in-progress correction; documents are
// retained after submission until the next Create* call, so status
// polls and re-submission after a transient failure remain possible.
//
// A Client is a single-owner structure; use one per goroutine.
type Client struct {
	builder   *builder.Builder
	signer    signature.Signer
	transport *transport.Client
}

// NewClient builds a ready-to-use client from options.
func NewClient(opts Options) (*Client, error) {
	signer := opts.Signer
	if signer == nil {
		var err error
		switch {
		case len(opts.SignKeyPEM) > 0:
			signer, err = signature.ParseRSASigner(opts.SignKeyPEM)
		default:
			signer, err = signature.LoadRSASigner(opts.SignKeyFile)
		}
		if err != nil {
			return nil, err
		}
	}

	tc, err := transport.New(transport.Config{
		BaseURL:        opts.APIURL,
		INN:            opts.INN,
		ClientCertFile: opts.ClientCertFile,
		ClientKeyFile:  opts.ClientKeyFile,
		CACertFile:     opts.CACertFile,
		Timeout:        opts.Timeout,
		Verbose:        opts.Verbose,
	})
	if err != nil {
		return nil, err
	}

	var bopts []builder.Option
	if opts.Group != "" {
		bopts = append(bopts, builder.WithDefaultGroup(opts.Group))
	}

	return &Client{
		builder:   builder.New(opts.INN, bopts...),
		signer:    signer,
		transport: tc,
	}, nil
}

// CreateOrder starts a new order, discarding any in-progress one.
func (c *Client) CreateOrder(p OrderParams) error {
	return c.builder.BeginOrder(p)
}

// AddPosition appends a line to the in-progress order.
func (c *Client) AddPosition(p PositionParams) error {
	return c.builder.AddPosition(builder.KindOrder, p)
}

// AddPayment appends a payment row to the in-progress order.
func (c *Client) AddPayment(p PaymentParams) error {
	return c.builder.AddPayment(builder.KindOrder, p)
}

// AddAgent sets the document-level intermediary block on the order.
func (c *Client) AddAgent(p AgentParams) error {
	return c.builder.AddAgent(p)
}

// AddUserAttribute sets the additional user attribute block.
func (c *Client) AddUserAttribute(name, value string) error {
	return c.builder.AddUserAttribute(name, value)
}

// SignOrder finalizes the in-progress order and returns the document
// with its detached signature.
func (c *Client) SignOrder() (*OrderDocument, string, error) {
	doc, err := c.builder.CloseOrder()
	if err != nil {
		return nil, "", err
	}
	canonical, err := doc.Canonical()
	if err != nil {
		return nil, "", err
	}
	sig, err := c.signer.Sign(canonical)
	if err != nil {
		return nil, "", err
	}
	return doc, sig, nil
}

// SendOrder finalizes, signs and submits the in-progress order. The
// raw registrar response is returned even when the status mapping
// yields an error.
func (c *Client) SendOrder(ctx context.Context) (*Response, error) {
	doc, sig, err := c.SignOrder()
	if err != nil {
		return nil, err
	}
	canonical, err := doc.Canonical()
	if err != nil {
		return nil, err
	}
	return c.transport.SendOrder(ctx, canonical, sig)
}

// OrderStatus polls the processing state of a submitted order.
func (c *Client) OrderStatus(ctx context.Context, id string) (*Response, error) {
	if !validate.LengthInRange(id, 1, 32) {
		return nil, model.NewValidationError("id", id, "length", "document id must be 1-32 characters")
	}
	return c.transport.OrderStatus(ctx, id)
}

// CreateCorrection starts a new correction document.
func (c *Client) CreateCorrection(p CorrectionParams) error {
	return c.builder.BeginCorrection(p)
}

// AddCorrectionPosition appends a line to the in-progress correction.
// Requires format 1.2.
func (c *Client) AddCorrectionPosition(p PositionParams) error {
	return c.builder.AddPosition(builder.KindCorrection, p)
}

// AddCorrectionPayment appends a payment row to the in-progress
// correction. Requires format 1.2.
func (c *Client) AddCorrectionPayment(p PaymentParams) error {
	return c.builder.AddPayment(builder.KindCorrection, p)
}

// SignCorrection finalizes the in-progress correction and returns the
// document with its detached signature.
func (c *Client) SignCorrection() (*CorrectionDocument, string, error) {
	doc, err := c.builder.CloseCorrection()
	if err != nil {
		return nil, "", err
	}
	canonical, err := doc.Canonical()
	if err != nil {
		return nil, "", err
	}
	sig, err := c.signer.Sign(canonical)
	if err != nil {
		return nil, "", err
	}
	return doc, sig, nil
}

// SendCorrection finalizes, signs and submits the in-progress
// correction.
func (c *Client) SendCorrection(ctx context.Context) (*Response, error) {
	doc, sig, err := c.SignCorrection()
	if err != nil {
		return nil, err
	}
	canonical, err := doc.Canonical()
	if err != nil {
		return nil, err
	}
	return c.transport.SendCorrection(ctx, doc.Revision, canonical, sig)
}

// CorrectionStatus polls the processing state of a submitted
// correction. The revision selects the endpoint pair.
func (c *Client) CorrectionStatus(ctx context.Context, rev Revision, id string) (*Response, error) {
	if !validate.LengthInRange(id, 1, 32) {
		return nil, model.NewValidationError("id", id, "length", "document id must be 1-32 characters")
	}
	return c.transport.CorrectionStatus(ctx, rev, id)
}
