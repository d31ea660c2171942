package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dog-life/internal/platform/httpclient"
	"dog-life/internal/ports/assets"
)

var (
	ErrNotConfigured = errors.New("asset store client not configured")
	ErrUnauthorized  = errors.New("asset store unauthorized")
	ErrUpstream      = errors.New("asset store upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string

	// Si está vacío, se usa "X-Api-Key".
	APIKeyHeader string
	Timeout      time.Duration

	Transport http.RoundTripper
}

// Client implementa assets.Store contra un asset store HTTP:
//
//	GET    {base}/v1/assets?ref=...   -> assetResponse
//	DELETE {base}/v1/blobs/{id}
type Client struct {
	http *httpclient.Client
}

var _ assets.Store = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		return nil, ErrNotConfigured
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	headers := map[string]string{}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		headers[header] = key
	}

	hc, err := httpclient.New(httpclient.Options{
		BaseURL:   base,
		Timeout:   cfg.Timeout,
		Headers:   headers,
		Transport: cfg.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

type assetResponse struct {
	Ref             string  `json:"ref"`
	Kind            string  `json:"kind"`
	ContentType     string  `json:"content_type"`
	DurationSeconds float64 `json:"duration_seconds"`
}

func (c *Client) Lookup(ctx context.Context, ref string) (assets.Metadata, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return assets.Metadata{}, assets.ErrInvalidRef
	}

	var out assetResponse
	err := c.http.DoJSON(ctx, http.MethodGet, "/v1/assets?ref="+url.QueryEscape(ref), nil, &out)
	if err != nil {
		return assets.Metadata{}, mapErr(err)
	}

	kind := assets.Kind(strings.ToLower(strings.TrimSpace(out.Kind)))
	if kind != assets.KindAudio && kind != assets.KindImage {
		return assets.Metadata{}, fmt.Errorf("%w: unknown kind %q", ErrUpstream, out.Kind)
	}

	return assets.Metadata{
		Ref:         ref,
		Kind:        kind,
		ContentType: out.ContentType,
		Duration:    time.Duration(out.DurationSeconds * float64(time.Second)),
	}, nil
}

func (c *Client) Revoke(ctx context.Context, ref string) error {
	if !assets.IsBlob(ref) {
		return nil
	}
	id := strings.TrimPrefix(strings.TrimSpace(ref), assets.BlobPrefix)
	if id == "" {
		return assets.ErrInvalidRef
	}
	return mapErr(c.http.DoJSON(ctx, http.MethodDelete, "/v1/blobs/"+url.PathEscape(id), nil, nil))
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch httpclient.StatusOf(err) {
	case 0:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	case http.StatusNotFound:
		return assets.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
