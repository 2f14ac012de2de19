// Package historyfeed reads indexed transfer history for an address from the
// external indexer and coerces it into transfer records.
package historyfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/internal/metrics"
	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/retry"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
)

const historyPath = "/history/{address}"

// Result is the outcome of a full paginated fetch.
type Result struct {
	Records     []transfer.Record
	Quarantined []Quarantined
	Pages       int
}

// Client fetches history pages from the indexer.
type Client struct {
	http     *resty.Client
	baseURL  string
	baseURLs map[transfer.NetworkType]string
	pageSize int
	maxPages int
	policy   retry.Policy
	validate *validator.Validate
	logger   *zap.Logger
}

// NewClient builds a feed client from configuration.
func NewClient(cfg config.HistoryFeedConfig, policy retry.Policy, logger *zap.Logger) (*Client, error) {
	overrides := make(map[transfer.NetworkType]string, len(cfg.NetworkBaseURLs))
	for name, url := range cfg.NetworkBaseURLs {
		nt, err := transfer.ParseNetworkType(name)
		if err != nil {
			return nil, fmt.Errorf("history_feed.network_base_urls: %w", err)
		}
		overrides[nt] = strings.TrimRight(url, "/")
	}

	hc := resty.New().
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", cfg.UserAgent)

	return &Client{
		http:     hc,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		baseURLs: overrides,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
		policy:   policy,
		validate: newValidator(),
		logger:   logger,
	}, nil
}

// Fetch pages through the identity's history until a short page or the page
// limit. A malformed address fails immediately with a ValidationError. A page
// that cannot be fetched after retries fails the whole call with a
// NetworkError, and a rejected request with a ResponseError.
func (c *Client) Fetch(ctx context.Context, id transfer.Identity) (*Result, error) {
	address, err := transfer.NormalizeAddress(id.Address)
	if err != nil {
		return nil, err
	}

	res := &Result{Records: []transfer.Record{}}
	for page := 0; page < c.maxPages; page++ {
		offset := page * c.pageSize
		items, err := retry.Do(ctx, c.policy, c.logger, "history_feed", func(ctx context.Context) ([]json.RawMessage, error) {
			return c.fetchPage(ctx, id.NetworkType, address, offset)
		})
		if err != nil {
			return nil, err
		}
		res.Pages++

		for _, raw := range items {
			rec, q := decodeRecord(c.validate, raw)
			if q != nil {
				metrics.QuarantinedTotal.WithLabelValues(q.Reason).Inc()
				c.logger.Warn("Quarantined history record",
					zap.String("address", address),
					zap.String("reason", q.Reason),
					zap.String("error", q.Err))
				res.Quarantined = append(res.Quarantined, *q)
				continue
			}
			res.Records = append(res.Records, rec)
		}

		if len(items) < c.pageSize {
			break
		}
	}

	c.logger.Debug("Fetched transfer history",
		zap.String("address", address),
		zap.String("network_type", string(id.NetworkType)),
		zap.Int("records", len(res.Records)),
		zap.Int("quarantined", len(res.Quarantined)),
		zap.Int("pages", res.Pages))
	return res, nil
}

func (c *Client) fetchPage(ctx context.Context, nt transfer.NetworkType, address string, offset int) ([]json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("address", address).
		SetQueryParams(map[string]string{
			"offset": strconv.Itoa(offset),
			"limit":  strconv.Itoa(c.pageSize),
		}).
		Get(c.base(nt) + historyPath)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, transfer.NewNetworkError("history_feed", err)
	}

	if err := classifyStatus(resp.StatusCode(), resp.String()); err != nil {
		return nil, err
	}

	var items []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, transfer.NewNetworkError("history_feed", fmt.Errorf("malformed page body: %w", err))
	}
	return items, nil
}

func (c *Client) base(nt transfer.NetworkType) string {
	if u, ok := c.baseURLs[nt]; ok {
		return u
	}
	return c.baseURL
}

// ResponseError is a non-2xx indexer response that retrying will not fix.
// The address was validated before the request, so callers treat it as an
// unavailable feed rather than bad input.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("indexer returned %d: %s", e.StatusCode, e.Body)
}

// classifyStatus maps throttling and server faults to retryable network
// errors and every other non-2xx to a ResponseError.
func classifyStatus(code int, body string) error {
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusTooManyRequests || code == http.StatusRequestTimeout || code >= 500:
		return transfer.NewNetworkError("history_feed", fmt.Errorf("indexer returned %d", code))
	default:
		if len(body) > 256 {
			body = body[:256]
		}
		return &ResponseError{StatusCode: code, Body: body}
	}
}
