// Package erp is the thin HTTP adapter to the restaurant back-office system:
// catalog search for entity resolution and invoice submission. Only the
// narrow surface the pipeline needs is wrapped; everything else the ERP
// offers is out of scope.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/paradize/restodocs/internal/entity"
	"github.com/paradize/restodocs/internal/invoice"
	"github.com/paradize/restodocs/internal/resolve"
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client implements resolve.CatalogLookup, invoice.StoreDirectory and
// status.Submitter.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
}

type catalogRow struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	INN         string    `json:"inn,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	Destination string    `json:"destination,omitempty"`
}

func (c *Client) SearchProducts(ctx context.Context, name string) ([]resolve.CatalogEntry, error) {
	return c.search(ctx, "/v1/products/search", url.Values{"name": {name}})
}

func (c *Client) SearchSuppliers(ctx context.Context, name, inn string) ([]resolve.CatalogEntry, error) {
	q := url.Values{"name": {name}}
	if inn != "" {
		q.Set("inn", inn)
	}
	return c.search(ctx, "/v1/suppliers/search", q)
}

func (c *Client) GetProduct(ctx context.Context, id uuid.UUID) (*resolve.CatalogEntry, error) {
	raw, status, err := c.get(ctx, "/v1/products/"+id.String())
	if err != nil {
		if status == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	var row catalogRow
	if err := json.Unmarshal(raw, &row); err != nil {
		return nil, fmt.Errorf("decode product %s: %w", id, err)
	}
	e := toEntry(row)
	return &e, nil
}

type storeRow struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DestinationType string    `json:"destination_type"`
}

// ListStores fetches the receiving stores keyed by destination type. When
// two stores share a destination the ERP's first one wins.
func (c *Client) ListStores(ctx context.Context) (map[string]invoice.Store, error) {
	raw, _, err := c.get(ctx, "/v1/stores")
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}
	var rows []storeRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode stores response: %w", err)
	}
	out := make(map[string]invoice.Store, len(rows))
	for _, row := range rows {
		if _, ok := out[row.DestinationType]; ok {
			continue
		}
		out[row.DestinationType] = invoice.Store{ID: row.ID, Name: row.Name}
	}
	return out, nil
}

// Submit pushes one invoice. The ERP deduplicates by document number, so a
// retried call with the same record is acknowledged, not duplicated.
func (c *Client) Submit(ctx context.Context, rec *entity.SubmissionRecord) error {
	payload := map[string]any{
		"doc_number":       rec.DocNumber,
		"doc_date":         rec.DocDate.Format("2006-01-02"),
		"destination_type": rec.DestinationType,
		"store_id":         rec.StoreID,
		"supplier_id":      rec.SupplierID,
		"total_amount":     rec.TotalAmount.StringFixed(2),
		"items":            rec.Items,
	}
	start := time.Now()
	raw, status, err := c.post(ctx, "/v1/invoices", payload)
	if err != nil {
		c.logger.Warn("erp.submit.failed",
			"doc_number", rec.DocNumber,
			"status", status,
			"error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return fmt.Errorf("submit invoice %s: %w", rec.DocNumber, err)
	}
	c.logger.Info("erp.submit.ok",
		"doc_number", rec.DocNumber,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

func (c *Client) search(ctx context.Context, path string, q url.Values) ([]resolve.CatalogEntry, error) {
	raw, _, err := c.get(ctx, path+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("catalog search %s: %w", path, err)
	}
	var rows []catalogRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}
	out := make([]resolve.CatalogEntry, len(rows))
	for i, row := range rows {
		out[i] = toEntry(row)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	return c.do(req)
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, int, error) {
	bs, err := json.Marshal(body)
	if err != nil {
		return nil, 0, fmt.Errorf("encode json: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(bs))
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, int, error) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer func(body io.ReadCloser) {
		if err := body.Close(); err != nil {
			c.logger.Warn("erp.http.response_body_close_error", "error", err)
		}
	}(resp.Body)

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, resp.StatusCode, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, resp.StatusCode, nil
}

func toEntry(row catalogRow) resolve.CatalogEntry {
	return resolve.CatalogEntry{
		ID:          row.ID,
		Name:        row.Name,
		INN:         row.INN,
		Unit:        row.Unit,
		Destination: row.Destination,
	}
}
