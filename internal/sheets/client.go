// Package sheets fetches published-spreadsheet CSV exports over plain HTTP
// and decodes them into header-keyed rows.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Row is one spreadsheet row keyed by the header line. Fields the row does
// not reach are present with an empty value.
type Row map[string]string

type Client struct {
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// FetchRows performs a single GET against a CSV export URL and returns the
// decoded rows. An empty URL (unconfigured section) yields no rows and no
// error. Any other failure is returned to the caller, which treats the
// section as empty; one broken section must never block the rest.
func (c *Client) FetchRows(ctx context.Context, url string) ([]Row, error) {
	if url == "" {
		log.Debug().Msg("No URL configured for section, skipping fetch")
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("CSV request failed with status %d: %s", resp.StatusCode, string(body))
	}

	rows, err := DecodeRows(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode CSV from %s: %w", url, err)
	}

	log.Debug().Str("url", url).Int("rows", len(rows)).Msg("Fetched CSV rows")
	return rows, nil
}

// DecodeRows parses delimited text whose first record names the fields.
// Quoted fields may contain commas and line breaks. Short records simply
// lack their trailing fields; extra cells beyond the header are dropped.
func DecodeRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
