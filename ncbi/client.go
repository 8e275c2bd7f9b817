// Package ncbi resolves protein accession IDs to FASTA text using the
// NCBI sequence viewer endpoint.
package ncbi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the NCBI host the sequence viewer lives on.
const DefaultBaseURL = "https://www.ncbi.nlm.nih.gov"

// DefaultTimeout bounds one accession lookup.
const DefaultTimeout = 15 * time.Second

// ErrAccessionNotFound is returned when NCBI cannot resolve the accession.
var ErrAccessionNotFound = errors.New("accession not found")

// Client fetches the FASTA record for a protein accession.
type Client interface {
	FetchSequence(ctx context.Context, accession string) (string, error)
}

// HTTPClient is the production Client backed by net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPClient returns an HTTPClient for baseURL (DefaultBaseURL if
// empty) with the given request timeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchSequence downloads the FASTA record for accession. A body starting
// with "Failed" is NCBI's way of reporting an unresolvable ID; it is
// mapped to ErrAccessionNotFound rather than passed through as sequence
// text.
func (c *HTTPClient) FetchSequence(ctx context.Context, accession string) (string, error) {
	accession = strings.TrimSpace(accession)
	if accession == "" {
		return "", fmt.Errorf("%w: empty accession", ErrAccessionNotFound)
	}

	q := url.Values{}
	q.Set("id", accession)
	q.Set("db", "protein")
	q.Set("report", "fasta")
	q.Set("retmode", "text")
	endpoint := c.baseURL + "/sviewer/viewer.fcgi?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", accession, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", accession, err)
	}
	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%w: %s", ErrAccessionNotFound, accession)
		}
		return "", fmt.Errorf("fetch %s: NCBI returned %d", accession, resp.StatusCode)
	}
	text := string(body)
	if strings.HasPrefix(text, "Failed") {
		return "", fmt.Errorf("%w: %s", ErrAccessionNotFound, accession)
	}
	return text, nil
}
