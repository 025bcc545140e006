package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
)

// MapFetchError reports a failed static-map fetch for a cafe. Map fetches
// are best-effort: callers log the error and keep the cafe as-is.
type MapFetchError struct {
	CafeID int
	Err    error
}

func (e *MapFetchError) Error() string {
	return fmt.Sprintf("map fetch for cafe %d: %v", e.CafeID, e.Err)
}

func (e *MapFetchError) Unwrap() error { return e.Err }

// MapFetcher downloads static map images from the MapQuest staticmap API
// and stores them under Dir as <cafe id>.jpg.
type MapFetcher struct {
	APIKey string
	Dir    string
	Client *http.Client
}

func NewMapFetcher(apiKey, dir string) *MapFetcher {
	return &MapFetcher{APIKey: apiKey, Dir: dir, Client: http.DefaultClient}
}

// MapURL builds the staticmap URL for an address.
func (f *MapFetcher) MapURL(address, city, state string) string {
	where := fmt.Sprintf("%s,%s,%s", address, city, state)
	q := url.Values{}
	q.Set("key", f.APIKey)
	q.Set("center", where)
	q.Set("size", "@2x")
	q.Set("zoom", "15")
	q.Set("locations", where)
	return "https://www.mapquestapi.com/staticmap/v5/map?" + q.Encode()
}

// FetchAndStore downloads the map for the cafe's address and writes it to
// Dir/<cafeID>.jpg. Network failures, non-2xx responses, and write failures
// all come back as a *MapFetchError.
func (f *MapFetcher) FetchAndStore(ctx context.Context, cafeID int, address, city, state string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.MapURL(address, city, state), nil)
	if err != nil {
		return &MapFetchError{CafeID: cafeID, Err: err}
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return &MapFetchError{CafeID: cafeID, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &MapFetchError{CafeID: cafeID, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	if err := os.MkdirAll(f.Dir, 0o755); err != nil {
		return &MapFetchError{CafeID: cafeID, Err: err}
	}
	path := filepath.Join(f.Dir, fmt.Sprintf("%d.jpg", cafeID))
	out, err := os.Create(path)
	if err != nil {
		return &MapFetchError{CafeID: cafeID, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return &MapFetchError{CafeID: cafeID, Err: err}
	}
	return nil
}
