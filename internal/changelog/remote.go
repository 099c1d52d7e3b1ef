package changelog

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultRemoteTimeout bounds a remote fetch when the caller sets no deadline.
	DefaultRemoteTimeout = 10 * time.Second
	// MaxRemoteSize caps the body read from a remote document.
	MaxRemoteSize = 4 << 20
)

// StatusError reports a remote document served with a non-200 status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status code: %d", e.URL, e.StatusCode)
}

// IsRemote reports whether input names an http(s) URL rather than a path.
func IsRemote(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// ReadSource returns the raw document named by a path or URL.
func ReadSource(ctx context.Context, input string) ([]byte, error) {
	if !IsRemote(input) {
		return readFile(input)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRemoteTimeout)
		defer cancel()
	}
	body, err := fetch(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("fetching remote changelog: %w", err)
	}
	return body, nil
}

// LoadSource reads and validates the document named by a path or URL.
func LoadSource(ctx context.Context, input string) (*Document, error) {
	data, err := ReadSource(ctx, input)
	if err != nil {
		return nil, err
	}
	return LoadBytes(data)
}

// FetchURL downloads and validates a document from url.
func FetchURL(ctx context.Context, url string) (*Document, error) {
	if !IsRemote(url) {
		return nil, fmt.Errorf("not an http(s) URL: %s", url)
	}
	return LoadSource(ctx, url)
}

func fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/yaml, text/yaml;q=0.9, text/plain;q=0.5")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxRemoteSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if len(body) > MaxRemoteSize {
		return nil, fmt.Errorf("response exceeds %d bytes", MaxRemoteSize)
	}
	return body, nil
}
