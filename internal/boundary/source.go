package boundary

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrLoadFailed wraps the exhaustion of every configured dataset source.
// Callers treat it as a recoverable failure and may retry the load later;
// nothing is cached on this path.
var ErrLoadFailed = errors.New("boundary dataset load failed")

// Source supplies one candidate copy of a boundary dataset.
type Source interface {
	// Name identifies the source in errors and logs.
	Name() string
	// Fetch returns the raw dataset bytes.
	Fetch() ([]byte, error)
}

// FileSource reads a dataset from local disk.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string {
	return s.Path
}

func (s FileSource) Fetch() ([]byte, error) {
	return os.ReadFile(s.Path)
}

// URLSource fetches a dataset over HTTP. No timeout is imposed beyond what
// the transport enforces; the load happens at most once per process and a
// slow fetch only blocks the callers that depend on it.
type URLSource struct {
	URL    string
	Client *http.Client
}

func (s URLSource) Name() string {
	return s.URL
}

func (s URLSource) Fetch() ([]byte, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{}
	}

	resp, err := client.Get(s.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

// Load tries each source in order and returns the first collection that
// both fetches and decodes. When every source fails the error wraps
// ErrLoadFailed together with each source's failure.
func Load(sources ...Source) (*Collection, error) {
	errs := make([]error, 0, len(sources))
	for _, src := range sources {
		data, err := src.Fetch()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		coll, err := Decode(data)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		return coll, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrLoadFailed, errors.Join(errs...))
}
