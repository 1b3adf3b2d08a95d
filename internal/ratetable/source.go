package ratetable

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"benefits-engine/internal/apperr"
)

const defaultFetchTimeout = 2 * time.Second

// Source says where to load tables from at startup. A Path wins over a URL; with neither set
// the embedded tables are used.
type Source struct {
	Path    string
	URL     string
	Timeout time.Duration
	// Client is used for URL sources. A zero value means a fresh fasthttp.Client.
	Client *fasthttp.Client
	Logger *zap.Logger
}

// Load resolves the source into a table. A file that cannot be read or parsed is an error,
// since it was configured explicitly. A URL that cannot be fetched falls back to the embedded
// tables and logs a warning.
func Load(ctx context.Context, src Source) (*Table, error) {
	log := src.Logger
	if log == nil {
		log = zap.NewNop()
	}

	switch {
	case src.Path != "":
		data, err := os.ReadFile(src.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", apperr.ErrRateTableLoad, src.Path, err)
		}
		t, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", src.Path, err)
		}
		log.Info("Loaded rate tables from file", zap.String("path", src.Path))
		return t, nil

	case src.URL != "":
		t, err := fetch(ctx, src)
		if err != nil {
			log.Warn("Rate table fetch failed, using embedded tables",
				zap.String("url", src.URL), zap.Error(err))
			return Default(), nil
		}
		log.Info("Loaded rate tables from URL", zap.String("url", src.URL))
		return t, nil
	}

	return Default(), nil
}

func fetch(ctx context.Context, src Source) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := src.Client
	if client == nil {
		client = &fasthttp.Client{}
	}
	timeout := src.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(src.URL)
	req.Header.SetMethod(fasthttp.MethodGet)

	if err := client.DoDeadline(req, resp, deadline); err != nil {
		return nil, fmt.Errorf("%w: get %s: %v", apperr.ErrRateTableLoad, src.URL, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("%w: get %s: status %d", apperr.ErrRateTableLoad, src.URL, resp.StatusCode())
	}

	// Parse copies what it needs; the body is released with resp.
	return Parse(resp.Body())
}
