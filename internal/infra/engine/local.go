package engine

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/cockroachdb/errors"
)

// LocalSettings configures the local speaker engine.
type LocalSettings struct {
	SampleRate         int   `mapstructure:"sample_rate" default:"44100" validate:"oneof=22050 44100 48000"`
	BufferMs           int   `mapstructure:"buffer_ms" default:"100" validate:"gte=10,lte=1000"`
	ProgressIntervalMs int   `mapstructure:"progress_interval_ms" default:"500" validate:"gte=50,lte=60000"`
	FetchTimeoutSec    int   `mapstructure:"fetch_timeout_sec" default:"30" validate:"gte=1,lte=600"`
	MaxBytes           int64 `mapstructure:"max_bytes" default:"67108864" validate:"gte=1024"`
}

// fetchSource reads the whole resource into memory. Decoding from memory
// keeps the stream seekable and its length known.
func fetchSource(ctx context.Context, client *http.Client, source string, maxBytes int64) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid source %q", source)
	}

	var body io.ReadCloser
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, errors.Wrap(err, "failed to build request")
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to fetch %s", source)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, errors.Newf("failed to fetch %s: status %d", source, resp.StatusCode)
		}
		body = resp.Body

	case "file":
		f, err := os.Open(u.Path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", u.Path)
		}
		body = f

	default:
		return nil, errors.Newf("unsupported source scheme: %s", u.Scheme)
	}
	defer body.Close()

	data, err := io.ReadAll(io.LimitReader(body, maxBytes+1))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", source)
	}
	if int64(len(data)) > maxBytes {
		return nil, errors.Newf("source %s exceeds %d bytes", source, maxBytes)
	}
	return data, nil
}

func (s LocalSettings) fetchTimeout() time.Duration {
	return time.Duration(s.FetchTimeoutSec) * time.Second
}
