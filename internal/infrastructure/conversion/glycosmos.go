package conversion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/glycoshape/glycoshape-api/internal/config"
	"github.com/glycoshape/glycoshape-api/internal/infrastructure/monitoring/logging"
	apperrors "github.com/glycoshape/glycoshape-api/pkg/errors"
)

// GlyCosmosClient calls the GlyCosmos glycanformatconverter service.
type GlyCosmosClient struct {
	baseURL string
	client  *http.Client
	obs     Observer
	log     logging.Logger
}

var _ IUPACConverter = (*GlyCosmosClient)(nil)

// NewGlyCosmosClient constructs a client from the conversion config. obs may
// be nil.
func NewGlyCosmosClient(cfg config.ConversionConfig, obs Observer, log logging.Logger) *GlyCosmosClient {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &GlyCosmosClient{
		baseURL: cfg.GlyCosmosBaseURL,
		client:  &http.Client{Timeout: timeout},
		obs:     obs,
		log:     log.Named("glycosmos"),
	}
}

// IUPACToWURCS requests the iupaccondensed2wurcs endpoint. A missing id or
// missing WURCS in the response is tolerated; transport errors and non-200
// statuses are reported as ConversionUnavailable.
func (c *GlyCosmosClient) IUPACToWURCS(ctx context.Context, iupac string) (*IUPACResult, error) {
	endpoint := fmt.Sprintf("%s/iupaccondensed2wurcs/%s", c.baseURL, url.PathEscape(iupac))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		observe(c.obs, "glycosmos", "error")
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConversionUnavailable, "building converter request")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Warn("converter request failed",
			logging.String("iupac", iupac),
			logging.Err(err),
		)
		observe(c.obs, "glycosmos", "error")
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConversionUnavailable, "calling format converter")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn("converter returned non-OK status",
			logging.String("iupac", iupac),
			logging.Int("status", resp.StatusCode),
		)
		observe(c.obs, "glycosmos", "error")
		return nil, apperrors.Newf(apperrors.ErrCodeConversionUnavailable,
			"format converter returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		observe(c.obs, "glycosmos", "error")
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConversionUnavailable, "reading converter response")
	}

	var result IUPACResult
	if err := json.Unmarshal(body, &result); err != nil {
		observe(c.obs, "glycosmos", "error")
		return nil, apperrors.Wrap(err, apperrors.ErrCodeConversionUnavailable, "decoding converter response")
	}

	observe(c.obs, "glycosmos", "ok")
	c.log.Debug("converted iupac",
		logging.String("iupac", iupac),
		logging.String("glytoucan", result.GlyTouCan),
		logging.Bool("has_wurcs", result.WURCS != ""),
		logging.Duration("elapsed", time.Since(start)),
	)
	return &result, nil
}
