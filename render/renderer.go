package render

import (
	"bytes"

	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Renderer renders byte strings with fixed options, remembering the most
// recent results. It is safe for concurrent use.
type Renderer struct {
	opts   Options
	logger *zap.Logger
	cache  *lru.Cache
}

type cacheEntry struct {
	data   []byte
	result Result
}

// NewRenderer returns a Renderer caching up to cacheSize results. A
// cacheSize of zero disables the cache.
func NewRenderer(opts Options, cacheSize int) (*Renderer, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	r := &Renderer{opts: opts, logger: opts.Logger}
	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "create render cache")
		}
		r.cache = cache
	}
	return r, nil
}

// Render renders data as Bytes does.
func (r *Renderer) Render(data []byte) (Result, error) {
	if r.cache == nil {
		res, err := Bytes(data, r.opts)
		if err != nil {
			r.logger.Warn("render failed", zap.Error(err), zap.Int("size", len(data)))
		}
		return res, err
	}
	key := xxhash.Sum64(data)
	if v, ok := r.cache.Get(key); ok {
		if e := v.(cacheEntry); bytes.Equal(e.data, data) {
			return e.result, nil
		}
	}
	res, err := Bytes(data, r.opts)
	if err != nil {
		r.logger.Warn("render failed", zap.Error(err), zap.Int("size", len(data)))
		return Result{}, err
	}
	r.cache.Add(key, cacheEntry{data: append([]byte(nil), data...), result: res})
	return res, nil
}

// Len returns the number of cached results.
func (r *Renderer) Len() int {
	if r.cache == nil {
		return 0
	}
	return r.cache.Len()
}
