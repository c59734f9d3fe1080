package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Gateway maps the stopwatch document to and from text under one key.
type Gateway struct {
	kv     KV
	key    string
	logger *zap.Logger
}

func NewGateway(kv KV, key string, logger *zap.Logger) *Gateway {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{kv: kv, key: key, logger: logger}
}

// Key returns the storage key.
func (g *Gateway) Key() string {
	return g.key
}

// Load reads the document. It never fails: a missing key, unreadable store or
// malformed content all produce DefaultDocument with a StatusDefaulted result.
func (g *Gateway) Load(ctx context.Context) (Document, Result) {
	if g.kv == nil {
		return g.fallback(ErrUnavailable)
	}

	raw, found, err := g.kv.Get(ctx, g.key)
	if err != nil {
		return g.fallback(fmt.Errorf("get %s: %w", g.key, err))
	}
	if !found {
		g.logger.Debug("no stored document", zap.String("key", g.key))
		return DefaultDocument(), defaulted(ErrNotFound)
	}

	var doc Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return g.fallback(fmt.Errorf("%w: %w", ErrMalformed, err))
	}
	if err := doc.Validate(); err != nil {
		return g.fallback(err)
	}

	g.logger.Debug("loaded document",
		zap.String("key", g.key),
		zap.Bool("running", doc.Running),
		zap.Int("laps", len(doc.Laps)))
	return doc.normalized(), ok()
}

// Save writes the whole document. Failures are reported in the result only.
func (g *Gateway) Save(ctx context.Context, doc Document) Result {
	if g.kv == nil {
		return failed(ErrUnavailable)
	}

	serialized, err := json.Marshal(doc.normalized())
	if err != nil {
		g.logger.Warn("marshal document", zap.Error(err))
		return failed(fmt.Errorf("marshal document: %w", err))
	}
	if err := g.kv.Set(ctx, g.key, string(serialized)); err != nil {
		g.logger.Warn("save document", zap.String("key", g.key), zap.Error(err))
		return failed(fmt.Errorf("set %s: %w", g.key, err))
	}

	g.logger.Debug("saved document", zap.String("key", g.key), zap.Int("bytes", len(serialized)))
	return ok()
}

func (g *Gateway) fallback(err error) (Document, Result) {
	g.logger.Warn("using default document", zap.String("key", g.key), zap.Error(err))
	return DefaultDocument(), defaulted(err)
}
