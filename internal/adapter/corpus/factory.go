package corpus

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"passwordStrengthBackend/internal/config"
	"passwordStrengthBackend/internal/core/domain"
	"passwordStrengthBackend/internal/core/lookup"
	"passwordStrengthBackend/internal/pkg/logging"
	"passwordStrengthBackend/internal/port"
)

// NewSource builds the configured corpus source. It returns nil for the seed source.
func NewSource(cfg config.CorpusConfig) (port.CorpusSource, error) {
	switch cfg.Source {
	case domain.CorpusSeed:
		return nil, nil
	case domain.CorpusFile:
		return NewFileSource(cfg.File, cfg.Hashed), nil
	case domain.CorpusPostgres:
		src, err := NewPostgresSource(cfg.Database)
		if err != nil {
			return nil, err
		}
		return src, nil
	case domain.CorpusRedis:
		src, err := NewRedisSourceFromURL(cfg.Redis.URL, cfg.Redis.Key)
		if err != nil {
			return nil, err
		}
		return src, nil
	case domain.CorpusS3:
		src, err := NewObjectSource(cfg.Object, cfg.Hashed)
		if err != nil {
			return nil, err
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCorpusSource, cfg.Source)
	}
}

// LoadStore loads src into a Store; a nil src yields the seed store.
func LoadStore(ctx context.Context, src port.CorpusSource, logger *zap.Logger) (*lookup.Store, error) {
	logger = logging.OrNop(logger)
	if src == nil {
		store := lookup.NewSeedStore()
		logger.Info("using seed corpus", zap.Int("digests", store.LeakedCount()))
		return store, nil
	}
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	start := time.Now()
	digests, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s corpus: %w", src.Name(), err)
	}

	store, err := lookup.NewCorpusStore(digests)
	if err != nil {
		return nil, fmt.Errorf("build %s corpus: %w", src.Name(), err)
	}

	logger.Info("corpus loaded",
		zap.String("source", string(src.Name())),
		zap.Int("digests", store.LeakedCount()),
		zap.Duration("took", time.Since(start)),
	)
	return store, nil
}
