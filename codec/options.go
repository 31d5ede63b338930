package codec

import (
	"fmt"

	"github.com/findatum/serieskit/format"
)

type config struct {
	compression format.CompressionType
}

// Option configures an Encode or Decode call.
//
// Encode and Decode must be configured identically for a round trip:
// the wire format carries no header, so the compression type is part of
// the caller's out-of-band contract.
type Option func(*config) error

func newConfig(opts ...Option) (config, error) {
	cfg := config{
		compression: format.CompressionZstd,
	}

	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// WithCompression selects the byte-stream compressor. The default is
// Zstd at a fixed moderate level.
func WithCompression(compression format.CompressionType) Option {
	return func(cfg *config) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			cfg.compression = compression
			return nil
		default:
			return fmt.Errorf("codec: invalid compression type: %s", compression)
		}
	}
}
