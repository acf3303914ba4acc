package store

import "github.com/peterbourgon/diskv/v3"

// Load creates the key-value persistence capability backed by diskv
// using the provided config. Pass nil to resolve the config from the
// environment.
func Load(cfg Config) (KV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), nil
}
