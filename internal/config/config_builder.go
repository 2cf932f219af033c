package config

import (
	"fmt"

	"dario.cat/mergo"
)

// sourceLoader produces one configuration source. It receives the config
// merged from the sources registered before it, so a loader can depend on
// values an earlier source already resolved (the JSON loader reads the file
// path from environment or flags this way). A loader may return nil to
// signal it has nothing to contribute.
type sourceLoader func(merged *StructuredConfig) (*StructuredConfig, error)

// configBuilder merges configuration sources in registration order.
// Earlier sources win: mergo only fills fields the merged config has not
// set yet.
type configBuilder struct {
	loaders []sourceLoader
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		loaders: make([]sourceLoader, 0, 3),
	}
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.add(func(*StructuredConfig) (*StructuredConfig, error) {
		envCfg := new(StructuredConfig)
		if err := parseEnv(envCfg); err != nil {
			return nil, fmt.Errorf("error parsing environment variables: %w", err)
		}

		return envCfg, nil
	})
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(func(*StructuredConfig) (*StructuredConfig, error) {
		return ParseFlags(), nil
	})
}

func (b *configBuilder) withJSON() *configBuilder {
	return b.add(func(merged *StructuredConfig) (*StructuredConfig, error) {
		if merged.JSONFilePath == "" {
			return nil, nil
		}

		return parseJSON(merged.JSONFilePath)
	})
}

func (b *configBuilder) add(loader sourceLoader) *configBuilder {
	b.loaders = append(b.loaders, loader)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	merged := new(StructuredConfig)
	for _, load := range b.loaders {
		cfg, err := load(merged)
		if err != nil {
			return nil, fmt.Errorf("error occured during building config: %w", err)
		}
		if cfg == nil {
			continue
		}

		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
