/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/voedger/docmodel/pkg/objcache"
)

// Loads configuration.
//
// Precedence, lowest first: defaults, YAML file (if cfgFile is not empty),
// environment variables with EnvPrefix, flags changed in flags (if not nil).
// Flag names are kebab-case config keys, e.g. --rpc-url.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"offline":         false,
		"store":           DefaultStore,
		"cache_dir":       DefaultCacheDir,
		"cache_max_bytes": DefaultCacheMaxBytes,
		"doc_cache_size":  DefaultDocCacheSize,
		"doc_cache":       DefaultDocCache,
		"listen":          DefaultListen,
		"verbose":         false,
	}
}

// Checks that exactly one backing is configured and values are sane
func (c *Config) Validate() error {
	switch {
	case c.Offline && c.RPCURL != "":
		return ErrAmbiguousBacking
	case !c.Offline && c.RPCURL == "":
		return ErrNoBacking
	}
	if c.Offline {
		if c.Store == "" {
			return fmt.Errorf("%w: empty store name", ErrInvalidConfig)
		}
		if c.CacheMaxBytes < 0 || c.DocCacheSize < 0 {
			return fmt.Errorf("%w: negative cache size", ErrInvalidConfig)
		}
		if _, err := c.DocCacheProvider(); err != nil {
			return err
		}
	}
	return nil
}

// Returns cache implementation of decoded documents
func (c *Config) DocCacheProvider() (objcache.CacheProvider, error) {
	switch strings.ToLower(c.DocCache) {
	case "", DocCache_Hashicorp:
		return objcache.Hashicorp, nil
	case DocCache_Theine:
		return objcache.Theine, nil
	}
	return objcache.Hashicorp, fmt.Errorf("%w: %s", ErrUnknownDocCache, c.DocCache)
}
