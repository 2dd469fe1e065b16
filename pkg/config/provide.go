/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package config

import (
	"github.com/spf13/pflag"
)

// Registers flags of every config key on fs. Defaults shown in help are the
// config defaults; only changed flags override other sources
func BindFlags(fs *pflag.FlagSet) {
	fs.Bool("offline", false, "use offline cache as backing store")
	fs.String("store", DefaultStore, "offline store name")
	fs.String("cache-dir", DefaultCacheDir, "directory of offline store files")
	fs.Int("cache-max-bytes", DefaultCacheMaxBytes, "size of raw document cache, bytes")
	fs.Int("doc-cache-size", DefaultDocCacheSize, "number of decoded documents cached")
	fs.String("doc-cache", DefaultDocCache, "decoded document cache: hashicorp or theine")
	fs.String("rpc-url", "", "URL of rpc server")
	fs.String("listen", DefaultListen, "listen address of serve")
	fs.String("snapshot", "", "snapshot file with model and seed documents")
	fs.BoolP("verbose", "v", false, "verbose logging")
}
