// Package config provides configuration for the protosym CLI.
//
// # Overview
//
// Configuration is read from an optional YAML file (protosym.yaml) with
// environment variable overrides and sensible defaults for every setting.
//
// # Settings
//
//	PROTOSYM_LOG_LEVEL="info"        # debug, info, warn, error
//	PROTOSYM_RUNTIMES="js,java"      # runtime conventions to emit
//	PROTOSYM_INCLUDE_PATHS="proto"   # .proto import search paths
//	PROTOSYM_OUTPUT="-"              # report destination, "-" for stdout
//	PROTOSYM_CACHE_ENABLED="true"
//	PROTOSYM_CACHE_MAX_ENTRIES="4096"
//	PROTOSYM_CACHE_TTL="5m"
//
// The YAML file mirrors the same keys:
//
//	log_level: info
//	runtimes:
//	  - js
//	  - java
//	include_paths:
//	  - proto
//	output: "-"
//	cache:
//	  enabled: true
//	  max_entries: 4096
//	  ttl: 5m
//
// # Usage Example
//
//	cfg, err := config.LoadFromDir(".")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("Runtimes: %v\n", cfg.Runtimes)
package config
