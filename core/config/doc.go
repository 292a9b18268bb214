// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import (
//		"github.com/dmitrymomot/qrcompose/core/config"
//		"github.com/dmitrymomot/qrcompose/pkg/qrcode"
//	)
//
//	func main() {
//		var cfg qrcode.Config
//		config.MustLoad(&cfg)
//
//		gen, err := qrcode.New(cfg)
//		if err != nil {
//			log.Fatal(err)
//		}
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var cfg1 qrcode.Config
//	config.Load(&cfg1) // parses the environment
//
//	var cfg2 qrcode.Config
//	config.Load(&cfg2) // returns the cached value, cfg1 == cfg2
//
// Different types are cached independently. Call Reset in tests to force a re-parse.
package config
