// Package config loads environment variables into typed configuration
// structs. Each configuration type is parsed once per process and cached,
// so independent components can load their own config without coordinating
// through a shared registry.
//
// A .env file in the working directory is loaded lazily before the first
// parse; its absence is not an error.
//
// Usage:
//
//	type PaymentConfig struct {
//		ShopID    string `env:"YOOKASSA_SHOP_ID,required"`
//		SecretKey string `env:"YOOKASSA_SECRET_KEY,required"`
//	}
//
//	var cfg PaymentConfig
//	if err := config.Load(&cfg); err != nil {
//		// handle error
//	}
package config
