package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// CodecConfig holds configuration for the wireprobe demo CLI. The codec
// package itself is pure and configuration-free; everything here is ambient
// to the command that exercises it.
type CodecConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// DefaultMTU sizes new packets absent an explicit -mtu flag.
	DefaultMTU int `koanf:"default_mtu" validate:"required,gte=512,lte=65535"`

	// Protocol selects which wire variant to assume: "dns", "mdns", "llmnr".
	Protocol string `koanf:"protocol" validate:"required,oneof=dns mdns llmnr"`
}

var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "DNSCODEC_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "DNSCODEC_")), value
		},
	}), nil)
}

// Load parses environment variables into a CodecConfig, applying defaults
// and validating the result.
func Load() (*CodecConfig, error) {
	k := koanf.New(".")

	k.Load(structs.Provider(CodecConfig{
		Env:        "prod",
		LogLevel:   "info",
		DefaultMTU: 1500,
		Protocol:   "dns",
	}, "koanf"), nil)

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg CodecConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
