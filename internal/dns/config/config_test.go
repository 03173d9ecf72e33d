package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/knadh/koanf/v2"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "prod" {
		t.Errorf("expected Env=prod, got %q", cfg.Env)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected LogLevel=info, got %q", cfg.LogLevel)
	}
	if cfg.DefaultMTU != 1500 {
		t.Errorf("expected DefaultMTU=1500, got %d", cfg.DefaultMTU)
	}
	if cfg.Protocol != "dns" {
		t.Errorf("expected Protocol=dns, got %q", cfg.Protocol)
	}
}

func TestLoad_ValidOverrides(t *testing.T) {
	t.Setenv("DNSCODEC_ENV", "dev")
	t.Setenv("DNSCODEC_LOG_LEVEL", "debug")
	t.Setenv("DNSCODEC_DEFAULT_MTU", "4096")
	t.Setenv("DNSCODEC_PROTOCOL", "mdns")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.Env != "dev" {
		t.Errorf("expected Env=dev, got %q", cfg.Env)
	}
	if cfg.DefaultMTU != 4096 {
		t.Errorf("expected DefaultMTU=4096, got %d", cfg.DefaultMTU)
	}
	if cfg.Protocol != "mdns" {
		t.Errorf("expected Protocol=mdns, got %q", cfg.Protocol)
	}
}

func TestLoad_WhenEnvLoadFails(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked error")
	}
	defer func() { envLoader = orig }()

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "mocked error") {
		t.Fatalf("expected mocked error, got %v", err)
	}
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("DNSCODEC_ENV", "staging")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSCODEC_ENV, got nil")
	}
}

func TestLoad_InvalidProtocol(t *testing.T) {
	t.Setenv("DNSCODEC_PROTOCOL", "netbios")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid DNSCODEC_PROTOCOL, got nil")
	}
}
