package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Server.WriteTimeout != 30*time.Second {
		t.Errorf("unexpected write timeout: %s", cfg.Server.WriteTimeout)
	}
	if cfg.Store.Backend != StoreBackendMemory {
		t.Errorf("expected memory backend by default, got %s", cfg.Store.Backend)
	}
	if !cfg.Store.SeedDemo {
		t.Errorf("expected demo seeding on by default")
	}
	if cfg.PubSub.Topic != "" {
		t.Errorf("expected event publishing disabled by default, got %q", cfg.PubSub.Topic)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("STORE_BACKEND", "firestore")
	t.Setenv("FIRESTORE_PROJECT_ID", "fastbite-dev")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("PUBSUB_PROJECT_ID", "fastbite-dev")
	t.Setenv("PUBSUB_ORDER_TOPIC", "order-events")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("unexpected read timeout: %s", cfg.Server.ReadTimeout)
	}
	if cfg.Store.Backend != StoreBackendFirestore {
		t.Errorf("expected firestore backend, got %s", cfg.Store.Backend)
	}
	if cfg.Store.SeedDemo {
		t.Errorf("expected demo seeding off")
	}
	if cfg.Firestore.ProjectID != "fastbite-dev" {
		t.Errorf("unexpected firestore project: %s", cfg.Firestore.ProjectID)
	}
	if cfg.PubSub.Topic != "order-events" {
		t.Errorf("unexpected pubsub topic: %s", cfg.PubSub.Topic)
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	contents := "# local overrides\nPORT=7070\nSTORE_BACKEND=memory\n\nSEED_DEMO_DATA=false\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	// Process environment wins over the file.
	t.Setenv("SEED_DEMO_DATA", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.Server.Port != "7070" {
		t.Errorf("expected port from env file, got %s", cfg.Server.Port)
	}
	if !cfg.Store.SeedDemo {
		t.Errorf("expected process env to win over the env file")
	}
}

func TestLoadValidation(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
	}{
		{"non-numeric port", map[string]string{"PORT": "http"}},
		{"unknown backend", map[string]string{"STORE_BACKEND": "dynamo"}},
		{"firestore without project", map[string]string{"STORE_BACKEND": "firestore"}},
		{"topic without project", map[string]string{"PUBSUB_ORDER_TOPIC": "order-events"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
			for key, value := range tc.env {
				t.Setenv(key, value)
			}
			if _, err := Load(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
