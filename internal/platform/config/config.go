package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultPort         = "8080"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 120 * time.Second

	// StoreBackendMemory keeps all orders and catalog data in process memory.
	StoreBackendMemory = "memory"
	// StoreBackendFirestore persists orders and counters in Firestore.
	StoreBackendFirestore = "firestore"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Firestore FirestoreConfig
	PubSub    PubSubConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// StoreConfig selects the repository backing and seeding behaviour.
type StoreConfig struct {
	Backend  string
	SeedDemo bool
}

// FirestoreConfig configures the Firestore client.
type FirestoreConfig struct {
	ProjectID    string
	EmulatorHost string
}

// PubSubConfig configures order event publishing. An empty topic disables it.
type PubSubConfig struct {
	ProjectID string
	Topic     string
}

// Load reads the optional env file, applies environment overrides and
// validates the result.
func Load() (Config, error) {
	if err := loadEnvFile(envOrDefault("ENV_FILE", defaultEnvFile)); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Server: ServerConfig{
			Port:         envOrDefault("PORT", defaultPort),
			ReadTimeout:  durationEnv("SERVER_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout: durationEnv("SERVER_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:  durationEnv("SERVER_IDLE_TIMEOUT", defaultIdleTimeout),
		},
		Store: StoreConfig{
			Backend:  strings.ToLower(envOrDefault("STORE_BACKEND", StoreBackendMemory)),
			SeedDemo: boolEnv("SEED_DEMO_DATA", true),
		},
		Firestore: FirestoreConfig{
			ProjectID:    strings.TrimSpace(os.Getenv("FIRESTORE_PROJECT_ID")),
			EmulatorHost: strings.TrimSpace(os.Getenv("FIRESTORE_EMULATOR_HOST")),
		},
		PubSub: PubSubConfig{
			ProjectID: strings.TrimSpace(os.Getenv("PUBSUB_PROJECT_ID")),
			Topic:     strings.TrimSpace(os.Getenv("PUBSUB_ORDER_TOPIC")),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("config: PORT must be numeric, got %q", c.Server.Port)
	}
	switch c.Store.Backend {
	case StoreBackendMemory:
	case StoreBackendFirestore:
		if c.Firestore.ProjectID == "" {
			return errors.New("config: FIRESTORE_PROJECT_ID is required when STORE_BACKEND=firestore")
		}
	default:
		return fmt.Errorf("config: unknown STORE_BACKEND %q", c.Store.Backend)
	}
	if c.PubSub.Topic != "" && c.PubSub.ProjectID == "" {
		return errors.New("config: PUBSUB_PROJECT_ID is required when PUBSUB_ORDER_TOPIC is set")
	}
	return nil
}

// loadEnvFile reads KEY=VALUE pairs and sets them into the process
// environment unless already present. A missing file is not an error.
func loadEnvFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: open env file %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); !exists {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("config: set %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func boolEnv(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return parsed
}
