package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	LogJSON  bool

	LLMProvider      string
	AnthropicAPIKey  string
	AnthropicBaseURL string
	AnthropicVersion string
	Model            string
	MaxTokens        int
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string

	EditStore      string
	DataDir        string
	MongoURI       string
	MongoDatabase  string
	MaxStoredEdits int

	PatternWindow      int
	ChangeWindow       int
	ExampleWindow      int
	RenderedExamples   int
	LengthThresholdPct int
	SignerName         string
}

// LoadEnv loads a .env file from the working directory. A missing file is
// the normal case and stays silent; the process environment still applies.
func LoadEnv() error {
	err := godotenv.Load(".env")
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Could not load .env file: %v", err)
		}
		return err
	}
	return nil
}

func GetEnvOrDefault(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

// GetEnvInt reads a positive integer.
func GetEnvInt(key string, fallback int) int {
	return getEnvIntAtLeast(key, fallback, 1)
}

// GetEnvNonNegativeInt reads an integer that may be zero.
func GetEnvNonNegativeInt(key string, fallback int) int {
	return getEnvIntAtLeast(key, fallback, 0)
}

func getEnvIntAtLeast(key string, fallback, min int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < min {
		log.Printf("Invalid value %q for %s, using %d", raw, key, fallback)
		return fallback
	}
	return value
}

func GetEnvBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Invalid value %q for %s, using %t", raw, key, fallback)
		return fallback
	}
	return value
}

// Load reads the service configuration from the environment. The LLM
// credential is not validated here: a missing key surfaces per request as a
// server configuration error.
func Load() Config {
	return Config{
		Port:     GetEnvOrDefault("PORT", "8080"),
		LogLevel: GetEnvOrDefault("LOG_LEVEL", "info"),
		LogJSON:  GetEnvBool("LOG_JSON", true),

		LLMProvider:      strings.ToLower(GetEnvOrDefault("LLM_PROVIDER", ProviderAnthropic)),
		AnthropicAPIKey:  os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicBaseURL: GetEnvOrDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com"),
		AnthropicVersion: GetEnvOrDefault("ANTHROPIC_VERSION", "2023-06-01"),
		Model:            GetEnvOrDefault("LLM_MODEL", "claude-3-5-sonnet-20241022"),
		MaxTokens:        GetEnvInt("LLM_MAX_TOKENS", 2000),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:    GetEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:      GetEnvOrDefault("OPENAI_MODEL", "gpt-4o"),

		EditStore:      strings.ToLower(GetEnvOrDefault("EDIT_STORE", StoreFile)),
		DataDir:        GetEnvOrDefault("DATA_DIR", "data"),
		MongoURI:       os.Getenv("MONGODB_URI"),
		MongoDatabase:  GetEnvOrDefault("MONGODB_DATABASE", "SalesAssistant"),
		MaxStoredEdits: GetEnvInt("MAX_STORED_EDITS", 100),

		PatternWindow:      GetEnvInt("PATTERN_WINDOW", 20),
		ChangeWindow:       GetEnvInt("CHANGE_WINDOW", 3),
		ExampleWindow:      GetEnvInt("EXAMPLE_WINDOW", 5),
		RenderedExamples:   GetEnvInt("RENDERED_EXAMPLES", 2),
		LengthThresholdPct: GetEnvNonNegativeInt("LENGTH_THRESHOLD_PCT", 20),
		SignerName:         GetEnvOrDefault("SIGNER_NAME", "James"),
	}
}

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"

	StoreFile  = "file"
	StoreMongo = "mongo"
)

// Validate reports settings that cannot work at all. Credentials are left out
// on purpose, see Load.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case ProviderAnthropic, ProviderOpenAI:
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER %q", c.LLMProvider)
	}

	switch c.EditStore {
	case StoreFile:
	case StoreMongo:
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required when EDIT_STORE=%s", StoreMongo)
		}
	default:
		return fmt.Errorf("unsupported EDIT_STORE %q", c.EditStore)
	}

	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	return nil
}
