package types

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	DevelopmentBaseURL = "http://127.0.0.1:5050"
	ProductionBaseURL  = "http://your-production-server.com"
)

type Config struct {
	Server      ServerConfig
	Client      ClientConfig
	Database    DatabaseConfig
	Translator  TranslatorConfig
	OpenAI      OpenAIConfig
	Gemini      GeminiConfig
	Preferences PreferencesConfig
}

type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	AppEnv          string
	LogLevel        string
}

// ClientConfig configures the translation API client.
type ClientConfig struct {
	BaseURL string
}

type DatabaseConfig struct {
	Name     string
	Host     string
	Port     string
	User     string
	Password string
	SSLMode  string
}

// Enabled reports whether any database setting was provided.
func (c DatabaseConfig) Enabled() bool {
	return c.Name != "" || c.Host != "" || c.Port != "" || c.User != "" || c.Password != ""
}

type TranslatorConfig struct {
	Provider string
}

type OpenAIConfig struct {
	APIKey string
	Model  string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type PreferencesConfig struct {
	Dir string
}

func validateRequiredEnvs(v *viper.Viper, requiredEnvs []string) error {
	for _, env := range requiredEnvs {
		if v.GetString(env) == "" {
			return fmt.Errorf("%s is required", env)
		}
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", EnvDevelopment)
	v.SetDefault("SERVER_PORT", "5050")
	v.SetDefault("SERVER_READ_TIMEOUT", 15*time.Second)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 2*time.Minute)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	v.SetDefault("TRANSLATOR_PROVIDER", "gemini")
	v.SetDefault("OPENAI_MODEL", "gpt-5-nano")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("PREFERENCES_DIR", ".translate-bridge")
}

// LoadConfig reads configuration from environment variables and an optional .env file
func LoadConfig() (*Config, error) {
	return LoadConfigFile(".env")
}

// LoadConfigFile is LoadConfig with an explicit env file path.
func LoadConfigFile(path string) (*Config, error) {
	v := viper.New()

	// Enable environment variable reading first
	v.AutomaticEnv()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		log.Print("No config file found, falling back to environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetString("SERVER_PORT"),
			ReadTimeout:     v.GetDuration("SERVER_READ_TIMEOUT"),
			WriteTimeout:    v.GetDuration("SERVER_WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetDuration("SERVER_SHUTDOWN_TIMEOUT"),
			AppEnv:          strings.ToLower(v.GetString("APP_ENV")),
			LogLevel:        v.GetString("LOG_LEVEL"),
		},
		Client: ClientConfig{
			BaseURL: v.GetString("TRANSLATE_API_URL"),
		},
		Database: DatabaseConfig{
			Name:     v.GetString("DB_NAME"),
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Translator: TranslatorConfig{
			Provider: strings.ToLower(v.GetString("TRANSLATOR_PROVIDER")),
		},
		OpenAI: OpenAIConfig{
			APIKey: v.GetString("OPENAI_API_KEY"),
			Model:  v.GetString("OPENAI_MODEL"),
		},
		Gemini: GeminiConfig{
			APIKey: v.GetString("GEMINI_API_KEY"),
			Model:  v.GetString("GEMINI_MODEL"),
		},
		Preferences: PreferencesConfig{
			Dir: v.GetString("PREFERENCES_DIR"),
		},
	}

	if config.Client.BaseURL == "" {
		config.Client.BaseURL = BaseURLFor(config.Server.AppEnv)
	}

	if config.Database.Enabled() {
		requiredEnvs := []string{
			"DB_NAME",
			"DB_HOST",
			"DB_PORT",
			"DB_USER",
			"DB_PASSWORD",
		}
		if err := validateRequiredEnvs(v, requiredEnvs); err != nil {
			return nil, fmt.Errorf("incomplete database config: %w", err)
		}
	}

	return config, nil
}

// BaseURLFor returns the translation API endpoint used in the given environment.
func BaseURLFor(appEnv string) string {
	if strings.EqualFold(appEnv, EnvProduction) {
		return ProductionBaseURL
	}
	return DevelopmentBaseURL
}

// ValidateServer checks the settings only the translation backend needs.
func (c *Config) ValidateServer() error {
	switch c.Translator.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return errors.New("OPENAI_API_KEY is required for the openai provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return errors.New("GEMINI_API_KEY is required for the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported TRANSLATOR_PROVIDER: %q", c.Translator.Provider)
	}
	return nil
}

// GetServerAddress returns the full server address
func (c *ServerConfig) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}
