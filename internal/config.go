package internal

import (
	"fmt"
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/khlau/dsenotes/internal/gateway"
)

// Config represents the application configuration.
type Config struct {
	App     ApplicationConfig `yaml:"app"`
	Notes   NotesConfig       `yaml:"notes"`
	Uploads UploadsConfig     `yaml:"uploads"`
	Web     WebConfig         `yaml:"web"`
	Gemini  GeminiConfig      `yaml:"gemini"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	if err := c.Uploads.Validate(); err != nil {
		return err
	}
	return c.Gemini.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
	HTTP     HTTPConfig `yaml:"http"`
}

// Validate validates the application configuration.
func (c *ApplicationConfig) Validate() error {
	return c.HTTP.Validate()
}

// HTTPConfig holds HTTP server configuration.
type HTTPConfig struct {
	Port int `yaml:"port"`
}

// Address returns the HTTP server listen address.
func (c *HTTPConfig) Address() string {
	return fmt.Sprintf(":%d", c.Port)
}

// Validate validates the HTTP configuration.
func (c *HTTPConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	)
}

// NotesConfig holds the path to the notes directory (one JSON file per note).
type NotesConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// UploadsConfig holds the path to the uploads directory.
type UploadsConfig struct {
	Path string `yaml:"path"`
}

// Validate validates the uploads configuration.
func (c *UploadsConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Path, validation.Required),
	)
}

// WebConfig holds the directory of browser client assets. An empty or missing
// directory disables static serving; the API keeps working without it.
type WebConfig struct {
	PublicDir string `yaml:"public_dir"`
}

// GeminiConfig holds the generative-AI provider settings. An empty APIKey
// disables the ask endpoint but nothing else.
type GeminiConfig struct {
	APIKey          string  `yaml:"api_key"`
	Model           string  `yaml:"model"`
	Temperature     float64 `yaml:"temperature"`
	TopK            int     `yaml:"top_k"`
	TopP            float64 `yaml:"top_p"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
}

// Validate validates the Gemini configuration.
func (c *GeminiConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Model, validation.Required),
		validation.Field(&c.Temperature, validation.Min(0.0), validation.Max(2.0)),
		validation.Field(&c.TopK, validation.Required, validation.Min(1)),
		validation.Field(&c.TopP, validation.Required, validation.Min(0.0), validation.Max(1.0)),
		validation.Field(&c.MaxOutputTokens, validation.Required, validation.Min(1)),
	)
}

// GenerationConfig converts the configured sampling parameters to the
// gateway's wire type.
func (c *GeminiConfig) GenerationConfig() gateway.GenerationConfig {
	return gateway.GenerationConfig{
		Temperature:     c.Temperature,
		TopK:            c.TopK,
		TopP:            c.TopP,
		MaxOutputTokens: c.MaxOutputTokens,
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	gen := gateway.DefaultGenerationConfig()
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
			HTTP: HTTPConfig{
				Port: 3000,
			},
		},
		Notes: NotesConfig{
			Path: "./notes",
		},
		Uploads: UploadsConfig{
			Path: "./uploads",
		},
		Web: WebConfig{
			PublicDir: "./public",
		},
		Gemini: GeminiConfig{
			Model:           "gemini-1.5-flash",
			Temperature:     gen.Temperature,
			TopK:            gen.TopK,
			TopP:            gen.TopP,
			MaxOutputTokens: gen.MaxOutputTokens,
		},
	}
}
