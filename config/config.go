package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

// AppConfig is read once at process start and handed to components by value.
type AppConfig struct {
	Logging LoggingConfig `yaml:"logging"`
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	AI      AIConfig      `yaml:"ai"`
	Images  ImagesConfig  `yaml:"images"`
	Content ContentConfig `yaml:"content"`
	Kafka   KafkaConfig   `yaml:"kafka"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	BaseURL        string   `yaml:"base_url"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type MongoConfig struct {
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

// AIConfig describes the LLM gateway. APIKey only ever comes from the environment.
type AIConfig struct {
	// Provider 는 "gateway"(chat-completions 호환 HTTP) 또는 "gemini"(Google GenAI SDK) 이다.
	Provider       string      `yaml:"provider"`
	BaseURL        string      `yaml:"base_url"`
	APIKey         string      `yaml:"-"`
	DefaultModel   string      `yaml:"default_model"`
	FastModel      string      `yaml:"fast_model"`
	StrongModel    string      `yaml:"strong_model"`
	MaxTokens      int         `yaml:"max_tokens"`
	Temperature    float64     `yaml:"temperature"`
	TimeoutSeconds int         `yaml:"timeout_seconds"`
	AppName        string      `yaml:"app_name"`
	Quota          QuotaConfig `yaml:"quota"`
}

// Configured reports whether a credential is present. Its absence is a state, not an error.
func (c AIConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

func (c AIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// QuotaConfig 는 LLM 호출에 대한 속도/일일 한도를 정의한다.
type QuotaConfig struct {
	// RequestsPerMinute 는 분당 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerMinute int `yaml:"requests_per_minute"`
	// RequestsPerDay 는 일일 최대 요청 수이다. 0 이하면 제한 없음으로 간주한다.
	RequestsPerDay int `yaml:"requests_per_day"`
}

type ImagesConfig struct {
	Pexels   ImageProviderConfig `yaml:"pexels"`
	Unsplash ImageProviderConfig `yaml:"unsplash"`
	Pixabay  ImageProviderConfig `yaml:"pixabay"`
}

// ImageProviderConfig is one stock-photo provider. A nil Enabled means enabled.
type ImageProviderConfig struct {
	Enabled           *bool  `yaml:"enabled"`
	APIKey            string `yaml:"-"`
	BaseURL           string `yaml:"base_url"`
	RequestsPerMinute int    `yaml:"requests_per_minute"`
}

func (c ImageProviderConfig) IsEnabled() bool {
	return c.Enabled == nil || *c.Enabled
}

type ContentConfig struct {
	Locale        string `yaml:"locale"`
	ExcerptLength int    `yaml:"excerpt_length"`
	// AutoCategorize 가 true 이면 저장 시 category 가 비어 있을 때 AI 분류를 시도한다.
	AutoCategorize bool `yaml:"auto_categorize"`
}

type KafkaConfig struct {
	BootstrapServers string `yaml:"bootstrap_servers"`
	Topic            string `yaml:"topic"`
}

var (
	mu     sync.Mutex
	config *AppConfig
)

// InitApp loads configuration for the process. It panics when config.yaml is unreadable.
func InitApp() {
	c, err := Load(GetBasePath())
	if err != nil {
		panic(err)
	}
	mu.Lock()
	config = &c
	mu.Unlock()
}

func GetConfig() AppConfig {
	mu.Lock()
	loaded := config != nil
	mu.Unlock()
	if !loaded {
		InitApp()
	}
	mu.Lock()
	defer mu.Unlock()
	return *config
}

// Load reads dir/.env and dir/config.yaml, applies defaults and then environment overrides.
// A missing config.yaml is not an error; everything has a default or an env key.
func Load(dir string) (AppConfig, error) {
	_ = godotenv.Load(filepath.Join(dir, ENV_FILE))

	var c AppConfig
	data, err := os.ReadFile(filepath.Join(dir, CONFIG_FILE))
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &c); err != nil {
			return AppConfig{}, fmt.Errorf("parse %s: %w", CONFIG_FILE, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return AppConfig{}, fmt.Errorf("read %s: %w", CONFIG_FILE, err)
	}

	applyDefaults(&c)
	if err := applyEnv(&c); err != nil {
		return AppConfig{}, err
	}
	return c, nil
}

func applyDefaults(c *AppConfig) {
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = "mongodb://localhost:27017"
	}
	if c.Mongo.DBName == "" {
		c.Mongo.DBName = "editorial"
	}
	if c.AI.Provider == "" {
		c.AI.Provider = "gateway"
	}
	if c.AI.BaseURL == "" {
		c.AI.BaseURL = "https://openrouter.ai/api/v1"
	}
	if c.AI.DefaultModel == "" {
		c.AI.DefaultModel = "openai/gpt-4o-mini"
	}
	if c.AI.FastModel == "" {
		c.AI.FastModel = c.AI.DefaultModel
	}
	if c.AI.StrongModel == "" {
		c.AI.StrongModel = "anthropic/claude-3.5-sonnet"
	}
	if c.AI.MaxTokens <= 0 {
		c.AI.MaxTokens = 2000
	}
	if c.AI.Temperature == 0 {
		c.AI.Temperature = 0.7
	}
	if c.AI.TimeoutSeconds <= 0 {
		c.AI.TimeoutSeconds = 60
	}
	if c.AI.AppName == "" {
		c.AI.AppName = "editorial-cms"
	}
	if c.Images.Pexels.BaseURL == "" {
		c.Images.Pexels.BaseURL = "https://api.pexels.com/v1"
	}
	if c.Images.Unsplash.BaseURL == "" {
		c.Images.Unsplash.BaseURL = "https://api.unsplash.com"
	}
	if c.Images.Pixabay.BaseURL == "" {
		c.Images.Pixabay.BaseURL = "https://pixabay.com/api/"
	}
	if c.Content.Locale == "" {
		c.Content.Locale = "pt-BR"
	}
	if c.Content.ExcerptLength <= 0 {
		c.Content.ExcerptLength = 160
	}
	if c.Kafka.Topic == "" {
		c.Kafka.Topic = "editorial.post.events"
	}
}

func applyEnv(c *AppConfig) error {
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Server.BaseURL, "SERVER_BASE_URL")
	setString(&c.Mongo.URI, "MONGO_URI")
	setString(&c.Mongo.DBName, "MONGO_DB_NAME")
	setString(&c.Kafka.BootstrapServers, "KAFKA_BOOTSTRAP_SERVERS")

	setString(&c.AI.Provider, "AI_PROVIDER")
	setString(&c.AI.BaseURL, "AI_GATEWAY_BASE_URL")
	setString(&c.AI.APIKey, "AI_GATEWAY_API_KEY")
	if c.AI.Provider == "gemini" {
		setString(&c.AI.APIKey, "GEMINI_API_KEY")
	}
	setString(&c.AI.DefaultModel, "AI_DEFAULT_MODEL")
	setString(&c.AI.FastModel, "AI_FAST_MODEL")
	setString(&c.AI.StrongModel, "AI_STRONG_MODEL")
	if err := setInt(&c.AI.MaxTokens, "AI_DEFAULT_MAX_TOKENS"); err != nil {
		return err
	}
	if err := setFloat(&c.AI.Temperature, "AI_DEFAULT_TEMPERATURE"); err != nil {
		return err
	}

	setString(&c.Images.Pexels.APIKey, "PEXELS_API_KEY")
	setString(&c.Images.Unsplash.APIKey, "UNSPLASH_ACCESS_KEY")
	setString(&c.Images.Pixabay.APIKey, "PIXABAY_API_KEY")
	for key, dst := range map[string]**bool{
		"PEXELS_ENABLED":   &c.Images.Pexels.Enabled,
		"UNSPLASH_ENABLED": &c.Images.Unsplash.Enabled,
		"PIXABAY_ENABLED":  &c.Images.Pixabay.Enabled,
	} {
		if err := setBool(dst, key); err != nil {
			return err
		}
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		*dst = strings.TrimSpace(v)
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setFloat(dst *float64, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func setBool(dst **bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(v) == "" {
		return nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = &b
	return nil
}

// GetBasePath walks up from the working directory to the first directory holding config.yaml.
// It falls back to the working directory itself.
func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return cwd
}
