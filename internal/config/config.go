package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	LLM     LLMConfig     `mapstructure:"llm"`
	Imgflip ImgflipConfig `mapstructure:"imgflip"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port"`
	Mode string     `mapstructure:"mode"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins  []string `mapstructure:"allowed_origins"`
	AllowAllOrigins bool     `mapstructure:"allow_all_origins"`
}

// LLMConfig configures the OpenAI-compatible completion API used for
// sentiment classification. Groq is the default provider.
type LLMConfig struct {
	Provider string        `mapstructure:"provider"`
	Model    string        `mapstructure:"model"`
	APIKey   string        `mapstructure:"api_key"`
	BaseURL  string        `mapstructure:"base_url"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// ImgflipConfig configures the meme captioning API.
type ImgflipConfig struct {
	Username    string        `mapstructure:"username"`
	Password    string        `mapstructure:"password"`
	Endpoint    string        `mapstructure:"endpoint"`
	FallbackURL string        `mapstructure:"fallback_url"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func Load(configPath string) (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.cors.allow_all_origins", true)
	v.SetDefault("server.cors.allowed_origins", []string{})
	v.SetDefault("llm.provider", "groq")
	v.SetDefault("llm.model", "llama3-8b-8192")
	v.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	v.SetDefault("llm.timeout", 30*time.Second)
	v.SetDefault("imgflip.endpoint", "https://api.imgflip.com/caption_image")
	v.SetDefault("imgflip.fallback_url", "https://i.imgflip.com/7f0mne.jpg")
	v.SetDefault("imgflip.timeout", 30*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Credentials keep the variable names the service has always used.
	v.BindEnv("server.port", "PORT")
	v.BindEnv("server.mode", "GIN_MODE")
	v.BindEnv("llm.api_key", "GROQ_API_KEY")
	v.BindEnv("llm.base_url", "GROQ_BASE_URL")
	v.BindEnv("llm.model", "LLM_MODEL")
	v.BindEnv("imgflip.username", "IMGFLIP_USERNAME")
	v.BindEnv("imgflip.password", "IMGFLIP_PASSWORD")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// MissingCredentials returns the environment variable names of credentials
// that are empty. Startup does not fail on them; the first outbound call
// degrades to its fallback instead.
func (c *Config) MissingCredentials() []string {
	var missing []string
	if c.LLM.APIKey == "" {
		missing = append(missing, "GROQ_API_KEY")
	}
	if c.Imgflip.Username == "" {
		missing = append(missing, "IMGFLIP_USERNAME")
	}
	if c.Imgflip.Password == "" {
		missing = append(missing, "IMGFLIP_PASSWORD")
	}
	return missing
}
