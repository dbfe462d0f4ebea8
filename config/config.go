package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all companion configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	Middleware MiddlewareConfig

	// Backend workspace API
	Backend BackendConfig
	Auth    AuthConfig

	// Assistant features
	Chat      ChatConfig
	Voice     VoiceConfig
	Calendar  CalendarConfig
	Dashboard DashboardConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MiddlewareConfig struct {
	RateLimitPerMin int
}

// BackendConfig points at the assistant backend REST API.
type BackendConfig struct {
	BaseURL         string
	Timeout         time.Duration
	RateLimitPerSec float64
	Burst           int
}

type AuthConfig struct {
	// OAuthStateTTL bounds how long a started Google login stays valid.
	OAuthStateTTL time.Duration
}

type ChatConfig struct {
	MaxSessions        int
	SessionTTL         time.Duration
	HistoryPageSize    int
	HistoryMaxMessages int
	HistoryCacheTTL    time.Duration
}

// VoiceConfig holds the inputs of capture strategy detection and speech output.
type VoiceConfig struct {
	Streaming StreamingConfig
	FFMPEG    FFMPEGConfig

	TTSCommand    string
	TTSArgs       []string
	PlayerCommand string
	PlayerArgs    []string

	TranscribeTimeout time.Duration
	SynthVoice        string
	SynthSpeed        float64
}

type StreamingConfig struct {
	URL            string
	APIKey         string
	Model          string
	Language       string
	InterimResults bool
}

type FFMPEGConfig struct {
	Command     string
	InputFormat string
	InputDevice string
	SampleRate  int
	Channels    int
}

const (
	CalendarProviderREST   = "rest"
	CalendarProviderGoogle = "google"
)

type CalendarConfig struct {
	// Provider is rest (through the backend) or google (direct API).
	Provider        string
	CredentialsPath string
	CalendarID      string
	Timezone        string
	SyncHorizon     time.Duration
}

type DashboardConfig struct {
	CacheTTL       time.Duration
	SectionTimeout time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.Middleware.RateLimitPerMin = viper.GetInt("middleware.rate_limit_per_min")

	// Backend
	cfg.Backend.BaseURL = viper.GetString("backend.base_url")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.BaseURL = backendURL
	}
	cfg.Backend.Timeout = viper.GetDuration("backend.timeout")
	cfg.Backend.RateLimitPerSec = viper.GetFloat64("backend.rate_limit_per_sec")
	cfg.Backend.Burst = viper.GetInt("backend.burst")
	cfg.Auth.OAuthStateTTL = viper.GetDuration("auth.oauth_state_ttl")

	// Chat
	cfg.Chat.MaxSessions = viper.GetInt("chat.max_sessions")
	cfg.Chat.SessionTTL = viper.GetDuration("chat.session_ttl")
	cfg.Chat.HistoryPageSize = viper.GetInt("chat.history_page_size")
	cfg.Chat.HistoryMaxMessages = viper.GetInt("chat.history_max_messages")
	cfg.Chat.HistoryCacheTTL = viper.GetDuration("chat.history_cache_ttl")

	// Voice
	cfg.Voice.Streaming.URL = viper.GetString("voice.streaming.url")
	cfg.Voice.Streaming.APIKey = expandEnvVar(viper.GetString("voice.streaming.api_key"))
	if sttKey := viper.GetString("stt_api_key"); sttKey != "" {
		cfg.Voice.Streaming.APIKey = sttKey
	}
	cfg.Voice.Streaming.Model = viper.GetString("voice.streaming.model")
	cfg.Voice.Streaming.Language = viper.GetString("voice.streaming.language")
	cfg.Voice.Streaming.InterimResults = viper.GetBool("voice.streaming.interim_results")
	cfg.Voice.FFMPEG.Command = viper.GetString("voice.ffmpeg.command")
	cfg.Voice.FFMPEG.InputFormat = viper.GetString("voice.ffmpeg.input_format")
	cfg.Voice.FFMPEG.InputDevice = viper.GetString("voice.ffmpeg.input_device")
	cfg.Voice.FFMPEG.SampleRate = viper.GetInt("voice.ffmpeg.sample_rate")
	cfg.Voice.FFMPEG.Channels = viper.GetInt("voice.ffmpeg.channels")
	cfg.Voice.TTSCommand = viper.GetString("voice.tts_command")
	cfg.Voice.TTSArgs = splitList(viper.GetString("voice.tts_args"))
	cfg.Voice.PlayerCommand = viper.GetString("voice.player_command")
	cfg.Voice.PlayerArgs = splitList(viper.GetString("voice.player_args"))
	cfg.Voice.TranscribeTimeout = viper.GetDuration("voice.transcribe_timeout")
	cfg.Voice.SynthVoice = viper.GetString("voice.synth_voice")
	cfg.Voice.SynthSpeed = viper.GetFloat64("voice.synth_speed")

	// Calendar
	cfg.Calendar.Provider = strings.ToLower(strings.TrimSpace(viper.GetString("calendar.provider")))
	cfg.Calendar.CredentialsPath = viper.GetString("calendar.credentials_path")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Calendar.CredentialsPath = googleCreds
	}
	cfg.Calendar.CalendarID = viper.GetString("calendar.calendar_id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	cfg.Calendar.SyncHorizon = viper.GetDuration("calendar.sync_horizon")

	// Dashboard
	cfg.Dashboard.CacheTTL = viper.GetDuration("dashboard.cache_ttl")
	cfg.Dashboard.SectionTimeout = viper.GetDuration("dashboard.section_timeout")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("middleware.rate_limit_per_min", 120)

	viper.SetDefault("backend.base_url", "http://localhost:8000/api")
	viper.SetDefault("backend.timeout", "30s")
	viper.SetDefault("backend.rate_limit_per_sec", 10)
	viper.SetDefault("backend.burst", 20)
	viper.SetDefault("auth.oauth_state_ttl", "10m")

	viper.SetDefault("chat.max_sessions", 32)
	viper.SetDefault("chat.session_ttl", "12h")
	viper.SetDefault("chat.history_page_size", 50)
	viper.SetDefault("chat.history_max_messages", 500)
	viper.SetDefault("chat.history_cache_ttl", "30m")

	viper.SetDefault("voice.streaming.language", "en-US")
	viper.SetDefault("voice.streaming.interim_results", true)
	viper.SetDefault("voice.ffmpeg.command", "ffmpeg")
	viper.SetDefault("voice.ffmpeg.sample_rate", 16000)
	viper.SetDefault("voice.ffmpeg.channels", 1)
	viper.SetDefault("voice.transcribe_timeout", "60s")
	viper.SetDefault("voice.synth_voice", "alloy")
	viper.SetDefault("voice.synth_speed", 1.0)

	viper.SetDefault("calendar.provider", CalendarProviderREST)
	viper.SetDefault("calendar.calendar_id", "primary")
	viper.SetDefault("calendar.timezone", "Local")
	viper.SetDefault("calendar.sync_horizon", "720h")

	viper.SetDefault("dashboard.cache_ttl", "1m")
	viper.SetDefault("dashboard.section_timeout", "10s")
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url is required")
	}

	switch cfg.Calendar.Provider {
	case CalendarProviderREST:
	case CalendarProviderGoogle:
		if cfg.Calendar.CredentialsPath == "" {
			return fmt.Errorf("calendar.credentials_path is required for the google provider")
		}
	default:
		return fmt.Errorf("calendar.provider: unknown provider %q", cfg.Calendar.Provider)
	}

	if cfg.Voice.SynthSpeed < 0.25 || cfg.Voice.SynthSpeed > 4 {
		return fmt.Errorf("voice.synth_speed must be between 0.25 and 4, got %v", cfg.Voice.SynthSpeed)
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// splitList splits a comma separated value; env vars can't carry arrays.
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
