package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Storage StorageConfig
	Assets  AssetsConfig
	Stubs   StubsConfig
	Audio   AudioConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	AIRateLimit  float64 // requests/seg para endpoints "AI"; 0 = sin límite
	AIRateBurst  int
}

type LogConfig struct {
	Level  string
	Format string
	App    string
}

type StorageConfig struct {
	// Si viene, el catálogo se lee de Postgres. Si no, in-memory.
	DSN string
}

type AssetsConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StubsConfig son las latencias simuladas de cada stub.
type StubsConfig struct {
	UploadDelay   time.Duration
	ThoughtDelay  time.Duration
	VoiceDelay    time.Duration
	AnswerDelay   time.Duration
	AnalysisDelay time.Duration
}

type AudioConfig struct {
	Tick            time.Duration
	SessionTTL      time.Duration
	AutoplayBlocked bool
}

// Load lee .env (si existe) y luego variables de entorno.
// Las variables ya presentes en el entorno ganan sobre el .env.
func Load() Config {
	_ = godotenv.Load()
	return fromEnv(os.Getenv)
}

func fromEnv(get func(string) string) Config {
	return Config{
		Server: ServerConfig{
			Port:         getString(get, "PORT", "8080"),
			ReadTimeout:  getDuration(get, "READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration(get, "WRITE_TIMEOUT", 10*time.Second),
			AIRateLimit:  getFloat(get, "AI_RATE_LIMIT", 5),
			AIRateBurst:  getInt(get, "AI_RATE_BURST", 10),
		},
		Log: LogConfig{
			Level:  getString(get, "LOG_LEVEL", "info"),
			Format: getString(get, "LOG_FORMAT", "text"),
			App:    getString(get, "APP_NAME", "dog-life"),
		},
		Storage: StorageConfig{
			DSN: getString(get, "DB_DSN", ""),
		},
		Assets: AssetsConfig{
			BaseURL: getString(get, "ASSET_STORE_URL", ""),
			APIKey:  getString(get, "ASSET_STORE_API_KEY", ""),
			Timeout: getDuration(get, "ASSET_STORE_TIMEOUT", 5*time.Second),
		},
		Stubs: StubsConfig{
			UploadDelay:   getDuration(get, "UPLOAD_DELAY", 600*time.Millisecond),
			ThoughtDelay:  getDuration(get, "THOUGHT_DELAY", time.Second),
			VoiceDelay:    getDuration(get, "VOICE_DELAY", 800*time.Millisecond),
			AnswerDelay:   getDuration(get, "ANSWER_DELAY", 1500*time.Millisecond),
			AnalysisDelay: getDuration(get, "ANALYSIS_DELAY", 3*time.Second),
		},
		Audio: AudioConfig{
			Tick:            getDuration(get, "AUDIO_TICK", 250*time.Millisecond),
			SessionTTL:      getDuration(get, "SESSION_TTL", 30*time.Minute),
			AutoplayBlocked: getBool(get, "AUTOPLAY_BLOCKED", false),
		},
	}
}

// Addr devuelve ":PORT".
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Server.Port, ":")
}

func getString(get func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(get(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(get func(string) string, key string, fallback int) int {
	if n, err := strconv.Atoi(strings.TrimSpace(get(key))); err == nil {
		return n
	}
	return fallback
}

func getFloat(get func(string) string, key string, fallback float64) float64 {
	if f, err := strconv.ParseFloat(strings.TrimSpace(get(key)), 64); err == nil && f >= 0 {
		return f
	}
	return fallback
}

func getBool(get func(string) string, key string, fallback bool) bool {
	if b, err := strconv.ParseBool(strings.TrimSpace(get(key))); err == nil {
		return b
	}
	return fallback
}

// getDuration acepta "1500ms", "2s" o un entero (milisegundos).
func getDuration(get func(string) string, key string, fallback time.Duration) time.Duration {
	v := strings.TrimSpace(get(key))
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil && d >= 0 {
		return d
	}
	if ms, err := strconv.Atoi(v); err == nil && ms >= 0 {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
