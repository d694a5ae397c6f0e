package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"specforge/internal/export"
)

type Config struct {
	Port        string
	Env         string
	DatabaseURL string
	LogFile     string
	Gemini      GeminiConfig
	Bundle      BundleConfig
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	UseFake bool
}

type BundleConfig struct {
	Enabled bool
	S3      export.S3Config
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:        *port,
		Env:         env,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		LogFile:     strings.TrimSpace(os.Getenv("LOG_FILE")),
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			Model:   strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
			UseFake: strings.EqualFold(strings.TrimSpace(os.Getenv("LLM_PROVIDER")), "fake"),
		},
		Bundle: loadBundleConfig(env),
	}, nil
}

func loadBundleConfig(env string) BundleConfig {
	endpoint := resolveBundleEndpoint(env)
	cfg := BundleConfig{
		S3: export.S3Config{
			Endpoint:  endpoint,
			Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_REGION")), "us-east-1"),
			AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
			SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
			Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("BUNDLE_S3_BUCKET")), "specforge-bundles"),
			UseSSL:    resolveBundleUseSSL(env),
		},
	}
	cfg.Enabled = cfg.S3.Complete()
	return cfg
}

func resolveBundleEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("BUNDLE_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("BUNDLE_S3_ENDPOINT"))
}

func resolveBundleUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("BUNDLE_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
