package config

import (
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Redis        Redis
	JWT          JWT
	Report       Report
	GeminiApiKey string
	GeminiModel  string
	LogLevel     string
}

type Server struct {
	Port        string
	CorsOrigins []string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Redis is optional; an empty Addr disables the course cache.
type Redis struct {
	Addr string
	TTL  time.Duration
}

type JWT struct {
	Secret string
	TTL    time.Duration
}

// Report controls how dates are rendered in the results dashboard and CSV export.
type Report struct {
	DateLayout     string
	DateTimeLayout string
	TimeZone       string
}

// Location resolves the report time zone, falling back to UTC on bad input.
func (r Report) Location() *time.Location {
	if r.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", r.TimeZone).Msg("Unknown report time zone, using UTC")
		return time.UTC
	}
	return loc
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("DATABASE_HOST", "localhost")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("REDIS_TTL", "10m")
	v.SetDefault("JWT_SECRET", "dev-secret-change-me")
	v.SetDefault("JWT_TTL", "24h")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REPORT_DATE_LAYOUT", "01/02/2006")
	v.SetDefault("REPORT_DATETIME_LAYOUT", "01/02/2006 15:04:05")
	v.SetDefault("REPORT_TIMEZONE", "UTC")
}

func NewConfig() (*Config, error) {
	return Load(viper.GetViper())
}

// Load builds a Config from v. The importer binds its flags into v before calling it.
func Load(v *viper.Viper) (*Config, error) {
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = v.GetString("SERVER_PORT")
	config.Server.CorsOrigins = splitList(v.GetString("CORS_ORIGINS"))
	config.Database.Host = v.GetString("DATABASE_HOST")
	config.Database.Port = v.GetString("DATABASE_PORT")
	config.Database.User = v.GetString("DATABASE_USER")
	config.Database.Password = v.GetString("DATABASE_PASSWORD")
	config.Database.Name = v.GetString("DATABASE_NAME")

	config.Redis.Addr = v.GetString("REDIS_ADDR")
	config.Redis.TTL = v.GetDuration("REDIS_TTL")

	config.JWT.Secret = v.GetString("JWT_SECRET")
	config.JWT.TTL = v.GetDuration("JWT_TTL")

	config.Report.DateLayout = v.GetString("REPORT_DATE_LAYOUT")
	config.Report.DateTimeLayout = v.GetString("REPORT_DATETIME_LAYOUT")
	config.Report.TimeZone = v.GetString("REPORT_TIMEZONE")

	config.GeminiApiKey = v.GetString("GEMINI_API_KEY")
	config.GeminiModel = v.GetString("GEMINI_MODEL")
	config.LogLevel = v.GetString("LOG_LEVEL")

	log.Info().
		Str("port", config.Server.Port).
		Str("dbHost", config.Database.Host).
		Str("dbName", config.Database.Name).
		Bool("redis", config.Redis.Addr != "").
		Bool("gemini", config.GeminiApiKey != "").
		Msg("Config loaded")
	return &config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
