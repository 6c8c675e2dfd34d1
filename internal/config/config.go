package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret         string
	AccessTokenTTL    string
	AdminPasswordHash string

	Log      string
	LogLevel string
	Env      string // dev|prod

	// Базовый URL, по которому ридер забирает blogs.json и {id}.md
	BlogSourceURL string
	// Признанные категории статей; первая — "All"
	BlogCategories []string
}

const defaultCategories = "All,Equipment,Training,Monitoring,General"

// LoadConfig загружает .env, читает переменные окружения и выставляет дефолты.
// Ничего не логирует — чтобы не создавать зависимость от logger.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	port := def(os.Getenv("PORT"), "8080")

	cfg := &Config{
		Port:      port,
		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AccessTokenTTL:    def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "15m"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		BlogSourceURL:  def(os.Getenv("BLOG_SOURCE_URL"), "http://localhost:"+port+"/blogs"),
		BlogCategories: splitCategories(def(os.Getenv("BLOG_CATEGORIES"), defaultCategories)),
	}

	return cfg, nil
}

func splitCategories(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Validate возвращает предупреждения и фатальную ошибку (если критично).
func (c *Config) Validate() (warnings []string, err error) {
	// Критичные: БД
	if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
		return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
	}

	// JWT — предупреждение: без секрета админские маршруты бесполезны
	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	// Пароль админа — предупреждение, публичное чтение работает и без него
	if strings.TrimSpace(c.AdminPasswordHash) == "" {
		warnings = append(warnings, "ADMIN_PASSWORD_HASH is not set, admin login is disabled")
	}

	if len(c.BlogCategories) == 0 {
		warnings = append(warnings, "BLOG_CATEGORIES is empty")
	}

	// PORT
	if c.Port == "" {
		warnings = append(warnings, "PORT is empty, using default 8080")
	}

	return warnings, nil
}

// GetDSN — полная DSN (с паролем)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe — DSN без пароля (для логов)
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}
