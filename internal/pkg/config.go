package pkg

import "os"

// Config holds runtime settings, all overridable via env (a .env file
// is loaded by main when present).
type Config struct {
	Addr  string
	DSN   string
	Debug bool
}

func LoadConfig() Config {
	return Config{
		Addr:  getenv("SERVER_ADDR", ":8080"),
		DSN:   getenv("MYSQL_DSN", "user:password@tcp(127.0.0.1:3306)/board?charset=utf8mb4&parseTime=True"),
		Debug: os.Getenv("APP_DEBUG") == "true",
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
