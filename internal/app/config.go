package app

import "os"

type Config struct {
	Env        string
	Port       string
	DSN        string
	JWTSecret  string
	InvoiceDir string
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func LoadConfig() Config {
	return Config{
		Env:        getEnv("APP_ENV", "dev"),
		Port:       getEnv("APP_PORT", "8080"),
		DSN:        getEnv("DB_DSN", ""),
		JWTSecret:  getEnv("JWT_SECRET", ""),
		InvoiceDir: getEnv("INVOICE_DIR", "./invoices"),
	}
}
