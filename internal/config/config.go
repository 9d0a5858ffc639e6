package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// SMTPAccount é uma conta remetente pré-autorizada (ex: "charles").
type SMTPAccount struct {
	Address  string
	Password string
}

// Config é montada uma vez no startup e passada por referência para quem
// precisa. Não há singleton nem reconfiguração em runtime.
type Config struct {
	ServerPort      string
	AllowedOrigins  []string
	SpreadsheetID   string
	CredentialsFile string // JSON da service account do Google
	SMTPHost        string
	SMTPPort        int
	Senders         map[string]SMTPAccount
}

func Load() (*Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente.
	godotenv.Load()

	port, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}

	cfg := &Config{
		ServerPort:      getEnv("PORT", "8080"),
		AllowedOrigins:  splitList(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		SpreadsheetID:   os.Getenv("SPREADSHEET_ID"),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", "credentials.json"),
		SMTPHost:        getEnv("MAIL_HOST", "smtp.gmail.com"),
		SMTPPort:        port,
		Senders:         map[string]SMTPAccount{},
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID is required")
	}

	// MAIL_SENDERS lista os nomes das contas; cada uma tem
	// MAIL_<NOME>_ADDRESS e MAIL_<NOME>_PASSWORD.
	for _, name := range splitList(os.Getenv("MAIL_SENDERS")) {
		key := strings.ToUpper(name)
		address := os.Getenv("MAIL_" + key + "_ADDRESS")
		if address == "" {
			return nil, fmt.Errorf("MAIL_%s_ADDRESS is required for sender %q", key, name)
		}
		cfg.Senders[strings.ToLower(name)] = SMTPAccount{
			Address:  address,
			Password: os.Getenv("MAIL_" + key + "_PASSWORD"),
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
