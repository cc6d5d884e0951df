package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Course describes one language offering shown on the registration form
type Course struct {
	Name       string `yaml:"name" json:"name"`
	Price      string `yaml:"price" json:"price"`
	Sessions   string `yaml:"sessions" json:"sessions"`
	Difficulty string `yaml:"difficulty" json:"difficulty"`
	Popularity string `yaml:"popularity" json:"popularity"`
}

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Data struct {
		Dir           string `yaml:"dir" env:"DATA_DIR"`
		BackupDir     string `yaml:"backup_dir" env:"BACKUP_DIR"`
		MaterialsFile string `yaml:"materials_file" env:"MATERIALS_FILE"`
	} `yaml:"data"`

	SMTP struct {
		Host           string `yaml:"host" env:"SMTP_HOST"`
		Port           int    `yaml:"port" env:"SMTP_PORT"`
		SenderEmail    string `yaml:"sender_email" env:"SENDER_EMAIL"`
		SenderPassword string `yaml:"sender_password" env:"EMAIL_PASSWORD"`
		FromName       string `yaml:"from_name" env:"SMTP_FROM_NAME"`
	} `yaml:"smtp"`

	Auth struct {
		AdminUsername string `yaml:"admin_username" env:"ADMIN_USER"`
		AdminPassword string `yaml:"admin_password" env:"ADMIN_PASS"`
		// TutorPassword is the single password shared by every tutor
		// account. Preserved current behavior; no per-tutor rotation.
		TutorPassword string `yaml:"tutor_password" env:"TUTOR_PASS"`
	} `yaml:"auth"`

	JWT struct {
		Secret          string `yaml:"secret" env:"JWT_SECRET"`
		TokenExpiration string `yaml:"token_expiration" env:"JWT_TOKEN_EXPIRATION"`
		Issuer          string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Contact struct {
		Email        string `yaml:"email" env:"CONTACT_EMAIL"`
		PaymentEmail string `yaml:"payment_email" env:"PAYMENT_EMAIL"`
		Phone        string `yaml:"phone" env:"CONTACT_PHONE"`
		Facebook     string `yaml:"facebook"`
		YouTube      string `yaml:"youtube"`
	} `yaml:"contact"`

	Registration struct {
		Courses          []Course `yaml:"courses"`
		SessionIntervals []string `yaml:"session_intervals"`
		TimeSlots        []string `yaml:"time_slots"`
		PaymentOptions   []string `yaml:"payment_options"`
		MinAge           int      `yaml:"min_age"`
		MaxAge           int      `yaml:"max_age"`
	} `yaml:"registration"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env are enough to run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration.
//
// The SMTP and admin credential defaults mirror the committed fallbacks the
// deployment has always shipped with; override them via environment variables
// on any real installation.
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Data.Dir = "data"
	config.Data.BackupDir = filepath.Join("data", "backups")
	config.Data.MaterialsFile = filepath.Join("assets", "languages", "module.pdf")

	config.SMTP.Host = "smtp.gmail.com"
	config.SMTP.Port = 587
	config.SMTP.SenderEmail = "lbtmoticketsystem@gmail.com"
	config.SMTP.SenderPassword = "opkquepefebmxlec"
	config.SMTP.FromName = "Vocabolarium"

	config.Auth.AdminUsername = "admin"
	config.Auth.AdminPassword = "admin123"
	config.Auth.TutorPassword = "tutor123"

	config.JWT.Secret = "vocabolarium-dev-secret"
	config.JWT.TokenExpiration = "8h"
	config.JWT.Issuer = "vocabolarium.app"

	config.Contact.Email = "vocabolarium@gmail.com"
	config.Contact.PaymentEmail = "payments@vocabolarium.com"
	config.Contact.Phone = "+63 917 123 4567"
	config.Contact.Facebook = "https://facebook.com/vocabolarium"
	config.Contact.YouTube = "https://youtube.com/@vocabolarium"

	config.Registration.Courses = []Course{
		{Name: "Korean", Price: "₱7,000/2 month", Sessions: "12 sessions per month", Difficulty: "Medium", Popularity: "Very High"},
		{Name: "Japanese", Price: "₱7,000/2 month", Sessions: "12 sessions per month", Difficulty: "Hard", Popularity: "Very High"},
		{Name: "Mandarin", Price: "₱7,000/2 month", Sessions: "12 sessions per month", Difficulty: "Hard", Popularity: "High"},
		{Name: "English", Price: "₱7,000/2 month", Sessions: "12 sessions per month", Difficulty: "Medium", Popularity: "Very High"},
		{Name: "Filipino", Price: "₱7,000/2 month", Sessions: "12 sessions per month", Difficulty: "Easy", Popularity: "Medium"},
	}
	config.Registration.SessionIntervals = []string{
		"2 times per week",
		"3 times per week",
		"4 times per week",
		"5 times per week",
	}
	config.Registration.TimeSlots = []string{"10:00 AM - 1:00 PM"}
	config.Registration.PaymentOptions = []string{"GCash", "Bank Transfer", "PayPal"}
	config.Registration.MinAge = 5
	config.Registration.MaxAge = 100

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Data.Dir == "" {
		return fmt.Errorf("data directory is required")
	}

	if config.SMTP.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}

	if config.SMTP.Port <= 0 {
		return fmt.Errorf("SMTP port must be positive")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.TokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT token expiration format: %w", err)
	}

	if len(config.Registration.Courses) == 0 {
		return fmt.Errorf("at least one course offering is required")
	}

	return nil
}

// Languages returns the names of every configured course offering
func (c *Config) Languages() []string {
	names := make([]string, 0, len(c.Registration.Courses))
	for _, course := range c.Registration.Courses {
		names = append(names, course.Name)
	}
	return names
}

// HasLanguage reports whether a language is an offered course
func (c *Config) HasLanguage(language string) bool {
	for _, course := range c.Registration.Courses {
		if course.Name == language {
			return true
		}
	}
	return false
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
