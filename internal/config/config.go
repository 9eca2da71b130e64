package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/YelzhanWeb/kiosk/internal/domain"
)

const EnvGeminiAPIKey = "GEMINI_API_KEY"

type Config struct {
	Server         ServerConfig         `yaml:"server"`
	Shop           ShopConfig           `yaml:"shop"`
	Targets        TargetsConfig        `yaml:"targets"`
	Admin          AdminConfig          `yaml:"admin"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Database       DatabaseConfig       `yaml:"database"`
	RabbitMQ       RabbitMQConfig       `yaml:"rabbitmq"`
	Staff          []domain.StaffMember `yaml:"staff"`
	MenuFile       string               `yaml:"menu_file"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
}

type ShopConfig struct {
	Name         string `yaml:"name"`
	Tagline      string `yaml:"tagline"`
	Currency     string `yaml:"currency"`
	ReportTitle  string `yaml:"report_title"`
	ReceiptWidth int    `yaml:"receipt_width"`
	// PrinterDevice is a file or device path; empty prints to stdout.
	PrinterDevice string `yaml:"printer_device"`
}

type TargetsConfig struct {
	Daily            float64 `yaml:"daily"`
	Weekly           float64 `yaml:"weekly"`
	Yearly           float64 `yaml:"yearly"`
	ExcellentPercent float64 `yaml:"excellent_percent"`
	GoodPercent      float64 `yaml:"good_percent"`
}

type AdminConfig struct {
	PIN       string `yaml:"pin"`
	AutoPrint bool   `yaml:"auto_print"`
}

type RecommendationConfig struct {
	Model    string `yaml:"model"`
	APIKey   string `yaml:"api_key"`
	ShopName string `yaml:"shop_name"`
}

type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Prefetch int    `yaml:"prefetch"`
}

func Default() *Config {
	return &Config{
		Server: ServerConfig{Port: 3000, LogLevel: "info"},
		Shop: ShopConfig{
			Name:         "Happy Hearts",
			Tagline:      "Coffee & Prints",
			Currency:     "P",
			ReportTitle:  "Happy Hearts Coffee & Prints",
			ReceiptWidth: 32,
		},
		Targets: TargetsConfig{
			Daily:            5000,
			Weekly:           35000,
			Yearly:           1500000,
			ExcellentPercent: 100,
			GoodPercent:      75,
		},
		Admin: AdminConfig{PIN: "1234"},
		Recommendation: RecommendationConfig{
			Model:    "gemini-2.5-flash",
			ShopName: "Happy Hearts Coffee",
		},
		Database: DatabaseConfig{Host: "localhost", Port: 5432, User: "kiosk", Database: "kiosk"},
		RabbitMQ: RabbitMQConfig{Host: "localhost", Port: 5672, User: "guest", Password: "guest", Prefetch: 1},
		Staff: []domain.StaffMember{
			{ID: "s1", Name: "Maria", PIN: "1234", HourlyRate: 65},
			{ID: "s2", Name: "Juan", PIN: "5678", HourlyRate: 65},
		},
	}
}

// Load reads path over the defaults. A missing file is not an error: the
// kiosk runs on defaults alone.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
	}

	if key := os.Getenv(EnvGeminiAPIKey); key != "" {
		cfg.Recommendation.APIKey = key
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Admin.PIN == "" {
		return errors.New("admin pin must not be empty")
	}
	if c.Targets.GoodPercent > c.Targets.ExcellentPercent {
		return errors.New("good_percent must not exceed excellent_percent")
	}

	seen := make(map[string]bool, len(c.Staff))
	for _, s := range c.Staff {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("staff entry %q: id and name are required", s.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("duplicate staff id %q", s.ID)
		}
		seen[s.ID] = true
	}
	return nil
}

type menuFile struct {
	Items []domain.MenuItem `yaml:"items"`
}

// LoadMenu returns the built-in menu when path is empty.
func LoadMenu(path string) ([]domain.MenuItem, error) {
	if path == "" {
		return domain.DefaultMenu(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var mf menuFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}
	if len(mf.Items) == 0 {
		return nil, errors.New("menu file has no items")
	}
	return mf.Items, nil
}
