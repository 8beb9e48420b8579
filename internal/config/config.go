package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("missing required environment variables")

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string  `mapstructure:"env"`          // current application environment (local, dev, production etc)
	TelegramAPIToken string  `mapstructure:"-"`            // Telegram API token loaded from environment
	AdminIDs         []int64 `mapstructure:"admin_ids"`    // Telegram user ids allowed to add questions
	QuizzesPath      string  `mapstructure:"quizzes_path"` // path to the question bank JSON file
	ScoresPath       string  `mapstructure:"scores_path"`  // path to the score table JSON file
}

// IsAdmin reports whether the user id is on the privileged allow-list.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Load reads configuration from config files and environment variables.
func Load() (*Config, error) {
	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("quizzes_path", "quizzes.json")
	v.SetDefault("scores_path", "scores.json")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("admin_ids", "ADMIN_IDS")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	// ADMIN_IDS comes as a comma or space separated list when set via env.
	if len(cfg.AdminIDs) == 0 {
		ids, err := parseAdminIDs(v.GetString("admin_ids"))
		if err != nil {
			return nil, err
		}
		cfg.AdminIDs = ids
	}

	return &cfg, nil
}

func parseAdminIDs(raw string) ([]int64, error) {
	fields := strings.Fields(strings.ReplaceAll(raw, ",", " "))
	ids := make([]int64, 0, len(fields))
	for _, f := range fields {
		id, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid admin id %q: %w", f, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
