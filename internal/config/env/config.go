package env

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"uni-seeder/internal/config/validation"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name" validate:"required"`
	} `mapstructure:"app"`
	Log struct {
		Level   int    `mapstructure:"level" validate:"min=0,max=6"`
		Format  string `mapstructure:"format" validate:"omitempty,oneof=text json"`
		NoColor bool   `mapstructure:"no_color"`
	} `mapstructure:"log"`
	API struct {
		BaseURL       string  `mapstructure:"base_url" validate:"required,url"`
		Timeout       int     `mapstructure:"timeout" validate:"min=0"`
		RatePerSecond float64 `mapstructure:"rate_per_second" validate:"min=0"`
		Admin         struct {
			Email    string `mapstructure:"email"`
			Password string `mapstructure:"password"`
		} `mapstructure:"admin"`
	} `mapstructure:"api"`
	Reference struct {
		Countries    string `mapstructure:"countries" validate:"required"`
		Cities       string `mapstructure:"cities" validate:"required"`
		Universities string `mapstructure:"universities" validate:"required"`
	} `mapstructure:"reference"`
	Roster struct {
		UniversityID    string `mapstructure:"university_id" validate:"required"`
		Password        string `mapstructure:"password" validate:"required"`
		Fixtures        string `mapstructure:"fixtures"`
		TopicAuthors    int    `mapstructure:"topic_authors" validate:"min=0"`
		MaxPostsPerUser int    `mapstructure:"max_posts_per_user" validate:"min=1"`
		Seed            int64  `mapstructure:"seed"`
		LoginExisting   bool   `mapstructure:"login_existing"`
	} `mapstructure:"roster"`
	Forums struct {
		Fixtures     string `mapstructure:"fixtures"`
		TopicsMin    int    `mapstructure:"topics_min" validate:"min=1"`
		TopicsMax    int    `mapstructure:"topics_max" validate:"gtefield=TopicsMin"`
		ResponsesMin int    `mapstructure:"responses_min" validate:"min=0"`
		ResponsesMax int    `mapstructure:"responses_max" validate:"gtefield=ResponsesMin"`
		Seed         int64  `mapstructure:"seed"`
		Admin        struct {
			Email    string `mapstructure:"email" validate:"required"`
			Name     string `mapstructure:"name" validate:"required"`
			Password string `mapstructure:"password" validate:"required"`
		} `mapstructure:"admin"`
	} `mapstructure:"forums"`
	Monitoring struct {
		Otel struct {
			Host string `mapstructure:"host"`
		} `mapstructure:"otel"`
	} `mapstructure:"monitoring"`
	FakeAPI struct {
		Port         int    `mapstructure:"port" validate:"min=0,max=65535"`
		JWTSecret    string `mapstructure:"jwt_secret" validate:"required"`
		UniqueNames  bool   `mapstructure:"unique_names"`
		RequireAdmin bool   `mapstructure:"require_admin"`
	} `mapstructure:"fakeapi"`
}

// GetAPITimeout returns the per-request timeout. Zero leaves the HTTP
// client without a deadline.
func (c *Config) GetAPITimeout() time.Duration {
	return time.Duration(c.API.Timeout) * time.Second
}

// HasAdminCredential reports whether reference creates should log in first.
func (c *Config) HasAdminCredential() bool {
	return c.API.Admin.Email != "" && c.API.Admin.Password != ""
}

// defaults registers every key so that environment overrides reach
// Unmarshal even when no config file is present.
func defaults(config *viper.Viper) {
	config.SetDefault("app.name", "uni-seeder")
	config.SetDefault("log.level", 4)
	config.SetDefault("log.format", "text")
	config.SetDefault("log.no_color", false)

	config.SetDefault("api.base_url", "http://localhost:4000")
	config.SetDefault("api.timeout", 0)
	config.SetDefault("api.rate_per_second", 0)
	config.SetDefault("api.admin.email", "")
	config.SetDefault("api.admin.password", "")

	config.SetDefault("reference.countries", "countryList.csv")
	config.SetDefault("reference.cities", "cityList.csv")
	config.SetDefault("reference.universities", "uniList.csv")

	config.SetDefault("roster.university_id", "54")
	config.SetDefault("roster.password", "password123")
	config.SetDefault("roster.fixtures", "")
	config.SetDefault("roster.topic_authors", 5)
	config.SetDefault("roster.max_posts_per_user", 3)
	config.SetDefault("roster.seed", 0)
	config.SetDefault("roster.login_existing", false)

	config.SetDefault("forums.fixtures", "")
	config.SetDefault("forums.topics_min", 3)
	config.SetDefault("forums.topics_max", 5)
	config.SetDefault("forums.responses_min", 1)
	config.SetDefault("forums.responses_max", 3)
	config.SetDefault("forums.seed", 0)
	config.SetDefault("forums.admin.email", "testforum@example.com")
	config.SetDefault("forums.admin.name", "Forum Admin")
	config.SetDefault("forums.admin.password", "password123")

	config.SetDefault("monitoring.otel.host", "")

	config.SetDefault("fakeapi.port", 4000)
	config.SetDefault("fakeapi.jwt_secret", "rehearsal-secret")
	config.SetDefault("fakeapi.unique_names", false)
	config.SetDefault("fakeapi.require_admin", false)
}

// Load reads configuration from path, or from config.yml in ./ or ../ when
// path is empty. A missing default file is not an error: built-in defaults
// and SEEDER_* environment variables apply.
func Load(path string) (*Config, error) {
	config := viper.New()
	defaults(config)

	config.SetEnvPrefix("SEEDER")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if path != "" {
		config.SetConfigFile(path)
	} else {
		config.SetConfigName("config")
		config.SetConfigType("yml")
		config.AddConfigPath("./../")
		config.AddConfigPath("./")
	}

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("fatal error reading config file: %w", err)
		}
	}

	cfg := new(Config)
	if err := config.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("fatal error unmarshaling config: %w", err)
	}

	if err := validation.NewValidation().Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// NewConfig is Load for main packages: any failure is fatal.
func NewConfig(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
