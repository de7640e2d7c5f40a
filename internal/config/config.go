package config

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	Search struct {
		DefaultRadiusMiles int           `yaml:"default_radius_miles"`
		DefaultDays        int           `yaml:"default_days"`
		DefaultPageSize    int           `yaml:"default_page_size"`
		MaxPageSize        int           `yaml:"max_page_size"`
		UpstreamTimeout    time.Duration `yaml:"upstream_timeout"`
		RateLimit          int           `yaml:"rate_limit"` // upstream requests per minute, per provider
	} `yaml:"search"`

	Providers struct {
		Adzuna struct {
			BaseURL string `yaml:"base_url"`
			AppID   string `yaml:"app_id"`
			AppKey  string `yaml:"app_key"`
			Country string `yaml:"country"`
		} `yaml:"adzuna"`

		CareerOneStop struct {
			BaseURL  string `yaml:"base_url"`
			APIToken string `yaml:"api_token"`
			UserID   string `yaml:"user_id"`
		} `yaml:"careeronestop"`

		USAJobs struct {
			BaseURL   string `yaml:"base_url"`
			AuthKey   string `yaml:"auth_key"`
			UserAgent string `yaml:"user_agent"`
		} `yaml:"usajobs"`
	} `yaml:"providers"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Search.DefaultRadiusMiles = 25
	config.Search.DefaultDays = 7
	config.Search.DefaultPageSize = 25
	config.Search.MaxPageSize = 50
	config.Search.UpstreamTimeout = 8 * time.Second
	config.Search.RateLimit = 60

	config.Providers.Adzuna.BaseURL = "https://api.adzuna.com"
	config.Providers.Adzuna.Country = "us"
	config.Providers.CareerOneStop.BaseURL = "https://api.careeronestop.org"
	config.Providers.USAJobs.BaseURL = "https://data.usajobs.gov"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
	config.Logging.Output = "stdout"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			// Expand environment variables in the YAML content
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	// A credential left as an unexpanded ${VAR} placeholder counts as unset,
	// so provider availability checks see it as missing rather than sending
	// the placeholder upstream.
	config.clearPlaceholders()

	return config, nil
}

func (c *Config) clearPlaceholders() {
	clear := func(s *string) {
		if strings.HasPrefix(*s, "${") {
			*s = ""
		}
	}
	clear(&c.Providers.Adzuna.AppID)
	clear(&c.Providers.Adzuna.AppKey)
	clear(&c.Providers.CareerOneStop.APIToken)
	clear(&c.Providers.CareerOneStop.UserID)
	clear(&c.Providers.USAJobs.AuthKey)
	clear(&c.Providers.USAJobs.UserAgent)
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if timeout := os.Getenv("SEARCH_UPSTREAM_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Search.UpstreamTimeout = d
		}
	}

	if limit := os.Getenv("SEARCH_RATE_LIMIT"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			c.Search.RateLimit = n
		}
	}

	// Provider credentials keep the env names the legacy deployment used,
	// so existing setups work unchanged.
	if appID := os.Getenv("ADZUNA_APP_ID"); appID != "" {
		c.Providers.Adzuna.AppID = appID
	}

	if appKey := os.Getenv("ADZUNA_APP_KEY"); appKey != "" {
		c.Providers.Adzuna.AppKey = appKey
	}

	if country := os.Getenv("ADZUNA_COUNTRY"); country != "" {
		c.Providers.Adzuna.Country = country
	}

	if token := os.Getenv("COS_API_TOKEN"); token != "" {
		c.Providers.CareerOneStop.APIToken = token
	}

	if userID := os.Getenv("COS_USER_ID"); userID != "" {
		c.Providers.CareerOneStop.UserID = userID
	}

	if authKey := os.Getenv("USAJOBS_AUTH_KEY"); authKey != "" {
		c.Providers.USAJobs.AuthKey = authKey
	}

	if userAgent := os.Getenv("USAJOBS_USER_AGENT"); userAgent != "" {
		c.Providers.USAJobs.UserAgent = userAgent
	}
}
