package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/meetpulse-team/meetpulse/internal/domain/entities"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration. User/Password is the
// superuser bootstrap login used for migrations; the Roles block carries
// the per-role logins the API serves requests on.
type DatabaseConfig struct {
	Host          string `envconfig:"DB_HOST" default:"localhost"`
	Port          string `envconfig:"DB_PORT" default:"5432"`
	User          string `envconfig:"DB_USER" default:"postgres"`
	Password      string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name          string `envconfig:"DB_NAME" default:"meetpulse"`
	SSLMode       string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns      int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns      int    `envconfig:"DB_MIN_CONNS" default:"5"`
	MigrationsDir string `envconfig:"DB_MIGRATIONS_DIR" default:"migrations"`

	Roles RoleCredentialsConfig
}

// RoleCredentialsConfig maps each database role to its login credentials.
type RoleCredentialsConfig struct {
	EmployeeUser     string `envconfig:"EMPLOYEE_DB_USER" default:"employee"`
	EmployeePassword string `envconfig:"EMPLOYEE_DB_PASSWORD" default:"employee_pass"`
	ManagerUser      string `envconfig:"MANAGER_DB_USER" default:"manager"`
	ManagerPassword  string `envconfig:"MANAGER_DB_PASSWORD" default:"manager_pass"`
	HRUser           string `envconfig:"HR_DB_USER" default:"hr"`
	HRPassword       string `envconfig:"HR_DB_PASSWORD" default:"hr_pass"`
	SudoUser         string `envconfig:"SUDO_DB_USER" default:"sudo"`
	SudoPassword     string `envconfig:"SUDO_DB_PASSWORD" default:"sudo_pass"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     string `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret  string        `envconfig:"JWT_ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	RefreshSecret string        `envconfig:"JWT_REFRESH_SECRET" default:"your-refresh-secret-change-in-production"`
	AccessExpiry  time.Duration `envconfig:"JWT_ACCESS_EXPIRY" default:"15m"`
	RefreshExpiry time.Duration `envconfig:"JWT_REFRESH_EXPIRY" default:"168h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	for _, role := range entities.AccessRoles {
		user, password := c.Database.Roles.Lookup(role)
		if user == "" || password == "" {
			return fmt.Errorf("missing database credentials for role %q", role)
		}
	}
	return nil
}

// Lookup returns the login credentials for a database role.
func (rc RoleCredentialsConfig) Lookup(role entities.AccessRole) (user, password string) {
	switch role {
	case entities.AccessRoleEmployee:
		return rc.EmployeeUser, rc.EmployeePassword
	case entities.AccessRoleManager:
		return rc.ManagerUser, rc.ManagerPassword
	case entities.AccessRoleHR:
		return rc.HRUser, rc.HRPassword
	case entities.AccessRoleSudo:
		return rc.SudoUser, rc.SudoPassword
	}
	return "", ""
}

// GetDatabaseDSN returns the superuser bootstrap connection string.
func (c *Config) GetDatabaseDSN() string {
	return c.dsn(c.Database.User, c.Database.Password)
}

// GetRoleDSN returns the connection string for one of the four login roles.
func (c *Config) GetRoleDSN(role entities.AccessRole) (string, error) {
	user, password := c.Database.Roles.Lookup(role)
	if user == "" {
		return "", fmt.Errorf("unknown database role %q", role)
	}
	return c.dsn(user, password), nil
}

func (c *Config) dsn(user, password string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		user,
		password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
