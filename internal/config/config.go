package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`

	Database Database `envPrefix:"DB_"`
	Admin    Admin    `envPrefix:"ADMIN_"`
	Upload   Upload   `envPrefix:"UPLOAD_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Database struct {
	Path string `env:"PATH" envDefault:"equistore.db"`
}

type Admin struct {
	// Password falls back to a built-in default when unset, see service.NewAdminService.
	Password  string        `env:"PASSWORD"`
	JWTSecret string        `env:"JWT_SECRET" envDefault:"dev-secret-change-me"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"12h"`
}

type Upload struct {
	Dir string `env:"DIR" envDefault:"uploads"`
}
