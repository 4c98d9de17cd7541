package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v6"
)

type Config struct {
	Database  *Database
	HTTP      *HTTP
	Gateway   *Gateway
	Directory *Directory
	Redis     *Redis
	App       *App
}

const AppModeProduction = "PROD"
const AppModeDevelop = "DEV"

type App struct {
	LogLevel string `env:"LOG_LEVEL"`
	Mode     string
}

type Database struct {
	DSN string `env:"DATABASE_URI"`
}

type HTTP struct {
	HostString string `env:"RUN_ADDRESS"`
}

type Gateway struct {
	HostString  string `env:"GATEWAY_ADDRESS"`
	PartnerCode string `env:"GATEWAY_PARTNER_CODE"`
	SecretKey   string `env:"GATEWAY_SECRET_KEY"`
	ReturnURL   string `env:"GATEWAY_RETURN_URL"`
}

type Directory struct {
	HostString string `env:"DIRECTORY_ADDRESS"`
}

type Redis struct {
	Addr string `env:"REDIS_ADDRESS"`
}

func NewConfig() (*Config, error) {
	var db Database
	var http HTTP
	var gateway Gateway
	var directory Directory
	var redis Redis
	var app App

	flag.StringVar(&db.DSN, "d", "", "Database string")
	flag.StringVar(&http.HostString, "a", `localhost:8080`, "HTTP server endpoint")
	flag.StringVar(&gateway.HostString, "g", "", "Payment gateway address")
	flag.StringVar(&gateway.PartnerCode, "p", "", "Payment gateway partner code")
	flag.StringVar(&gateway.SecretKey, "s", "", "Payment gateway secret key")
	flag.StringVar(&gateway.ReturnURL, "u", "", "Payment gateway browser return URL")
	flag.StringVar(&directory.HostString, "c", "", "Catalog/directory service address")
	flag.StringVar(&redis.Addr, "r", `localhost:6379`, "Redis address")
	flag.StringVar(&app.LogLevel, "l", `error`, "Log level")
	flag.StringVar(&app.Mode, "m", `DEV`, "PROD / DEV")
	flag.Parse()

	err := env.Parse(&db)
	if err != nil {
		return nil, fmt.Errorf("error parsing env database config: %w", err)
	}
	err = env.Parse(&http)
	if err != nil {
		return nil, fmt.Errorf("error parsing http config: %w", err)
	}
	err = env.Parse(&gateway)
	if err != nil {
		return nil, fmt.Errorf("error parsing gateway config: %w", err)
	}
	err = env.Parse(&directory)
	if err != nil {
		return nil, fmt.Errorf("error parsing directory config: %w", err)
	}
	err = env.Parse(&redis)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis config: %w", err)
	}
	err = env.Parse(&app)
	if err != nil {
		return nil, fmt.Errorf("error parsing app config: %w", err)
	}

	config := Config{
		Database:  &db,
		HTTP:      &http,
		Gateway:   &gateway,
		Directory: &directory,
		Redis:     &redis,
		App:       &app,
	}

	return &config, nil
}
