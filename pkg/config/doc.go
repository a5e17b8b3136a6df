// Package config loads typed configuration from environment variables.
//
// Each component declares its own struct with `env` tags (parsed by
// github.com/caarlos0/env/v11) and loads it with Load. Parsed values are
// cached per type for the life of the process.
//
// Before the first parse the package reads dotenv files with
// github.com/joho/godotenv: `.env.<APP_ENVIRONMENT>` first, then `.env`.
// Real environment variables always win, then the environment-specific file,
// then the base file.
//
//	var httpCfg httpserver.Config
//	config.MustLoad(&httpCfg)
//
// Use Reset in tests that need to re-read the environment.
package config
