package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Session SessionConfig
	Pages   PageConfig
}

type ServerConfig struct {
	Addr string
	Env  string
}

type APIConfig struct {
	BaseURL string
}

type SessionConfig struct {
	HashKey      string
	BlockKey     string
	CookieName   string
	CookieSecure bool
}

type PageConfig struct {
	ProductPageSize  int
	CategoryPageSize int
}

// Load reads configuration from the environment with an optional .env file.
func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_ADDR", ":8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("API_BASE_URL", "https://api.bitechx.com")
	viper.SetDefault("SESSION_COOKIE_NAME", "catalog_session")
	viper.SetDefault("SESSION_COOKIE_SECURE", false)
	viper.SetDefault("PRODUCT_PAGE_SIZE", 10)
	viper.SetDefault("CATEGORY_PAGE_SIZE", 10)

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Addr: viper.GetString("SERVER_ADDR"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		API: APIConfig{
			BaseURL: viper.GetString("API_BASE_URL"),
		},
		Session: SessionConfig{
			HashKey:      viper.GetString("SESSION_HASH_KEY"),
			BlockKey:     viper.GetString("SESSION_BLOCK_KEY"),
			CookieName:   viper.GetString("SESSION_COOKIE_NAME"),
			CookieSecure: viper.GetBool("SESSION_COOKIE_SECURE"),
		},
		Pages: PageConfig{
			ProductPageSize:  viper.GetInt("PRODUCT_PAGE_SIZE"),
			CategoryPageSize: viper.GetInt("CATEGORY_PAGE_SIZE"),
		},
	}
}
