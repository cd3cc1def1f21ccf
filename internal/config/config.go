package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port                          string `mapstructure:"PORT"`
	DatabasePath                  string `mapstructure:"DATABASE_PATH"`
	JWTSecret                     string `mapstructure:"JWT_SECRET"`
	GithubClientID                string `mapstructure:"GITHUB_CLIENT_ID"`
	GithubClientSecret            string `mapstructure:"GITHUB_CLIENT_SECRET"`
	GithubRedirectURL             string `mapstructure:"GITHUB_REDIRECT_URL"`
	FrontendURL                   string `mapstructure:"FRONTEND_URL"`
	DiscordBotToken               string `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func LoadConfig() *Config {
	viper.SetDefault("PORT", "4000")
	viper.SetDefault("DATABASE_PATH", "drivent.db")
	viper.SetDefault("GITHUB_REDIRECT_URL", "http://127.0.0.1:4000/auth/github/callback")
	viper.SetDefault("FRONTEND_URL", "http://127.0.0.1:3000")

	viper.BindEnv("JWT_SECRET")
	viper.BindEnv("GITHUB_CLIENT_ID")
	viper.BindEnv("GITHUB_CLIENT_SECRET")
	viper.BindEnv("GITHUB_REDIRECT_URL")
	viper.BindEnv("FRONTEND_URL")
	viper.BindEnv("DISCORD_BOT_TOKEN")
	viper.BindEnv("DISCORD_NOTIFICATIONS_CHANNEL_ID")

	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}

	return &config
}
