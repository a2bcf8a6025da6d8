package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads config.toml and hands the flattened settings to New.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath("$HOME/.config/subtone/")
	viper.AddConfigPath(".")

	viper.SetDefault("client.name", DefaultAppName)
	viper.SetDefault("client.version", DefaultAppVersion)
	viper.SetDefault("client.protocol_version", DefaultProtocolVersion)
	viper.SetDefault("search.max_results", DefaultMaxSearchResults)
	viper.SetDefault("random.song_count", DefaultRandomSongCount)
	viper.SetDefault("player.http_timeout", DefaultHTTPTimeout)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return New(map[string]string{
		"server":             viper.GetString("server.url"),
		"username":           viper.GetString("server.username"),
		"password":           viper.GetString("server.password"),
		"app_name":           viper.GetString("client.name"),
		"app_version":        viper.GetString("client.version"),
		"protocol_version":   viper.GetString("client.protocol_version"),
		"max_search_results": viper.GetString("search.max_results"),
		"random_song_count":  viper.GetString("random.song_count"),
		"http_timeout":       viper.GetString("player.http_timeout"),
	})
}
