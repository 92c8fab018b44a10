package config

import "os"

type ServerConfig struct {
	Addr     string
	LogLevel string
	MockMode bool
}

func GetServerConfig() *ServerConfig {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	return &ServerConfig{
		Addr:     ":" + port,
		LogLevel: level,
		MockMode: os.Getenv("MOCK_MODE") == "true",
	}
}
