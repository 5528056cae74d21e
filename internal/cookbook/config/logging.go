package config

// LoggingConfig представляет конфигурацию логирования.
type LoggingConfig struct {
	Level string `yaml:"level" env:"COOKBOOK_LOGGER_LEVEL" env-default:"info"`
	Mode  string `yaml:"mode" env:"COOKBOOK_LOGGER_MODE" env-default:"production"`
}
