package config

import "time"

// MongoConfig представляет конфигурацию подключения к MongoDB.
type MongoConfig struct {
	URI            string        `yaml:"uri" env:"COOKBOOK_MONGO_URI" env-default:"mongodb://localhost:27017/"`
	Database       string        `yaml:"database" env:"COOKBOOK_MONGO_DATABASE" env-default:"cooking"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"COOKBOOK_MONGO_CONNECT_TIMEOUT" env-default:"10s"`
}
