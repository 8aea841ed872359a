package config

import (
	"log"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel        string  `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	Address         string  `yaml:"address" env:"ANALYSIS_ADDRESS" env-default:":8081"`
	MaxTextBytes    int     `yaml:"max_text_bytes" env:"MAX_TEXT_BYTES" env-default:"10485760"`
	UpperPercentile float64 `yaml:"upper_percentile" env:"UPPER_PERCENTILE" env-default:"80"`
	LowerPercentile float64 `yaml:"lower_percentile" env:"LOWER_PERCENTILE" env-default:"20"`
}

func MustLoad(configPath string) Config {
	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}
	return cfg
}
