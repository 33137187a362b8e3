package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env    string `yaml:"env" env:"ENV" env-default:"local"`
	OpenAI struct {
		ApiKey  string `yaml:"api_key" env:"OPENAI_API_KEY" env-default:""`
		BaseURL string `yaml:"base_url" env:"OPENAI_BASE_URL" env-default:""`
		Model   string `yaml:"model" env-default:"gpt-4-1106-preview"`
	} `yaml:"openai"`
	Zendesk struct {
		Username string `yaml:"username" env:"ZENDESK_USERNAME" env-default:""`
		Password string `yaml:"password" env:"ZENDESK_PASSWORD" env-default:""`
		Company  string `yaml:"company" env:"ZENDESK_COMPANY" env-default:""`
		BaseURL  string `yaml:"base_url" env-default:""`
	} `yaml:"zendesk"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env-default:"false"`
		Host     string `yaml:"host" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env-default:"27017"`
		User     string `yaml:"user" env-default:"admin"`
		Password string `yaml:"password" env-default:"pass"`
		Database string `yaml:"database" env-default:"assisthub"`
	} `yaml:"mongo"`
	Listen struct {
		BindIP string `yaml:"bind_ip" env-default:"127.0.0.1"`
		Port   string `yaml:"port" env-default:"9100"`
		ApiKey string `yaml:"key" env:"API_KEY" env-default:""`
	} `yaml:"listen"`
}

var instance *Config
var once sync.Once

func MustLoad(path string) *Config {
	var err error
	once.Do(func() {
		instance, err = Load(path)
		if err != nil {
			log.Fatal(err)
		}
	})
	return instance
}

// Load reads the config file without touching the process-wide instance.
func Load(path string) (*Config, error) {
	conf := &Config{}
	if err := cleanenv.ReadConfig(path, conf); err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("%s; %s", err, desc)
	}
	return conf, nil
}
