package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/bookreview-service/pkg/auth"
	"github.com/Astemirdum/bookreview-service/pkg/logger"
	"github.com/Astemirdum/bookreview-service/pkg/postgres"
	"github.com/kelseyhightower/envconfig"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ_TIMEOUT" default:"10s"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE_TIMEOUT"`
}

type Pagination struct {
	PageSize    int `envconfig:"PAGINATION_PAGE_SIZE"`
	MaxPageSize int `envconfig:"PAGINATION_MAX_PAGE_SIZE" default:"100"`
}

type Config struct {
	Server     HTTPServer  `yaml:"server"`
	Database   postgres.DB `yaml:"db"`
	JWT        auth.Config `json:"-"`
	Pagination Pagination  `yaml:"pagination"`
	Log        logger.Log  `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
// Options set defaults; environment values win.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		config, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func Load(ops ...Option) (*Config, error) {
	var config Config
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func printConfig(cfg *Config) {
	masked := *cfg
	masked.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(masked, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
