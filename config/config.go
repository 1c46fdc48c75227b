package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/uphy/productfeed/template"
	"gopkg.in/yaml.v2"
)

const (
	StoreSanity = "sanity"
	StoreBadger = "badger"
	StoreMemory = "memory"
)

type (
	Config struct {
		Server       ServerConfig       `yaml:"server"`
		ContentStore ContentStoreConfig `yaml:"contentStore"`
		Feed         FeedConfig         `yaml:"feed"`
	}
	ServerConfig struct {
		Endpoint string `yaml:"endpoint"`
	}
	ContentStoreConfig struct {
		Type   string       `yaml:"type"`
		Sanity SanityConfig `yaml:"sanity"`
		Badger BadgerConfig `yaml:"badger"`
		Memory MemoryConfig `yaml:"memory"`
	}
	SanityConfig struct {
		ProjectID  template.TemplateField `yaml:"projectId"`
		Dataset    template.TemplateField `yaml:"dataset"`
		APIVersion template.TemplateField `yaml:"apiVersion"`
		Token      template.TemplateField `yaml:"token"`
		UseCDN     bool                   `yaml:"useCdn"`
		BaseURL    template.TemplateField `yaml:"baseUrl"`
	}
	BadgerConfig struct {
		Dir string `yaml:"dir"`
	}
	MemoryConfig struct {
		// Seed is a JSON file of product records loaded at startup.
		Seed string `yaml:"seed"`
	}
	FeedConfig struct {
		Currency    string `yaml:"currency"`
		ImageType   string `yaml:"imageType"`
		Pretty      *bool  `yaml:"pretty"`
		Title       string `yaml:"title"`
		Link        string `yaml:"link"`
		Description string `yaml:"description"`
	}
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// ParseConfig reads the YAML config file. A missing file yields the defaults.
func ParseConfig(file string) (*Config, error) {
	f, err := os.Open(file)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	var c Config
	if err := yaml.NewDecoder(f).Decode(&c); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "failed to decode config: file=%s", file)
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Endpoint == "" {
		c.Server.Endpoint = "/products.xml"
	}
	if c.ContentStore.Type == "" {
		c.ContentStore.Type = StoreSanity
	}
	if c.ContentStore.Badger.Dir == "" {
		c.ContentStore.Badger.Dir = "data"
	}
	if c.Feed.Currency == "" {
		c.Feed.Currency = "NOK"
	}
	if c.Feed.ImageType == "" {
		c.Feed.ImageType = "main"
	}
	if c.Feed.Pretty == nil {
		pretty := true
		c.Feed.Pretty = &pretty
	}
	if c.Feed.Title == "" {
		c.Feed.Title = "Products"
	}
}

func (c *Config) validate() error {
	switch c.ContentStore.Type {
	case StoreSanity, StoreBadger, StoreMemory:
	default:
		return errors.Errorf("unknown content store type: %s", c.ContentStore.Type)
	}
	if c.Server.Endpoint[0] != '/' {
		return errors.Errorf("'server.endpoint' must start with '/': %s", c.Server.Endpoint)
	}
	return nil
}
