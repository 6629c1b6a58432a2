package main

import (
	"fmt"

	"github.com/jinzhu/configor"
)

type AppConfig struct {
	Provider    ProviderConfig
	Notify      NotifyConfig
	Concurrency int `default:"1"`
	Exclude     []string
}

type ProviderConfig struct {
	Name            string `default:"aws"`
	Region          string
	Profile         string
	CredentialsFile string
}

type NotifyConfig struct {
	Topic   string
	Region  string
	Profile string
}

// LoadAppConfig reads an optional configor YAML file on top of struct tag
// defaults and environment variables. An empty path means defaults only.
func LoadAppConfig(configFilePath string) (AppConfig, error) {
	var appConfig AppConfig

	files := make([]string, 0)
	if configFilePath != "" {
		files = append(files, configFilePath)
	}
	loadErr := configor.Load(&appConfig, files...)

	return appConfig, loadErr
}

func (c AppConfig) ClientFromConfig() (BucketClient, error) {
	switch c.Provider.Name {
	case "aws":
		return NewS3BucketClient(c)
	case "gcs":
		return NewGCSBucketClient(c)
	default:
		return nil, fmt.Errorf("Unknown cloud provider: %s", c.Provider.Name)
	}
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider.Name))
	if c.Provider.Region != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Region: %s", c.Provider.Region))
	}
	if c.Provider.Profile != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Profile: %s", c.Provider.Profile))
	}
	configStrArr = append(configStrArr, fmt.Sprintf("  - Concurrent Transfers: %d", c.Concurrency))

	if c.Notify.Topic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.Notify.Topic))
	}

	return configStrArr
}
