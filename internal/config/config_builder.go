package config

import (
	"errors"
	"fmt"
	"strings"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs     []*ServiceConfig
	serviceName string
	resolver    *Resolver
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:  make([]*ServiceConfig, 0, 4),
		resolver: NewResolver(),
	}
}

func (b *configBuilder) build() (*ServiceConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(ServiceConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.normalize()
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// withDefaults resolves the default tree against the environment and adds
// the result as the lowest-priority source.
func (b *configBuilder) withDefaults(defaults Tree) *configBuilder {
	b.serviceName = stringValue(defaults[keyName])

	resolved := b.resolver.Resolve(defaults, b.serviceName)
	cfg, err := fromTree(resolved)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, cfg)
	return b
}

// withEnv adds the prefixed environment overrides. Without a service name
// there is no prefix to look under, and validation reports the missing name.
func (b *configBuilder) withEnv() *configBuilder {
	if strings.TrimSpace(b.serviceName) == "" {
		return b
	}

	overrides := &envOverrides{}
	if err := parseEnv(overrides, b.serviceName, b.resolver.environment); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, &ServiceConfig{JSONFilePath: overrides.JSONFilePath})
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := ParseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	isJSONSpecified := false

	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			isJSONSpecified = true
			jsonPath = cfg.JSONFilePath
		}
	}

	if isJSONSpecified {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

func (cfg *ServiceConfig) normalize() {
	cfg.Name = strings.TrimSpace(cfg.Name)
	cfg.AuthEndpoint = strings.TrimRight(strings.TrimSpace(cfg.AuthEndpoint), "/")
}
