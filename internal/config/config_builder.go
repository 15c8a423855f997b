package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration fragments in precedence order and
// merges them on build. mergo keeps the first non-zero value, so fragments
// added earlier shadow the ones added later.
type configBuilder struct {
	fragments []*StructuredConfig
	errs      []error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) withEnv() *configBuilder {
	fragment := new(StructuredConfig)
	if err := parseEnv(fragment); err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.add(fragment)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.add(ParseFlags())
}

// withJSON loads the optional JSON file. The path comes from the stronger
// sources already collected, so this must run after withEnv and withFlags.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	fragment, err := parseJSON(path)
	if err != nil {
		b.errs = append(b.errs, err)
		return b
	}
	return b.add(fragment)
}

func (b *configBuilder) add(fragment *StructuredConfig) *configBuilder {
	b.fragments = append(b.fragments, fragment)
	return b
}

// jsonPath returns the config file path set by the highest-precedence
// fragment, or "" when no source named one.
func (b *configBuilder) jsonPath() string {
	for _, fragment := range b.fragments {
		if fragment.JSONFilePath != "" {
			return fragment.JSONFilePath
		}
	}
	return ""
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if err := errors.Join(b.errs...); err != nil {
		return nil, fmt.Errorf("error collecting configs: %w", err)
	}

	merged := new(StructuredConfig)
	for _, fragment := range b.fragments {
		if err := mergo.Merge(merged, fragment); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return merged, merged.validate()
}
