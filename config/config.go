// Package config loads and validates normalization policies via Viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/JakeFAU/request-normalizer/urlnorm"
)

// fileConfig mirrors the on-disk policy layout.
type fileConfig struct {
	Charset           string   `mapstructure:"charset"`
	DefaultScheme     string   `mapstructure:"default_scheme"`
	IgnoredParameters []string `mapstructure:"ignored_parameters"`
	RedactIgnored     bool     `mapstructure:"redact_ignored"`
	SortParameters    bool     `mapstructure:"sort_parameters"`
}

// Load builds a Policy from disk and environment. Environment variables use
// the NORMALIZER_ prefix (NORMALIZER_DEFAULT_SCHEME, ...) and override file
// values; an empty path loads pure defaults.
func Load(path string) (urlnorm.Policy, error) {
	v := viper.New()
	v.SetEnvPrefix("NORMALIZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return urlnorm.Policy{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return urlnorm.Policy{}, fmt.Errorf("unmarshal config: %w", err)
	}

	policy := urlnorm.Policy{
		Charset:           cfg.Charset,
		DefaultScheme:     cfg.DefaultScheme,
		IgnoredParameters: cfg.IgnoredParameters,
		RedactIgnored:     cfg.RedactIgnored,
		SortParameters:    cfg.SortParameters,
	}
	if err := Validate(policy); err != nil {
		return urlnorm.Policy{}, err
	}
	return policy, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("charset", urlnorm.DefaultCharset)
	v.SetDefault("default_scheme", urlnorm.DefaultScheme)
	v.SetDefault("ignored_parameters", []string{})
	v.SetDefault("redact_ignored", false)
	v.SetDefault("sort_parameters", true)
}

// Validate rejects policies that would misbehave at normalization time.
func Validate(p urlnorm.Policy) error {
	if !urlnorm.ValidCharset(p.Charset) {
		return fmt.Errorf("unknown charset %q", p.Charset)
	}
	if p.DefaultScheme == "" {
		return fmt.Errorf("default_scheme must not be empty")
	}
	if p.DefaultScheme != strings.ToLower(p.DefaultScheme) || strings.ContainsAny(p.DefaultScheme, ":/? #") {
		return fmt.Errorf("default_scheme %q is not a valid scheme token", p.DefaultScheme)
	}
	return nil
}
