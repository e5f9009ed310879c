package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	ansihtml "github.com/danielgatis/go-ansihtml"
	"github.com/danielgatis/go-ansihtml/internal/highlight"
)

const (
	configName = "config"
	envPrefix  = "ANSIFILTER"
)

// Options is the merged configuration of flags, environment and config file.
type Options struct {
	Output string `mapstructure:"output"`
	OutDir string `mapstructure:"outdir"`

	Title       string `mapstructure:"title"`
	Font        string `mapstructure:"font"`
	FontSize    string `mapstructure:"font_size"`
	StyleRef    string `mapstructure:"style_ref"`
	Encoding    string `mapstructure:"encoding"`
	LineNumbers bool   `mapstructure:"line_numbers"`
	Anchors     bool   `mapstructure:"anchors"`
	GutterColor string `mapstructure:"gutter_color"`
	ArtCP437    bool   `mapstructure:"art_cp437"`
	Fragment    bool   `mapstructure:"fragment"`
	Wrap        int    `mapstructure:"wrap"`

	Syntax      string `mapstructure:"syntax"`
	SyntaxStyle string `mapstructure:"syntax_style"`

	Watch    bool   `mapstructure:"watch"`
	LogLevel string `mapstructure:"log_level"`
}

// configDir returns the directory searched for config.yaml.
func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "ansifilter")
}

// loadConfig reads the config file (if any) and environment into v and
// unmarshals the result. Flags must already be bound to v.
func loadConfig(v *viper.Viper, cfgFile string) (*Options, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
		// No config file; defaults, env and flags apply.
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &opts, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("font", ansihtml.DEFAULT_FONT)
	v.SetDefault("font_size", ansihtml.DEFAULT_FONT_SIZE)
	v.SetDefault("gutter_color", ansihtml.DEFAULT_GUTTER_COLOR)
	v.SetDefault("syntax_style", highlight.DefaultStyle)
	v.SetDefault("log_level", "warn")
}

func (o *Options) validate() error {
	if o.Output != "" && o.OutDir != "" {
		return errors.New("--output and --outdir are mutually exclusive")
	}
	if o.Wrap < 0 {
		return fmt.Errorf("--wrap must not be negative, got %d", o.Wrap)
	}
	if o.Encoding != "" {
		if _, err := ansihtml.CanonicalCharset(o.Encoding); err != nil {
			return fmt.Errorf("invalid --encoding: %w", err)
		}
	}
	if o.Syntax != "" && o.ArtCP437 {
		return errors.New("--syntax cannot be combined with --art-cp437")
	}
	return nil
}

// generatorOptions returns the generator configuration for one document.
// title is used when no title was configured.
func (o *Options) generatorOptions(title string) []ansihtml.Option {
	if o.Title != "" {
		title = o.Title
	}

	opts := []ansihtml.Option{
		ansihtml.WithTitle(title),
		ansihtml.WithFont(o.Font),
		ansihtml.WithFontSize(o.FontSize),
		ansihtml.WithStyleSheet(o.StyleRef),
		ansihtml.WithEncoding(o.Encoding),
		ansihtml.WithGutterColor(o.GutterColor),
		ansihtml.WithWrap(o.Wrap),
	}
	if o.LineNumbers {
		opts = append(opts, ansihtml.WithLineNumbers())
	}
	if o.Anchors {
		opts = append(opts, ansihtml.WithAnchors())
	}
	if o.ArtCP437 {
		opts = append(opts, ansihtml.WithLegacyCodePage())
	}
	if o.Fragment {
		opts = append(opts, ansihtml.WithFragment())
	}
	return opts
}
