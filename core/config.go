package core

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/hashime/crypto"
	"github.com/signatory-io/hashime/logger"
	"github.com/signatory-io/hashime/randomart"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	DefaultConfigFile = "config.yaml"
	DefaultHash       = "sha256"
	DefaultDigestForm = "base64"
)

var (
	DigestForms = []string{"base64", "hex"}
	Formats     = []string{"text", "yaml", "json", "cbor"}
	ColorModes  = []string{"auto", "always", "never"}
)

type Config struct {
	Algorithm    string       `yaml:"algorithm"`
	HashFunction string       `yaml:"hash_function"`
	Width        int          `yaml:"width"`
	Height       int          `yaml:"height"`
	Palette      string       `yaml:"palette"`
	Sprites      []string     `yaml:"sprites,omitempty"`
	Frame        string       `yaml:"frame"`
	NoFrame      bool         `yaml:"no_frame"`
	Digest       string       `yaml:"digest,omitempty"` // base64, hex or empty for none
	Format       string       `yaml:"format"`
	Color        string       `yaml:"color"`
	LogLevel     logger.Level `yaml:"log_level"`
}

func (c *Config) Default() {
	*c = Config{
		Algorithm:    randomart.DrunkenBishopName,
		HashFunction: DefaultHash,
		Width:        randomart.DefaultWidth,
		Height:       randomart.DefaultHeight,
		Palette:      randomart.DefaultPalette,
		Frame:        randomart.DefaultFrameSpec,
		Format:       "text",
		Color:        "auto",
		LogLevel:     logger.LevelWarn,
	}
}

func (c *Config) Options() *randomart.Options {
	return &randomart.Options{
		Width:   c.Width,
		Height:  c.Height,
		Palette: c.Palette,
		Sprites: c.Sprites,
	}
}

func (c *Config) Validate() error {
	if !slices.Contains(randomart.Names(), c.Algorithm) {
		return fmt.Errorf("unknown algorithm %s", c.Algorithm)
	}
	if crypto.HashFromString(c.HashFunction) == nil {
		return fmt.Errorf("unknown hash function %s", c.HashFunction)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: grid size must be positive: %dx%d", randomart.ErrInvalidConfiguration, c.Width, c.Height)
	}
	if !c.NoFrame {
		if _, err := randomart.ParseFrame(c.Frame); err != nil {
			return err
		}
	}
	if c.Digest != "" && !slices.Contains(DigestForms, c.Digest) {
		return fmt.Errorf("unknown digest form %s", c.Digest)
	}
	if !slices.Contains(Formats, c.Format) {
		return fmt.Errorf("unknown output format %s", c.Format)
	}
	if !slices.Contains(ColorModes, c.Color) {
		return fmt.Errorf("unknown color mode %s", c.Color)
	}
	// palette and sprites are checked by the algorithm itself
	_, err := randomart.New(c.Algorithm, c.Options())
	return err
}

func LoadConfig[T any](conf T, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, conf)
}

func (c *Config) RegisterFlags(f *pflag.FlagSet, cmd *cobra.Command) {
	f.StringP("base-dir", "b", "", "Base directory (default ~/"+DefaultBaseDir+")")
	f.StringP("config-file", "c", DefaultConfigFile, "Configuration file path (absolute or relative to the base directory)")
	f.StringP("algorithm", "a", c.Algorithm, "Visualization algorithm")
	f.StringP("hash-function", "H", c.HashFunction, "Hashing function")
	f.IntP("width", "W", c.Width, "Art width")
	f.IntP("height", "X", c.Height, "Art height")
	f.StringP("palette", "p", c.Palette, "Drunken bishop symbols, the last two mark the start and the end of the walk")
	f.StringSlice("sprites", c.Sprites, "Fish tank sprites (two, or one to pair with its mirror image)")
	f.String("frame", c.Frame, "Comma-separated frame characters in order of (top_line, right_line, bottom_line, left_line, top_left_corner, top_right_corner, bottom_right_corner, bottom_left_corner, left_bracket, right_bracket)")
	f.Bool("no-frame", c.NoFrame, "Output visualization without a frame")
	f.StringP("digest", "d", c.Digest, "Show digest: [base64, hex]")
	f.Lookup("digest").NoOptDefVal = DefaultDigestForm
	f.StringP("format", "f", c.Format, "Output format: [text, yaml, json, cbor]")
	f.String("color", c.Color, "Colorize the art: [auto, always, never]")
	f.TextVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "Log level: [error, warn, info, debug]")

	cmd.MarkFlagFilename("config-file")
	cmd.MarkFlagDirname("base-dir")
	cmd.MarkFlagsMutuallyExclusive("frame", "no-frame")
}

// FromCmdline applies the configuration file, if any, and then the flags
// explicitly set on the command line.
func (c *Config) FromCmdline(loadFromFile bool, f *pflag.FlagSet) error {
	baseDir, err := f.GetString("base-dir")
	if err != nil {
		panic(err)
	}
	if loadFromFile {
		confPath, err := f.GetString("config-file")
		if err != nil {
			panic(err)
		}
		confPath = GetPath(confPath, GetBaseDir(baseDir))
		if err := LoadConfig(c, confPath); err != nil {
			// a missing default configuration file is fine
			if !errors.Is(err, os.ErrNotExist) || f.Changed("config-file") {
				return fmt.Errorf("%s: %w", confPath, err)
			}
		}
	}

	stringFlags := map[string]*string{
		"algorithm":     &c.Algorithm,
		"hash-function": &c.HashFunction,
		"palette":       &c.Palette,
		"frame":         &c.Frame,
		"digest":        &c.Digest,
		"format":        &c.Format,
		"color":         &c.Color,
	}
	for name, dst := range stringFlags {
		if f.Changed(name) {
			if *dst, err = f.GetString(name); err != nil {
				panic(err)
			}
		}
	}
	intFlags := map[string]*int{
		"width":  &c.Width,
		"height": &c.Height,
	}
	for name, dst := range intFlags {
		if f.Changed(name) {
			if *dst, err = f.GetInt(name); err != nil {
				panic(err)
			}
		}
	}
	if f.Changed("sprites") {
		if c.Sprites, err = f.GetStringSlice("sprites"); err != nil {
			panic(err)
		}
	}
	if f.Changed("no-frame") {
		if c.NoFrame, err = f.GetBool("no-frame"); err != nil {
			panic(err)
		}
	}
	if f.Changed("frame") {
		c.NoFrame = false
	}
	if f.Changed("log-level") {
		var level logger.Level
		if err := f.GetText("log-level", &level); err != nil {
			return err
		}
		c.LogLevel = level
	}
	return nil
}
