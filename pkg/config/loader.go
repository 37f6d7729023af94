package config

import (
	_ "embed"
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/sshaaf/scribe/pkg/errors"
	"github.com/sshaaf/scribe/pkg/logging"
)

// EnvPrefix marks environment variables that configure scribe
const EnvPrefix = "SCRIBE_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// Options locates the optional configuration sources
type Options struct {
	// ConfigFile is an explicit config file; it must exist. When empty the
	// XDG config directories are searched for scribe/config.{toml,yaml,yml}.
	ConfigFile string
	// DotEnvFile is read if it exists; defaults to ".env"
	DotEnvFile string
	// SkipUserFiles ignores the XDG search and the .env file
	SkipUserFiles bool
}

// Load builds the effective configuration
func Load(opts Options) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config file
	path, err := userConfigPath(opts)
	if err != nil {
		return nil, err
	}
	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	}

	// 3. .env file
	if !opts.SkipUserFiles {
		dotenv := opts.DotEnvFile
		if dotenv == "" {
			dotenv = ".env"
		}
		values, err := readDotEnv(dotenv)
		if err != nil {
			return nil, err
		}
		if len(values) > 0 {
			if err := k.Load(confmap.Provider(values, "."), nil); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load %s", dotenv)
			}
			logger.Debug().Str("path", dotenv).Int("keys", len(values)).Msg("Loaded .env file")
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment variables")
	}

	return unmarshal(k)
}

// Default returns the embedded defaults alone
func Default() (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}
	return unmarshal(k)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func userConfigPath(opts Options) (string, error) {
	if opts.ConfigFile != "" {
		if _, err := os.Stat(opts.ConfigFile); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not readable", opts.ConfigFile).
				WithDetail("path", opts.ConfigFile)
		}
		return opts.ConfigFile, nil
	}
	if opts.SkipUserFiles {
		return "", nil
	}
	for _, name := range []string{"scribe/config.toml", "scribe/config.yaml", "scribe/config.yml"} {
		if path, err := xdg.SearchConfigFile(name); err == nil {
			return path, nil
		}
	}
	return "", nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigParse, "unsupported config file type %q, use .toml or .yaml", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// readDotEnv returns the SCRIBE_ entries of a .env file as config keys. A
// missing file yields no entries.
func readDotEnv(path string) (map[string]interface{}, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}

	values, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s", path)
	}

	out := make(map[string]interface{})
	for name, value := range values {
		if strings.HasPrefix(name, EnvPrefix) {
			out[envKey(name)] = value
		}
	}
	return out, nil
}

// envKey maps SCRIBE_SECTION_SOME_KEY to section.some_key
func envKey(name string) string {
	key := strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
