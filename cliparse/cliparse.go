package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DefaultConfigPath  = "elections.toml"
	DefaultEnvPath     = ".env"
	defaultLogMaxSize  = 5 // megabytes
	defaultLogBackups  = 3
	envPrefix          = "ELECTIONS_"
	flagSetName        = "elections"
	constituenciesFlag = "c"
	partiesFlag        = "p"
	resultsFlag        = "r"
	strictFlag         = "strict"
	debugFlag          = "debug"
	logFlag            = "log"
	configFlag         = "config"
)

type Config struct {
	ConfigPath string

	// Offered as the answer when the user presses enter at a file prompt
	ConstituenciesFile string
	PartiesFile        string
	ResultsFile        string

	Strict bool
	Debug  bool

	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
}

// fileConfig mirrors the layout of elections.toml
type fileConfig struct {
	Files struct {
		Constituencies string `toml:"constituencies"`
		Parties        string `toml:"parties"`
		Results        string `toml:"results"`
	} `toml:"files"`
	Decode struct {
		Strict bool `toml:"strict"`
	} `toml:"decode"`
	Log struct {
		File       string `toml:"file"`
		Debug      bool   `toml:"debug"`
		MaxSizeMB  int    `toml:"max_size_mb"`
		MaxBackups int    `toml:"max_backups"`
	} `toml:"log"`
}

// ParseFlags builds the configuration. Later sources override earlier ones:
// defaults, config file, environment (including .env), command line.
func ParseFlags(args []string) (Config, error) {
	var cli Config

	flags := flag.NewFlagSet(flagSetName, flag.ContinueOnError)

	flags.StringVar(&cli.ConfigPath, configFlag, "", "Config file (default elections.toml)")
	flags.StringVar(&cli.ConstituenciesFile, constituenciesFlag, "", "Default constituencies file")
	flags.StringVar(&cli.PartiesFile, partiesFlag, "", "Default parties file")
	flags.StringVar(&cli.ResultsFile, resultsFlag, "", "Default results file")
	flags.BoolVar(&cli.Strict, strictFlag, false, "Reject results files with incomplete blocks or unknown lists")
	flags.BoolVar(&cli.Debug, debugFlag, false, "Verbose logging")
	flags.StringVar(&cli.LogFile, logFlag, "", "Write logs to this file")

	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// .env only fills variables that are not already set
	if err := godotenv.Load(DefaultEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load %s: %w", DefaultEnvPath, err)
	}

	cfg := Config{
		ConfigPath:    DefaultConfigPath,
		LogMaxSizeMB:  defaultLogMaxSize,
		LogMaxBackups: defaultLogBackups,
	}

	// Config file
	explicit := false
	if p := getenv("CONFIG"); p != "" {
		cfg.ConfigPath, explicit = p, true
	}
	if set[configFlag] {
		cfg.ConfigPath, explicit = cli.ConfigPath, true
	}
	if err := cfg.loadFile(explicit); err != nil {
		return Config{}, err
	}

	// Environment
	if err := cfg.loadEnv(); err != nil {
		return Config{}, err
	}

	// Command line
	if set[constituenciesFlag] {
		cfg.ConstituenciesFile = cli.ConstituenciesFile
	}
	if set[partiesFlag] {
		cfg.PartiesFile = cli.PartiesFile
	}
	if set[resultsFlag] {
		cfg.ResultsFile = cli.ResultsFile
	}
	if set[strictFlag] {
		cfg.Strict = cli.Strict
	}
	if set[debugFlag] {
		cfg.Debug = cli.Debug
	}
	if set[logFlag] {
		cfg.LogFile = cli.LogFile
	}

	return cfg, nil
}

// loadFile applies the TOML config file. A missing file is only an error
// when its path was given explicitly.
func (c *Config) loadFile(explicit bool) error {
	var fc fileConfig

	md, err := toml.DecodeFile(c.ConfigPath, &fc)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", c.ConfigPath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unknown keys in config file", "path", c.ConfigPath, "keys", undecoded)
	}

	if fc.Files.Constituencies != "" {
		c.ConstituenciesFile = fc.Files.Constituencies
	}
	if fc.Files.Parties != "" {
		c.PartiesFile = fc.Files.Parties
	}
	if fc.Files.Results != "" {
		c.ResultsFile = fc.Files.Results
	}
	c.Strict = fc.Decode.Strict
	c.Debug = fc.Log.Debug
	if fc.Log.File != "" {
		c.LogFile = fc.Log.File
	}
	if fc.Log.MaxSizeMB > 0 {
		c.LogMaxSizeMB = fc.Log.MaxSizeMB
	}
	if fc.Log.MaxBackups > 0 {
		c.LogMaxBackups = fc.Log.MaxBackups
	}

	return nil
}

func (c *Config) loadEnv() error {
	if v := getenv("CONSTITUENCIES"); v != "" {
		c.ConstituenciesFile = v
	}
	if v := getenv("PARTIES"); v != "" {
		c.PartiesFile = v
	}
	if v := getenv("RESULTS"); v != "" {
		c.ResultsFile = v
	}
	if v := getenv("LOG_FILE"); v != "" {
		c.LogFile = v
	}

	for name, dst := range map[string]*bool{"STRICT": &c.Strict, "DEBUG": &c.Debug} {
		v := getenv(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s env variable: %q", envPrefix, name, v)
		}
		*dst = b
	}

	return nil
}

func getenv(name string) string {
	return strings.TrimSpace(os.Getenv(envPrefix + name))
}
