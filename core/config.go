package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Renderers
const (
	RendererText = "text"
	RendererHTML = "html"
	RendererJSON = "json"
)

type Config struct {
	AppName      string
	Env          string // DEV (local; default), TEST, QA, PROD
	Build        string
	Debug        bool
	TestMode     bool
	RollbarToken string

	Input struct {
		Terminal bool // use line editing when stdin is a terminal
	}

	Scores struct {
		DefaultCount    int
		DefaultSubjects []string
	}

	Report struct {
		Renderer string
	}
}

// NewConfig loads the configuration from defaults, config/.env.<env> (if present) and the environment.
// Environment keys are prefixed with the env name, e.g. DEV_SCORES_DEFAULTCOUNT=10.
func NewConfig() (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("appName", "Scoretable")
	v.SetDefault("debug", false)
	v.SetDefault("build", "dev")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("input.terminal", true)
	v.SetDefault("scores.defaultCount", 5)
	v.SetDefault("scores.defaultSubjects", "Korean,Math,Science")
	v.SetDefault("report.renderer", RendererText)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "config.Getwd")
	}
	dotEnvPath := filepath.Join(wd, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.Input.Terminal = v.GetBool("input.terminal")
	conf.Scores.DefaultCount = v.GetInt("scores.defaultCount")
	conf.Scores.DefaultSubjects = SplitList(v.GetString("scores.defaultSubjects"), ",")
	conf.Report.Renderer = strings.ToLower(CleanString(v.GetString("report.renderer")))

	if err := conf.validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

func (c *Config) validate() error {
	if c.Scores.DefaultCount <= 0 {
		return errors.Errorf("config: scores.defaultCount must be positive (got %d)", c.Scores.DefaultCount)
	}
	if len(c.Scores.DefaultSubjects) == 0 {
		return errors.New("config: scores.defaultSubjects cannot be empty")
	}
	switch c.Report.Renderer {
	case RendererText, RendererHTML, RendererJSON:
	default:
		return errors.Errorf("config: unknown report.renderer %q", c.Report.Renderer)
	}
	return nil
}
