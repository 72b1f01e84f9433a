package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System SysConfig `yaml:"system"`
	Web    WebConfig `yaml:"web"`
	Logger LogConfig `yaml:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "dlccontrol",
		Location: "Europe/Lisbon",
		Workdir:  "/var/dlccontrol",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1920,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/dlccontrol/dlccontrol.log",
	},
}

func setEnvValue(name string, val *string) {
	if v, ok := os.LookupEnv(name); ok {
		*val = v
	}
}

func setEnvBoolValue(name string, val *bool) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToBool(v)
	}
}

func setEnvIntValue(name string, val *int) {
	if v, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(v)
	}
}

// LoadConfig reads the YAML configuration file and applies environment
// overrides. A missing or empty path yields the defaults.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" && FileExists(cfile) {
		data, err := os.ReadFile(cfile)
		if err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("DLC_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvValue("DLC_SYSTEM_LOCATION", &cfg.System.Location)
	setEnvBoolValue("DLC_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvValue("DLC_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("DLC_WEB_PORT", &cfg.Web.Port)
	setEnvValue("DLC_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("DLC_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("DLC_LOGGER_FILENAME", &cfg.Logger.Filename)

	if cfg.Logger.Filename == "" {
		cfg.Logger.Filename = filepath.Join(cfg.System.Workdir, "dlccontrol.log")
	}
	return cfg
}

func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
