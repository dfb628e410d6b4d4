package config

import (
	"os"
	"path"
	"strconv"

	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid" json:"appid"`
	Location string `yaml:"location" json:"location"`
	Workdir  string `yaml:"workdir" json:"workdir"`
	Debug    bool   `yaml:"debug" json:"debug"`
}

type WebConfig struct {
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Secret string `yaml:"secret" json:"secret"`
}

type DBConfig struct {
	Type   string `yaml:"type" json:"type"`
	Host   string `yaml:"host" json:"host"`
	Port   int    `yaml:"port" json:"port"`
	Name   string `yaml:"name" json:"name"`
	User   string `yaml:"user" json:"user"`
	Passwd string `yaml:"passwd" json:"passwd"`
	Debug  bool   `yaml:"debug" json:"debug"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" json:"mode"`
	FileEnable bool   `yaml:"file_enable" json:"file_enable"`
	Filename   string `yaml:"filename" json:"filename"`
}

type StorageConfig struct {
	UploadDir     string   `yaml:"upload_dir" json:"upload_dir"`
	MaxUploadSize int64    `yaml:"max_upload_size" json:"max_upload_size"`
	AllowedTypes  []string `yaml:"allowed_types" json:"allowed_types"`
}

type AppConfig struct {
	System   SysConfig     `yaml:"system" json:"system"`
	Web      WebConfig     `yaml:"web" json:"web"`
	Database DBConfig      `yaml:"database" json:"database"`
	Logger   LogConfig     `yaml:"logger" json:"logger"`
	Storage  StorageConfig `yaml:"storage" json:"storage"`
}

func (c *AppConfig) GetDataDir() string {
	return path.Join(c.System.Workdir, "data")
}

func (c *AppConfig) GetUploadDir() string {
	if c.Storage.UploadDir != "" {
		return c.Storage.UploadDir
	}
	return path.Join(c.System.Workdir, "uploads")
}

func (c *AppConfig) initDirs() {
	_ = os.MkdirAll(path.Join(c.System.Workdir, "data"), 0755)
	_ = os.MkdirAll(path.Join(c.System.Workdir, "logs"), 0755)
	_ = os.MkdirAll(c.GetUploadDir(), 0755)
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "printrec",
		Location: "Asia/Dubai",
		Workdir:  "/var/printrec",
		Debug:    true,
	},
	Web: WebConfig{
		Host:   "0.0.0.0",
		Port:   1816,
		Secret: "9b6de5cc-printrec-1816-904f-f064e0418e8f",
	},
	Database: DBConfig{
		Type:   "sqlite",
		Host:   "127.0.0.1",
		Port:   5432,
		Name:   "printrec",
		User:   "postgres",
		Passwd: "",
		Debug:  false,
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/printrec/printrec.log",
	},
	Storage: StorageConfig{
		UploadDir:     "",
		MaxUploadSize: 5 * 1024 * 1024,
		AllowedTypes:  []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
	},
}

func LoadConfig(cfile string) *AppConfig {
	// The configuration file is optional, the default configuration
	// plus environment overrides is a valid setup.
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("PRINTREC_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("PRINTREC_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvValue("PRINTREC_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("PRINTREC_WEB_PORT", &cfg.Web.Port)
	setEnvValue("PRINTREC_WEB_SECRET", &cfg.Web.Secret)
	setEnvValue("PRINTREC_DB_TYPE", &cfg.Database.Type)
	setEnvValue("PRINTREC_DB_HOST", &cfg.Database.Host)
	setEnvIntValue("PRINTREC_DB_PORT", &cfg.Database.Port)
	setEnvValue("PRINTREC_DB_NAME", &cfg.Database.Name)
	setEnvValue("PRINTREC_DB_USER", &cfg.Database.User)
	setEnvValue("PRINTREC_DB_PWD", &cfg.Database.Passwd)
	setEnvValue("PRINTREC_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvValue("PRINTREC_STORAGE_UPLOAD_DIR", &cfg.Storage.UploadDir)

	cfg.initDirs()
	return cfg
}

func setEnvValue(name string, val *string) {
	evalue := os.Getenv(name)
	if evalue != "" {
		*val = evalue
	}
}

func setEnvBoolValue(name string, val *bool) {
	evalue := os.Getenv(name)
	if evalue == "" {
		return
	}
	if b, err := strconv.ParseBool(evalue); err == nil {
		*val = b
	}
}

func setEnvIntValue(name string, val *int) {
	evalue := os.Getenv(name)
	if evalue == "" {
		return
	}
	if i, err := strconv.Atoi(evalue); err == nil {
		*val = i
	}
}
