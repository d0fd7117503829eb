package public

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/titanous/json5"
)

const (
	ConfigName      = "samples.json5"
	LocalConfigName = "samples.local.json5"
)

type ArchiveConfig struct {
	// 为空时不提交归档
	Repo        string `json:"repo"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email"`
}

type Config struct {
	BaseURL   string        `json:"base_url"`
	Output    string        `json:"output"`
	UserAgent string        `json:"user_agent"`
	LogLevel  string        `json:"log_level"`
	Archive   ArchiveConfig `json:"archive"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:   "https://atcoder.jp",
		Output:    "contest.json",
		UserAgent: DefaultUserAgent,
		LogLevel:  "info",
		Archive: ArchiveConfig{
			AuthorName:  "OI-Archive Crawler",
			AuthorEmail: "null",
		},
	}
}

// Level 解析 LogLevel，无法识别时返回 Info
func (c Config) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// ReadConfig 读取 dir 下的 samples.json5，并用 samples.local.json5 覆盖其中的非空字段。
// 两个文件都可以不存在
func ReadConfig(dir string) (Config, error) {
	var out Config
	b, err := os.ReadFile(filepath.Join(dir, ConfigName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return out, err
	}
	if len(b) > 0 {
		if err := json5.Unmarshal(b, &out); err != nil {
			return out, errors.Wrapf(err, "parse %s", ConfigName)
		}
	}

	b, err = os.ReadFile(filepath.Join(dir, LocalConfigName))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return out, err
	}
	if len(b) > 0 {
		var override Config
		if err := json5.Unmarshal(b, &override); err != nil {
			return out, errors.Wrapf(err, "parse %s", LocalConfigName)
		}
		if err := mergo.Merge(&out, override, mergo.WithOverride); err != nil {
			return out, err
		}
		slog.Debug("merging config with local overrides", "local", LocalConfigName)
	}
	return out, nil
}

var envKeys = map[string]func(*Config, string){
	"SAMPLES_BASE_URL":     func(c *Config, v string) { c.BaseURL = v },
	"SAMPLES_OUTPUT":       func(c *Config, v string) { c.Output = v },
	"SAMPLES_USER_AGENT":   func(c *Config, v string) { c.UserAgent = v },
	"SAMPLES_LOG_LEVEL":    func(c *Config, v string) { c.LogLevel = v },
	"SAMPLES_ARCHIVE_REPO": func(c *Config, v string) { c.Archive.Repo = v },
}

// LoadConfig 按 默认值 < 配置文件 < 环境变量 的优先级生成配置。dir 下的 .env 会先被载入
func LoadConfig(dir string) (Config, error) {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load .env")
	}

	cfg, err := ReadConfig(dir)
	if err != nil {
		return cfg, err
	}
	for key, set := range envKeys {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			set(&cfg, v)
		}
	}
	if err := mergo.Merge(&cfg, DefaultConfig()); err != nil {
		return cfg, err
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if !IsUrl(cfg.BaseURL) {
		return cfg, errors.Errorf("invalid base_url %q", cfg.BaseURL)
	}
	return cfg, nil
}
