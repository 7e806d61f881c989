package config

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Settings are operational knobs that may be tuned without a restart.
type Settings struct {
	SessionTTLHours   int               `mapstructure:"sessionTtlHours"`
	UpdateTimeoutSecs int               `mapstructure:"updateTimeoutSecs"`
	CodePrefixes      map[string]string `mapstructure:"codePrefixes"`
	CodeWidth         int               `mapstructure:"codeWidth"`
}

func DefaultSettings() Settings {
	return Settings{
		SessionTTLHours:   24 * 7,
		UpdateTimeoutSecs: 30,
		CodePrefixes: map[string]string{
			"customer":  "CUST",
			"supplier":  "SUPP",
			"vendor":    "VEND",
			"material":  "MTRL",
			"quotation": "QUOT",
		},
		CodeWidth: 6,
	}
}

func (s Settings) SessionTTL() time.Duration {
	return time.Duration(s.SessionTTLHours) * time.Hour
}

func (s Settings) UpdateTimeout() time.Duration {
	return time.Duration(s.UpdateTimeoutSecs) * time.Second
}

// CodePrefix returns the business-code prefix for an entity kind.
func (s Settings) CodePrefix(kind string) string {
	if p, ok := s.CodePrefixes[kind]; ok {
		return p
	}
	return strings.ToUpper(kind)
}

// SettingsHolder keeps the current Settings and swaps them on config change.
type SettingsHolder struct {
	current atomic.Value // holds Settings
}

func NewSettingsHolder(logger *zap.Logger) (*SettingsHolder, error) {
	log := logger.Named("config.settings")
	v := viper.New()

	v.SetConfigName("backoffice")
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/backoffice")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BACKOFFICE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultSettings()
	v.SetDefault("settings.sessionTtlHours", defaults.SessionTTLHours)
	v.SetDefault("settings.updateTimeoutSecs", defaults.UpdateTimeoutSecs)
	v.SetDefault("settings.codePrefixes", defaults.CodePrefixes)
	v.SetDefault("settings.codeWidth", defaults.CodeWidth)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Settings
	if err := v.UnmarshalKey("settings", &cfg); err != nil {
		return nil, err
	}
	if err := validateSettings(cfg); err != nil {
		return nil, err
	}

	holder := &SettingsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		holder.reload(v, log, e.Name)
	})

	return holder, nil
}

// reload swaps in the settings currently held by v. Unmarshalable or
// invalid settings leave the previous ones in place.
func (h *SettingsHolder) reload(v *viper.Viper, log *zap.Logger, source string) {
	var updated Settings
	if err := v.UnmarshalKey("settings", &updated); err != nil {
		log.Warn("settings reload failed", zap.Error(err))
		return
	}
	if err := validateSettings(updated); err != nil {
		log.Warn("invalid settings ignored", zap.Error(err))
		return
	}
	h.current.Store(updated)
	log.Info("settings reloaded", zap.String("source", source))
}

// NewStaticHolder wraps fixed settings without file watching. Meant for tests.
func NewStaticHolder(s Settings) *SettingsHolder {
	h := &SettingsHolder{}
	h.current.Store(s)
	return h
}

func (h *SettingsHolder) Get() Settings {
	v := h.current.Load()
	if v == nil {
		return DefaultSettings()
	}
	return v.(Settings)
}

func validateSettings(cfg Settings) error {
	if cfg.SessionTTLHours <= 0 {
		return errors.New("settings.sessionTtlHours must be positive")
	}
	if cfg.UpdateTimeoutSecs <= 0 {
		return errors.New("settings.updateTimeoutSecs must be positive")
	}
	if cfg.CodeWidth <= 0 {
		return errors.New("settings.codeWidth must be positive")
	}
	return nil
}
