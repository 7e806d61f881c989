package config

import (
	"testing"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func TestReloadSwapsValidSettings(t *testing.T) {
	h := NewStaticHolder(DefaultSettings())

	v := viper.New()
	v.Set("settings.sessionTtlHours", 48)
	v.Set("settings.updateTimeoutSecs", 15)
	v.Set("settings.codeWidth", 8)
	v.Set("settings.codePrefixes", map[string]string{"customer": "CST"})

	h.reload(v, zap.NewNop(), "backoffice.yml")

	got := h.Get()
	if got.SessionTTLHours != 48 || got.UpdateTimeoutSecs != 15 || got.CodeWidth != 8 {
		t.Fatalf("reload did not apply: %+v", got)
	}
	if got.CodePrefix("customer") != "CST" {
		t.Fatalf("expected CST prefix, got %s", got.CodePrefix("customer"))
	}
}

func TestReloadIgnoresInvalidSettings(t *testing.T) {
	h := NewStaticHolder(DefaultSettings())

	v := viper.New()
	v.Set("settings.sessionTtlHours", 0)
	v.Set("settings.updateTimeoutSecs", 30)
	v.Set("settings.codeWidth", 6)

	h.reload(v, zap.NewNop(), "backoffice.yml")

	if got := h.Get(); got.SessionTTLHours != DefaultSettings().SessionTTLHours {
		t.Fatalf("invalid reload must keep previous settings, got %+v", got)
	}
}

func TestCodePrefixFallsBackToUppercasedKind(t *testing.T) {
	s := DefaultSettings()
	if s.CodePrefix("driver") != "DRIVER" {
		t.Fatalf("expected DRIVER fallback, got %s", s.CodePrefix("driver"))
	}
}
