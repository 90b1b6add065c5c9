package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadSettings(filepath.Join(t.TempDir(), "settings.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Game.PlayerID != "default_player" {
		t.Errorf("expected default player id, got %q", cfg.Game.PlayerID)
	}
	if cfg.Game.SaveDir != "userdata" || cfg.Game.AssetDir != "assets" {
		t.Errorf("unexpected default dirs: %+v", cfg.Game)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected info level, got %q", cfg.Logging.Level)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	body := `
[game]
player_id = "diver"
seed = 42
fullscreen = false

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Game.PlayerID != "diver" || cfg.Game.Seed != 42 || cfg.Game.Fullscreen {
		t.Errorf("game section not applied: %+v", cfg.Game)
	}
	// Неуказанные поля сохраняют значения по умолчанию
	if cfg.Game.SaveDir != "userdata" {
		t.Errorf("expected default save dir to survive, got %q", cfg.Game.SaveDir)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected json format, got %q", cfg.Logging.Format)
	}
}

func TestLoadSettingsRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.toml")
	if err := os.WriteFile(broken, []byte("[game\nplayer_id="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(broken); err == nil {
		t.Error("expected parse error")
	}

	empty := filepath.Join(dir, "empty_id.toml")
	if err := os.WriteFile(empty, []byte("[game]\nplayer_id = \"\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(empty); err == nil {
		t.Error("expected error for empty player id")
	}
}
