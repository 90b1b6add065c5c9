// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings — параметры запуска, которые можно переопределить в settings.toml
type Settings struct {
	Game    GameSettings    `toml:"game"`
	Logging LoggingSettings `toml:"logging"`
	Debug   DebugSettings   `toml:"debug"`
}

type GameSettings struct {
	PlayerID     string `toml:"player_id"`
	AssetDir     string `toml:"asset_dir"`
	SaveDir      string `toml:"save_dir"`
	SkillsFile   string `toml:"skills_file"` // пусто — встроенный каталог
	Seed         int64  `toml:"seed"`        // 0 — от текущего времени
	Fullscreen   bool   `toml:"fullscreen"`
	WindowWidth  int    `toml:"window_width"`  // используется вне полноэкранного режима
	WindowHeight int    `toml:"window_height"` // и если размер монитора неизвестен
}

type LoggingSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" или "console"
}

type DebugSettings struct {
	PprofAddr string `toml:"pprof_addr"` // пусто — сервер pprof не запускается
}

// LoadSettings читает файл настроек поверх значений по умолчанию.
// Отсутствующий файл не ошибка: возвращаются значения по умолчанию.
func LoadSettings(path string) (*Settings, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if cfg.Game.PlayerID == "" {
		return nil, fmt.Errorf("parse settings %s: game.player_id must not be empty", path)
	}
	return cfg, nil
}

func defaults() *Settings {
	return &Settings{
		Game: GameSettings{
			PlayerID:     "default_player",
			AssetDir:     "assets",
			SaveDir:      "userdata",
			Fullscreen:   true,
			WindowWidth:  1280,
			WindowHeight: 720,
		},
		Logging: LoggingSettings{
			Level:  "info",
			Format: "console",
		},
	}
}
