// internal/persist/store.go
package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"deep-dive-dash/internal/skill"
)

var ErrInvalidPlayerID = errors.New("invalid player id")

// Progress — сохраняемый прогресс игрока.
type Progress struct {
	Coins           int      `json:"coins"`
	PurchasedSkills []string `json:"purchased_skills"`
}

// Store хранит прогресс по идентификатору игрока.
type Store interface {
	Load(playerID string) (Progress, error)
	Save(playerID string, p Progress) error
}

// FileStore — один JSON-файл на игрока в каталоге dir.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) path(playerID string) (string, error) {
	if playerID == "" || playerID == "." || playerID == ".." ||
		strings.ContainsAny(playerID, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlayerID, playerID)
	}
	return filepath.Join(s.dir, playerID+".json"), nil
}

// Load читает прогресс. Если файла нет, возвращает нулевой прогресс без ошибки.
func (s *FileStore) Load(playerID string) (Progress, error) {
	path, err := s.path(playerID)
	if err != nil {
		return Progress{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Progress{}, nil
	}
	if err != nil {
		return Progress{}, fmt.Errorf("read save %s: %w", path, err)
	}
	var p Progress
	if err := json.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("decode save %s: %w", path, err)
	}
	if p.Coins < 0 {
		return Progress{}, fmt.Errorf("decode save %s: negative coin total %d", path, p.Coins)
	}
	return p, nil
}

// Save записывает прогресс атомарно: во временный файл рядом и затем rename.
func (s *FileStore) Save(playerID string, p Progress) error {
	path, err := s.path(playerID)
	if err != nil {
		return err
	}
	if p.PurchasedSkills == nil {
		p.PurchasedSkills = []string{}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(s.dir, "."+playerID+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp save: %w", err)
	}
	tmpPath := tmpFile.Name()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write save: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("write save: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace save %s: %w", path, err)
	}
	return nil
}

// ApplyTo отмечает купленными навыки каталога, чьи имена есть в сохранении,
// остальные сбрасывает. Возвращает имена, которых нет в каталоге.
func (p Progress) ApplyTo(cat *skill.Catalogue) []string {
	owned := make(map[string]bool, len(p.PurchasedSkills))
	for _, name := range p.PurchasedSkills {
		owned[name] = true
	}
	for _, s := range cat.All() {
		s.Purchased = owned[s.Name()]
		delete(owned, s.Name())
	}
	unknown := make([]string, 0, len(owned))
	for _, name := range p.PurchasedSkills {
		if owned[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// Snapshot собирает прогресс из счёта монет и каталога.
func Snapshot(coins int, cat *skill.Catalogue) Progress {
	return Progress{Coins: coins, PurchasedSkills: cat.PurchasedNames()}
}
