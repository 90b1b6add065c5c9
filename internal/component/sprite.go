// internal/component/sprite.go
package component

// SpriteInfo — то, что симуляции нужно знать о спрайте: число кадров и размер.
type SpriteInfo struct {
	Frames        int
	Width, Height float64
}

// SpriteSource отдаёт сведения о наборах кадров по ключу вида "player/idle".
// Реализуется загрузчиком ассетов, в тестах — статической таблицей.
type SpriteSource interface {
	Sprite(key string) SpriteInfo
}

// StaticSprites — SpriteSource на основе готовой таблицы.
// Для неизвестного ключа возвращает один кадр 32x32.
type StaticSprites map[string]SpriteInfo

func (s StaticSprites) Sprite(key string) SpriteInfo {
	if info, ok := s[key]; ok {
		return info
	}
	return SpriteInfo{Frames: 1, Width: 32, Height: 32}
}

// Ключи наборов кадров
const SubmarineSprite = "submarine"

func PlayerSprite(set string) string {
	return "player/" + set
}

func EnemySprite(sprite, set string) string {
	return "enemy/" + sprite + "/" + set
}

func CoinSprite(coinType string) string {
	return "coin/" + coinType
}

func TreasureSprite(treasureType string) string {
	return "treasure/" + treasureType
}
