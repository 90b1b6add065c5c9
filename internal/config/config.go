// internal/config/config.go
package config

import "image/color"

const (
	FPS          = 60
	MaxDeltaTime = 0.06
	TileSize     = 64

	// Игрок
	PlayerStartX          = 400.0
	PlayerStartY          = 300.0
	PlayerBaseHealth      = 100.0
	PlayerBaseOxygen      = 100.0
	PlayerBaseSwimSpeed   = 4.0   // пикселей за тик
	PlayerMagnetRadius    = 180.0 // радиус притяжения монет
	PlayerFlashlight      = 125.0 // базовый радиус фонаря
	InvincibilityDuration = 2.0   // секунд после удара или блока щитом
	ShieldRechargeTime    = 10.0
	PlayerAnimationSpeed  = 0.1 // доля кадра за тик

	// Враги
	EnemyCount             = 6
	EnemySpeed             = 100.0 // пикселей в секунду
	EnemyScale             = 2.4
	EnemyAttackDistance    = 80.0
	EnemyAnimationSpeed    = 0.1
	EnemySpawnMarginTiles  = 5
	EnemySpawnAttempts     = 50
	EnemyMinYSeparation    = 80.0
	EnemyMinPlayerDistance = 150.0
	ContactDamage          = 20.0

	// Уровень
	CoinCount              = 70
	CoinPadding            = 64.0
	CoinPlacementSize      = 32.0
	CoinAttemptsPerCoin    = 10
	CoinAnimationSpeed     = 0.15
	CoinMagnetSpeed        = 8.0 // пикселей за тик
	CoinSnapDistance       = 5.0
	TreasureCount          = 3
	TreasurePadding        = 64.0
	TreasurePlacementW     = 48.0
	TreasurePlacementH     = 32.0
	TreasureAttempts       = 500
	TreasureAnimationSpeed = 0.1
	TreasureWidth          = 96.0
	TreasureHeight         = 64.0
	SubmarineScale         = 1.0 / 3.0

	// Кислород и пузыри
	OxygenDecayPerSecond = 5.0
	BubbleInterval       = 0.150 // секунд между выбросами
	BubbleMaxAlive       = 100
	BubbleTrimCount      = 10
	BubbleStartAlpha     = 180.0

	// Магазин
	NoticeDuration = 2.0 // сколько висит уведомление «не хватает монет»

	// Интерфейс
	MenuScrollSpeed = 1.0
	PlaceholderSize = 32 // пустой кадр, если спрайтов нет
	HUDBarWidth     = 260
	HUDBarHeight    = 22
	HUDMargin       = 20
)

var (
	BackgroundColor = color.RGBA{8, 24, 48, 255}
	HealthBarColor  = color.RGBA{200, 40, 40, 255}
	OxygenBarColor  = color.RGBA{40, 140, 230, 255}
	BarBackColor    = color.RGBA{20, 20, 30, 200}
	BarMarkColor    = color.RGBA{255, 255, 255, 200}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	CoinTextColor   = color.RGBA{180, 255, 100, 255}
	PopupBackColor  = color.RGBA{30, 30, 30, 220}
	WarningColor    = color.RGBA{40, 0, 0, 220}
	WarningStroke   = color.RGBA{255, 100, 100, 255}
	ConfirmColor    = color.RGBA{181, 230, 29, 255}
	CancelColor     = color.RGBA{169, 116, 116, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonHover     = color.RGBA{100, 160, 210, 240}
	SoldColor       = color.RGBA{90, 90, 90, 220}
	TileColor       = color.RGBA{60, 70, 80, 255} // если в тайлсете нет тайла с таким ID
)
