// internal/event/types.go
package event

const (
	CoinCollected     EventType = "CoinCollected"     // монета зачислена, данные CoinCollectedData
	TreasureTriggered EventType = "TreasureTriggered" // игрок открыл сундук
	TreasureCollected EventType = "TreasureCollected" // анимация сундука доиграна
	PlayerDamaged     EventType = "PlayerDamaged"     // урон прошёл, данные DamageData
	ShieldBlocked     EventType = "ShieldBlocked"     // щит поглотил удар
	SkillPurchased    EventType = "SkillPurchased"
	SkillActivated    EventType = "SkillActivated"
	PhaseChanged      EventType = "PhaseChanged" // данные PhaseChangedData
)

type CoinCollectedData struct {
	Value      int
	RunCoins   int
	TotalCoins int
}

type DamageData struct {
	Amount float64
	Health float64
	Dead   bool
}

type PhaseChangedData struct {
	From, To string
	Win      bool
}
