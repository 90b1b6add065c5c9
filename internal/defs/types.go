// internal/defs/types.go
package defs

// EffectKind определяет, какую характеристику игрока меняет навык.
type EffectKind string

const (
	EffectHealthMax         EffectKind = "HEALTH_MAX"
	EffectOxygenMax         EffectKind = "OXYGEN_MAX"
	EffectSwimSpeed         EffectKind = "SWIM_SPEED"
	EffectOxygenConsumption EffectKind = "OXYGEN_CONSUMPTION"
	EffectMagnet            EffectKind = "COIN_MAGNET"
	EffectFlashlight        EffectKind = "FLASHLIGHT"
	EffectShield            EffectKind = "SHIELD"
)

// Valid сообщает, известен ли тип эффекта.
func (k EffectKind) Valid() bool {
	switch k {
	case EffectHealthMax, EffectOxygenMax, EffectSwimSpeed, EffectOxygenConsumption,
		EffectMagnet, EffectFlashlight, EffectShield:
		return true
	}
	return false
}
