// internal/utils/math.go
package utils

// Percent переводит value/maxValue в проценты, ограниченные диапазоном [0, 100].
func Percent(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	p := value / maxValue * 100
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

// Approach уменьшает таймер на dt, не опуская ниже нуля.
func Approach(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
