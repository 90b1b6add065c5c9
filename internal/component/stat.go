// internal/component/stat.go
package component

// Stat — характеристика с необязательным базовым значением.
// База запоминается при первом изменении навыком и сбрасывается при откате,
// поэтому повторное применение пересчитывает значение от базы, а не накапливает.
type Stat struct {
	Value   float64
	base    float64
	hasBase bool
}

func NewStat(v float64) Stat {
	return Stat{Value: v}
}

// Base возвращает сохранённое базовое значение, если оно есть.
func (s *Stat) Base() (float64, bool) {
	return s.base, s.hasBase
}

// BaseValue — база, а если её нет, текущее значение
func (s *Stat) BaseValue() float64 {
	if s.hasBase {
		return s.base
	}
	return s.Value
}

// Modified сообщает, изменено ли значение навыком
func (s *Stat) Modified() bool {
	return s.hasBase
}

// Scale устанавливает Value = base * k. При первом вызове текущее значение
// становится базой.
func (s *Stat) Scale(k float64) {
	if !s.hasBase {
		s.base = s.Value
		s.hasBase = true
	}
	s.Value = s.base * k
}

// Restore возвращает базовое значение и забывает базу.
func (s *Stat) Restore() {
	if !s.hasBase {
		return
	}
	s.Value = s.base
	s.hasBase = false
}
