// internal/component/animation.go
package component

// Animation — индекс кадра внутри именованного набора кадров.
type Animation struct {
	Set    string         // текущий набор, например "idle" или "walk"
	Index  int            // текущий кадр
	Timer  float64        // накопитель до следующего кадра
	Speed  float64        // прирост таймера за тик
	Frames map[string]int // количество кадров в каждом наборе
}

func NewAnimation(set string, speed float64, frames map[string]int) Animation {
	return Animation{Set: set, Speed: speed, Frames: frames}
}

// Count — число кадров в текущем наборе, минимум 1
func (a *Animation) Count() int {
	if n := a.Frames[a.Set]; n > 0 {
		return n
	}
	return 1
}

// Switch переключает набор кадров. При смене набора кадр сбрасывается в 0.
func (a *Animation) Switch(set string) {
	if a.Set == set {
		return
	}
	a.Set = set
	a.Index = 0
	a.Timer = 0
}

// Step продвигает анимацию на один тик по кругу.
func (a *Animation) Step() {
	a.Timer += a.Speed
	if a.Timer >= 1 {
		a.Timer = 0
		a.Index = (a.Index + 1) % a.Count()
	}
}
