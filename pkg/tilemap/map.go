// pkg/tilemap/map.go
package tilemap

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"deep-dive-dash/pkg/geom"
)

// EmptyTile — любой отрицательный ID означает пустую клетку
const EmptyTile = -1

var ErrEmptyMap = errors.New("tilemap: map has no tiles")

// TileMap — статическая сетка тайлов. После загрузки не меняется.
type TileMap struct {
	TileSize   int
	Data       [][]int  // ID тайлов, построчно, начало координат — левый верхний угол
	collidable [][]bool // производная матрица: ID >= 0 — твёрдый тайл
	cols, rows int
}

// New строит карту из готовой сетки. Все строки обязаны иметь одинаковую длину.
func New(data [][]int, tileSize int) (*TileMap, error) {
	if tileSize <= 0 {
		return nil, fmt.Errorf("tilemap: invalid tile size %d", tileSize)
	}
	if len(data) == 0 || len(data[0]) == 0 {
		return nil, ErrEmptyMap
	}
	cols := len(data[0])
	collidable := make([][]bool, len(data))
	for y, row := range data {
		if len(row) != cols {
			return nil, fmt.Errorf("tilemap: row %d has %d columns, expected %d", y, len(row), cols)
		}
		collidable[y] = make([]bool, cols)
		for x, id := range row {
			collidable[y][x] = id >= 0
		}
	}
	return &TileMap{
		TileSize:   tileSize,
		Data:       data,
		collidable: collidable,
		cols:       cols,
		rows:       len(data),
	}, nil
}

// Parse читает карту в формате CSV: одна строка файла — один ряд тайлов.
func Parse(r io.Reader, tileSize int) (*TileMap, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // длину рядов проверяет New
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("tilemap: read csv: %w", err)
	}

	data := make([][]int, 0, len(records))
	for y, record := range records {
		row := make([]int, len(record))
		for x, field := range record {
			id, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("tilemap: cell (%d,%d): %w", x, y, err)
			}
			row[x] = id
		}
		data = append(data, row)
	}
	return New(data, tileSize)
}

// Load загружает карту из CSV-файла.
func Load(path string, tileSize int) (*TileMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tilemap: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f, tileSize)
}

func (m *TileMap) Cols() int { return m.cols }
func (m *TileMap) Rows() int { return m.rows }

// PixelWidth — ширина карты в пикселях мира
func (m *TileMap) PixelWidth() float64 { return float64(m.cols * m.TileSize) }

// PixelHeight — высота карты в пикселях мира
func (m *TileMap) PixelHeight() float64 { return float64(m.rows * m.TileSize) }

// IsCollidable проверяет одну клетку. Клетки вне карты не твёрдые.
func (m *TileMap) IsCollidable(col, row int) bool {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return false
	}
	return m.collidable[row][col]
}

// CheckCollision сообщает, накрывает ли прямоугольник хотя бы один твёрдый тайл.
// Правая и нижняя границы исключаются (right-1, bottom-1), чтобы прямоугольник,
// упирающийся в край клетки, не задевал соседнюю. Диапазон обрезается по карте.
func (m *TileMap) CheckCollision(r geom.Rect) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	ts := m.TileSize
	left := floorDiv(int(math.Floor(r.Left())), ts)
	top := floorDiv(int(math.Floor(r.Top())), ts)
	right := floorDiv(int(math.Ceil(r.Right()))-1, ts)
	bottom := floorDiv(int(math.Ceil(r.Bottom()))-1, ts)

	left, right = max(left, 0), min(right, m.cols-1)
	top, bottom = max(top, 0), min(bottom, m.rows-1)

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if m.collidable[y][x] {
				return true
			}
		}
	}
	return false
}

// floorDiv — целочисленное деление с округлением к минус бесконечности
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
