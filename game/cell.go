package game

// Cell is the content of one board position.
type Cell uint8

const (
	CellPlain Cell = iota
	CellSnake
	CellWall
	CellFood
)

func (c Cell) String() string {
	switch c {
	case CellPlain:
		return "Plain"
	case CellSnake:
		return "Snake"
	case CellWall:
		return "Wall"
	case CellFood:
		return "Food"
	default:
		return "Unknown"
	}
}
