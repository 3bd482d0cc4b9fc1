package game

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrBoardTooSmall is returned by New for board dimensions that cannot
// hold the fixed (2,2) snake start inside the border ring.
var ErrBoardTooSmall = errors.New("board must be at least 4x4")

// Game is the whole simulation state: a flat row-major cell grid
// (index = y*Width + x), the snake moving across it, and the score.
// One Update call advances the simulation by exactly one tick; once
// GameOver flips true the state is frozen and further Update calls are
// no-ops. A Game has a single owner; nothing here is safe for
// concurrent use.
type Game struct {
	ID        string
	Cells     []Cell
	Width     int
	Height    int
	Snake     Snake
	Score     int
	GameOver  bool
	GrowOnEat bool
	Steps     int
	StartTime time.Time

	rng *rand.Rand
}

// New builds a fresh board: the outermost ring of cells is Wall, the
// interior Plain, a single-segment snake sits at (2,2) facing right,
// and one food cell is placed at random. GrowOnEat picks the feeding
// policy: true lengthens the snake on every food eaten, false keeps
// the length constant.
func New(width, height int, growOnEat bool) (*Game, error) {
	if width < 4 || height < 4 {
		return nil, ErrBoardTooSmall
	}

	cells := make([]Cell, width*height)
	for x := 0; x < width; x++ {
		cells[x] = CellWall
		cells[(height-1)*width+x] = CellWall
	}
	for y := 0; y < height; y++ {
		cells[y*width] = CellWall
		cells[y*width+width-1] = CellWall
	}

	start := 2*width + 2
	cells[start] = CellSnake

	g := &Game{
		ID:     uuid.New().String(),
		Cells:  cells,
		Width:  width,
		Height: height,
		Snake: Snake{
			Body:      []int{start},
			Direction: DirRight,
		},
		GrowOnEat: growOnEat,
		StartTime: time.Now(),
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	g.placeFood()

	return g, nil
}

// Reseed replaces the food-placement random source, making every
// subsequent placement reproducible for a given seed.
func (g *Game) Reseed(seed uint64) {
	g.rng = rand.New(rand.NewSource(seed))
}

// ElapsedTime returns the current run duration in seconds.
func (g *Game) ElapsedTime() float64 {
	return time.Since(g.StartTime).Seconds()
}

// placeFood samples uniformly random indices until a Plain cell is hit
// and marks it Food. The board must hold at least one Plain cell or
// the loop never terminates; both constructors guarantee that, and
// Update frees the tail cell before placing on constant-length boards.
func (g *Game) placeFood() {
	for {
		idx := g.rng.Intn(len(g.Cells))
		if g.Cells[idx] == CellPlain {
			g.Cells[idx] = CellFood
			return
		}
	}
}

// Update advances the simulation by one tick. The input direction may
// be overridden: a 180-degree reversal against a snake longer than one
// segment keeps the previous direction, and DirNone always means "keep
// going". No-op once the game is over.
func (g *Game) Update(input Direction) {
	if g.GameOver {
		return
	}
	g.Steps++

	dir := g.resolveDirection(input)
	g.Snake.Direction = dir

	head := g.Snake.Head()
	dx, dy := dir.Delta()
	x := head%g.Width + dx
	y := head/g.Width + dy

	// Crossing the board edge ends the game even on decoded boards
	// whose border is not Wall-typed.
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		g.GameOver = true
		return
	}
	next := y*g.Width + x

	switch g.Cells[next] {
	case CellWall:
		g.GameOver = true
		return
	case CellSnake:
		// Moving into the tail's cell is allowed: the tail vacates
		// it on this same tick.
		if next != g.Snake.Tail() {
			g.GameOver = true
			return
		}
	}

	ate := g.Cells[next] == CellFood

	g.Snake.Move(next)
	g.Cells[next] = CellSnake

	if ate {
		g.Score++
		if !g.GrowOnEat {
			tail := g.Snake.RemoveTail()
			g.Cells[tail] = CellPlain
			g.Cells[next] = CellSnake
		}
		g.placeFood()
	} else {
		tail := g.Snake.RemoveTail()
		g.Cells[tail] = CellPlain
		g.Cells[next] = CellSnake
	}
}

// resolveDirection applies the input-override rules. A single-segment
// snake accepts any input, including reversal.
func (g *Game) resolveDirection(input Direction) Direction {
	cur := g.Snake.Direction
	dir := input
	if g.Snake.Len() > 1 {
		switch {
		case input != DirNone && input == cur.Opposite():
			dir = cur
		case cur == DirNone:
			dir = input
		case input == DirNone:
			dir = cur
		}
	}
	if dir == DirNone {
		dir = cur
	}
	return dir
}
