package game

import (
	"errors"
	"testing"
)

// countCells tallies how many cells of each type the board holds.
func countCells(g *Game) map[Cell]int {
	counts := make(map[Cell]int)
	for _, c := range g.Cells {
		counts[c]++
	}
	return counts
}

// clearFood resets every food cell to plain so tests can place food
// deterministically.
func clearFood(g *Game) {
	for i, c := range g.Cells {
		if c == CellFood {
			g.Cells[i] = CellPlain
		}
	}
}

func mustNew(t *testing.T, width, height int, growOnEat bool) *Game {
	t.Helper()
	g, err := New(width, height, growOnEat)
	if err != nil {
		t.Fatalf("New(%d, %d) failed: %v", width, height, err)
	}
	return g
}

func TestNewBoardLayout(t *testing.T) {
	g := mustNew(t, 20, 10, false)

	if g.Width != 20 || g.Height != 10 {
		t.Fatalf("expected 20x10 board, got %dx%d", g.Width, g.Height)
	}
	if len(g.Cells) != 200 {
		t.Fatalf("expected 200 cells, got %d", len(g.Cells))
	}

	// Full border ring must be wall.
	for x := 0; x < g.Width; x++ {
		if g.Cells[x] != CellWall {
			t.Errorf("top border cell %d is %v, expected Wall", x, g.Cells[x])
		}
		if bottom := (g.Height-1)*g.Width + x; g.Cells[bottom] != CellWall {
			t.Errorf("bottom border cell %d is %v, expected Wall", bottom, g.Cells[bottom])
		}
	}
	for y := 0; y < g.Height; y++ {
		if left := y * g.Width; g.Cells[left] != CellWall {
			t.Errorf("left border cell %d is %v, expected Wall", left, g.Cells[left])
		}
		if right := y*g.Width + g.Width - 1; g.Cells[right] != CellWall {
			t.Errorf("right border cell %d is %v, expected Wall", right, g.Cells[right])
		}
	}

	counts := countCells(g)
	if counts[CellSnake] != 1 {
		t.Errorf("expected exactly 1 snake cell, got %d", counts[CellSnake])
	}
	if counts[CellFood] != 1 {
		t.Errorf("expected exactly 1 food cell, got %d", counts[CellFood])
	}

	start := 2*g.Width + 2
	if g.Cells[start] != CellSnake {
		t.Errorf("expected snake at index %d (2,2), got %v", start, g.Cells[start])
	}
	if g.Snake.Len() != 1 || g.Snake.Head() != start {
		t.Errorf("expected single-segment snake at %d, got body %v", start, g.Snake.Body)
	}
	if g.Snake.Direction != DirRight {
		t.Errorf("expected initial direction Right, got %v", g.Snake.Direction)
	}
	if g.Score != 0 || g.GameOver {
		t.Errorf("expected score 0 and running game, got score %d, game over %v", g.Score, g.GameOver)
	}
}

func TestNewRejectsDegenerateSizes(t *testing.T) {
	for _, dims := range [][2]int{{0, 0}, {3, 3}, {3, 10}, {10, 3}, {2, 8}} {
		_, err := New(dims[0], dims[1], false)
		if !errors.Is(err, ErrBoardTooSmall) {
			t.Errorf("New(%d, %d): expected ErrBoardTooSmall, got %v", dims[0], dims[1], err)
		}
	}
}

func TestFoodPlacementIsSeedable(t *testing.T) {
	a := mustNew(t, 12, 12, true)
	b := mustNew(t, 12, 12, true)
	clearFood(a)
	clearFood(b)
	a.Reseed(42)
	b.Reseed(42)
	a.placeFood()
	b.placeFood()

	for i := range a.Cells {
		if (a.Cells[i] == CellFood) != (b.Cells[i] == CellFood) {
			t.Fatalf("same seed placed food differently at index %d", i)
		}
	}
}

func TestOrdinaryMove(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	g.Cells[5*g.Width+5] = CellFood // far from the path

	start := g.Snake.Head()
	g.Update(DirRight)

	if g.GameOver {
		t.Fatal("unexpected game over on ordinary move")
	}
	if g.Snake.Head() != start+1 {
		t.Errorf("expected head at %d, got %d", start+1, g.Snake.Head())
	}
	if g.Cells[start] != CellPlain {
		t.Errorf("vacated cell should be Plain, got %v", g.Cells[start])
	}
	if g.Cells[start+1] != CellSnake {
		t.Errorf("new head cell should be Snake, got %v", g.Cells[start+1])
	}
	if g.Snake.Len() != 1 || g.Score != 0 {
		t.Errorf("expected length 1 and score 0, got %d and %d", g.Snake.Len(), g.Score)
	}
	if g.Steps != 1 {
		t.Errorf("expected 1 step, got %d", g.Steps)
	}
}

func TestGrowthModeEating(t *testing.T) {
	g := mustNew(t, 10, 10, true)
	clearFood(g)
	head := g.Snake.Head()
	g.Cells[head+1] = CellFood

	g.Update(DirRight)

	if g.Score != 1 {
		t.Errorf("expected score 1, got %d", g.Score)
	}
	if g.Snake.Len() != 2 {
		t.Errorf("expected body length 2, got %d", g.Snake.Len())
	}
	if g.Cells[head] != CellSnake || g.Cells[head+1] != CellSnake {
		t.Error("both old and new head cells should stay Snake in growth mode")
	}
	if countCells(g)[CellFood] != 1 {
		t.Errorf("expected a replacement food, got %d food cells", countCells(g)[CellFood])
	}
}

func TestConstantLengthEating(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	head := g.Snake.Head()
	g.Cells[head+1] = CellFood

	g.Update(DirRight)

	if g.Score != 1 {
		t.Errorf("expected score 1, got %d", g.Score)
	}
	if g.Snake.Len() != 1 {
		t.Errorf("expected body length to stay 1, got %d", g.Snake.Len())
	}
	if g.Cells[head] != CellPlain {
		t.Errorf("vacated tail cell should be Plain, got %v", g.Cells[head])
	}
	if g.Cells[head+1] != CellSnake {
		t.Errorf("head cell should be Snake, got %v", g.Cells[head+1])
	}
	if countCells(g)[CellFood] != 1 {
		t.Errorf("expected a replacement food, got %d food cells", countCells(g)[CellFood])
	}
}

// grow eats n food cells in a row to the right, lengthening the snake.
func grow(t *testing.T, g *Game, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		clearFood(g)
		g.Cells[g.Snake.Head()+1] = CellFood
		g.Update(DirRight)
		if g.GameOver {
			t.Fatalf("unexpected game over while growing, step %d", i)
		}
	}
}

func TestReversalRejectedWhenLong(t *testing.T) {
	g := mustNew(t, 12, 12, true)
	grow(t, g, 2) // length 3, moving right
	clearFood(g)
	g.Cells[8*g.Width+8] = CellFood

	head := g.Snake.Head()
	g.Update(DirLeft)

	if g.GameOver {
		t.Fatal("reversal input must not end the game")
	}
	if g.Snake.Direction != DirRight {
		t.Errorf("expected direction to stay Right, got %v", g.Snake.Direction)
	}
	if g.Snake.Head() != head+1 {
		t.Errorf("expected head to continue right to %d, got %d", head+1, g.Snake.Head())
	}
}

func TestReversalAcceptedWhenSingleSegment(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	g.Cells[5*g.Width+5] = CellFood

	head := g.Snake.Head()
	g.Update(DirLeft)

	if g.GameOver {
		t.Fatal("unexpected game over")
	}
	if g.Snake.Direction != DirLeft {
		t.Errorf("expected direction Left, got %v", g.Snake.Direction)
	}
	if g.Snake.Head() != head-1 {
		t.Errorf("expected head at %d, got %d", head-1, g.Snake.Head())
	}
}

func TestNoneInputKeepsDirection(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	g.Cells[5*g.Width+5] = CellFood

	head := g.Snake.Head()
	g.Update(DirNone)

	if g.Snake.Head() != head+1 {
		t.Errorf("expected head to continue right to %d, got %d", head+1, g.Snake.Head())
	}
	if g.Snake.Direction != DirRight {
		t.Errorf("expected direction Right, got %v", g.Snake.Direction)
	}
}

func TestNoneDirectionAndNoneInputStaysPut(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	g.Cells[5*g.Width+5] = CellFood
	g.Snake.Direction = DirNone

	head := g.Snake.Head()
	g.Update(DirNone)

	if g.GameOver {
		t.Fatal("a stationary tick must not end the game")
	}
	if g.Snake.Head() != head || g.Snake.Len() != 1 {
		t.Errorf("expected snake to stay at %d with length 1, got head %d length %d",
			head, g.Snake.Head(), g.Snake.Len())
	}
	if g.Cells[head] != CellSnake {
		t.Errorf("head cell should stay Snake, got %v", g.Cells[head])
	}
	if g.Snake.Direction != DirNone {
		t.Errorf("expected direction to stay None, got %v", g.Snake.Direction)
	}
}

func TestTailFollowIsAllowed(t *testing.T) {
	g := mustNew(t, 12, 12, true)
	grow(t, g, 3) // length 4, moving right

	// Walk the head around a 2x2 loop so the third move targets the
	// cell the tail occupies at that moment.
	clearFood(g)
	g.Cells[9*g.Width+9] = CellFood

	g.Update(DirDown)
	if g.GameOver {
		t.Fatal("unexpected game over turning down")
	}
	g.Update(DirLeft)
	if g.GameOver {
		t.Fatal("unexpected game over turning left")
	}
	tail := g.Snake.Tail()
	g.Update(DirUp) // target is the current tail cell
	if g.GameOver {
		t.Fatal("moving into the tail cell must not end the game")
	}
	if g.Snake.Head() != tail {
		t.Errorf("expected head on former tail cell %d, got %d", tail, g.Snake.Head())
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g := mustNew(t, 12, 12, true)
	grow(t, g, 4) // length 5, moving right
	clearFood(g)
	g.Cells[9*g.Width+9] = CellFood

	// Turn back onto the body: down, then left, then up hits the
	// segment behind the old head, which is not the tail.
	g.Update(DirDown)
	g.Update(DirLeft)
	g.Update(DirUp)

	if !g.GameOver {
		t.Fatal("expected game over on self collision")
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	clearFood(g)
	g.Cells[5*g.Width+5] = CellFood

	// Head starts at (2,2); two moves up hit the top border wall.
	g.Update(DirUp)
	if g.GameOver {
		t.Fatal("premature game over")
	}
	target := g.Snake.Head() - g.Width // the wall cell about to be hit
	g.Update(DirUp)

	if !g.GameOver {
		t.Fatal("expected game over on wall collision")
	}
	if g.Cells[target] != CellWall {
		t.Errorf("wall cell must stay untouched, got %v", g.Cells[target])
	}
	if g.Snake.Len() != 1 {
		t.Errorf("body must not change on the losing tick, got length %d", g.Snake.Len())
	}
}

func TestEdgeCrossingWithoutWalls(t *testing.T) {
	// A decoded board with no wall cells: crossing the bound is still
	// game over.
	g, err := FromString("B2x3|S1E5", false)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if g.Snake.Head() != 0 {
		t.Fatalf("expected snake at index 0, got %d", g.Snake.Head())
	}

	g.Update(DirUp) // off the top edge from (0,0)

	if !g.GameOver {
		t.Fatal("expected game over crossing the board edge")
	}
}

func TestUpdateAfterGameOverIsNoop(t *testing.T) {
	g := mustNew(t, 10, 10, false)
	g.GameOver = true

	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	body := append([]int(nil), g.Snake.Body...)

	g.Update(DirDown)

	if g.Steps != 0 {
		t.Errorf("expected steps to stay 0, got %d", g.Steps)
	}
	for i := range cells {
		if g.Cells[i] != cells[i] {
			t.Fatalf("cell %d changed after game over", i)
		}
	}
	if len(body) != g.Snake.Len() || body[0] != g.Snake.Body[0] {
		t.Error("body changed after game over")
	}
}
