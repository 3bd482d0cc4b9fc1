package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Decode failure kinds. FromString wraps some of them with detail, so
// callers should match with errors.Is.
var (
	ErrEmptyInput     = errors.New("empty board string")
	ErrBadHeader      = errors.New("invalid dimension header")
	ErrBadDimension   = errors.New("invalid dimension")
	ErrUnknownCell    = errors.New("unknown cell code")
	ErrMultipleSnakes = errors.New("multiple snakes")
	ErrCellCount      = errors.New("cell count does not match dimensions")
	ErrNoSnake        = errors.New("no snake found")
)

// FromString decodes a run-length-encoded board description of the
// form "B<height>x<width>|<tokens>|<tokens>|...". Tokens are a letter
// (W wall, E plain, S snake) followed by a decimal run length. Two
// quirks of the format are kept for compatibility with existing board
// strings: a letter with no digits emits zero cells, and tokens fill
// the board in flat index order with no regard for the row boundaries
// the '|' separators suggest. Exactly one snake cell must appear; it
// becomes the single body segment, facing right. On success one food
// cell is placed at random, so the decoded board must contain at least
// one plain cell.
func FromString(encoded string, growOnEat bool) (*Game, error) {
	if encoded == "" {
		return nil, ErrEmptyInput
	}

	parts := strings.Split(encoded, "|")

	dims := parts[0]
	if !strings.HasPrefix(dims, "B") {
		return nil, ErrBadHeader
	}
	dimParts := strings.Split(dims[1:], "x")
	if len(dimParts) != 2 {
		return nil, ErrBadHeader
	}
	height, err := parseDimension(dimParts[0])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrBadDimension, dimParts[0])
	}
	width, err := parseDimension(dimParts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrBadDimension, dimParts[1])
	}

	var cells []Cell
	snakeIdx := -1

	for _, seg := range parts[1:] {
		i := 0
		for i < len(seg) {
			c := seg[i]
			i++
			if !isLetter(c) {
				continue
			}

			start := i
			for i < len(seg) && seg[i] >= '0' && seg[i] <= '9' {
				i++
			}
			// A bare letter has no digits and parses to zero,
			// emitting no cells.
			count, _ := strconv.Atoi(seg[start:i])

			var cell Cell
			switch c {
			case 'W':
				cell = CellWall
			case 'E':
				cell = CellPlain
			case 'S':
				cell = CellSnake
			default:
				return nil, fmt.Errorf("%w: %q", ErrUnknownCell, rune(c))
			}

			for n := 0; n < count; n++ {
				if cell == CellSnake {
					if snakeIdx >= 0 {
						return nil, ErrMultipleSnakes
					}
					snakeIdx = len(cells)
				}
				cells = append(cells, cell)
			}
		}
	}

	if len(cells) != width*height {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrCellCount, width*height, len(cells))
	}
	if snakeIdx < 0 {
		return nil, ErrNoSnake
	}

	g := &Game{
		ID:     uuid.New().String(),
		Cells:  cells,
		Width:  width,
		Height: height,
		Snake: Snake{
			Body:      []int{snakeIdx},
			Direction: DirRight,
		},
		GrowOnEat: growOnEat,
		StartTime: time.Now(),
		rng:       rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
	g.placeFood()

	return g, nil
}

// Encode writes the board shape back out in the format FromString
// accepts, one '|'-delimited segment per row with explicit run
// lengths. Food encodes as plain: food is re-placed on decode rather
// than carried in the snapshot. The result round-trips as long as the
// snake occupies a single cell.
func (g *Game) Encode() string {
	var b strings.Builder
	fmt.Fprintf(&b, "B%dx%d", g.Height, g.Width)

	for y := 0; y < g.Height; y++ {
		b.WriteByte('|')
		row := g.Cells[y*g.Width : (y+1)*g.Width]
		for x := 0; x < len(row); {
			cell := encodedCell(row[x])
			run := 0
			for x < len(row) && encodedCell(row[x]) == cell {
				run++
				x++
			}
			b.WriteByte(cellLetter(cell))
			b.WriteString(strconv.Itoa(run))
		}
	}

	return b.String()
}

// parseDimension mirrors an unsigned integer parse: negative values
// are as much a failure as a non-digit.
func parseDimension(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, ErrBadDimension
	}
	return n, nil
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func encodedCell(c Cell) Cell {
	if c == CellFood {
		return CellPlain
	}
	return c
}

func cellLetter(c Cell) byte {
	switch c {
	case CellWall:
		return 'W'
	case CellSnake:
		return 'S'
	default:
		return 'E'
	}
}
