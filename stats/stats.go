// Package stats keeps per-session game records in memory. Nothing is
// written to disk; a session lives exactly as long as the process.
package stats

import (
	"time"

	"gridsnake/game"
)

// Record captures one finished game.
type Record struct {
	ID        string
	Score     int
	Steps     int
	StartTime time.Time
	EndTime   time.Time
}

// Session accumulates records for every game played since the process
// started.
type Session struct {
	Games []Record
}

func NewSession() *Session {
	return &Session{Games: make([]Record, 0)}
}

// Add records a finished game.
func (s *Session) Add(g *game.Game) {
	s.Games = append(s.Games, Record{
		ID:        g.ID,
		Score:     g.Score,
		Steps:     g.Steps,
		StartTime: g.StartTime,
		EndTime:   time.Now(),
	})
}

func (s *Session) Count() int {
	return len(s.Games)
}

func (s *Session) HighScore() int {
	high := 0
	for _, rec := range s.Games {
		if rec.Score > high {
			high = rec.Score
		}
	}
	return high
}

func (s *Session) AverageScore() float64 {
	if len(s.Games) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range s.Games {
		sum += rec.Score
	}
	return float64(sum) / float64(len(s.Games))
}
