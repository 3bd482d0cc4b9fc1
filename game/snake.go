package game

// Snake is the moving body on the board. Body holds flat cell indices
// in movement order: the last element is the head, the first the tail.
// Every index maps to a CellSnake cell except inside the single-tick
// transition window of Update.
type Snake struct {
	Body      []int
	Direction Direction
}

func (s *Snake) Head() int {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Tail() int {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Move pushes a new head index onto the body.
func (s *Snake) Move(idx int) {
	s.Body = append(s.Body, idx)
}

// RemoveTail pops the tail index off the body and returns it.
func (s *Snake) RemoveTail() int {
	tail := s.Body[0]
	s.Body = s.Body[1:]
	return tail
}
