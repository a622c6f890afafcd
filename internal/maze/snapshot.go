package maze

// Snapshot captures the mutable part of an attempt for determinism testing.
type Snapshot struct {
	Level    int
	Turns    int
	Player   Position
	Monsters []Position // in ID order
	Status   Status
	Last     Outcome
}

// Snapshot returns the current engine snapshot.
func (e *Engine) Snapshot() Snapshot {
	monsters := make([]Position, len(e.state.Monsters))
	for i, m := range e.state.Monsters {
		monsters[i] = m.Pos
	}
	return Snapshot{
		Level:    e.state.Level,
		Turns:    e.turns,
		Player:   e.state.Player,
		Monsters: monsters,
		Status:   e.status,
		Last:     e.last,
	}
}

// Equal reports whether two snapshots describe the same position.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Level != o.Level || s.Turns != o.Turns || s.Player != o.Player ||
		s.Status != o.Status || s.Last != o.Last || len(s.Monsters) != len(o.Monsters) {
		return false
	}
	for i := range s.Monsters {
		if s.Monsters[i] != o.Monsters[i] {
			return false
		}
	}
	return true
}
