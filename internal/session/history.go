package session

import "slices"

// AttemptRecord is one finished attempt. History lives only as long as the
// session; the store keeps nothing but the progress gate.
type AttemptRecord struct {
	ID    string
	Level int
	Won   bool
	Turns int
}

// LevelStats aggregates the finished attempts at one level.
type LevelStats struct {
	Level     int
	Attempts  int
	Wins      int
	BestTurns int // fewest turns in a win, 0 if never won
}

// History returns the finished attempts, oldest first.
func (s *Session) History() []AttemptRecord {
	return slices.Clone(s.history)
}

// Stats aggregates the history per level, in level order. Levels without
// attempts are omitted.
func (s *Session) Stats() []LevelStats {
	byLevel := make(map[int]*LevelStats)
	for _, rec := range s.history {
		st, ok := byLevel[rec.Level]
		if !ok {
			st = &LevelStats{Level: rec.Level}
			byLevel[rec.Level] = st
		}
		st.Attempts++
		if rec.Won {
			st.Wins++
			if st.BestTurns == 0 || rec.Turns < st.BestTurns {
				st.BestTurns = rec.Turns
			}
		}
	}

	stats := make([]LevelStats, 0, len(byLevel))
	for _, st := range byLevel {
		stats = append(stats, *st)
	}
	slices.SortFunc(stats, func(a, b LevelStats) int { return a.Level - b.Level })
	return stats
}
