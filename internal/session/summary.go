package session

import "time"

// Summary describes what happened during one sitting.
type Summary struct {
	CompletedLessons []string
	Elapsed          time.Duration
	TotalCompleted   int
	Remaining        int
}

// Summary computes the current run's summary from live state.
func (s *Session) Summary() Summary {
	total := s.tracker.CompletedCount(s.catalog)
	return Summary{
		CompletedLessons: append([]string(nil), s.completedThisRun...),
		Elapsed:          time.Since(s.StartedAt),
		TotalCompleted:   total,
		Remaining:        s.catalog.Len() - total,
	}
}
