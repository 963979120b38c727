package stats

import (
	"sort"
	"sync"
	"time"
)

// Record is one finished run
type Record struct {
	SessionID string
	StartTime time.Time
	EndTime   time.Time
	Length    int
	Capacity  int
	Outcome   string
}

// Duration is the wall time from the first move to the end of the run
func (r Record) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// Summary aggregates every recorded run
type Summary struct {
	GamesPlayed     int
	Wins            int
	BestLength      int
	AverageLength   float64
	MedianLength    float64
	LongestDuration time.Duration
}

// History holds the runs finished since the process started
type History struct {
	games []Record
	mutex sync.RWMutex
}

func NewHistory() *History {
	return &History{games: make([]Record, 0)}
}

func (h *History) Add(r Record) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.games = append(h.games, r)
}

// Records returns a copy of the recorded runs, oldest first
func (h *History) Records() []Record {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make([]Record, len(h.games))
	copy(out, h.games)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (h *History) Summary() Summary {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	var sum Summary
	if len(h.games) == 0 {
		return sum
	}

	lengths := make([]float64, 0, len(h.games))
	total := 0
	for _, g := range h.games {
		sum.GamesPlayed++
		if g.Outcome == OutcomeWin {
			sum.Wins++
		}
		if g.Length > sum.BestLength {
			sum.BestLength = g.Length
		}
		if d := g.Duration(); d > sum.LongestDuration {
			sum.LongestDuration = d
		}
		total += g.Length
		lengths = append(lengths, float64(g.Length))
	}

	sum.AverageLength = float64(total) / float64(len(h.games))

	sort.Float64s(lengths)
	mid := len(lengths) / 2
	if len(lengths)%2 == 0 {
		sum.MedianLength = (lengths[mid-1] + lengths[mid]) / 2
	} else {
		sum.MedianLength = lengths[mid]
	}
	return sum
}

const (
	OutcomeWin  = "win"
	OutcomeLoss = "loss"
)
