package grid

import (
	"math/rand"
	"sync"
	"time"

	"github.com/morikazuSuma/symbol-grounding/internal/model"
)

// Pick is one scheduled cell change: the cell and its replacement item.
type Pick struct {
	Cell model.Cell
	Item model.Item
}

// Session owns the mutable gallery state for one window: the loaded items,
// the cells, and the current cell-to-item assignments. A session is created
// once after a successful catalog load and discarded with the window;
// nothing is persisted and no display history is kept.
type Session struct {
	items []model.Item
	cells []model.Cell

	mu          sync.Mutex
	assignments []int // cell index -> item index
	rng         *rand.Rand
}

// NewSession shuffles the items uniformly and assigns shuffled[i % len] to
// cell i, reusing items cyclically when there are fewer items than cells.
// rng may be nil, in which case a time-seeded source is used.
func NewSession(items []model.Item, cellCount int, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{items: items, rng: rng}
	if len(items) == 0 || cellCount <= 0 {
		return s
	}

	perm := rng.Perm(len(items))
	s.cells = make([]model.Cell, cellCount)
	s.assignments = make([]int, cellCount)
	for i := range s.cells {
		s.cells[i] = model.NewCell(i)
		s.assignments[i] = perm[i%len(perm)]
	}
	return s
}

// Len returns the number of cells.
func (s *Session) Len() int {
	return len(s.cells)
}

// Items returns the loaded items.
func (s *Session) Items() []model.Item {
	return s.items
}

// Cells returns the cells in grid order.
func (s *Session) Cells() []model.Cell {
	return s.cells
}

// ItemAt returns the item currently assigned to cell index i.
func (s *Session) ItemAt(i int) model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[s.assignments[i]]
}

// RefreshPick performs a single refresh step: one cell chosen uniformly at
// random, one replacement chosen uniformly among all items except the
// cell's current one. ok is false when no distinct replacement exists.
func (s *Session) RefreshPick() (Pick, bool) {
	picks := s.RefreshPicks(1)
	if len(picks) == 0 {
		return Pick{}, false
	}
	return picks[0], true
}

// RefreshPicks selects count distinct cells uniformly at random and gives
// each a replacement item chosen uniformly among all items except that
// cell's current one. The replacement never equals the current item; with a
// single-item dataset no picks are produced at all.
func (s *Session) RefreshPicks(count int) []Pick {
	s.mu.Lock()
	defer s.mu.Unlock()

	if count <= 0 || len(s.cells) == 0 || len(s.items) < 2 {
		return nil
	}
	if count > len(s.cells) {
		count = len(s.cells)
	}

	picks := make([]Pick, 0, count)
	for _, ci := range s.rng.Perm(len(s.cells))[:count] {
		// Draw from the n-1 items that are not currently in this cell.
		ii := s.rng.Intn(len(s.items) - 1)
		if ii >= s.assignments[ci] {
			ii++
		}
		s.assignments[ci] = ii
		picks = append(picks, Pick{Cell: s.cells[ci], Item: s.items[ii]})
	}
	return picks
}
