package app

import (
	"sort"
	"sync"

	"github.com/irfansharif/foldlock/internal/pattern"
	"github.com/irfansharif/foldlock/internal/validate"
)

// DesignID identifies a design within a Library.
type DesignID int

// Design is a built pattern together with the config it came from and its
// validation report.
type Design struct {
	ID      DesignID
	Name    string
	Config  pattern.Config
	Pattern *pattern.Pattern
	Report  validate.Report
}

// Library holds built designs. It is safe for concurrent use.
type Library struct {
	mu        sync.Mutex
	designs   map[DesignID]*Design
	currentID DesignID // -1 if none
	nextID    DesignID
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{
		designs:   make(map[DesignID]*Design),
		currentID: -1,
	}
}

// Add stores d under a fresh ID and returns it.
func (l *Library) Add(d Design) *Design {
	l.mu.Lock()
	defer l.mu.Unlock()

	d.ID = l.nextID
	l.nextID++
	l.designs[d.ID] = &d
	return &d
}

// Replace swaps the stored design with id for d, keeping the ID.
func (l *Library) Replace(id DesignID, d Design) (*Design, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.designs[id]; !ok {
		return nil, false
	}
	d.ID = id
	l.designs[id] = &d
	return &d, true
}

// Remove removes a design by ID.
func (l *Library) Remove(id DesignID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.designs[id]; ok {
		delete(l.designs, id)
		return true
	}
	return false
}

// Get returns the design with id.
func (l *Library) Get(id DesignID) (*Design, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	d, ok := l.designs[id]
	return d, ok
}

// Len returns the number of designs.
func (l *Library) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.designs)
}

// Designs returns all designs sorted by ID (ascending), which is insertion
// order.
func (l *Library) Designs() []*Design {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sortedLocked()
}

func (l *Library) sortedLocked() []*Design {
	designs := make([]*Design, 0, len(l.designs))
	for _, d := range l.designs {
		designs = append(designs, d)
	}
	sort.Slice(designs, func(i, j int) bool { return designs[i].ID < designs[j].ID })
	return designs
}

// Find returns designs whose name is name, lowest ID first.
func (l *Library) Find(name string) []*Design {
	var out []*Design
	for _, d := range l.Designs() {
		if d.Name == name {
			out = append(out, d)
		}
	}
	return out
}

// Iter moves to the next or previous design in ID order, wrapping around,
// and returns it. With no current design it starts from the first or last.
func (l *Library) Iter(next bool) *Design {
	l.mu.Lock()
	defer l.mu.Unlock()

	designs := l.sortedLocked()
	if len(designs) == 0 {
		l.currentID = -1
		return nil
	}

	if l.currentID < 0 {
		d := designs[0]
		if !next {
			d = designs[len(designs)-1]
		}
		l.currentID = d.ID
		return d
	}

	direction := 1
	if !next {
		direction = -1
	}
	pos := -1
	for i, d := range designs {
		if d.ID == l.currentID {
			pos = i
			break
		}
	}
	if pos == -1 {
		pos = 0 // current design was removed, start from first
	}
	d := designs[(pos+direction+len(designs))%len(designs)]
	l.currentID = d.ID
	return d
}
