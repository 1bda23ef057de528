// Package session is the client side of the game session: it accepts
// movement requests from the scene and hands them to its backends.
package session

import (
	"log"

	"github.com/google/uuid"

	"westmarch/pkg/engine/iso"
	"westmarch/pkg/game/config"
	"westmarch/pkg/game/movement"
)

// Backend is anything that consumes movement requests.
type Backend = movement.Sink

// Manager fans movement requests out to its backends and keeps counters for
// the HUD. Delivery is synchronous; the manager never waits for or retries a
// backend.
type Manager struct {
	id       uuid.UUID
	backends []Backend

	sent    int
	byKind  [3]int
	last    movement.Command
	hasLast bool
}

// NewManager creates a session with a fresh identifier
func NewManager(backends ...Backend) *Manager {
	return &Manager{
		id:       uuid.New(),
		backends: backends,
	}
}

// ID returns the session identifier.
func (m *Manager) ID() uuid.UUID {
	return m.id
}

// Attach adds a backend.
func (m *Manager) Attach(b Backend) {
	m.backends = append(m.backends, b)
}

// MoveRequest forwards a movement request to every backend.
func (m *Manager) MoveRequest(dir iso.Direction, kind movement.Kind) {
	m.sent++
	if kind >= movement.Stopped && kind <= movement.Running {
		m.byKind[kind]++
	}
	m.last = movement.Command{Direction: dir, Kind: kind}
	m.hasLast = true

	if config.Current().Logging.Debug {
		log.Printf("session %s: move %s", m.id, m.last)
	}

	for _, b := range m.backends {
		b.MoveRequest(dir, kind)
	}
}

// Sent returns the number of requests issued.
func (m *Manager) Sent() int {
	return m.sent
}

// SentOf returns the number of requests issued with the given kind.
func (m *Manager) SentOf(kind movement.Kind) int {
	if kind < movement.Stopped || kind > movement.Running {
		return 0
	}
	return m.byKind[kind]
}

// Last returns the most recent request.
func (m *Manager) Last() (movement.Command, bool) {
	return m.last, m.hasLast
}
