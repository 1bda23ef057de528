package input

// PointerSample is the pointer state read once per tick.
type PointerSample struct {
	X, Y     int
	LeftDown bool
}

// Frame is a consistent snapshot of everything the scene reads in one tick.
type Frame struct {
	Device  Device // source of Codes
	Pointer PointerSample
	Codes   []string // raw key codes pressed this tick
}

// Provider supplies one Frame per tick.
type Provider interface {
	// Next returns the next frame. ok is false when the source is exhausted.
	Next() (frame Frame, ok bool)
}
