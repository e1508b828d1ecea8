package lightbox

import "sync"

// Key is a keyboard key relevant to the lightbox.
type Key int

const (
	KeyOther Key = iota
	KeyLeft
	KeyRight
	KeyEscape
)

// String returns the DOM KeyboardEvent.key name for k.
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "ArrowLeft"
	case KeyRight:
		return "ArrowRight"
	case KeyEscape:
		return "Escape"
	default:
		return "Unidentified"
	}
}

// ParseKey maps a DOM KeyboardEvent.key name to a Key.
func ParseKey(name string) Key {
	switch name {
	case "ArrowLeft", "Left":
		return KeyLeft
	case "ArrowRight", "Right":
		return KeyRight
	case "Escape", "Esc":
		return KeyEscape
	default:
		return KeyOther
	}
}

// Target is the page-level key event source. Every card on a page shares
// one Target; each open lightbox holds at most one subscription on it.
// The zero value is ready to use.
type Target struct {
	mu        sync.Mutex
	nextID    int
	listeners map[int]func(Key)
}

// NewTarget returns an empty Target.
func NewTarget() *Target {
	return &Target{listeners: make(map[int]func(Key))}
}

// Listen subscribes fn and returns a function that removes it. The returned
// function may be called more than once.
func (t *Target) Listen(fn func(Key)) (cancel func()) {
	t.mu.Lock()
	if t.listeners == nil {
		t.listeners = make(map[int]func(Key))
	}
	id := t.nextID
	t.nextID++
	t.listeners[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.listeners, id)
			t.mu.Unlock()
		})
	}
}

// Dispatch delivers k to every listener subscribed at the time of the call.
// Listeners run without the Target lock held, so they may unsubscribe.
func (t *Target) Dispatch(k Key) {
	t.mu.Lock()
	fns := make([]func(Key), 0, len(t.listeners))
	for _, fn := range t.listeners {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(k)
	}
}

// Len reports the number of active listeners.
func (t *Target) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners)
}
