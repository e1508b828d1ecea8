// Package lightbox implements the screenshot viewer of a project card: a
// closed/open state machine over an ordered list of screenshots with
// wrap-around navigation and keyboard control.
package lightbox

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIndexOutOfRange is returned by OpenAt for an index outside [0, N).
var ErrIndexOutOfRange = errors.New("lightbox: index out of range")

// NextIndex returns the index after i in a ring of n items.
func NextIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i + 1) % n
}

// PrevIndex returns the index before i in a ring of n items.
func PrevIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	return (i - 1 + n) % n
}

// Lightbox is the per-card viewer state. The zero value is not usable; call New.
//
// A key listener is held on the Target exactly while the lightbox is open.
type Lightbox struct {
	mu          sync.Mutex
	screenshots []string
	selected    int
	open        bool

	target *Target
	detach func()
}

// New returns a closed Lightbox over screenshots. target may be nil, in which
// case the lightbox only responds to direct calls.
func New(screenshots []string, target *Target) *Lightbox {
	return &Lightbox{
		screenshots: append([]string(nil), screenshots...),
		target:      target,
	}
}

// Len returns the current number of screenshots.
func (lb *Lightbox) Len() int {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return len(lb.screenshots)
}

// CanNavigate reports whether next/previous controls should be offered.
func (lb *Lightbox) CanNavigate() bool {
	return lb.Len() > 1
}

// IsOpen reports whether a screenshot is being shown.
func (lb *Lightbox) IsOpen() bool {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	return lb.open
}

// Selected returns the shown index, or ok=false when closed.
func (lb *Lightbox) Selected() (index int, ok bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if !lb.open {
		return 0, false
	}
	return lb.selected, true
}

// Current returns the filename being shown, or ok=false when closed.
func (lb *Lightbox) Current() (string, bool) {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	if !lb.open {
		return "", false
	}
	return lb.screenshots[lb.selected], true
}

// OpenAt shows screenshot i. It is valid from any state.
func (lb *Lightbox) OpenAt(i int) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	n := len(lb.screenshots)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, n)
	}
	lb.selected = i
	if !lb.open {
		lb.open = true
		if lb.target != nil {
			lb.detach = lb.target.Listen(lb.handleKey)
		}
	}
	return nil
}

// Next advances to the following screenshot, wrapping at the end.
func (lb *Lightbox) Next() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.step(NextIndex)
}

// Previous moves to the preceding screenshot, wrapping at the start.
func (lb *Lightbox) Previous() {
	lb.mu.Lock()
	defer lb.mu.Unlock()
	lb.step(PrevIndex)
}

func (lb *Lightbox) step(move func(i, n int) int) {
	n := len(lb.screenshots)
	if !lb.open || n <= 1 {
		return
	}
	lb.selected = move(lb.selected, n)
}

// Close returns to the closed state and releases the key listener.
// Closing a closed lightbox is a no-op.
func (lb *Lightbox) Close() {
	lb.mu.Lock()
	detach := lb.closeLocked()
	lb.mu.Unlock()
	if detach != nil {
		detach()
	}
}

// Teardown releases everything the lightbox holds. Call it when the card
// goes away; it is safe to call repeatedly.
func (lb *Lightbox) Teardown() {
	lb.Close()
}

func (lb *Lightbox) closeLocked() func() {
	lb.open = false
	lb.selected = 0
	detach := lb.detach
	lb.detach = nil
	return detach
}

// SetScreenshots replaces the screenshot list. An open lightbox closes when
// the list becomes empty and is clamped to the last item when its index no
// longer exists.
func (lb *Lightbox) SetScreenshots(screenshots []string) {
	lb.mu.Lock()
	lb.screenshots = append([]string(nil), screenshots...)
	var detach func()
	switch n := len(lb.screenshots); {
	case !lb.open:
	case n == 0:
		detach = lb.closeLocked()
	case lb.selected >= n:
		lb.selected = n - 1
	}
	lb.mu.Unlock()
	if detach != nil {
		detach()
	}
}

// HandleKey applies a key press as if it came from the page.
func (lb *Lightbox) HandleKey(k Key) {
	lb.handleKey(k)
}

// handleKey reads the state at the moment of the key press, never a value
// captured when the listener was attached.
func (lb *Lightbox) handleKey(k Key) {
	lb.mu.Lock()
	if !lb.open {
		lb.mu.Unlock()
		return
	}
	var detach func()
	switch k {
	case KeyRight:
		lb.step(NextIndex)
	case KeyLeft:
		lb.step(PrevIndex)
	case KeyEscape:
		detach = lb.closeLocked()
	}
	lb.mu.Unlock()
	if detach != nil {
		detach()
	}
}
