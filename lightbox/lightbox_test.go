package lightbox

import (
	"errors"
	"math/rand"
	"testing"
)

func shots(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = string(rune('a'+i)) + ".png"
	}
	return out
}

func TestNewIsClosed(t *testing.T) {
	lb := New(shots(3), NewTarget())
	if lb.IsOpen() {
		t.Fatal("new lightbox should be closed")
	}
	if _, ok := lb.Selected(); ok {
		t.Fatal("Selected should report closed")
	}
	if _, ok := lb.Current(); ok {
		t.Fatal("Current should report closed")
	}
}

func TestOpenAt(t *testing.T) {
	lb := New(shots(3), nil)
	if err := lb.OpenAt(2); err != nil {
		t.Fatalf("OpenAt(2): %v", err)
	}
	i, ok := lb.Selected()
	if !ok || i != 2 {
		t.Fatalf("Selected = %d, %v; want 2, true", i, ok)
	}
	if cur, _ := lb.Current(); cur != "c.png" {
		t.Errorf("Current = %q, want c.png", cur)
	}
	// Open to open jumps directly.
	if err := lb.OpenAt(0); err != nil {
		t.Fatalf("OpenAt(0): %v", err)
	}
	if i, _ := lb.Selected(); i != 0 {
		t.Errorf("Selected = %d, want 0", i)
	}
}

func TestOpenAtOutOfRange(t *testing.T) {
	tests := []struct {
		n, i int
	}{
		{0, 0},
		{3, -1},
		{3, 3},
		{1, 1},
	}
	for _, tt := range tests {
		lb := New(shots(tt.n), nil)
		err := lb.OpenAt(tt.i)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("n=%d OpenAt(%d) err = %v, want ErrIndexOutOfRange", tt.n, tt.i, err)
		}
		if lb.IsOpen() {
			t.Errorf("n=%d OpenAt(%d) should leave lightbox closed", tt.n, tt.i)
		}
	}
}

func TestOpenAtOutOfRangeKeepsOpenState(t *testing.T) {
	lb := New(shots(2), nil)
	_ = lb.OpenAt(1)
	if err := lb.OpenAt(5); err == nil {
		t.Fatal("expected error")
	}
	if i, ok := lb.Selected(); !ok || i != 1 {
		t.Errorf("Selected = %d, %v; want 1, true", i, ok)
	}
}

func TestNextPreviousWrap(t *testing.T) {
	lb := New(shots(3), nil)
	_ = lb.OpenAt(2)
	lb.Next()
	if i, _ := lb.Selected(); i != 0 {
		t.Errorf("Next from 2 = %d, want 0", i)
	}
	lb.Previous()
	if i, _ := lb.Selected(); i != 2 {
		t.Errorf("Previous from 0 = %d, want 2", i)
	}
}

func TestNextCyclesBack(t *testing.T) {
	for n := 1; n <= 6; n++ {
		for start := 0; start < n; start++ {
			lb := New(shots(n), nil)
			_ = lb.OpenAt(start)
			for k := 0; k < n; k++ {
				lb.Next()
			}
			if i, _ := lb.Selected(); i != start {
				t.Errorf("n=%d start=%d: Next^n = %d", n, start, i)
			}
			for k := 0; k < n; k++ {
				lb.Previous()
			}
			if i, _ := lb.Selected(); i != start {
				t.Errorf("n=%d start=%d: Previous^n = %d", n, start, i)
			}
		}
	}
}

func TestPreviousUndoesNext(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for start := 0; start < n; start++ {
			lb := New(shots(n), nil)
			_ = lb.OpenAt(start)
			lb.Next()
			lb.Previous()
			if i, _ := lb.Selected(); i != start {
				t.Errorf("n=%d start=%d: Previous(Next) = %d", n, start, i)
			}
		}
	}
}

func TestSingleScreenshotStaysPut(t *testing.T) {
	lb := New(shots(1), nil)
	if lb.CanNavigate() {
		t.Error("CanNavigate should be false for one screenshot")
	}
	if err := lb.OpenAt(0); err != nil {
		t.Fatalf("OpenAt(0): %v", err)
	}
	for k := 0; k < 4; k++ {
		lb.Next()
		lb.Previous()
		lb.HandleKey(KeyRight)
		lb.HandleKey(KeyLeft)
	}
	if i, ok := lb.Selected(); !ok || i != 0 {
		t.Errorf("Selected = %d, %v; want 0, true", i, ok)
	}
	lb.Close()
	if lb.IsOpen() {
		t.Error("Close should apply with one screenshot")
	}
}

func TestNavigationWhileClosedIsNoop(t *testing.T) {
	lb := New(shots(3), nil)
	lb.Next()
	lb.Previous()
	if lb.IsOpen() {
		t.Fatal("navigation must not open the lightbox")
	}
}

func TestCloseFromAnyState(t *testing.T) {
	target := NewTarget()
	lb := New(shots(2), target)

	lb.Close()
	if lb.IsOpen() || target.Len() != 0 {
		t.Fatalf("Close from closed: open=%v listeners=%d", lb.IsOpen(), target.Len())
	}

	_ = lb.OpenAt(1)
	lb.Close()
	if lb.IsOpen() || target.Len() != 0 {
		t.Fatalf("Close from open: open=%v listeners=%d", lb.IsOpen(), target.Len())
	}
}

func TestListenerScopedToOpenState(t *testing.T) {
	target := NewTarget()
	lb := New(shots(3), target)
	if target.Len() != 0 {
		t.Fatalf("closed lightbox holds %d listeners", target.Len())
	}
	_ = lb.OpenAt(0)
	_ = lb.OpenAt(1)
	lb.Next()
	if target.Len() != 1 {
		t.Fatalf("open lightbox holds %d listeners, want 1", target.Len())
	}
	target.Dispatch(KeyEscape)
	if lb.IsOpen() {
		t.Fatal("Escape should close")
	}
	if target.Len() != 0 {
		t.Fatalf("listener leaked after Escape: %d", target.Len())
	}
}

func TestTeardownReleasesListener(t *testing.T) {
	target := NewTarget()
	lb := New(shots(3), target)
	_ = lb.OpenAt(0)
	lb.Teardown()
	lb.Teardown()
	if target.Len() != 0 {
		t.Fatalf("listener leaked after teardown: %d", target.Len())
	}
}

func TestKeysDriveNavigation(t *testing.T) {
	target := NewTarget()
	lb := New(shots(3), target)
	_ = lb.OpenAt(0)

	target.Dispatch(KeyRight)
	target.Dispatch(KeyRight)
	if i, _ := lb.Selected(); i != 2 {
		t.Fatalf("after two rights = %d, want 2", i)
	}
	target.Dispatch(KeyRight)
	if i, _ := lb.Selected(); i != 0 {
		t.Fatalf("wrap right = %d, want 0", i)
	}
	target.Dispatch(KeyLeft)
	if i, _ := lb.Selected(); i != 2 {
		t.Fatalf("wrap left = %d, want 2", i)
	}
	target.Dispatch(KeyOther)
	if i, _ := lb.Selected(); i != 2 {
		t.Fatalf("unrelated key moved index to %d", i)
	}
}

func TestCardsDoNotShareKeys(t *testing.T) {
	target := NewTarget()
	a := New(shots(3), target)
	b := New(shots(4), target)

	_ = a.OpenAt(0)
	target.Dispatch(KeyRight)
	if i, _ := a.Selected(); i != 1 {
		t.Errorf("a = %d, want 1", i)
	}
	if b.IsOpen() {
		t.Error("closed card reacted to key press")
	}

	_ = b.OpenAt(3)
	if target.Len() != 2 {
		t.Fatalf("listeners = %d, want 2", target.Len())
	}
	target.Dispatch(KeyRight)
	if i, _ := a.Selected(); i != 2 {
		t.Errorf("a = %d, want 2", i)
	}
	if i, _ := b.Selected(); i != 0 {
		t.Errorf("b = %d, want 0", i)
	}

	a.Close()
	if target.Len() != 1 {
		t.Fatalf("listeners after closing a = %d, want 1", target.Len())
	}
}

func TestKeysReadCurrentLength(t *testing.T) {
	target := NewTarget()
	lb := New(shots(2), target)
	_ = lb.OpenAt(1)

	lb.SetScreenshots(shots(5))
	target.Dispatch(KeyRight)
	if i, _ := lb.Selected(); i != 2 {
		t.Fatalf("Next after growing to 5 = %d, want 2", i)
	}
}

func TestSetScreenshots(t *testing.T) {
	target := NewTarget()
	lb := New(shots(5), target)
	_ = lb.OpenAt(4)

	lb.SetScreenshots(shots(3))
	if i, ok := lb.Selected(); !ok || i != 2 {
		t.Fatalf("after shrink Selected = %d, %v; want 2, true", i, ok)
	}

	lb.SetScreenshots(nil)
	if lb.IsOpen() {
		t.Fatal("empty list should close the lightbox")
	}
	if target.Len() != 0 {
		t.Fatalf("listener leaked after emptying: %d", target.Len())
	}
}

func TestRandomSequencesKeepIndexValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	target := NewTarget()
	for n := 0; n <= 5; n++ {
		lb := New(shots(n), target)
		for step := 0; step < 500; step++ {
			switch rng.Intn(6) {
			case 0:
				_ = lb.OpenAt(rng.Intn(n+2) - 1)
			case 1:
				lb.Next()
			case 2:
				lb.Previous()
			case 3:
				lb.Close()
			case 4:
				target.Dispatch(Key(rng.Intn(4)))
			case 5:
				lb.HandleKey(KeyRight)
			}
			if i, ok := lb.Selected(); ok && (i < 0 || i >= n) {
				t.Fatalf("n=%d step=%d: index %d out of range", n, step, i)
			}
			if n == 0 && lb.IsOpen() {
				t.Fatalf("n=0 lightbox opened at step %d", step)
			}
		}
		lb.Teardown()
	}
	if target.Len() != 0 {
		t.Fatalf("listeners leaked: %d", target.Len())
	}
}

func TestIndexHelpers(t *testing.T) {
	tests := []struct {
		i, n, next, prev int
	}{
		{0, 1, 0, 0},
		{0, 3, 1, 2},
		{2, 3, 0, 1},
		{0, 0, 0, 0},
	}
	for _, tt := range tests {
		if got := NextIndex(tt.i, tt.n); got != tt.next {
			t.Errorf("NextIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.next)
		}
		if got := PrevIndex(tt.i, tt.n); got != tt.prev {
			t.Errorf("PrevIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.prev)
		}
	}
}
