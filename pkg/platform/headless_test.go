package platform

import (
	"sync"
	"testing"

	"github.com/go-drift/ui/pkg/graphics"
	"github.com/go-drift/ui/pkg/view"
)

var _ Chrome = (*Headless)(nil)

func TestHeadless_States(t *testing.T) {
	h := NewHeadless(640, 480, graphics.Pt(1920, 1080))
	if h.ClientRect() != graphics.RectXYWH(0, 0, 640, 480) {
		t.Fatalf("client rect %s", h.ClientRect())
	}

	h.Maximize()
	if !h.IsMaximized() || h.ClientRect().W != 1920 {
		t.Errorf("maximize: %s", h)
	}

	h.FullScreen(true)
	if !h.IsFullScreen() {
		t.Fatal("not full screen")
	}
	h.FullScreen(false)
	if !h.IsMaximized() {
		t.Errorf("leaving full screen restored %s, want maximized", h.State())
	}

	h.Minimize()
	if !h.IsMinimized() || !h.ClientRect().IsEmpty() {
		t.Errorf("minimize: %s", h)
	}
	h.Restore()
	if h.State() != StateNormal {
		t.Errorf("restore: %s", h.State())
	}
}

func TestHeadless_QuitClosesQueue(t *testing.T) {
	h := NewHeadless(10, 10, graphics.Pt(10, 10))
	if !h.Post(view.Message{ID: 1}) {
		t.Fatal("post before quit rejected")
	}
	h.Quit()
	if !h.Done() {
		t.Error("Done after Quit")
	}
	if h.Post(view.Message{ID: 2}) || h.Dispatch(func() {}) {
		t.Error("queue accepted work after quit")
	}
	_, msgs := h.Drain()
	if len(msgs) != 1 || msgs[0].ID != 1 {
		t.Errorf("drained %v", msgs)
	}
}

func TestQueue_ConcurrentProducers(t *testing.T) {
	var q Queue
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(id int32) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				q.Post(view.Message{ID: id})
				q.Dispatch(func() {})
			}
		}(int32(i))
	}
	wg.Wait()
	cbs, msgs := q.Drain()
	if len(cbs) != 800 || len(msgs) != 800 {
		t.Errorf("drained %d callbacks %d messages, want 800 each", len(cbs), len(msgs))
	}
	if cbs, msgs := q.Drain(); len(cbs) != 0 || len(msgs) != 0 {
		t.Error("second drain not empty")
	}
	if q.Dispatch(nil) {
		t.Error("nil callback accepted")
	}
}
