package nvg

import "time"

const frameTimerWindow = 64

// FrameTimer keeps a small ring of frame timestamps for an FPS readout.
type FrameTimer struct {
	stamps [frameTimerWindow]time.Time
	head   int
	count  int
}

func (t *FrameTimer) MarkFrame() {
	t.stamps[t.head] = time.Now()
	t.head = (t.head + 1) % frameTimerWindow
	if t.count < frameTimerWindow {
		t.count++
	}
}

// FPS is the average rate over the window, 0 until two frames exist.
func (t *FrameTimer) FPS() float32 {
	if t.count < 2 {
		return 0
	}
	newest := t.stamps[(t.head-1+frameTimerWindow)%frameTimerWindow]
	oldest := t.stamps[(t.head-t.count+frameTimerWindow)%frameTimerWindow]
	span := newest.Sub(oldest).Seconds()
	if span <= 0 {
		return 0
	}
	return float32(float64(t.count-1) / span)
}
