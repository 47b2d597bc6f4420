package ui

import (
	"context"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
)

const (
	statusScrollInterval = 120 * time.Millisecond
	statusScrollPadding  = "   "
)

// StatusTicker drives the panel's status line. Short texts render statically;
// a text wider than the visible area marquee-scrolls until it fits again or
// is replaced. SetText is safe to call from any goroutine because the label
// is fed through a string binding.
type StatusTicker struct {
	lbl    *widget.Label
	parent fyne.CanvasObject // measured for the visible width
	bind   binding.String

	mu     sync.Mutex
	cancel context.CancelFunc
	last   string
}

// NewStatusTicker binds the given label and shows the initial text.
func NewStatusTicker(lbl *widget.Label, parent fyne.CanvasObject, initial string) *StatusTicker {
	b := binding.NewString()
	lbl.Bind(b)
	_ = b.Set(initial)
	return &StatusTicker{lbl: lbl, parent: parent, bind: b, last: initial}
}

// Close stops any scrolling goroutine.
func (st *StatusTicker) Close() {
	st.mu.Lock()
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.mu.Unlock()
}

// Text returns the most recently set text.
func (st *StatusTicker) Text() string {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.last
}

// SetText replaces the status line, restarting the marquee when the new text
// overflows the visible width.
func (st *StatusTicker) SetText(text string) {
	st.mu.Lock()
	if st.cancel != nil {
		st.cancel()
		st.cancel = nil
	}
	st.last = text
	st.mu.Unlock()

	_ = st.bind.Set(text)

	visibleW := st.parent.Size().Width
	textW := measureLabelWidth(st.lbl, text)
	if !statusNeedsScroll(textW, visibleW) {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	st.mu.Lock()
	st.cancel = cancel
	st.mu.Unlock()
	go st.marquee(ctx, text, textW)
}

// marquee rotates the text left one rune per interval until canceled, the
// text changes, or the viewport grows enough to fit it.
func (st *StatusTicker) marquee(ctx context.Context, orig string, textW float32) {
	work := []rune(statusScrollPadding + orig + statusScrollPadding)
	if len(work) == 0 {
		return
	}
	offset := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(statusScrollInterval):
			st.mu.Lock()
			stopped := st.cancel == nil
			current := st.last
			st.mu.Unlock()
			if stopped || current != orig {
				return
			}
			if !statusNeedsScroll(textW, st.parent.Size().Width) {
				return
			}
			offset = (offset + 1) % len(work)
			display := string(work[offset:]) + string(work[:offset])
			_ = st.bind.Set(display)
		}
	}
}

// measureLabelWidth estimates the width the label would need for the text.
func measureLabelWidth(lbl *widget.Label, text string) float32 {
	if lbl == nil {
		return 0
	}
	tmp := widget.NewLabel(text)
	tmp.Alignment = lbl.Alignment
	tmp.TextStyle = lbl.TextStyle
	tmp.Importance = lbl.Importance
	tmp.Wrapping = lbl.Wrapping
	tmp.Truncation = lbl.Truncation
	return tmp.MinSize().Width
}
