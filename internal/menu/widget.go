package menu

import (
	"image/color"
	"log/slog"
	"math"
	"time"
)

const (
	// TouchSlop is the distance a press travels before it becomes a drag.
	TouchSlop = 8
	// LongPressTimeout is how long a still press waits before long-clicking.
	LongPressTimeout = 500 * time.Millisecond
)

// Settings is the widget configuration surface.
type Settings struct {
	Corner      Corner
	ScalingType ScalingType
	ScrollType  ScrollMode

	AutoMinRadius   int // Lower bound for the auto radius
	AutoMaxRadius   int // Upper bound for the auto radius, negative for none
	FixedRadius     int
	CollapsedRadius int // Reveal radius while closed
	ShadowSize      int

	BackgroundColor color.RGBA
	RippleColor     color.RGBA
	ItemsTint       color.Color
	CornerIcon      string
}

// DefaultSettings returns a closed left-top menu with auto scaling.
func DefaultSettings() Settings {
	return Settings{
		Corner:          CornerLeftTop,
		ScalingType:     ScalingAuto,
		ScrollType:      ScrollBasic,
		AutoMinRadius:   0,
		AutoMaxRadius:   -1,
		CollapsedRadius: 60,
		ShadowSize:      20,
		BackgroundColor: color.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 0xff},
		RippleColor:     color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x66},
		CornerIcon:      "plus",
	}
}

// Validate rejects out-of-range enum values and negative sizes.
func (s Settings) Validate() error {
	switch {
	case !s.Corner.valid():
		return &ArgumentError{Param: "corner", Value: s.Corner}
	case !s.ScalingType.valid():
		return &ArgumentError{Param: "scaling_type", Value: s.ScalingType}
	case !s.ScrollType.valid():
		return &ArgumentError{Param: "scroll_type", Value: s.ScrollType}
	case s.CollapsedRadius < 0:
		return &ArgumentError{Param: "collapsed_radius", Value: s.CollapsedRadius}
	case s.FixedRadius < 0:
		return &ArgumentError{Param: "fixed_radius", Value: s.FixedRadius}
	case s.ShadowSize < 0:
		return &ArgumentError{Param: "shadow_size", Value: s.ShadowSize}
	}
	return nil
}

// Widget ties the positioner, state machine and trigger to a container of a
// given size and routes pointer input between them.
type Widget struct {
	settings Settings

	adapter    *Adapter
	pool       ViewPool
	animator   *Animator
	positioner *Positioner
	machine    *StateMachine
	trigger    *Trigger
	logger     *slog.Logger

	width, height int
	itemSize      int
	recyclerSize  int
	visibleSlots  int
	measured      bool
	initialized   bool
	attached      bool

	savedPosition int
	savedAngle    float64

	// OnSaveState receives the real position and angle offset on detach.
	OnSaveState func(position int, angle float64)

	clock time.Duration
	press press
}

type pressTarget int

const (
	pressNone pressTarget = iota
	pressTrigger
	pressItems
)

type press struct {
	target       pressTarget
	downX, downY int
	lastX, lastY int
	at           time.Duration
	dragging     bool
	longClicked  bool
}

// NewWidget creates a closed menu over adapter. create builds new item views.
func NewWidget(adapter *Adapter, create func() View, settings Settings, logger *slog.Logger) (*Widget, error) {
	if adapter == nil {
		return nil, &ArgumentError{Param: "adapter"}
	}
	if create == nil {
		return nil, &ArgumentError{Param: "create"}
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if adapter.logger == nil {
		adapter.logger = logger
	}
	adapter.SetItemsTint(settings.ItemsTint)

	w := &Widget{
		settings:      settings,
		adapter:       adapter,
		pool:          NewPool(adapter, create),
		animator:      NewAnimator(),
		logger:        logger,
		savedPosition: NoPosition,
		savedAngle:    UndefinedAngle,
	}
	w.positioner = NewPositioner(settings.Corner, w.pool, adapter, w.animator, WithLogger(logger))
	w.machine = NewStateMachine(w.positioner, w.animator, adapter, logger)
	w.trigger = NewTrigger(w.machine, w.animator, logger)
	w.trigger.SetRippleAlpha(float64(settings.RippleColor.A) / 0xff)
	return w, nil
}

func (w *Widget) Settings() Settings        { return w.settings }
func (w *Widget) Adapter() *Adapter         { return w.adapter }
func (w *Widget) Positioner() *Positioner   { return w.positioner }
func (w *Widget) Machine() *StateMachine    { return w.machine }
func (w *Widget) Trigger() *Trigger         { return w.trigger }
func (w *Widget) Animator() *Animator       { return w.animator }
func (w *Widget) ItemSize() int             { return w.itemSize }
func (w *Widget) RecyclerSize() int         { return w.recyclerSize }
func (w *Widget) VisibleSlots() int         { return w.visibleSlots }
func (w *Widget) ScrollMode() ScrollMode    { return w.adapter.ScrollMode() }
func (w *Widget) Size() (width, height int) { return w.width, w.height }

// SetCorner moves the menu to another corner.
func (w *Widget) SetCorner(c Corner) error {
	if !c.valid() {
		return &ArgumentError{Param: "corner", Value: c}
	}
	w.settings.Corner = c
	w.invalidate(func() {
		if err := w.positioner.SetCorner(c); err != nil {
			w.logger.Error("Failed to set menu corner", "error", err)
		}
	})
	return nil
}

// SetScalingType switches between auto and fixed radius selection.
func (w *Widget) SetScalingType(s ScalingType) error {
	if !s.valid() {
		return &ArgumentError{Param: "scaling_type", Value: s}
	}
	w.settings.ScalingType = s
	w.invalidate(nil)
	return nil
}

// SetScrollType sets the configured scroll mode. Endless may still be
// downgraded when the items fit in the visible slots.
func (w *Widget) SetScrollType(m ScrollMode) error {
	if !m.valid() {
		return &ArgumentError{Param: "scroll_type", Value: m}
	}
	w.settings.ScrollType = m
	w.invalidate(nil)
	return nil
}

func (w *Widget) SetAutoMinRadius(r int) {
	w.settings.AutoMinRadius = r
	w.invalidate(nil)
}

func (w *Widget) SetAutoMaxRadius(r int) {
	w.settings.AutoMaxRadius = r
	w.invalidate(nil)
}

func (w *Widget) SetFixedRadius(r int) error {
	if r < 0 {
		return &ArgumentError{Param: "fixed_radius", Value: r}
	}
	w.settings.FixedRadius = r
	w.invalidate(nil)
	return nil
}

func (w *Widget) SetCollapsedRadius(r int) error {
	if r < 0 {
		return &ArgumentError{Param: "collapsed_radius", Value: r}
	}
	w.settings.CollapsedRadius = r
	w.invalidate(nil)
	return nil
}

func (w *Widget) SetShadowSize(s int) error {
	if s < 0 {
		return &ArgumentError{Param: "shadow_size", Value: s}
	}
	w.settings.ShadowSize = s
	w.invalidate(nil)
	return nil
}

func (w *Widget) SetBackgroundColor(c color.RGBA) { w.settings.BackgroundColor = c }

func (w *Widget) SetRippleColor(c color.RGBA) {
	w.settings.RippleColor = c
	w.trigger.SetRippleAlpha(float64(c.A) / 0xff)
}

// SetItemsTint rebinds every item with a new tint. Nil clears it.
func (w *Widget) SetItemsTint(tint color.Color) {
	w.settings.ItemsTint = tint
	w.adapter.SetItemsTint(tint)
	w.invalidate(nil)
}

func (w *Widget) SetCornerIcon(name string) { w.settings.CornerIcon = name }

// NotifyItemsChanged relayouts after the adapter's items were replaced.
func (w *Widget) NotifyItemsChanged() {
	w.invalidate(nil)
}

// invalidate keeps the current item in place and redoes measure and layout.
func (w *Widget) invalidate(apply func()) {
	if w.initialized {
		if pos := w.positioner.CurrentPosition(); pos != NoPosition {
			w.savedPosition = w.adapter.RealPosition(pos)
			w.savedAngle = w.positioner.CurrentItemsAngleOffset()
		}
	}
	w.initialized = false
	if apply != nil {
		apply()
	}
	if w.measured {
		w.Resize(w.width, w.height)
	}
}

// Resize measures and lays out the widget for a container of the given size.
func (w *Widget) Resize(width, height int) {
	w.Measure(width, height)
	w.Layout()
}

// Measure picks the menu radius for the container size.
func (w *Widget) Measure(width, height int) {
	w.width, w.height = width, height
	s := w.settings

	sample := w.pool.Acquire(0)
	iw, ih := sample.Measure(width, height)
	w.pool.Recycle(sample)
	w.itemSize = int(float64(max(iw, ih)) * DefaultSpacing)

	size := min(width, height) - s.ShadowSize
	autoMax, autoMin := s.AutoMaxRadius, s.AutoMinRadius
	if (s.ScalingType == ScalingFixed || autoMax > size || autoMax < 0) && size > 0 {
		autoMax = size
	}
	autoMin = max(autoMin, s.CollapsedRadius+w.itemSize)
	autoMin = min(autoMin, autoMax)

	switch s.ScalingType {
	case ScalingAuto:
		n := w.adapter.RealItemCount()
		size = int(float64(w.itemSize*n*4)/(2*math.Pi)) + w.itemSize*5/8
		size = max(min(size, autoMax), autoMin)
	case ScalingFixed:
		size = max(min(s.FixedRadius, autoMax), autoMin)
	}
	w.recyclerSize = size
	if w.itemSize > 0 {
		w.visibleSlots = int(float64(size) * math.Pi / 2 / float64(w.itemSize))
	}
	w.measured = true

	w.machine.SetRadii(float64(s.CollapsedRadius), float64(size), float64(s.ShadowSize))
	w.trigger.SetBounds(w.cornerRect(s.CollapsedRadius))

	w.logger.Debug("Menu measured",
		"width", width, "height", height, "radius", size,
		"item_size", w.itemSize, "visible_slots", w.visibleSlots)
}

// Layout settles the scroll mode, restores the saved position and lays the items out.
func (w *Widget) Layout() {
	if !w.measured {
		return
	}
	if !w.initialized {
		n := w.adapter.RealItemCount()
		mode := w.settings.ScrollType
		if mode == ScrollEndless && n <= w.visibleSlots {
			w.logger.Debug("Endless scroll downgraded to basic", "items", n, "visible_slots", w.visibleSlots)
			mode = ScrollBasic
		}
		w.adapter.setScrollMode(mode)

		current := NoPosition
		switch {
		case n == 0:
		case mode == ScrollEndless && w.savedPosition == NoPosition:
			current = EndlessAnchor(n)
		case mode == ScrollEndless:
			current = EndlessAnchor(n) + RealIndex(w.savedPosition, n)
		case w.savedPosition != NoPosition:
			current = min(max(w.savedPosition, 0), n-1)
		}
		w.positioner.SetAngleOffset(w.savedAngle)
		if current != NoPosition {
			w.positioner.ScrollToPosition(current)
		}
	}
	w.positioner.Layout(w.recyclerSize, w.recyclerSize)
	w.initialized = true

	if w.machine.State() == StateOpen {
		if err := w.machine.Open(false); err != nil {
			w.logger.Warn("Failed to re-apply open menu", "error", err)
		}
	}
}

// Attach marks the widget live and lays it out if it was measured before.
func (w *Widget) Attach() {
	w.attached = true
	if w.measured {
		w.Layout()
	}
}

// Detach saves the current position and finalizes any running transition.
func (w *Widget) Detach() {
	w.attached = false
	w.machine.Detach(func(pos int, angle float64) {
		w.savedPosition, w.savedAngle = pos, angle
		if w.OnSaveState != nil {
			w.OnSaveState(pos, angle)
		}
	})
	w.initialized = false
	w.press = press{}
}

// Attached reports whether the widget is attached.
func (w *Widget) Attached() bool { return w.attached }

// RestoreState sets the real position and angle offset the next layout starts from.
func (w *Widget) RestoreState(position int, angle float64) {
	w.savedPosition = position
	w.savedAngle = angle
	w.initialized = false
	if w.attached && w.measured {
		w.Layout()
	}
}

// Open, Close and Toggle forward to the state machine.
func (w *Widget) Open(animated bool) error  { return w.machine.Open(animated) }
func (w *Widget) Close(animated bool) error { return w.machine.Close(animated) }
func (w *Widget) Toggle() error             { return w.machine.Toggle() }

// Advance moves every animation forward and fires pending long clicks.
func (w *Widget) Advance(dt time.Duration) {
	w.clock += dt
	w.animator.Advance(dt)

	p := &w.press
	if p.target == pressItems && !p.dragging && !p.longClicked && w.clock-p.at >= LongPressTimeout {
		p.longClicked = true
		if pos, ok := w.itemAt(p.downX, p.downY); ok {
			w.adapter.LongClick(pos)
		}
	}
}

// RecyclerBounds is the square, in container coordinates, the items are laid out in.
func (w *Widget) RecyclerBounds() Rect {
	return w.cornerRect(w.recyclerSize)
}

// CornerPoint returns the container corner the menu is anchored to.
func (w *Widget) CornerPoint() (int, int) {
	x, y := 0, 0
	if w.settings.Corner.IsRightSide() {
		x = w.width
	}
	if w.settings.Corner.IsBottomSide() {
		y = w.height
	}
	return x, y
}

func (w *Widget) cornerRect(size int) Rect {
	r := Rect{Left: 0, Top: 0, Right: size, Bottom: size}
	if w.settings.Corner.IsRightSide() {
		r.Left, r.Right = w.width-size, w.width
	}
	if w.settings.Corner.IsBottomSide() {
		r.Top, r.Bottom = w.height-size, w.height
	}
	return r
}

// PointerDown starts a press at container coordinates. It reports whether the menu took it.
func (w *Widget) PointerDown(x, y int) bool {
	w.press = press{downX: x, downY: y, lastX: x, lastY: y, at: w.clock}
	if w.trigger.Bounds().Contains(x, y) {
		if w.trigger.Down(x, y) {
			w.press.target = pressTrigger
			return true
		}
		return false
	}
	if !w.itemAreaActive() || !w.insideReveal(x, y) {
		return false
	}
	w.press.target = pressItems
	return true
}

// PointerMove tracks a press, scrolling the items once it moves past TouchSlop.
func (w *Widget) PointerMove(x, y int) bool {
	p := &w.press
	switch p.target {
	case pressTrigger:
		return w.trigger.Move(x, y)
	case pressItems:
		if !w.itemAreaActive() {
			return false
		}
		if !p.dragging {
			dx, dy := x-p.downX, y-p.downY
			if dx*dx+dy*dy < TouchSlop*TouchSlop {
				return true
			}
			p.dragging = true
		}
		if w.positioner.CanScroll() {
			if dx := p.lastX - x; dx != 0 {
				w.positioner.ScrollHorizontallyBy(dx)
			}
			if dy := p.lastY - y; dy != 0 {
				w.positioner.ScrollVerticallyBy(dy)
			}
		}
		p.lastX, p.lastY = x, y
		return true
	}
	return false
}

// PointerUp ends a press. A short still press clicks the item under it.
func (w *Widget) PointerUp(x, y int) bool {
	p := w.press
	w.press = press{}
	switch p.target {
	case pressTrigger:
		return w.trigger.Up(x, y)
	case pressItems:
		if p.dragging || p.longClicked || !w.itemAreaActive() {
			return true
		}
		if pos, ok := w.itemAt(x, y); ok {
			w.adapter.Click(pos)
		}
		return true
	}
	return false
}

// PointerCancel abandons a press.
func (w *Widget) PointerCancel() {
	if w.press.target == pressTrigger {
		w.trigger.Cancel()
	}
	w.press = press{}
}

func (w *Widget) itemAreaActive() bool {
	return w.machine.State() == StateOpen && w.machine.TouchEnabled()
}

func (w *Widget) insideReveal(x, y int) bool {
	cx, cy := w.CornerPoint()
	dx, dy := float64(x-cx), float64(y-cy)
	r := w.machine.RevealRadius()
	return dx*dx+dy*dy <= r*r
}

func (w *Widget) itemAt(x, y int) (int, bool) {
	b := w.RecyclerBounds()
	return w.positioner.ViewAt(x-b.Left, y-b.Top)
}
