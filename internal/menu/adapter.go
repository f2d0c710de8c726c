package menu

import (
	"image/color"
	"log/slog"
)

// Item is one menu entry.
type Item struct {
	Icon  string     // Icon name resolved by the container
	Color color.RGBA // Item background color
	ID    int        // Application-specific identifier
}

// ItemSource exposes item data by real index.
type ItemSource interface {
	Count() int
	ItemAt(realIndex int) Item
}

// Adapter owns the menu items and maps logical positions onto them.
// In endless mode it reports EndlessItemCount so the positioner treats
// the position space as unbounded.
type Adapter struct {
	items []Item
	mode  ScrollMode
	tint  color.Color

	OnMenuItemClick     func(realPosition int)
	OnMenuItemLongClick func(realPosition int)

	logger *slog.Logger
}

// NewAdapter creates an empty adapter in basic mode.
func NewAdapter(logger *slog.Logger) *Adapter {
	return &Adapter{logger: logger}
}

func (a *Adapter) Count() int { return len(a.items) }

func (a *Adapter) ItemAt(realIndex int) Item { return a.items[realIndex] }

// RealItemCount returns the number of stored items.
func (a *Adapter) RealItemCount() int { return len(a.items) }

// ItemCount is the size of the logical position space.
func (a *Adapter) ItemCount() int {
	if a.mode == ScrollEndless {
		return EndlessItemCount
	}
	return len(a.items)
}

// ScrollMode returns the effective mode.
func (a *Adapter) ScrollMode() ScrollMode { return a.mode }

func (a *Adapter) setScrollMode(m ScrollMode) { a.mode = m }

// RealPosition maps a logical position to an item index in [0, n).
// It returns NoPosition when there are no items.
func (a *Adapter) RealPosition(logical int) int {
	return RealIndex(logical, len(a.items))
}

// RealIndex returns ((p mod n) + n) mod n, or NoPosition for n <= 0.
func RealIndex(p, n int) int {
	if n <= 0 {
		return NoPosition
	}
	return ((p % n) + n) % n
}

// EndlessAnchor returns the first multiple of n strictly above the middle of
// the endless position space, so scrolling either way stays far from its ends.
func EndlessAnchor(n int) int {
	if n <= 0 {
		return 0
	}
	mid := EndlessItemCount / 2
	return mid + (n - mid%n)
}

// AddItem appends one item.
func (a *Adapter) AddItem(item *Item) error {
	if item == nil {
		return &ArgumentError{Param: "item"}
	}
	a.items = append(a.items, *item)
	return nil
}

// AddItems appends items.
func (a *Adapter) AddItems(items []Item) error {
	if items == nil {
		return &ArgumentError{Param: "items"}
	}
	a.items = append(a.items, items...)
	return nil
}

// SetItems replaces all items.
func (a *Adapter) SetItems(items []Item) error {
	if items == nil {
		return &ArgumentError{Param: "items"}
	}
	a.items = append(a.items[:0:0], items...)
	return nil
}

// SetItemsTint sets the tint passed to views on bind. Nil clears it.
func (a *Adapter) SetItemsTint(tint color.Color) {
	a.tint = tint
}

// Bind binds the item at the real position of logical to v.
func (a *Adapter) Bind(v View, logical int) {
	idx := a.RealPosition(logical)
	if idx == NoPosition {
		return
	}
	v.Bind(a.items[idx], a.tint)
}

// Click forwards a click on a logical position as its real position.
func (a *Adapter) Click(logical int) {
	a.forward("click", a.OnMenuItemClick, logical)
}

// LongClick forwards a long click on a logical position as its real position.
func (a *Adapter) LongClick(logical int) {
	a.forward("long_click", a.OnMenuItemLongClick, logical)
}

func (a *Adapter) forward(name string, fn func(int), logical int) {
	if fn == nil {
		return
	}
	idx := a.RealPosition(logical)
	if idx == NoPosition {
		return
	}
	safeCall(a.logger, name, func() { fn(idx) })
}

// safeCall runs a listener, logging instead of propagating a panic.
func safeCall(logger *slog.Logger, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil && logger != nil {
			logger.Error("Menu listener panicked", "listener", name, "panic", r)
		}
	}()
	fn()
}
