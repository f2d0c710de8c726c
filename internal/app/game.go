package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/cyclemenu/internal/config"
	"github.com/depeter/cyclemenu/internal/menu"
	"github.com/depeter/cyclemenu/internal/state"
	"github.com/depeter/cyclemenu/internal/ui"
)

// Game implements ebiten.Game around a single corner menu.
type Game struct {
	Config *config.Config
	Store  *state.Manager // nil disables persistence
	Menu   *menu.Widget
	Fan    *ui.Fan

	Width, Height int

	logger  *slog.Logger
	pointer ui.PointerTracker
	debug   bool
	status  string
	lastPos int
}

// NewGame builds the menu from the config's menu section and the given items.
func NewGame(cfg *config.Config, items []menu.Item, store *state.Manager, logger *slog.Logger) (*Game, error) {
	settings, err := cfg.Menu.Settings()
	if err != nil {
		return nil, err
	}

	adapter := menu.NewAdapter(logger)
	if err := adapter.SetItems(items); err != nil {
		return nil, err
	}

	itemSize := cfg.Menu.ItemSize
	if itemSize <= 0 {
		itemSize = ui.ItemSize
	}
	w, err := menu.NewWidget(adapter, func() menu.View { return ui.NewItemView(itemSize) }, settings, logger)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:  cfg,
		Store:   store,
		Menu:    w,
		Fan:     ui.NewFan(w),
		Width:   cfg.UI.Width,
		Height:  cfg.UI.Height,
		logger:  logger,
		debug:   cfg.UI.Debug,
		lastPos: menu.NoPosition,
	}

	adapter.OnMenuItemClick = func(pos int) {
		g.status = fmt.Sprintf("Clicked item %d (%s)", pos, adapter.ItemAt(pos).Icon)
		g.logger.Info("Menu item clicked", "position", pos)
	}
	adapter.OnMenuItemLongClick = func(pos int) {
		g.status = fmt.Sprintf("Long pressed item %d", pos)
		g.logger.Info("Menu item long pressed", "position", pos)
	}
	w.Machine().OnStateChanged = func(s menu.State) {
		g.logger.Debug("Menu state changed", "state", s.String())
	}
	w.OnSaveState = g.saveState

	g.restoreState()
	w.Attach()
	w.Resize(g.Width, g.Height)
	return g, nil
}

func (g *Game) restoreState() {
	if g.Store == nil {
		return
	}
	saved, err := g.Store.GetMenuState()
	if err != nil {
		g.logger.Warn("Failed to load menu state", "error", err)
		return
	}
	s := g.Menu.Settings()
	if !saved.Matches(s.Corner, s.ScrollType, g.Menu.Adapter().RealItemCount()) {
		return
	}
	g.Menu.RestoreState(saved.Position, saved.Angle)
	g.logger.Debug("Menu state restored", "position", saved.Position, "angle", saved.Angle)
}

func (g *Game) menuState(pos int, angle float64) state.MenuState {
	s := g.Menu.Settings()
	return state.MenuState{
		Position:   pos,
		Angle:      angle,
		Corner:     s.Corner.String(),
		ScrollType: s.ScrollType.String(),
		ItemCount:  g.Menu.Adapter().RealItemCount(),
	}
}

func (g *Game) saveState(pos int, angle float64) {
	if g.Store == nil {
		return
	}
	if err := g.Store.SaveMenuState(g.menuState(pos, angle)); err != nil {
		g.logger.Warn("Failed to save menu state", "error", err)
	}
}

// trackScroll queues a debounced save whenever the first visible item changes.
func (g *Game) trackScroll() {
	p := g.Menu.Positioner()
	pos := p.CurrentPosition()
	if pos == g.lastPos || pos == menu.NoPosition {
		return
	}
	g.lastPos = pos
	if g.Store != nil {
		realPos := g.Menu.Adapter().RealPosition(pos)
		g.Store.SaveMenuStateDebounced(g.menuState(realPos, p.CurrentItemsAngleOffset()))
	}
}

// Shutdown detaches the menu, which saves its position.
func (g *Game) Shutdown() {
	if g.Menu.Attached() {
		g.Menu.Detach()
	}
}

func (g *Game) Update() error {
	kb := &g.Config.Keybinds

	if keyJustPressed(kb.Quit) {
		g.Shutdown()
		return ebiten.Termination
	}
	if keyJustPressed(kb.Fullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	if keyJustPressed(kb.Debug) {
		g.debug = !g.debug
	}

	g.handleMenuKeys(kb)

	if ebiten.IsFocused() {
		g.pointer.Poll(g.Menu)
	} else {
		g.pointer.Cancel(g.Menu)
	}
	if _, dy := ui.MouseWheelDelta(); dy != 0 && g.Menu.Positioner().CanScroll() {
		g.Menu.Positioner().ScrollBy(int(-dy * ui.ScrollWheelSpeed))
	}

	g.Menu.Advance(time.Second / time.Duration(ebiten.TPS()))
	g.trackScroll()
	return nil
}

func (g *Game) handleMenuKeys(kb *config.KeybindConfig) {
	w := g.Menu

	if keyJustPressed(kb.Toggle) {
		if err := w.Toggle(); err != nil {
			g.logger.Debug("Toggle ignored", "error", err)
		}
	}

	if keyJustPressed(kb.Corner) {
		next := (w.Settings().Corner + 1) % 4
		if err := w.SetCorner(next); err != nil {
			g.logger.Warn("Failed to change corner", "error", err)
		}
		g.status = "Corner: " + next.String()
	}

	if keyJustPressed(kb.ScrollMode) {
		mode := menu.ScrollEndless
		if w.Settings().ScrollType == menu.ScrollEndless {
			mode = menu.ScrollBasic
		}
		if err := w.SetScrollType(mode); err != nil {
			g.logger.Warn("Failed to change scroll type", "error", err)
		}
		g.status = fmt.Sprintf("Scroll type: %s (effective %s)", mode, w.ScrollMode())
	}

	if keyJustPressed(kb.Scaling) {
		scaling := menu.ScalingFixed
		if w.Settings().ScalingType == menu.ScalingFixed {
			scaling = menu.ScalingAuto
		}
		if err := w.SetScalingType(scaling); err != nil {
			g.logger.Warn("Failed to change scaling", "error", err)
		}
		g.status = "Scaling: " + scaling.String()
	}

	p := w.Positioner()
	if p.CanScroll() {
		step := w.ItemSize() / 2
		if keyRepeating(kb.ScrollNext) {
			p.ScrollBy(step)
		}
		if keyRepeating(kb.ScrollBack) {
			p.ScrollBy(-step)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	g.Fan.Draw(screen)

	kb := g.Config.Keybinds
	hint := fmt.Sprintf("%s toggle   %s corner   %s scroll type   %s scaling   %s/%s scroll   %s quit",
		kb.Toggle, kb.Corner, kb.ScrollMode, kb.Scaling, kb.ScrollBack, kb.ScrollNext, kb.Quit)
	hw, _ := ui.MeasureText(hint, ui.FontSizeSmall)
	ui.DrawText(screen, hint, float64(g.Width)/2-hw/2, float64(g.Height)/2, ui.FontSizeSmall, ui.ColorTextSecondary)
	if g.status != "" {
		sw, _ := ui.MeasureText(g.status, ui.FontSizeBody)
		ui.DrawText(screen, g.status, float64(g.Width)/2-sw/2, float64(g.Height)/2+28, ui.FontSizeBody, ui.ColorText)
	}

	if g.debug {
		ui.DrawDebugOverlay(screen, g.Menu)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.Width || outsideHeight != g.Height {
		g.Width, g.Height = outsideWidth, outsideHeight
		g.Menu.Resize(g.Width, g.Height)
	}
	return g.Width, g.Height
}
