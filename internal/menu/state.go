package menu

import (
	"log/slog"
	"slices"
	"time"
)

const (
	// IconOpenRotation is the corner icon angle while the menu is open.
	IconOpenRotation = -45.0

	// ShadowMinCoefficient scales the shadow size while the menu is closed.
	ShadowMinCoefficient = 0.25

	iconDuration   = 300 * time.Millisecond
	iconTension    = 2.0
	revealDuration = 200 * time.Millisecond
)

var transitions = map[State][]State{
	StateClosed:         {StateInOpenProcess, StateOpen, StateClosed},
	StateInOpenProcess:  {StateOpen},
	StateOpen:           {StateInCloseProcess, StateClosed, StateOpen},
	StateInCloseProcess: {StateClosed},
}

// StateMachine drives the open/close choreography: reveal radius, shadow,
// corner icon rotation and the positioner's roll animations. It owns the
// menu state and gates scrolling on it.
type StateMachine struct {
	positioner *Positioner
	animator   *Animator
	adapter    *Adapter
	logger     *slog.Logger

	state State

	collapsedRadius float64
	outRadius       float64
	shadowSize      float64

	revealRadius float64
	shadow       float64
	iconRotation float64
	itemsShown   bool
	touchEnabled bool

	iconTween   *Tween
	revealTween *Tween
	shadowTween *Tween

	OnStateChanged  func(State)
	OnOpenComplete  func()
	OnCloseComplete func()

	applying bool
	deferred []func() error
}

// NewStateMachine creates a closed menu state machine.
func NewStateMachine(p *Positioner, animator *Animator, adapter *Adapter, logger *slog.Logger) *StateMachine {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateMachine{
		positioner:   p,
		animator:     animator,
		adapter:      adapter,
		logger:       logger,
		state:        StateClosed,
		touchEnabled: true,
	}
}

// State returns the current state.
func (m *StateMachine) State() State { return m.state }

// RevealRadius is the radius of the background circle.
func (m *StateMachine) RevealRadius() float64 { return m.revealRadius }

// ShadowSize is the width of the shadow ring around the reveal circle.
func (m *StateMachine) ShadowSize() float64 { return m.shadow }

// IconRotation is the corner icon angle in degrees.
func (m *StateMachine) IconRotation() float64 { return m.iconRotation }

// ItemsShown reports whether item views should be drawn.
func (m *StateMachine) ItemsShown() bool { return m.itemsShown }

// TouchEnabled reports whether the item area accepts touch input.
func (m *StateMachine) TouchEnabled() bool { return m.touchEnabled }

// CollapsedRadius returns the reveal radius while closed.
func (m *StateMachine) CollapsedRadius() float64 { return m.collapsedRadius }

// OutRadius returns the reveal radius while open.
func (m *StateMachine) OutRadius() float64 { return m.outRadius }

// SetRadii updates the reveal geometry and snaps the visuals of a terminal state to it.
func (m *StateMachine) SetRadii(collapsed, out, shadow float64) {
	m.collapsedRadius, m.outRadius, m.shadowSize = collapsed, out, shadow
	switch m.state {
	case StateClosed:
		m.revealRadius = collapsed
		m.shadow = shadow * ShadowMinCoefficient
	case StateOpen:
		m.revealRadius = out
		m.shadow = shadow
	}
}

// Toggle opens a closed menu and closes an open one, animated.
func (m *StateMachine) Toggle() error {
	if m.state.InProcess() {
		return &TransitionError{From: m.state, To: m.state, Err: ErrTransitionInProgress}
	}
	if m.state == StateClosed {
		return m.Open(true)
	}
	return m.Close(true)
}

// Open opens the menu. An already open menu has its terminal visuals re-applied.
func (m *StateMachine) Open(animated bool) error {
	return m.run(func() error {
		if m.state.InProcess() {
			return &TransitionError{From: m.state, To: StateOpen, Err: ErrTransitionInProgress}
		}
		if animated && m.state == StateClosed {
			return m.openAnimated()
		}
		return m.openNow()
	})
}

// Close closes the menu. A closed menu has its terminal visuals re-applied.
func (m *StateMachine) Close(animated bool) error {
	return m.run(func() error {
		if m.state.InProcess() {
			return &TransitionError{From: m.state, To: StateClosed, Err: ErrTransitionInProgress}
		}
		if animated && m.state == StateOpen {
			return m.closeAnimated()
		}
		return m.closeNow()
	})
}

// Detach finalizes any running transition synchronously after handing the
// current real position and angle offset to save.
func (m *StateMachine) Detach(save func(position int, angle float64)) {
	if save != nil {
		pos := m.positioner.CurrentPosition()
		if m.adapter != nil && pos != NoPosition {
			pos = m.adapter.RealPosition(pos)
		}
		angle := UndefinedAngle
		if pos != NoPosition {
			angle = m.positioner.CurrentItemsAngleOffset()
		}
		safeCall(m.logger, "save_state", func() { save(pos, angle) })
	}

	var err error
	switch m.state {
	case StateInCloseProcess:
		err = m.closeNow()
	case StateInOpenProcess:
		err = m.openNow()
	default:
		m.cancelTweens()
	}
	if err != nil {
		m.logger.Error("Failed to finalize menu state on detach", "error", err)
	}
}

func (m *StateMachine) openAnimated() error {
	m.setTouchEnabled(false)
	if err := m.transition(StateInOpenProcess); err != nil {
		return err
	}
	m.cancelTweens()

	m.iconTween = m.animator.Start(&Tween{
		From:         m.iconRotation,
		To:           IconOpenRotation,
		Duration:     iconDuration,
		Interpolator: Overshoot(iconTension),
		Set:          func(v float64) { m.iconRotation = v },
	})
	m.shadowTween = m.animator.Start(&Tween{
		From:     m.shadowSize * ShadowMinCoefficient,
		To:       m.shadowSize,
		Duration: revealDuration,
		Set:      func(v float64) { m.shadow = v },
	})
	m.revealTween = m.animator.Start(&Tween{
		From:     m.collapsedRadius,
		To:       m.outRadius,
		Duration: revealDuration,
		Set:      func(v float64) { m.revealRadius = v },
		OnEnd: func() {
			m.itemsShown = true
			m.positioner.RollIn(m.finishOpen)
		},
	})
	return nil
}

func (m *StateMachine) finishOpen() {
	err := m.run(func() error {
		if err := m.transition(StateOpen); err != nil {
			return err
		}
		m.setTouchEnabled(true)
		m.emit("open_complete", m.OnOpenComplete)
		return nil
	})
	if err != nil {
		m.logger.Warn("Menu open did not complete", "error", err)
	}
}

func (m *StateMachine) closeAnimated() error {
	m.setTouchEnabled(false)
	if err := m.transition(StateInCloseProcess); err != nil {
		return err
	}
	m.cancelTweens()

	m.iconTween = m.animator.Start(&Tween{
		From:         m.iconRotation,
		To:           0,
		Duration:     iconDuration,
		Interpolator: Overshoot(iconTension),
		Set:          func(v float64) { m.iconRotation = v },
	})
	m.positioner.RollOut(func() {
		m.itemsShown = false
		m.shadowTween = m.animator.Start(&Tween{
			From:     m.shadowSize,
			To:       m.shadowSize * ShadowMinCoefficient,
			Duration: revealDuration,
			Set:      func(v float64) { m.shadow = v },
		})
		m.revealTween = m.animator.Start(&Tween{
			From:     m.outRadius,
			To:       m.collapsedRadius,
			Duration: revealDuration,
			Set:      func(v float64) { m.revealRadius = v },
			OnEnd:    m.finishClose,
		})
	})
	return nil
}

func (m *StateMachine) finishClose() {
	err := m.run(func() error {
		if err := m.transition(StateClosed); err != nil {
			return err
		}
		m.setTouchEnabled(true)
		m.emit("close_complete", m.OnCloseComplete)
		return nil
	})
	if err != nil {
		m.logger.Warn("Menu close did not complete", "error", err)
	}
}

func (m *StateMachine) openNow() error {
	m.cancelTweens()
	m.revealRadius = m.outRadius
	m.shadow = m.shadowSize
	m.iconRotation = IconOpenRotation
	m.itemsShown = true
	if err := m.transition(StateOpen); err != nil {
		return err
	}
	m.setTouchEnabled(true)
	return nil
}

func (m *StateMachine) closeNow() error {
	m.cancelTweens()
	m.revealRadius = m.collapsedRadius
	m.shadow = m.shadowSize * ShadowMinCoefficient
	m.iconRotation = 0
	m.itemsShown = false
	if err := m.transition(StateClosed); err != nil {
		return err
	}
	m.setTouchEnabled(true)
	return nil
}

// transition is the only place the state changes.
func (m *StateMachine) transition(to State) error {
	from := m.state
	if !slices.Contains(transitions[from], to) {
		m.logger.Warn("Illegal menu state transition", "from", from.String(), "to", to.String())
		return &TransitionError{From: from, To: to, Err: ErrIllegalTransition}
	}
	m.state = to
	m.positioner.SetScrollEnabled(to == StateOpen)
	if from != to {
		m.logger.Debug("Menu state changed", "from", from.String(), "to", to.String())
		if m.OnStateChanged != nil {
			safeCall(m.logger, "state_changed", func() { m.OnStateChanged(to) })
		}
	}
	return nil
}

func (m *StateMachine) setTouchEnabled(enabled bool) {
	m.touchEnabled = enabled
	m.positioner.SetScrollEnabled(enabled && m.state == StateOpen)
}

func (m *StateMachine) cancelTweens() {
	m.iconTween.Cancel()
	m.revealTween.Cancel()
	m.shadowTween.Cancel()
	m.iconTween, m.revealTween, m.shadowTween = nil, nil, nil
	m.positioner.ClearAnimations()
}

func (m *StateMachine) emit(name string, fn func()) {
	if fn != nil {
		safeCall(m.logger, name, fn)
	}
}

// run applies fn, deferring requests made while another one is being applied.
func (m *StateMachine) run(fn func() error) error {
	if m.applying {
		m.deferred = append(m.deferred, fn)
		return nil
	}
	m.applying = true
	err := fn()
	for len(m.deferred) > 0 {
		next := m.deferred[0]
		m.deferred = m.deferred[1:]
		if derr := next(); derr != nil {
			m.logger.Warn("Deferred menu request failed", "error", derr)
		}
	}
	m.applying = false
	return err
}
