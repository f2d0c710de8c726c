package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/cyclemenu/internal/logging"
)

func recordStates(m *StateMachine) *[]State {
	seen := []State{m.State()}
	m.OnStateChanged = func(s State) { seen = append(seen, s) }
	return &seen
}

func TestOpenAnimated(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	states := recordStates(m)
	opened := 0
	m.OnOpenComplete = func() { opened++ }

	require.NoError(t, m.Open(true))
	assert.Equal(t, StateInOpenProcess, m.State())
	assert.False(t, w.Positioner().ScrollEnabled())
	assert.False(t, m.TouchEnabled())

	settle(w)

	assert.Equal(t, []State{StateClosed, StateInOpenProcess, StateOpen}, *states)
	assert.Equal(t, 1, opened)
	assert.Equal(t, StateOpen, m.State())
	assert.Equal(t, m.OutRadius(), m.RevealRadius())
	assert.Equal(t, 200.0, m.RevealRadius())
	assert.Equal(t, float64(testSettings().ShadowSize), m.ShadowSize())
	assert.InDelta(t, IconOpenRotation, m.IconRotation(), 1e-9)
	assert.True(t, m.ItemsShown())
	assert.True(t, m.TouchEnabled())
	for _, av := range w.Positioner().Attached() {
		assert.InDelta(t, 0, av.View.Rotation(), 1e-9)
	}
}

func TestCloseAnimated(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	require.NoError(t, m.Open(false))
	states := recordStates(m)
	closed := 0
	m.OnCloseComplete = func() { closed++ }

	require.NoError(t, m.Close(true))
	assert.Equal(t, StateInCloseProcess, m.State())
	assert.False(t, w.Positioner().ScrollEnabled())

	settle(w)

	assert.Equal(t, []State{StateOpen, StateInCloseProcess, StateClosed}, *states)
	assert.Equal(t, 1, closed)
	assert.Equal(t, m.CollapsedRadius(), m.RevealRadius())
	assert.Equal(t, float64(testSettings().ShadowSize)*ShadowMinCoefficient, m.ShadowSize())
	assert.InDelta(t, 0, m.IconRotation(), 1e-9)
	assert.False(t, m.ItemsShown())
	assert.True(t, m.TouchEnabled())
	assert.False(t, w.Positioner().ScrollEnabled())
}

func TestCloseNotAnimated(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	require.NoError(t, m.Open(false))
	assert.Equal(t, StateOpen, m.State())
	assert.True(t, w.Positioner().ScrollEnabled())

	completions := 0
	m.OnOpenComplete = func() { completions++ }
	m.OnCloseComplete = func() { completions++ }

	require.NoError(t, m.Close(false))
	assert.Equal(t, StateClosed, m.State())
	assert.Equal(t, 60.0, m.RevealRadius())
	assert.False(t, w.Animator().Running())

	settle(w)
	assert.Zero(t, completions)
	assert.Equal(t, StateClosed, m.State())
}

func TestToggleRejectedInProcess(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()

	require.NoError(t, m.Toggle())
	assert.Equal(t, StateInOpenProcess, m.State())

	err := m.Toggle()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransitionInProgress)
	assert.ErrorIs(t, m.Close(false), ErrTransitionInProgress)
	assert.Equal(t, StateInOpenProcess, m.State())

	settle(w)
	require.NoError(t, m.Toggle())
	assert.Equal(t, StateInCloseProcess, m.State())
	settle(w)
	assert.Equal(t, StateClosed, m.State())
}

func TestDetachWhileClosing(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	require.NoError(t, m.Open(false))
	require.NoError(t, m.Close(true))
	w.Advance(frame)
	require.Equal(t, StateInCloseProcess, m.State())

	p := w.Positioner()
	wantPos := w.Adapter().RealPosition(p.CurrentPosition())
	wantAngle := p.CurrentItemsAngleOffset()

	closed := 0
	m.OnCloseComplete = func() { closed++ }
	var saves [][2]float64
	w.OnSaveState = func(pos int, angle float64) {
		saves = append(saves, [2]float64{float64(pos), angle})
	}

	w.Detach()
	assert.Equal(t, StateClosed, m.State())
	require.Len(t, saves, 1)
	assert.Equal(t, float64(wantPos), saves[0][0])
	assert.Equal(t, wantAngle, saves[0][1])
	assert.Equal(t, m.CollapsedRadius(), m.RevealRadius())

	settle(w)
	assert.Zero(t, closed)
	assert.Equal(t, StateClosed, m.State())
}

func TestDetachWhileOpening(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	require.NoError(t, m.Open(true))
	w.Advance(frame)

	saves := 0
	w.OnSaveState = func(int, float64) { saves++ }
	w.Detach()

	assert.Equal(t, StateOpen, m.State())
	assert.Equal(t, 1, saves)
	assert.Equal(t, m.OutRadius(), m.RevealRadius())
	assert.True(t, w.Positioner().ScrollEnabled())
	for _, av := range w.Positioner().Attached() {
		assert.Zero(t, av.View.Rotation())
	}
}

func TestDetachWithNothingAttachedKeepsAngleUndefined(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{"no items", 0},
		{"not laid out", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings()
			s.ScrollType = ScrollBasic
			w, err := NewWidget(newTestAdapter(t, tt.items), newFakeView, s, logging.Discard())
			require.NoError(t, err)

			savedPos, savedAngle := 0, 0.0
			w.OnSaveState = func(pos int, angle float64) { savedPos, savedAngle = pos, angle }
			w.Detach()
			assert.Equal(t, NoPosition, savedPos)
			assert.Equal(t, UndefinedAngle, savedAngle)

			w.Attach()
			w.Resize(300, 300)
			if tt.items == 0 {
				assert.Empty(t, w.Positioner().Attached())
				return
			}
			a, ok := w.Positioner().Angle(0)
			require.True(t, ok)
			assert.InDelta(t, 90-w.Positioner().Geometry().AnglePerItem/2, a, 1e-9)
		})
	}
}

func TestListenerPanicIsContained(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	m.OnStateChanged = func(State) { panic("listener failure") }
	m.OnOpenComplete = func() { panic("listener failure") }

	require.NotPanics(t, func() { require.NoError(t, m.Open(true)) })
	require.NotPanics(t, func() { settle(w) })
	assert.Equal(t, StateOpen, m.State())
}

func TestRequestFromListenerIsDeferred(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()

	var stateInListener State
	closed := 0
	m.OnOpenComplete = func() {
		require.NoError(t, m.Close(true))
		stateInListener = m.State()
	}
	m.OnCloseComplete = func() { closed++ }

	require.NoError(t, m.Open(true))
	settle(w)

	assert.Equal(t, StateOpen, stateInListener)
	assert.Equal(t, 1, closed)
	assert.Equal(t, StateClosed, m.State())
}

func TestOpenWhenOpenReappliesTerminalState(t *testing.T) {
	w := newTestWidget(t, 5, ScrollBasic)
	m := w.Machine()
	require.NoError(t, m.Open(false))
	states := recordStates(m)

	require.NoError(t, m.Open(true))
	assert.Equal(t, StateOpen, m.State())
	assert.False(t, w.Animator().Running())
	assert.Equal(t, []State{StateOpen}, *states)
}

func TestTransitionTable(t *testing.T) {
	for from, targets := range transitions {
		for _, to := range []State{StateClosed, StateInOpenProcess, StateOpen, StateInCloseProcess} {
			allowed := false
			for _, s := range targets {
				allowed = allowed || s == to
			}
			w := newTestWidget(t, 3, ScrollBasic)
			m := w.Machine()
			m.state = from
			err := m.transition(to)
			if allowed {
				assert.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, m.State())
			} else {
				assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", from, to)
				assert.Equal(t, from, m.State())
			}
		}
	}
}
