package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCornerSides(t *testing.T) {
	tests := []struct {
		corner                  Corner
		left, right, up, bottom bool
	}{
		{CornerLeftTop, true, false, true, false},
		{CornerRightTop, false, true, true, false},
		{CornerLeftBottom, true, false, false, true},
		{CornerRightBottom, false, true, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.corner.String(), func(t *testing.T) {
			assert.Equal(t, tt.left, tt.corner.IsLeftSide())
			assert.Equal(t, tt.right, tt.corner.IsRightSide())
			assert.Equal(t, tt.up, tt.corner.IsUpSide())
			assert.Equal(t, tt.bottom, tt.corner.IsBottomSide())
		})
	}
}

func TestParseEnums(t *testing.T) {
	for _, c := range []Corner{CornerLeftTop, CornerRightTop, CornerLeftBottom, CornerRightBottom} {
		got, err := ParseCorner(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	for _, m := range []ScrollMode{ScrollBasic, ScrollEndless} {
		got, err := ParseScrollMode(" " + m.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	for _, s := range []ScalingType{ScalingAuto, ScalingFixed} {
		got, err := ParseScalingType(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseCorner("RIGHT_BOTTOM")
	require.NoError(t, err)
	assert.Equal(t, CornerRightBottom, got)
}

func TestParseEnumsRejectUnknown(t *testing.T) {
	_, err := ParseCorner("center")
	assert.True(t, IsInvalidArgument(err))
	_, err = ParseScrollMode("infinite")
	assert.True(t, IsInvalidArgument(err))
	_, err = ParseScalingType("")
	assert.True(t, IsInvalidArgument(err))
}

func TestInvalidCornerHasNoSides(t *testing.T) {
	c := Corner(9)
	assert.False(t, c.IsLeftSide())
	assert.False(t, c.IsRightSide())
	assert.Equal(t, "corner(9)", c.String())
}

func TestStateInProcess(t *testing.T) {
	assert.False(t, StateClosed.InProcess())
	assert.True(t, StateInOpenProcess.InProcess())
	assert.False(t, StateOpen.InProcess())
	assert.True(t, StateInCloseProcess.InProcess())
}

func TestRect(t *testing.T) {
	r := Rect{Left: 10, Top: 20, Right: 50, Bottom: 40}
	assert.Equal(t, 40, r.Width())
	assert.Equal(t, 20, r.Height())
	assert.Equal(t, Rect{Left: 15, Top: 15, Right: 55, Bottom: 35}, r.Offset(5, -5))
	assert.True(t, r.Contains(10, 20))
	assert.False(t, r.Contains(50, 30))

	x, y := r.Center()
	assert.Equal(t, 30.0, x)
	assert.Equal(t, 30.0, y)
}

func TestErrors(t *testing.T) {
	err := &ArgumentError{Param: "corner", Value: Corner(7)}
	assert.Equal(t, `cyclemenu: parameter "corner" has invalid value corner(7)`, err.Error())
	assert.Equal(t, `cyclemenu: parameter "items" can't be nil`, (&ArgumentError{Param: "items"}).Error())

	terr := &TransitionError{From: StateInOpenProcess, To: StateOpen, Err: ErrTransitionInProgress}
	assert.ErrorIs(t, terr, ErrTransitionInProgress)
	assert.Contains(t, terr.Error(), "in_open_process -> open")
}
