package state

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depeter/cyclemenu/internal/menu"
)

func setupTestManager(t *testing.T) *Manager {
	t.Helper()

	m, err := OpenPath(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestGetMenuState_Empty(t *testing.T) {
	m := setupTestManager(t)

	s, err := m.GetMenuState()
	require.NoError(t, err)
	assert.Equal(t, menu.NoPosition, s.Position)
	assert.Equal(t, menu.UndefinedAngle, s.Angle)
	assert.False(t, s.Matches(menu.CornerLeftTop, menu.ScrollBasic, 5))
}

func TestSaveMenuState_Upserts(t *testing.T) {
	m := setupTestManager(t)
	at := time.Unix(1_700_000_000, 0)

	require.NoError(t, m.SaveMenuState(MenuState{
		Position: 3, Angle: 12.5, Corner: "left_top", ScrollType: "basic", ItemCount: 8, UpdatedAt: at,
	}))
	require.NoError(t, m.SaveMenuState(MenuState{
		Position: 6, Angle: -4.25, Corner: "right_bottom", ScrollType: "endless", ItemCount: 20, UpdatedAt: at,
	}))

	s, err := m.GetMenuState()
	require.NoError(t, err)
	assert.Equal(t, MenuState{
		Position: 6, Angle: -4.25, Corner: "right_bottom", ScrollType: "endless", ItemCount: 20, UpdatedAt: at,
	}, s)

	var rows int
	require.NoError(t, m.DB().QueryRow(`SELECT COUNT(*) FROM menu_state`).Scan(&rows))
	assert.Equal(t, 1, rows)
}

func TestSaveMenuState_StampsTime(t *testing.T) {
	m := setupTestManager(t)
	before := time.Now().Add(-time.Second)

	require.NoError(t, m.SaveMenuState(MenuState{Position: 1}))

	s, err := m.GetMenuState()
	require.NoError(t, err)
	assert.True(t, s.UpdatedAt.After(before))
}

func TestSaveMenuStateDebounced_FlushedOnClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "menu.db")
	m, err := OpenPath(path)
	require.NoError(t, err)

	m.SaveMenuStateDebounced(MenuState{Position: 1, Corner: "left_top"})
	m.SaveMenuStateDebounced(MenuState{Position: 4, Corner: "left_top"})
	require.NoError(t, m.Close())

	m, err = OpenPath(path)
	require.NoError(t, err)
	defer m.Close()

	s, err := m.GetMenuState()
	require.NoError(t, err)
	assert.Equal(t, 4, s.Position)
}

func TestSaveMenuStateDebounced_WritesAfterDelay(t *testing.T) {
	m := setupTestManager(t)

	m.SaveMenuStateDebounced(MenuState{Position: 2})

	assert.Eventually(t, func() bool {
		s, err := m.GetMenuState()
		return err == nil && s.Position == 2
	}, 5*saveDebounce, 20*time.Millisecond)
}

func TestClose_ReportsFlushFailure(t *testing.T) {
	m, err := OpenPath(":memory:")
	require.NoError(t, err)

	m.SaveMenuStateDebounced(MenuState{Position: 3})
	_, err = m.DB().Exec("DROP TABLE menu_state")
	require.NoError(t, err)

	err = m.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such table")
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestSaveMenuStateDebounced_LogsFailure(t *testing.T) {
	m := setupTestManager(t)
	var out lockedBuffer
	m.SetLogger(slog.New(slog.NewTextHandler(&out, nil)))

	_, err := m.DB().Exec("DROP TABLE menu_state")
	require.NoError(t, err)
	m.SaveMenuStateDebounced(MenuState{Position: 7})

	assert.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Failed to save menu state")
	}, 5*saveDebounce, 20*time.Millisecond)
	assert.Contains(t, out.String(), "position=7")
}

func TestSaveMenuState_CancelsPending(t *testing.T) {
	m := setupTestManager(t)

	m.SaveMenuStateDebounced(MenuState{Position: 9})
	require.NoError(t, m.SaveMenuState(MenuState{Position: 5}))
	time.Sleep(2 * saveDebounce)

	s, err := m.GetMenuState()
	require.NoError(t, err)
	assert.Equal(t, 5, s.Position)
}

func TestMenuStateMatches(t *testing.T) {
	saved := MenuState{Position: 4, Corner: "left_top", ScrollType: "endless", ItemCount: 10}

	tests := []struct {
		name   string
		corner menu.Corner
		scroll menu.ScrollMode
		count  int
		want   bool
	}{
		{"same layout", menu.CornerLeftTop, menu.ScrollEndless, 10, true},
		{"other corner", menu.CornerRightTop, menu.ScrollEndless, 10, false},
		{"other scroll type", menu.CornerLeftTop, menu.ScrollBasic, 10, false},
		{"items changed", menu.CornerLeftTop, menu.ScrollEndless, 12, false},
		{"position out of range", menu.CornerLeftTop, menu.ScrollEndless, 3, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, saved.Matches(tt.corner, tt.scroll, tt.count))
		})
	}
}
