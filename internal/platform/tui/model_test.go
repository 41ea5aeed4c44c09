package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/scenelab/internal/core"
	_ "github.com/vovakirdan/scenelab/internal/examples"
	"github.com/vovakirdan/scenelab/internal/registry"
	"github.com/vovakirdan/scenelab/internal/storage"
)

func newTestModel(t *testing.T, id string, store *storage.Store) Model {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	m, err := NewModel(id, store, core.DefaultConfig())
	require.NoError(t, err)
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyMsg(s string) tea.KeyMsg {
	if s == "ctrl+c" {
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model, n int) Model {
	for i := 0; i < n; i++ {
		m = send(m, TickMsg(time.Now()))
	}
	return m
}

func TestNewModelUnknownExample(t *testing.T) {
	_, err := NewModel("nope", nil, core.DefaultConfig())
	var nf *registry.NotFoundError
	assert.ErrorAs(t, err, &nf)
}

func TestTickAdvancesScene(t *testing.T) {
	m := newTestModel(t, "basic", nil)
	m = tick(m, 10)
	assert.Equal(t, 10, m.Scene().Ticks())

	box, ok := m.Scene().Find("box")
	require.True(t, ok)
	assert.InDelta(t, 0.1, box.Rotation[1], 1e-9)
}

func TestPauseAndSingleStep(t *testing.T) {
	m := newTestModel(t, "basic", nil)

	m = send(m, keyMsg("p"))
	assert.True(t, m.Paused())
	m = tick(m, 5)
	assert.Equal(t, 0, m.Scene().Ticks())

	m = send(m, keyMsg("n"))
	assert.Equal(t, 1, m.Scene().Ticks())

	m = send(m, keyMsg("p"))
	assert.False(t, m.Paused())
	m = tick(m, 2)
	assert.Equal(t, 3, m.Scene().Ticks())
}

func TestRestartRebuildsAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t, "animation", store)
	m = tick(m, 30)
	digest := m.Scene().Digest()

	m = send(m, keyMsg("r"))
	assert.Equal(t, 0, m.Scene().Ticks())

	runs, err := store.RecentRuns("animation", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 30, runs[0].Ticks)
	assert.Equal(t, digest, runs[0].Digest)

	// Same seed, same ticks, same state.
	m = tick(m, 30)
	assert.Equal(t, digest, m.Scene().Digest())

	next, cmd := m.Update(keyMsg("q"))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())

	runs, err = store.RecentRuns("animation", 10)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestToggleEmitter(t *testing.T) {
	m := newTestModel(t, "particles", nil)
	m = tick(m, 10)
	cloud, _ := m.Scene().Find("particles")
	assert.NotEmpty(t, cloud.Points)

	m = send(m, keyMsg("s"))
	m = tick(m, 120)
	assert.Empty(t, cloud.Points)
	assert.Contains(t, m.View(), "stopped")
}

func TestViewShowsNodes(t *testing.T) {
	m := newTestModel(t, "lighting", nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	view := m.View()

	assert.Contains(t, view, "Lighting")
	assert.Contains(t, view, "light0")
	assert.Contains(t, view, "mesh/sphere")
	assert.Contains(t, view, "#ff0000")
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, "basic", nil)
	short := m.View()
	m = send(m, keyMsg("?"))
	full := m.View()
	assert.True(t, strings.Contains(full, "step one tick"))
	assert.False(t, strings.Contains(short, "step one tick"))
}

func TestFillBar(t *testing.T) {
	assert.Equal(t, "[....................]", fillBar(0))
	assert.Equal(t, "[##########..........]", fillBar(0.5))
	assert.Equal(t, "[####################]", fillBar(2))
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir for toolchains that predate it.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", dir)
	t.Cleanup(func() {
		if err := os.Chdir(oldwd); err != nil {
			panic("testing.Chdir: " + err.Error())
		}
	})
}
