package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/crypto"
	"github.com/MKhiriev/keyforge/internal/logger"
	"github.com/MKhiriev/keyforge/internal/mock"
	"github.com/MKhiriev/keyforge/internal/service"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/internal/utils"
	"github.com/MKhiriev/keyforge/internal/validators"
	"github.com/MKhiriev/keyforge/models"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Prepare(id string) (func() error, error) {
	if f.err != nil {
		return nil, f.err
	}
	return func() error {
		f.copied = append(f.copied, id)
		return nil
	}, nil
}

func (f *fakeClipboard) Copy(id string) error {
	write, err := f.Prepare(id)
	if err != nil {
		return err
	}
	return write()
}

func newTestModel(t *testing.T) (RootModel, *mock.MockGenerationAdapter, *fakeClipboard) {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockGenerationAdapter(ctrl)
	manager := surface.NewManager(nil, logger.Nop())
	clip := &fakeClipboard{}

	services := &service.ClientServices{
		Generation: service.NewGenerationService(adapter, validators.NewGenerationValidator(), manager,
			crypto.NewKeyInspector(), utils.NewUUIDGenerator(), time.Second, logger.Nop()),
		Clipboard: clip,
	}

	m := NewRootModel(context.Background(), services, manager, models.ModePassphrase, time.Millisecond, models.NewAppBuildInfo("", "", ""))
	return m, adapter, clip
}

func press(t *testing.T, m RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// collect runs cmd and every command batched inside it.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func settled(t *testing.T, cmd tea.Cmd) settledMsg {
	t.Helper()
	for _, msg := range collect(cmd) {
		if s, ok := msg.(settledMsg); ok {
			return s
		}
	}
	t.Fatal("no settled message produced")
	return settledMsg{}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestRootModel_SubmitShowsResultAndCopies(t *testing.T) {
	m, adapter, clip := newTestModel(t)
	adapter.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(models.Envelope{Success: true, Data: []byte(`{"passphrase":"correct-horse-battery"}`)}, nil)

	m, cmd := press(t, m, keyEnter)
	require.NotNil(t, cmd)
	assert.True(t, m.state.Controls.Disabled)
	assert.Contains(t, m.View(), app.MsgGenerating)

	// enter is ignored while the controls are disabled
	m, again := press(t, m, keyEnter)
	assert.Nil(t, again)

	m, _ = press(t, m, settled(t, cmd))
	assert.False(t, m.state.Loading)
	assert.Contains(t, m.View(), "alt+1 copy")

	m, cmd = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	require.NotNil(t, cmd)
	m, revert := press(t, m, cmd())
	assert.Equal(t, []string{models.ArtifactPassphrase}, clip.copied)
	assert.Contains(t, m.View(), app.MsgCopied)

	require.NotNil(t, revert)
	m, _ = press(t, m, revert())
	assert.NotContains(t, m.View(), app.MsgCopied)
}

func TestRootModel_CopyFeedbackOnlyRevertsLatest(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, copiedMsg{artifactID: models.ArtifactPublicKey})
	first := m.copyToken
	m, _ = press(t, m, copiedMsg{artifactID: models.ArtifactPrivateKey})

	m, _ = press(t, m, copyRevertMsg{token: first})
	assert.Equal(t, models.ArtifactPrivateKey, m.copied)

	m, _ = press(t, m, copyRevertMsg{token: m.copyToken})
	assert.Empty(t, m.copied)
}

func TestRootModel_CopyFailureIsNonBlocking(t *testing.T) {
	m, _, clip := newTestModel(t)
	m.surface.Show(models.ModePassphrase, surface.Content{Artifacts: []surface.Artifact{{ID: models.ArtifactPassphrase, Text: "x"}}})
	clip.err = service.ErrClipboardUnsupported

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}, Alt: true})
	assert.Nil(t, cmd)
	assert.Contains(t, m.status, app.MsgCopyFailed)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}, Alt: true})
	assert.Equal(t, app.MsgNothingToCopy, m.status)
}

func TestRootModel_TabSwitchDropsPendingResult(t *testing.T) {
	m, adapter, _ := newTestModel(t)
	adapter.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return(models.Envelope{Success: true, Data: []byte(`{"passphrase":"stale"}`)}, nil)

	m, cmd := press(t, m, keyEnter)
	msg := settled(t, cmd)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF2})
	assert.Equal(t, models.ModeSSHKey, m.state.ActiveMode)
	assert.False(t, m.state.Controls.Disabled)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF1})
	m, _ = press(t, m, msg)

	assert.True(t, m.surface.Snapshot().Empty())
	assert.NotContains(t, m.View(), "stale")
}

func TestRootModel_TabNavigationWraps(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlLeft})
	assert.Equal(t, models.ModePGPKey, m.state.ActiveMode)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlRight})
	assert.Equal(t, models.ModePassphrase, m.state.ActiveMode)
}

func TestRootModel_ValidationErrorShownWithoutCall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF3})

	// focus the comment field and type a value with a space
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("my key")})

	m, cmd := press(t, m, keyEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "must not contain spaces")
	assert.Equal(t, app.MsgGenerate, m.state.Controls.Label)
}

func TestRootModel_EscAndOutsideClickDismiss(t *testing.T) {
	m, _, _ := newTestModel(t)

	m.surface.ShowError("boom")
	m, _ = press(t, m, keyEsc)
	assert.True(t, m.surface.Snapshot().Empty())

	m.surface.ShowError("boom")
	// a press inside the result region keeps it
	top, height := m.resultRows()
	require.Positive(t, height)
	m, _ = press(t, m, tea.MouseMsg{X: 3, Y: top, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.False(t, m.surface.Snapshot().Empty())

	m, _ = press(t, m, tea.MouseMsg{X: 3, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.True(t, m.surface.Snapshot().Empty())
}

func TestRootModel_HealthAndBuildInfo(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = press(t, m, healthMsg{})
	assert.Contains(t, m.View(), app.MsgServiceHealthy)

	m, _ = press(t, m, healthMsg{err: assert.AnError})
	assert.Contains(t, m.View(), app.MsgServiceUnhealthy)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyF10})
	assert.Contains(t, m.View(), "Build version: N/A")

	m, _ = press(t, m, keyEsc)
	assert.False(t, m.showBuildInfo)
}
