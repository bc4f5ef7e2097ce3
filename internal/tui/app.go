package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/keyforge/internal/app"
	"github.com/MKhiriev/keyforge/internal/service"
	"github.com/MKhiriev/keyforge/internal/surface"
	"github.com/MKhiriev/keyforge/models"
)

// DefaultCopyFeedback is how long "Copied!" stays next to a copy control.
const DefaultCopyFeedback = 2 * time.Second

// RootModel is the whole terminal UI:
// 1) keeps one form per mode and the active tab
// 2) owns the UIState and the output surface
// 3) runs generation calls and clipboard writes as commands
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices
	surface  *surface.Manager

	state   service.UIState
	forms   map[models.Mode]*generationForm
	spinner spinner.Model

	copyFeedback time.Duration
	copied       string
	copyToken    int
	status       string

	revealResult bool
	health       string
	buildInfo    models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel builds every form, running the option populator once per
// mode, and activates mode.
func NewRootModel(
	ctx context.Context,
	services *service.ClientServices,
	manager *surface.Manager,
	mode models.Mode,
	copyFeedback time.Duration,
	buildInfo models.AppBuildInfo,
) RootModel {
	if !mode.Valid() {
		mode = models.ModePassphrase
	}
	if copyFeedback <= 0 {
		copyFeedback = DefaultCopyFeedback
	}

	forms := make(map[models.Mode]*generationForm, len(models.Modes))
	for _, m := range models.Modes {
		f := newGenerationForm(m)
		forms[m] = &f
	}

	return RootModel{
		ctx:          ctx,
		services:     services,
		surface:      manager,
		state:        service.NewUIState(mode),
		forms:        forms,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		copyFeedback: copyFeedback,
		buildInfo:    buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case settledMsg:
		r.state = r.services.Generation.Settle(r.state, msg.outcome)
		return r, nil

	case copiedMsg:
		if msg.err != nil {
			r.status = app.MsgCopyFailed
			return r, nil
		}
		r.copyToken++
		r.copied = msg.artifactID
		token := r.copyToken
		return r, tea.Tick(r.copyFeedback, func(time.Time) tea.Msg { return copyRevertMsg{token: token} })

	case copyRevertMsg:
		if msg.token == r.copyToken {
			r.copied = ""
		}
		return r, nil

	case healthMsg:
		r.health = app.MsgServiceHealthy
		if msg.err != nil {
			r.health = app.MsgServiceUnhealthy
		}
		return r, nil

	case spinner.TickMsg:
		if !r.state.Loading {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.MouseMsg:
		return r.updateMouse(msg)

	case tea.KeyMsg:
		return r.updateKey(msg)
	}

	return r, nil
}

func (r RootModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.quit) {
		return r, tea.Quit
	}

	if r.showBuildInfo {
		if key.Matches(msg, keys.dismiss, keys.buildInfo) {
			r.showBuildInfo = false
		}
		return r, nil
	}

	form := r.forms[r.state.ActiveMode]

	switch {
	case key.Matches(msg, keys.buildInfo):
		r.showBuildInfo = true
		return r, nil

	case key.Matches(msg, keys.nextTab):
		return r.switchTab(nextMode(r.state.ActiveMode, 1))

	case key.Matches(msg, keys.prevTab):
		return r.switchTab(nextMode(r.state.ActiveMode, -1))

	case key.Matches(msg, keys.dismiss):
		r = r.dismiss()
		return r, nil

	case key.Matches(msg, keys.submit):
		return r.submit()

	case key.Matches(msg, keys.reveal):
		if !form.toggleSecret() {
			r.revealResult = !r.revealResult
		}
		return r, nil

	case key.Matches(msg, keys.next):
		return r, form.move(1)

	case key.Matches(msg, keys.prev):
		return r, form.move(-1)
	}

	for i, b := range keys.tabs {
		if key.Matches(msg, b) {
			return r.switchTab(models.Modes[i])
		}
	}
	for i, b := range keys.copy {
		if key.Matches(msg, b) {
			return r.copy(i)
		}
	}

	if key.Matches(msg, keys.left) && form.cycle(-1) {
		return r, nil
	}
	if key.Matches(msg, keys.right) && form.cycle(1) {
		return r, nil
	}
	if key.Matches(msg, keys.toggle) && form.flip() {
		return r, nil
	}

	return r, form.input(msg)
}

// updateMouse treats any press outside the result region as a dismiss.
func (r RootModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || r.surface.Snapshot().Empty() {
		return r, nil
	}

	top, height := r.resultRows()
	if msg.Y >= top && msg.Y < top+height {
		return r, nil
	}
	return r.dismiss(), nil
}

// resultRows returns the first screen row of the result region and its
// height in rows.
func (r RootModel) resultRows() (top, height int) {
	top = appStyle.GetPaddingTop() + strings.Count(r.viewTop(), "\n")
	height = strings.Count(r.viewResult(), "\n")
	return top, height
}

func (r RootModel) switchTab(mode models.Mode) (tea.Model, tea.Cmd) {
	if mode == r.state.ActiveMode {
		return r, nil
	}
	r.state = r.services.Generation.SwitchTab(r.state, mode)
	r.resetResultUI()
	return r, nil
}

func (r RootModel) dismiss() RootModel {
	r.state = r.services.Generation.Dismiss(r.state)
	r.resetResultUI()
	return r
}

func (r *RootModel) resetResultUI() {
	r.copied = ""
	r.status = ""
	r.revealResult = false
}

func (r RootModel) submit() (tea.Model, tea.Cmd) {
	if r.state.Controls.Disabled {
		return r, nil
	}

	r.resetResultUI()
	mode := r.state.ActiveMode
	var call *service.Call
	r.state, call = r.services.Generation.Submit(r.ctx, r.state, mode, r.forms[mode].Values())
	if call == nil {
		return r, nil
	}

	return r, tea.Batch(
		r.spinner.Tick,
		func() tea.Msg { return settledMsg{outcome: call.Do()} },
	)
}

func (r RootModel) copy(index int) (tea.Model, tea.Cmd) {
	content, ok := r.surface.Current()
	if !ok || index >= len(content.Artifacts) {
		r.status = app.MsgNothingToCopy
		return r, nil
	}

	id := content.Artifacts[index].ID
	write, err := r.services.Clipboard.Prepare(id)
	if err != nil {
		r.status = copyErrorStatus(err)
		return r, nil
	}

	r.status = ""
	return r, func() tea.Msg { return copiedMsg{artifactID: id, err: write()} }
}

func copyErrorStatus(err error) string {
	switch {
	case errors.Is(err, service.ErrNothingToCopy):
		return app.MsgNothingToCopy
	case errors.Is(err, service.ErrClipboardUnsupported):
		return fmt.Sprintf("%s: %v", app.MsgCopyFailed, err)
	default:
		return app.MsgCopyFailed
	}
}

func nextMode(m models.Mode, delta int) models.Mode {
	n := len(models.Modes)
	for i, mode := range models.Modes {
		if mode == m {
			return models.Modes[(i+delta+n)%n]
		}
	}
	return models.Modes[0]
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}

	var b strings.Builder
	b.WriteString(r.viewTop())
	b.WriteString(r.viewResult())
	b.WriteString(r.viewHelp())
	return appStyle.Render(b.String())
}

// viewTop renders everything above the result region.
func (r RootModel) viewTop() string {
	var b strings.Builder

	b.WriteString(r.viewHeader())
	b.WriteString("\n")
	b.WriteString(r.viewTabs())
	b.WriteString("\n\n")
	b.WriteString(r.forms[r.state.ActiveMode].View(r.state.Controls.Disabled))
	b.WriteString("\n")
	b.WriteString(r.viewButton())
	b.WriteString("\n")
	return b.String()
}

func (r RootModel) viewHeader() string {
	header := titleStyle.Render("keyforge")
	switch r.health {
	case app.MsgServiceHealthy:
		header += "  " + successStyle.Render("● "+r.health)
	case app.MsgServiceUnhealthy:
		header += "  " + errorStyle.Render("● "+r.health)
	}
	return header
}

func (r RootModel) viewTabs() string {
	tabs := make([]string, 0, len(models.Modes))
	for i, m := range models.Modes {
		label := fmt.Sprintf("F%d %s", i+1, m.Title())
		if m == r.state.ActiveMode {
			tabs = append(tabs, activeTabStyle.Render(label))
			continue
		}
		tabs = append(tabs, inactiveTabStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)
}

func (r RootModel) viewButton() string {
	label := r.state.Controls.Label
	if r.state.Loading {
		label = r.spinner.View() + " " + label
	}
	if r.state.Controls.Disabled {
		return disabledStyle.Render(buttonStyle.Render(label))
	}
	return buttonStyle.Render(label)
}

func (r RootModel) viewResult() string {
	region := r.surface.Snapshot()
	if region.Empty() {
		return ""
	}
	if region.Error != "" {
		return errorBoxStyle.Render(errorStyle.Render("Error: ")+region.Error) + "\n"
	}

	content, ok := r.surface.Current()
	if !ok {
		return ""
	}
	return renderResult(content, r.revealResult, r.copied) + "\n"
}

func (r RootModel) viewHelp() string {
	var b strings.Builder
	if r.status != "" {
		b.WriteString(warningStyle.Render(r.status))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("F1-F4 tabs • tab next field • ←/→ choose • space toggle • ctrl+r show/hide • enter generate • esc clear • alt+1..3 copy • f10 about • ctrl+c quit"))
	return b.String()
}
