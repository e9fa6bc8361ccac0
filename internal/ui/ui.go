package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/desertthunder/scplay/internal/widget"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	ResultsView ViewState = iota
	ArtistView
)

// openBrowser is replaced in tests.
var openBrowser = shared.OpenBrowser

const swatchWidth = 6

// Model represents the TUI application state.
type Model struct {
	ctx          context.Context
	doc          *page.Document
	core         *widget.Core
	logger       *log.Logger
	width        int
	height       int
	input        textinput.Model
	resultList   list.Model
	artistList   list.Model
	help         help.Model
	keys         keyMap
	showFullHelp bool
}

// NewModel creates a TUI over doc. core must already be bootstrapped on doc.
func NewModel(ctx context.Context, doc *page.Document, core *widget.Core, logger *log.Logger) *Model {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	input := textinput.New()
	input.Placeholder = "search tracks and artists"
	input.Prompt = "/ "
	input.CharLimit = 200
	input.Focus()

	return &Model{
		ctx:        ctx,
		doc:        doc,
		core:       core,
		logger:     logger,
		input:      input,
		resultList: newCardList("Results"),
		artistList: newCardList("Tracks"),
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

// Init starts the cursor blinking in the search input.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// ViewState returns the active view, derived from the document's visibility.
func (m *Model) ViewState() ViewState {
	if m.doc.ArtistPage.Visible() {
		return ArtistView
	}
	return ResultsView
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-6, 10)
		m.resizeLists()
		return m, nil

	case Msg:
		switch msg.kind {
		case MsgTaskDone:
			if apply, ok := msg.data.(page.Apply); ok && apply != nil {
				apply()
			}
			m.sync()
		case MsgBrowserOpened:
			data := msg.data.(struct {
				link string
				err  error
			})
			if data.err != nil {
				m.core.Renderer.ShowError(fmt.Errorf("could not open %s: %w", data.link, data.err))
			}
		}
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleInputKeys(msg)
		}
		return m.handleListKeys(msg)
	}

	return m.updateLists(msg)
}

func (m *Model) handleInputKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		m.doc.SearchForm.Value = m.input.Value()
		task := m.doc.SearchForm.Submit()
		if task == nil {
			return m, nil
		}
		m.input.Blur()
		if m.ViewState() == ArtistView {
			m.dispatch(m.doc.Back.Click())
		}
		return m, runTask(task)
	case "esc":
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		m.doc.Audio.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.search):
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.enter):
		item, ok := m.activeList().SelectedItem().(cardItem)
		if !ok {
			return m, nil
		}
		cmd := runTask(m.activeContainer().Click(item.card))
		m.sync()
		return m, cmd
	case key.Matches(msg, m.keys.back):
		if m.ViewState() == ArtistView {
			cmd := runTask(m.doc.Back.Click())
			m.sync()
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.open):
		item, ok := m.activeList().SelectedItem().(cardItem)
		if !ok || item.permalink() == "" {
			return m, nil
		}
		link := item.permalink()
		return m, func() tea.Msg {
			return browserOpenedMsg(link, openBrowser(link))
		}
	case key.Matches(msg, m.keys.stop):
		m.doc.Audio.Stop()
		return m, nil
	case msg.String() == "?":
		m.showFullHelp = !m.showFullHelp
		return m, nil
	}

	return m.updateLists(msg)
}

// dispatch applies a task inline; used for tasks that are known not to block.
func (m *Model) dispatch(t page.Task) {
	page.Run(t)
	m.sync()
}

// sync rebuilds the list items from the document containers.
func (m *Model) sync() {
	m.resultList.SetItems(cardItems(m.doc.Results))
	m.artistList.SetItems(cardItems(m.doc.ArtistTracks))
	m.artistList.Title = fmt.Sprintf("Tracks by %s", m.doc.ArtistPageName.Text)
}

func (m *Model) activeList() *list.Model {
	if m.ViewState() == ArtistView {
		return &m.artistList
	}
	return &m.resultList
}

func (m *Model) activeContainer() *page.Container {
	if m.ViewState() == ArtistView {
		return m.doc.ArtistTracks
	}
	return m.doc.Results
}

func (m *Model) resizeLists() {
	h := max(m.height-10, 4)
	w := max(m.width-4, 20)
	m.resultList.SetSize(w, h)
	m.artistList.SetSize(w, h)
}

func (m *Model) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.ViewState() == ArtistView {
		m.artistList, cmd = m.artistList.Update(msg)
	} else {
		m.resultList, cmd = m.resultList.Update(msg)
	}
	return m, cmd
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("scplay"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if status := m.doc.Status.Text; status != "" {
		b.WriteString(styles.err.Render(status))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.ViewState() {
	case ArtistView:
		b.WriteString(m.renderArtistPage())
	default:
		b.WriteString(m.renderResults())
	}

	b.WriteString("\n")
	b.WriteString(m.renderNowPlaying())
	b.WriteString("\n\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderResults() string {
	if m.doc.Results.Len() == 0 {
		return styles.help.Render("No results. Press / to search.")
	}
	return m.resultList.View()
}

func (m *Model) renderArtistPage() string {
	header := fmt.Sprintf("%s %s", swatch(m.doc.ArtistPageImage.Style, swatchWidth), styles.heading.Render(m.doc.ArtistPageName.Text))
	if m.doc.ArtistTracks.Len() == 0 {
		return header + "\n\n" + styles.help.Render("Loading tracks...")
	}
	return header + "\n\n" + m.artistList.View()
}

func (m *Model) renderNowPlaying() string {
	text := m.doc.NowPlaying.Text
	if text == "" {
		return styles.help.Render("Nothing playing")
	}

	state := styles.warn.Render("stopped")
	if m.doc.Audio.Playing() {
		state = styles.ok.Render("playing")
	}
	return fmt.Sprintf("%s %s%s", swatch(m.doc.Artwork.Style, swatchWidth), state, text)
}

func (m *Model) renderHelp() string {
	if m.showFullHelp {
		return m.help.FullHelpView(m.keys.FullHelp())
	}
	if m.input.Focused() {
		return m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back})
	}
	if m.ViewState() == ArtistView {
		return m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.back, m.keys.open, m.keys.stop, m.keys.quit})
	}
	return m.help.ShortHelpView([]key.Binding{m.keys.search, m.keys.enter, m.keys.open, m.keys.stop, m.keys.quit})
}
