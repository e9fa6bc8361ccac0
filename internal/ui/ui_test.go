package ui

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/scplay/internal/models"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/shared"
	tu "github.com/desertthunder/scplay/internal/testing"
	"github.com/desertthunder/scplay/internal/widget"
)

func newTestModel(t *testing.T, svc *tu.MockService, player *tu.MockPlayer) *Model {
	t.Helper()
	logger := shared.NewLogger(io.Discard)
	var p page.Player
	if player != nil {
		p = player
	}
	doc := page.New(p)
	core := widget.Bootstrap(context.Background(), doc, svc, logger)

	m := NewModel(context.Background(), doc, core, logger)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// drain runs cmd and feeds task results back into the model.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if _, ok := msg.(Msg); !ok {
		return
	}
	_, next := m.Update(msg)
	drain(t, m, next)
}

func press(m *Model, k string) tea.Cmd {
	var msg tea.KeyMsg
	switch k {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
	_, cmd := m.Update(msg)
	return cmd
}

func search(t *testing.T, m *Model, q string) {
	t.Helper()
	if !m.input.Focused() {
		press(m, "/")
	}
	m.input.SetValue(q)
	drain(t, m, press(m, "enter"))
}

func mixedResults() []models.SearchResult {
	return []models.SearchResult{
		models.NewTrackResult(models.Track{
			Title:        "one",
			StreamURL:    "https://s/1",
			PermalinkURL: "https://soundcloud.com/a/one",
			User:         &models.TrackUser{Username: "a"},
		}),
		models.NewUserResult(models.User{ID: 9, Username: "dj", PermalinkURL: "https://soundcloud.com/dj"}),
	}
}

func TestModel(t *testing.T) {
	t.Run("Search Populates Results", func(t *testing.T) {
		svc := &tu.MockService{Results: mixedResults()}
		m := newTestModel(t, svc, nil)

		search(t, m, "house")

		if svc.SearchCalls() != 1 || svc.Queries[0] != "house" {
			t.Errorf("unexpected searches %v", svc.Queries)
		}
		if len(m.resultList.Items()) != 2 {
			t.Errorf("expected 2 list items, got %d", len(m.resultList.Items()))
		}
		if m.input.Focused() {
			t.Error("expected focus to move to the list")
		}
		if !strings.Contains(m.View(), "one") {
			t.Error("expected rendered view to contain the track")
		}
	})

	t.Run("Blank Search Stays In Input", func(t *testing.T) {
		svc := &tu.MockService{}
		m := newTestModel(t, svc, nil)

		search(t, m, "   ")
		if svc.SearchCalls() != 0 {
			t.Error("expected no fetch for a blank query")
		}
		if !m.input.Focused() {
			t.Error("expected input to keep focus")
		}
	})

	t.Run("Search Failure Shows Status", func(t *testing.T) {
		svc := &tu.MockService{SearchErr: shared.ErrConnectionFailed}
		m := newTestModel(t, svc, nil)

		search(t, m, "house")
		if !strings.Contains(m.View(), "search failed") {
			t.Error("expected search failure in the view")
		}
	})

	t.Run("Select Track Plays", func(t *testing.T) {
		svc := &tu.MockService{Results: mixedResults(), ClientID: "tok"}
		player := &tu.MockPlayer{}
		m := newTestModel(t, svc, player)

		search(t, m, "house")
		drain(t, m, press(m, "enter"))

		if len(player.Played) != 1 || player.Played[0] != "https://s/1?client_id=tok" {
			t.Errorf("unexpected played %v", player.Played)
		}
		if !strings.Contains(m.View(), " a - one") {
			t.Error("expected now playing in the view")
		}

		press(m, "s")
		if m.doc.Audio.Playing() || player.Stopped != 1 {
			t.Error("expected stop key to stop playback")
		}
	})

	t.Run("Select User Opens Artist Page And Back Returns", func(t *testing.T) {
		svc := &tu.MockService{
			Results: mixedResults(),
			Tracks:  []models.Track{{Title: "deep cut", StreamURL: "https://s/d", User: &models.TrackUser{Username: "dj"}}},
		}
		m := newTestModel(t, svc, nil)

		search(t, m, "house")
		press(m, "j")
		drain(t, m, press(m, "enter"))

		if m.ViewState() != ArtistView {
			t.Fatal("expected artist view")
		}
		if svc.UserTrackCalls() != 1 || svc.UserIDs[0] != "9" {
			t.Errorf("expected one user-tracks fetch for 9, got %v", svc.UserIDs)
		}
		if len(m.artistList.Items()) != 1 || !strings.Contains(m.View(), "deep cut") {
			t.Error("expected artist tracks in the view")
		}

		drain(t, m, press(m, "esc"))
		if m.ViewState() != ResultsView {
			t.Error("expected results view after back")
		}
		if svc.SearchCalls() != 1 || len(m.resultList.Items()) != 2 {
			t.Error("expected back to keep results without refetching")
		}
	})

	t.Run("Open Permalink", func(t *testing.T) {
		orig := openBrowser
		t.Cleanup(func() { openBrowser = orig })

		var opened string
		openBrowser = func(link string) error {
			opened = link
			return errors.New("no browser")
		}

		svc := &tu.MockService{Results: mixedResults()}
		m := newTestModel(t, svc, nil)
		search(t, m, "house")

		drain(t, m, press(m, "o"))
		if opened != "https://soundcloud.com/a/one" {
			t.Errorf("unexpected opened link %q", opened)
		}
		if !strings.Contains(m.doc.Status.Text, "could not open") {
			t.Errorf("expected browser failure on status, got %q", m.doc.Status.Text)
		}
	})

	t.Run("Quit", func(t *testing.T) {
		m := newTestModel(t, &tu.MockService{}, nil)
		press(m, "esc")
		cmd := press(m, "q")
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})

	t.Run("Empty View", func(t *testing.T) {
		m := newTestModel(t, &tu.MockService{}, nil)
		view := m.View()
		if !strings.Contains(view, "No results") || !strings.Contains(view, "Nothing playing") {
			t.Errorf("unexpected empty view:\n%s", view)
		}
	})
}

func TestSwatch(t *testing.T) {
	t.Run("Zero Width", func(t *testing.T) {
		if swatch(widget.ArtStyle(""), 0) != "" {
			t.Error("expected empty swatch")
		}
	})

	t.Run("Image Art", func(t *testing.T) {
		if !strings.Contains(swatch(widget.ArtStyle("https://i/a.jpg"), 4), "♪") {
			t.Error("expected note glyph for image art")
		}
	})

	t.Run("Gradient", func(t *testing.T) {
		if s := swatch(widget.ArtStyle(""), 4); strings.Contains(s, "♪") {
			t.Error("expected gradient cells, not the image glyph")
		}
	})
}

func TestCardItem(t *testing.T) {
	card := &page.Card{
		Element:     page.Element{Classes: []string{page.ResultClass, "track"}},
		Heading:     "title",
		Subheading:  "artist",
		Description: "3:05",
	}
	item := cardItem{card: card}
	if item.Title() != "♫ title" || item.Description() != "artist • 3:05" || item.FilterValue() != "title" {
		t.Errorf("unexpected item %q / %q", item.Title(), item.Description())
	}

	user := cardItem{card: &page.Card{Element: page.Element{Classes: []string{page.ResultClass, "user"}}, Heading: "dj"}}
	if user.Title() != "@ dj" || user.Description() != "" {
		t.Errorf("unexpected user item %q / %q", user.Title(), user.Description())
	}
}
