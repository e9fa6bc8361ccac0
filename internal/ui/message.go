package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/scplay/internal/page"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgTaskDone MsgKind = iota
	MsgBrowserOpened
)

// taskDoneMsg is the constructor for [MsgTaskDone]
func taskDoneMsg(apply page.Apply) Msg {
	return Msg{kind: MsgTaskDone, data: apply}
}

// browserOpenedMsg is the constructor for [MsgBrowserOpened]
func browserOpenedMsg(link string, err error) Msg {
	return Msg{
		kind: MsgBrowserOpened,
		data: struct {
			link string
			err  error
		}{link, err},
	}
}

// runTask turns a document task into a command whose result is applied in Update.
func runTask(t page.Task) tea.Cmd {
	if t == nil {
		return nil
	}
	return func() tea.Msg {
		return taskDoneMsg(t())
	}
}
