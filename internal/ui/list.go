package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/scplay/internal/page"
	"github.com/desertthunder/scplay/internal/widget"
)

var (
	_ list.Item = cardItem{}
)

// cardItem wraps a rendered [page.Card] to implement [list.Item].
type cardItem struct {
	card *page.Card
}

func (i cardItem) FilterValue() string { return i.card.Heading }
func (i cardItem) Title() string {
	if i.card.Class(1) == "user" {
		return "@ " + i.card.Heading
	}
	return "♫ " + i.card.Heading
}
func (i cardItem) Description() string {
	desc := i.card.Subheading
	if i.card.Description != "" {
		if desc != "" {
			desc = fmt.Sprintf("%s • %s", desc, i.card.Description)
		} else {
			desc = i.card.Description
		}
	}
	return desc
}

// permalink returns the web page of the card's track or user.
func (i cardItem) permalink() string {
	if link := i.card.Data(widget.DataTrackPermalink); link != "" {
		return link
	}
	return i.card.Data(widget.DataUserPermalink)
}

func cardItems(c *page.Container) []list.Item {
	cards := c.Cards()
	items := make([]list.Item, len(cards))
	for i, card := range cards {
		items[i] = cardItem{card: card}
	}
	return items
}

func newCardList(title string) list.Model {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	return l
}
