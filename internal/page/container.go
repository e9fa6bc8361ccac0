package page

import (
	"slices"
)

// ClickListener handles a click on a card inside a container.
type ClickListener func(c *Card) Task

// Container holds the cards of one render pass.
type Container struct {
	Element
	cards     []*Card
	listeners []ClickListener
}

// Clear removes every card. Clearing an empty container does nothing.
func (c *Container) Clear() {
	c.cards = nil
}

// Append adds card at the end.
func (c *Container) Append(card *Card) {
	c.cards = append(c.cards, card)
}

// Cards returns the cards in render order.
func (c *Container) Cards() []*Card {
	return slices.Clone(c.cards)
}

// Len returns the number of cards.
func (c *Container) Len() int {
	return len(c.cards)
}

// At returns the i-th card or nil.
func (c *Container) At(i int) *Card {
	if i < 0 || i >= len(c.cards) {
		return nil
	}
	return c.cards[i]
}

// OnClick registers a listener for clicks on the container's cards.
func (c *Container) OnClick(fn ClickListener) {
	c.listeners = append(c.listeners, fn)
}

// Click dispatches a click on card to every listener.
//
// Clicks on cards that do not belong to the container are ignored.
func (c *Container) Click(card *Card) Task {
	if card == nil || !slices.Contains(c.cards, card) {
		return nil
	}

	tasks := make([]Task, 0, len(c.listeners))
	for _, fn := range c.listeners {
		tasks = append(tasks, fn(card))
	}
	return Join(tasks...)
}

// Button dispatches clicks to its listeners.
type Button struct {
	Element
	listeners []func() Task
}

func (b *Button) OnClick(fn func() Task) {
	b.listeners = append(b.listeners, fn)
}

func (b *Button) Click() Task {
	tasks := make([]Task, 0, len(b.listeners))
	for _, fn := range b.listeners {
		tasks = append(tasks, fn())
	}
	return Join(tasks...)
}

// Form holds the query input and dispatches submissions.
type Form struct {
	Element
	Value     string
	listeners []func(query string) Task
}

func (f *Form) OnSubmit(fn func(query string) Task) {
	f.listeners = append(f.listeners, fn)
}

// Listeners returns the number of registered submit listeners.
func (f *Form) Listeners() int {
	return len(f.listeners)
}

// Submit sends the current input value to every listener.
func (f *Form) Submit() Task {
	tasks := make([]Task, 0, len(f.listeners))
	for _, fn := range f.listeners {
		tasks = append(tasks, fn(f.Value))
	}
	return Join(tasks...)
}
