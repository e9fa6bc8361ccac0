package page

import "context"

// Player outputs the audio stream behind a source URL.
//
// Play blocks until the stream is open and playing has started.
type Player interface {
	Play(ctx context.Context, src string) error
	Stop()
}

// Audio is the page-level audio element.
type Audio struct {
	Element
	Src     string
	playing bool
	player  Player
}

// Playing reports whether the last Play succeeded and Stop has not been called since.
func (a *Audio) Playing() bool { return a.playing }

// SetPlayer attaches the output device. Without one, Play only records the source.
func (a *Audio) SetPlayer(p Player) { a.player = p }

// Play starts the current source. The returned task opens the stream; onErr runs on the UI
// thread when that fails.
func (a *Audio) Play(ctx context.Context, onErr func(error)) Task {
	src, p := a.Src, a.player
	if src == "" || p == nil {
		return nil
	}

	return func() Apply {
		err := p.Play(ctx, src)
		return func() {
			if err != nil {
				a.playing = false
				if onErr != nil {
					onErr(err)
				}
				return
			}
			if a.Src == src {
				a.playing = true
			}
		}
	}
}

// Stop halts output.
func (a *Audio) Stop() {
	if a.player != nil {
		a.player.Stop()
	}
	a.playing = false
}
