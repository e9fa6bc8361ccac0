// Package player streams MP3 audio from stream URLs to the default output device.
package player

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/scplay/internal/shared"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

type State int

const (
	Stopped State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "stopped"
}

// Output device hooks, replaced in tests.
var (
	speakerInit  = speaker.Init
	speakerPlay  = speaker.Play
	speakerClear = speaker.Clear
	decodeMP3    = mp3.Decode
)

// Player plays one stream at a time. Starting a stream stops the current one.
type Player struct {
	mu sync.Mutex

	client   *http.Client
	logger   *log.Logger
	state    State
	src      string
	streamer beep.StreamSeekCloser
	done     chan struct{}
	// gen is bumped by every Play and Stop; a load that finishes under an older gen is discarded.
	gen uint64

	initialized bool
	sampleRate  beep.SampleRate
}

// New creates a player. A nil client uses [http.DefaultClient].
func New(client *http.Client, logger *log.Logger) *Player {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Player{client: client, logger: logger, done: make(chan struct{})}
}

// Play opens src and starts playing it. It returns once the stream header is decoded.
//
// A load overtaken by a later Play or Stop is closed without reaching the speaker.
func (p *Player) Play(ctx context.Context, src string) error {
	p.mu.Lock()
	p.gen++
	gen := p.gen
	p.stopLocked()
	p.mu.Unlock()

	body, err := p.open(ctx, src)
	if err != nil {
		return err
	}

	streamer, format, err := decodeMP3(body)
	if err != nil {
		body.Close()
		return fmt.Errorf("%w: failed to decode stream: %v", shared.ErrPlaybackFailed, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		streamer.Close()
		p.logger.Debug("stream superseded", "src", src)
		return nil
	}

	if !p.initialized {
		if err := speakerInit(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			streamer.Close()
			return fmt.Errorf("%w: failed to open output device: %v", shared.ErrPlaybackFailed, err)
		}
		p.sampleRate = format.SampleRate
		p.initialized = true
	}

	p.stopLocked()

	var out beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		out = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	done := make(chan struct{})
	p.streamer = streamer
	p.src = src
	p.state = Playing
	p.done = done

	speakerPlay(beep.Seq(&beep.Ctrl{Streamer: out}, beep.Callback(func() {
		close(done)
	})))

	p.logger.Debug("stream started", "sample_rate", int(format.SampleRate))
	return nil
}

// Stop halts output and releases the current stream. A stream still loading is discarded.
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.gen++
	p.stopLocked()
}

// stopLocked clears the speaker and closes the current stream. p.mu must be held.
func (p *Player) stopLocked() {
	if p.state == Stopped {
		return
	}

	speakerClear()
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	p.src = ""
	p.state = Stopped
}

// Close stops playback. The player stays usable.
func (p *Player) Close() error {
	p.Stop()
	return nil
}

func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Source returns the URL being played, or "".
func (p *Player) Source() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.src
}

// Done is closed when the current stream finishes on its own.
func (p *Player) Done() <-chan struct{} {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.done
}

func (p *Player) open(ctx context.Context, src string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPlaybackFailed, err)
	}
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrConnectionFailed, err)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: stream returned %s", shared.ErrPlaybackFailed, resp.Status)
	}
	return resp.Body, nil
}
