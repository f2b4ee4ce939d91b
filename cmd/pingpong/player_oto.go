//go:build !headless

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
	"golang.org/x/sync/errgroup"
)

// play streams s to the default audio device until the tail has finished
// or ctx is cancelled, reporting progress to w. oto's reader goroutine is
// the audio thread.
func play(ctx context.Context, s *streamer, sampleRate int, w io.Writer) error {
	otoCtx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   50 * time.Millisecond,
	})
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	<-ready

	player := otoCtx.NewPlayer(s)
	defer player.Close()
	player.Play()

	g, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	g.Go(func() error {
		defer close(done)
		t := time.NewTicker(20 * time.Millisecond)
		defer t.Stop()
		for player.IsPlaying() {
			select {
			case <-ctx.Done():
				player.Pause()
				return nil
			case <-t.C:
			}
		}
		return player.Err()
	})
	g.Go(func() error {
		t := time.NewTicker(250 * time.Millisecond)
		defer t.Stop()
		for {
			select {
			case <-done:
				fmt.Fprintln(w)
				return nil
			case <-t.C:
				fmt.Fprintf(w, "\rplayed %.2f s", float64(s.Played())/float64(sampleRate))
			}
		}
	})
	return g.Wait()
}
