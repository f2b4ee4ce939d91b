//go:build headless

package main

import (
	"context"
	"errors"
	"io"
)

func play(context.Context, *streamer, int, io.Writer) error {
	return errors.New("audio: playback is not available in headless builds")
}
