package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"

	"github.com/cwbudde/algo-pingpong/dsp/core"
	"github.com/cwbudde/algo-pingpong/dsp/signal"
)

const (
	wavHeaderSize = 44
	wavFormatIEEE = 3
)

// encodeWAV returns a RIFF/WAVE file holding block as interleaved 32-bit
// IEEE float samples.
func encodeWAV(block [][]float32, sampleRate int) ([]byte, error) {
	channels := len(block)
	if channels == 0 {
		return nil, fmt.Errorf("wav: no channels")
	}
	frames := core.Frames(block)

	samples := make([]float32, channels*frames)
	if _, err := signal.Interleave(samples, block); err != nil {
		return nil, err
	}

	dataSize := len(samples) * 4
	out := make([]byte, wavHeaderSize+dataSize)
	copy(out[0:], "RIFF")
	binary.LittleEndian.PutUint32(out[4:], uint32(36+dataSize))
	copy(out[8:], "WAVE")
	copy(out[12:], "fmt ")
	binary.LittleEndian.PutUint32(out[16:], 16)
	binary.LittleEndian.PutUint16(out[20:], wavFormatIEEE)
	binary.LittleEndian.PutUint16(out[22:], uint16(channels))
	binary.LittleEndian.PutUint32(out[24:], uint32(sampleRate))
	binary.LittleEndian.PutUint32(out[28:], uint32(sampleRate*channels*4))
	binary.LittleEndian.PutUint16(out[32:], uint16(channels*4))
	binary.LittleEndian.PutUint16(out[34:], 32)
	copy(out[36:], "data")
	binary.LittleEndian.PutUint32(out[40:], uint32(dataSize))
	for i, s := range samples {
		binary.LittleEndian.PutUint32(out[wavHeaderSize+i*4:], math.Float32bits(s))
	}
	return out, nil
}

func writeWAV(path string, block [][]float32, sampleRate int) error {
	data, err := encodeWAV(block, sampleRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("wav: %w", err)
	}
	return nil
}
