// Command pingpong runs test material through the stereo ping-pong delay.
//
// Usage:
//
//	pingpong [flags]
//
// The processed signal can be written to a 32-bit float WAV file, played on
// the default audio device, or analysed for echo spacing and decay.
//
// Examples:
//
//	pingpong -source click -bpm 96 -sync -division 1/8T -out echo.wav
//	pingpong -delay 350 -feedback 0.7 -analyze
//	pingpong -source noise -mix 0.3 -play
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
	"github.com/cwbudde/algo-pingpong/dsp/tempo"
	"github.com/cwbudde/algo-pingpong/host"
	"github.com/cwbudde/algo-pingpong/stats/level"
)

var sources = []string{"impulse", "click", "noise", "sine"}

type config struct {
	sampleRate float64
	blockSize  int
	bpm        float64
	division   tempo.Division
	delayMs    float64
	feedback   float64
	mix        float64
	pingPong   bool
	sync       bool
	seconds    float64
	source     string
	out        string
	play       bool
	analyze    bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		division string
	)

	fs := flag.NewFlagSet("pingpong", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Float64Var(&cfg.sampleRate, "rate", 48000, "sample rate in Hz")
	fs.IntVar(&cfg.blockSize, "block", 512, "processing block size in frames")
	fs.Float64Var(&cfg.bpm, "bpm", tempo.DefaultBPM, "transport tempo, 0 for a host without transport")
	fs.StringVar(&division, "division", tempo.DefaultDivision.Label(), "note division for -sync (1/4, 1/8, 1/8T, 1/16, 1/16T)")
	fs.Float64Var(&cfg.delayMs, "delay", pingpong.DefaultDelayTimeMs, "manual delay time in ms")
	fs.Float64Var(&cfg.feedback, "feedback", pingpong.DefaultFeedback, "feedback amount 0..0.99")
	fs.Float64Var(&cfg.mix, "mix", pingpong.DefaultDryWet, "dry/wet mix 0..1")
	fs.BoolVar(&cfg.pingPong, "pingpong", true, "cross-feed repeats between channels")
	fs.BoolVar(&cfg.sync, "sync", false, "derive the delay time from -bpm and -division")
	fs.Float64Var(&cfg.seconds, "seconds", 4, "length of the rendered signal")
	fs.StringVar(&cfg.source, "source", "impulse", "input signal: "+strings.Join(sources, ", "))
	fs.StringVar(&cfg.out, "out", "", "write the processed signal to this WAV file")
	fs.BoolVar(&cfg.play, "play", false, "play the processed signal on the default device")
	fs.BoolVar(&cfg.analyze, "analyze", false, "measure echo spacing and decay of the impulse response")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: pingpong [flags]\n\n")
		fmt.Fprintf(stderr, "Runs test material through a stereo ping-pong delay.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	d, err := tempo.ParseDivision(division)
	if err != nil {
		return config{}, err
	}
	cfg.division = d

	if cfg.sampleRate <= 0 {
		return config{}, fmt.Errorf("-rate must be > 0: %g", cfg.sampleRate)
	}
	if cfg.blockSize <= 0 {
		return config{}, fmt.Errorf("-block must be > 0: %d", cfg.blockSize)
	}
	if cfg.seconds <= 0 {
		return config{}, fmt.Errorf("-seconds must be > 0: %g", cfg.seconds)
	}
	if !validSource(cfg.source) {
		return config{}, fmt.Errorf("unknown -source %q (want one of %s)", cfg.source, strings.Join(sources, ", "))
	}
	return cfg, nil
}

func validSource(name string) bool {
	for _, s := range sources {
		if s == name {
			return true
		}
	}
	return false
}

// newAdapter builds an engine and a parameter store configured from cfg.
func newAdapter(cfg config) (*host.Adapter, error) {
	engine, err := pingpong.New()
	if err != nil {
		return nil, err
	}

	store := host.NewStore()
	settings := []struct {
		id pingpong.ParamID
		v  float64
	}{
		{pingpong.ParamDelayTime, cfg.delayMs},
		{pingpong.ParamFeedback, cfg.feedback},
		{pingpong.ParamDryWet, cfg.mix},
		{pingpong.ParamPingPong, boolValue(cfg.pingPong)},
		{pingpong.ParamSyncToTempo, boolValue(cfg.sync)},
		{pingpong.ParamDivision, float64(cfg.division)},
	}
	for _, s := range settings {
		if err := store.Set(s.id, s.v); err != nil {
			return nil, err
		}
	}

	var transport host.Transport = host.NoTransport{}
	if cfg.bpm > 0 {
		transport = host.FixedTransport(cfg.bpm)
	}

	a, err := host.NewAdapter(engine, store, transport)
	if err != nil {
		return nil, err
	}
	if err := a.Prepare(cfg.sampleRate, cfg.blockSize); err != nil {
		return nil, err
	}
	return a, nil
}

func boolValue(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func describe(w io.Writer, a *host.Adapter) {
	for _, def := range host.Definitions() {
		text, err := a.Store().Format(def.ID)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "  %-13s %s\n", def.Name, text)
	}
}

// summarize prints per-channel output levels.
func summarize(w io.Writer, block [][]float32) {
	names := []string{"L", "R"}
	for ch, data := range block {
		name := fmt.Sprintf("%d", ch)
		if ch < len(names) {
			name = names[ch]
		}
		s := level.Calculate(data)
		fmt.Fprintf(w, "  %s: peak %.1f dBFS, rms %.1f dBFS", name, s.PeakDB, s.RMSDB)
		if s.Clipped > 0 {
			fmt.Fprintf(w, ", %d samples clipped", s.Clipped)
		}
		fmt.Fprintln(w)
	}
}

// run executes the requested actions. Reports go to stdout, progress and
// summaries to stderr.
func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	if cfg.analyze {
		if err := analyze(stdout, cfg); err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
	}

	if cfg.out == "" && !cfg.play {
		if !cfg.analyze {
			return errors.New("nothing to do: pass -out, -play or -analyze")
		}
		return nil
	}

	a, err := newAdapter(cfg)
	if err != nil {
		return err
	}
	input, err := makeSource(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(stderr, "Processing %.2f s of %s at %g Hz\n", cfg.seconds, cfg.source, cfg.sampleRate)
	describe(stderr, a)

	if cfg.out != "" {
		out := render(a, input, cfg.blockSize)
		if err := writeWAV(cfg.out, out, int(cfg.sampleRate)); err != nil {
			return err
		}
		fmt.Fprintf(stderr, "Wrote %q\n", cfg.out)
		summarize(stderr, out)
		a.Engine().Reset()
	}

	if cfg.play {
		return play(ctx, newStreamer(a, input, cfg.blockSize), int(cfg.sampleRate), stderr)
	}
	return nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}

	if err := run(interruptContext(), cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func interruptContext() context.Context {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	go func() {
		<-ctx.Done()
		cancel()
	}()
	return ctx
}
