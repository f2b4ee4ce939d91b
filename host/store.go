package host

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
	"github.com/cwbudde/algo-pingpong/dsp/tempo"
)

// ErrInvalidValue is returned for NaN plain or normalized values.
var ErrInvalidValue = errors.New("host: parameter value is NaN")

// Listener is called after a parameter changed, with the stored plain value.
type Listener func(id pingpong.ParamID, plain float64)

// Store holds the control-side parameter values. All methods are safe for
// concurrent use. Listeners run on the goroutine that made the change,
// one Set at a time and in the order the values were stored. A listener
// must not call Set or SetNormalized.
type Store struct {
	notify    sync.Mutex // serialises store-then-notify in Set
	mu        sync.Mutex
	values    []float64
	listeners []Listener
}

// NewStore returns a store holding every parameter's default.
func NewStore() *Store {
	s := &Store{values: make([]float64, len(definitions))}
	for i, def := range definitions {
		s.values[i] = def.Default
	}
	return s
}

// OnChange registers fn to be called after every successful Set.
func (s *Store) OnChange(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Get returns the plain value of id.
func (s *Store) Get(id pingpong.ParamID) (float64, error) {
	if _, ok := Lookup(id); !ok {
		return 0, fmt.Errorf("%w: %s", pingpong.ErrUnknownParam, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[id], nil
}

// Set stores a plain value, clamped to range and snapped to steps, then
// notifies listeners.
func (s *Store) Set(id pingpong.ParamID, plain float64) error {
	def, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", pingpong.ErrUnknownParam, id)
	}
	if math.IsNaN(plain) {
		return fmt.Errorf("%w: %s", ErrInvalidValue, id)
	}
	plain = def.Clamp(plain)

	s.notify.Lock()
	defer s.notify.Unlock()

	s.mu.Lock()
	s.values[id] = plain
	listeners := s.listeners
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(id, plain)
	}
	return nil
}

// SetNormalized stores a [0, 1] value.
func (s *Store) SetNormalized(id pingpong.ParamID, normalized float64) error {
	def, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", pingpong.ErrUnknownParam, id)
	}
	if math.IsNaN(normalized) {
		return fmt.Errorf("%w: %s", ErrInvalidValue, id)
	}
	return s.Set(id, def.Denormalize(normalized))
}

// Normalized returns the [0, 1] value of id.
func (s *Store) Normalized(id pingpong.ParamID) (float64, error) {
	plain, err := s.Get(id)
	if err != nil {
		return 0, err
	}
	return definitions[id].Normalize(plain), nil
}

// Format returns the display string of the current value of id.
func (s *Store) Format(id pingpong.ParamID) (string, error) {
	plain, err := s.Get(id)
	if err != nil {
		return "", err
	}
	return definitions[id].Format(plain), nil
}

// SetText parses a display string such as "250 ms" or "1/8T" and stores it.
func (s *Store) SetText(id pingpong.ParamID, text string) error {
	def, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %s", pingpong.ErrUnknownParam, id)
	}
	plain, err := def.Parse(text)
	if err != nil {
		return fmt.Errorf("host: %s: %w", def.Name, err)
	}
	return s.Set(id, plain)
}

// Snapshot converts the stored values to engine parameters. BPM is left at
// the default; it comes from the transport.
func (s *Store) Snapshot() pingpong.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return pingpong.Snapshot{
		DelayTimeMs: s.values[pingpong.ParamDelayTime],
		Feedback:    s.values[pingpong.ParamFeedback],
		DryWet:      s.values[pingpong.ParamDryWet],
		PingPong:    s.values[pingpong.ParamPingPong] >= 0.5,
		SyncToTempo: s.values[pingpong.ParamSyncToTempo] >= 0.5,
		Division:    tempo.DivisionFromIndex(int(s.values[pingpong.ParamDivision])),
		BPM:         tempo.DefaultBPM,
	}
}
