package host

import (
	"fmt"

	"github.com/cwbudde/algo-pingpong/dsp/pingpong"
)

// Adapter binds a Store and a Transport to an Engine. Parameter changes on
// the store are forwarded to the engine as they happen; tempo is polled
// once per processed block.
type Adapter struct {
	engine    *pingpong.Engine
	store     *Store
	transport Transport
}

// NewAdapter pushes every stored value into engine and subscribes to later
// changes. A nil transport means the host reports no tempo.
func NewAdapter(engine *pingpong.Engine, store *Store, transport Transport) (*Adapter, error) {
	if engine == nil || store == nil {
		return nil, fmt.Errorf("host: adapter needs an engine and a store")
	}
	if transport == nil {
		transport = NoTransport{}
	}

	for _, def := range definitions {
		v, err := store.Get(def.ID)
		if err != nil {
			return nil, err
		}
		if err := engine.SetParameter(def.ID, v); err != nil {
			return nil, fmt.Errorf("host: sync %s: %w", def.ID, err)
		}
	}

	a := &Adapter{engine: engine, store: store, transport: transport}
	store.OnChange(a.forward)
	return a, nil
}

// forward runs on the goroutine that changed the store. Store values are
// clamped and never NaN, so the engine cannot reject them.
func (a *Adapter) forward(id pingpong.ParamID, plain float64) {
	_ = a.engine.SetParameter(id, plain)
}

// Prepare reads the transport tempo and forwards the stream format to the
// engine, so the delay and tail resolved before the first block already
// follow the host.
func (a *Adapter) Prepare(sampleRate float64, maxBlockSize int) error {
	if bpm, ok := a.transport.Tempo(); ok {
		a.engine.Parameters().SetTempo(bpm)
	}
	return a.engine.Prepare(sampleRate, maxBlockSize)
}

// Release stops processing.
func (a *Adapter) Release() { a.engine.Release() }

// Process polls the transport and runs one block through the engine.
func (a *Adapter) Process(block [][]float32) {
	bpm, ok := a.transport.Tempo()
	a.engine.Process(block, pingpong.TempoInfo{BPM: bpm, Valid: ok})
}

// Engine returns the driven engine.
func (a *Adapter) Engine() *pingpong.Engine { return a.engine }

// Store returns the parameter store.
func (a *Adapter) Store() *Store { return a.store }
