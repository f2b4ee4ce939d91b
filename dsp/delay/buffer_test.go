package delay

import (
	"errors"
	"testing"
)

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		capacity int
	}{
		{name: "zero channels", channels: 0, capacity: 16},
		{name: "negative channels", channels: -1, capacity: 16},
		{name: "zero capacity", channels: 2, capacity: 0},
		{name: "negative capacity", channels: 2, capacity: -4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.channels, tt.capacity)
			if !errors.Is(err, ErrInvalidSize) {
				t.Fatalf("New(%d, %d) error = %v, want ErrInvalidSize", tt.channels, tt.capacity, err)
			}
		})
	}
}

func TestNewZeroFilled(t *testing.T) {
	b, err := New(2, 8)
	if err != nil {
		t.Fatal(err)
	}

	if b.Channels() != 2 || b.Capacity() != 8 {
		t.Fatalf("got %d channels x %d, want 2 x 8", b.Channels(), b.Capacity())
	}

	for ch := 0; ch < 2; ch++ {
		for i := 0; i < 8; i++ {
			if got := b.Read(ch, i); got != 0 {
				t.Fatalf("Read(%d, %d) = %v want 0", ch, i, got)
			}
		}
	}
}

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		rate    float64
		seconds float64
		want    int
	}{
		{rate: 48000, seconds: 3, want: 144000},
		{rate: 44100, seconds: 3, want: 132300},
		{rate: 1000, seconds: 0.0015, want: 2},
		{rate: 22050.5, seconds: 1, want: 22051},
	}

	for _, tt := range tests {
		got, err := CapacityFor(tt.rate, tt.seconds)
		if err != nil {
			t.Fatalf("CapacityFor(%v, %v): %v", tt.rate, tt.seconds, err)
		}
		if got != tt.want {
			t.Fatalf("CapacityFor(%v, %v) = %d want %d", tt.rate, tt.seconds, got, tt.want)
		}
	}

	if _, err := CapacityFor(0, 3); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := CapacityFor(48000, -1); err == nil {
		t.Fatal("expected error for negative duration")
	}
	if _, err := CapacityFor(1e12, 3); err == nil {
		t.Fatal("expected error for overflowing capacity")
	}
}

// --- indexing ---

func TestWrap(t *testing.T) {
	b, err := New(1, 5)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct{ in, want int }{
		{0, 0}, {4, 4}, {5, 0}, {12, 2}, {-1, 4}, {-5, 0}, {-6, 4}, {-13, 2},
	}
	for _, tt := range tests {
		if got := b.Wrap(tt.in); got != tt.want {
			t.Fatalf("Wrap(%d) = %d want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadWriteWraparound(t *testing.T) {
	b, err := New(2, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 10; i++ {
		b.Write(0, i, float32(i))
		b.Write(1, i, float32(-i))
	}
	// slots hold [8, 9, 6, 7]
	want := []float32{8, 9, 6, 7}
	for i, w := range want {
		if got := b.Read(0, i); got != w {
			t.Fatalf("Read(0, %d) = %v want %v", i, got, w)
		}
		if got := b.Read(1, i); got != -w {
			t.Fatalf("Read(1, %d) = %v want %v", i, got, -w)
		}
	}

	// negative offsets address positions behind index 0
	if got := b.Read(0, -1); got != 7 {
		t.Fatalf("Read(0, -1) = %v want 7", got)
	}
	if got := b.Read(0, -4); got != 8 {
		t.Fatalf("Read(0, -4) = %v want 8", got)
	}
}

func TestChannelsAreIndependent(t *testing.T) {
	b, err := New(2, 3)
	if err != nil {
		t.Fatal(err)
	}

	b.Write(0, 2, 1)
	// lanes share one backing array; writing past a lane must wrap, not spill
	b.Write(0, 3, 0.5)

	if got := b.Read(1, 0); got != 0 {
		t.Fatalf("channel 1 leaked a write from channel 0: %v", got)
	}
	if got := b.Read(0, 0); got != 0.5 {
		t.Fatalf("Read(0, 0) = %v want 0.5", got)
	}
}

// --- lifecycle ---

func TestResizeDiscardsContents(t *testing.T) {
	b, err := New(2, 4)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 4; i++ {
		b.Write(0, i, 1)
		b.Write(1, i, 1)
	}

	if err := b.Resize(6); err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 6 {
		t.Fatalf("Capacity = %d want 6", b.Capacity())
	}
	for ch := 0; ch < 2; ch++ {
		for i := 0; i < 6; i++ {
			if got := b.Read(ch, i); got != 0 {
				t.Fatalf("after Resize Read(%d, %d) = %v want 0", ch, i, got)
			}
		}
	}

	b.Write(1, 5, 2)
	if err := b.Resize(6); err != nil {
		t.Fatal(err)
	}
	if got := b.Read(1, 5); got != 0 {
		t.Fatalf("same-size Resize kept stale sample %v", got)
	}

	if err := b.Resize(0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("Resize(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestClear(t *testing.T) {
	b, err := NewForDuration(2, 1000, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	if b.Capacity() != 10 {
		t.Fatalf("Capacity = %d want 10", b.Capacity())
	}

	b.Write(0, 3, 1)
	b.Write(1, 7, -1)
	b.Clear()

	for ch := 0; ch < 2; ch++ {
		for i := 0; i < b.Capacity(); i++ {
			if got := b.Read(ch, i); got != 0 {
				t.Fatalf("after Clear Read(%d, %d) = %v want 0", ch, i, got)
			}
		}
	}
}

func BenchmarkReadWrite(b *testing.B) {
	buf, err := New(2, 144000)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v := buf.Read(0, i-12000)
		buf.Write(0, i, v*0.5+1)
	}
}
