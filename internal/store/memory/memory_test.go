package memory

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	ctx := context.Background()

	got, err := b.ReadCollection(ctx, "destinations")
	if err != nil || got != nil {
		t.Fatalf("ReadCollection(empty) = %v, %v; want nil, nil", got, err)
	}

	want := []byte(`[{"id":"d1"}]`)
	if err := b.WriteCollection(ctx, "destinations", want); err != nil {
		t.Fatalf("WriteCollection() error = %v", err)
	}
	got, err = b.ReadCollection(ctx, "destinations")
	if err != nil || !bytes.Equal(got, want) {
		t.Errorf("ReadCollection() = %s, %v; want %s", got, err, want)
	}
}

func TestFailWritesUnderConcurrency(t *testing.T) {
	b := New()
	ctx := context.Background()
	boom := errors.New("boom")

	// Writers race against a goroutine toggling FailWrites through the
	// same lock; every write must either store the data or return boom.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if err := b.WriteCollection(ctx, "events", []byte("[]")); err != nil && !errors.Is(err, boom) {
					t.Errorf("WriteCollection() error = %v, want nil or boom", err)
					return
				}
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for j := 0; j < 100; j++ {
			b.SetFailWrites(boom)
			b.SetFailWrites(nil)
		}
	}()
	wg.Wait()
}
