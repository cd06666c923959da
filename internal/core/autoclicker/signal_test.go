package autoclicker

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalStartsRunning(t *testing.T) {
	sig := NewSignal()

	assert.False(t, sig.Stopped())
	select {
	case <-sig.Done():
		t.Fatalf("Done() closed before Stop()")
	default:
	}
}

func TestSignalStopIsIdempotent(t *testing.T) {
	sig := NewSignal()

	sig.Stop()
	sig.Stop()

	assert.True(t, sig.Stopped())
	select {
	case <-sig.Done():
	default:
		t.Fatalf("Done() not closed after Stop()")
	}
}

func TestSignalConcurrentStopIsMonotonic(t *testing.T) {
	sig := NewSignal()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sig.Stop()
		}()
	}

	seenStop := false
	for i := 0; i < 10000; i++ {
		stopped := sig.Stopped()
		if seenStop && !stopped {
			t.Fatalf("observed running after stop at read %d", i)
		}
		seenStop = seenStop || stopped
	}
	wg.Wait()

	assert.True(t, sig.Stopped())
}
