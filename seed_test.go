package csrand

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

type brokenReader struct{}

func (brokenReader) Read(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestGetSeedFallback(t *testing.T) {
	if seed := getSeed(New(brokenReader{})); seed == 0 {
		t.Error("Expected a clock based fallback seed, got 0")
	}
}

func TestGetSeedDeterministic(t *testing.T) {
	seed := getSeed(New(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})))
	if want := int64(0x0807060504030201); seed != want {
		t.Errorf("getSeed: got %#x, want %#x", seed, want)
	}
}

func TestGetSeedUnique(t *testing.T) {
	const (
		goroutines   = 10
		perGoroutine = 100
	)

	var (
		mu    sync.Mutex
		seeds = make(map[int64]struct{}, goroutines*perGoroutine)
		wg    sync.WaitGroup
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			local := make([]int64, 0, perGoroutine)
			for j := 0; j < perGoroutine; j++ {
				local = append(local, GetSeed())
			}

			mu.Lock()
			defer mu.Unlock()
			for _, s := range local {
				seeds[s] = struct{}{}
			}
		}()
	}
	wg.Wait()

	if len(seeds) != goroutines*perGoroutine {
		t.Errorf("Expected %d distinct seeds, got %d", goroutines*perGoroutine, len(seeds))
	}
}
