package csrand_test

import (
	"sync"
	"testing"
	"testing/quick"

	csrand "github.com/reddit/csrand.go"
)

func TestCountingSource(t *testing.T) {
	t.Run("quick", func(t *testing.T) {
		f := func(n uint8) bool {
			src := csrand.NewCountingSource(zeroSource{})
			if _, err := csrand.New(src).Bytes(int(n)); err != nil {
				t.Errorf("Bytes(%d) returned error: %v", n, err)
			}
			if src.Size() != int64(n) {
				t.Errorf("Size: got %d, want %d", src.Size(), n)
			}
			return !t.Failed()
		}
		if err := quick.Check(f, nil); err != nil {
			t.Error(err)
		}
	})

	t.Run("fraction-draw-size", func(t *testing.T) {
		src := csrand.NewCountingSource(zeroSource{})
		if _, err := csrand.New(src).Fraction(); err != nil {
			t.Fatalf("Fraction returned error: %v", err)
		}
		if src.Size() != 12 {
			t.Errorf("Size: got %d, want 12", src.Size())
		}
	})

	t.Run("default-source", func(t *testing.T) {
		src := csrand.NewCountingSource(nil)
		if _, err := csrand.New(src).Uint64(); err != nil {
			t.Fatalf("Uint64 returned error: %v", err)
		}
		if src.Size() != 8 {
			t.Errorf("Size: got %d, want 8", src.Size())
		}
	})

	t.Run("concurrent", func(t *testing.T) {
		const (
			goroutines = 16
			draws      = 100
			size       = 4
		)
		src := csrand.NewCountingSource(zeroSource{})
		sampler := csrand.New(src)

		var wg sync.WaitGroup
		for i := 0; i < goroutines; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < draws; j++ {
					if _, err := sampler.Bytes(size); err != nil {
						t.Errorf("Bytes(%d) returned error: %v", size, err)
					}
				}
			}()
		}
		wg.Wait()

		if want := int64(goroutines * draws * size); src.Size() != want {
			t.Errorf("Size: got %d, want %d", src.Size(), want)
		}
	})
}
