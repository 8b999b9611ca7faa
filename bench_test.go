package pixfilter

import (
	"bytes"
	"image/png"
	"io"
	"testing"
)

func BenchmarkApply(b *testing.B) {
	const w, h = 512, 512
	src := randomPixels(w, h, 15)

	backends := []Backend{Sequential{}, &Parallel{}}
	for _, backend := range backends {
		for _, f := range Catalog() {
			b.Run(backend.Name()+"/"+f.ID.String(), func(b *testing.B) {
				b.SetBytes(int64(len(src)))
				for i := 0; i < b.N; i++ {
					applyFilter(backend, src, w, h, f.ID, Params{})
				}
			})
		}
	}
}

func BenchmarkProcess(b *testing.B) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, FromPixels(randomPixels(256, 256, 16), 256, 256)); err != nil {
		b.Fatalf("Failed encoding benchmark image: %v", err)
	}
	chain, err := ParseChain("grayscale,sobel", Params{})
	if err != nil {
		b.Fatal(err)
	}
	p := Processor{Chain: chain}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := p.Process(bytes.NewReader(buf.Bytes()), io.Discard); err != nil {
			b.Fatalf("Failed processing benchmark image: %v", err)
		}
	}
}
