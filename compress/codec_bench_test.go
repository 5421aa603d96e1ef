package compress

import (
	"fmt"
	"testing"
)

func benchmarkCompress(b *testing.B, codec Codec) {
	benchSizes := []int{4096, 65536, 1024 * 1024}

	for _, size := range benchSizes {
		data := generateTestData(size, "compressible")

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				_, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func benchmarkDecompressInto(b *testing.B, codec Codec) {
	benchSizes := []int{4096, 65536, 1024 * 1024}

	for _, size := range benchSizes {
		data := generateTestData(size, "compressible")
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}
		dst := make([]byte, size)

		b.Run(fmt.Sprintf("%dKB", size/1024), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ResetTimer()

			for b.Loop() {
				if err := codec.DecompressInto(dst, compressed); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkLZ4Compress(b *testing.B)        { benchmarkCompress(b, NewLZ4Compressor()) }
func BenchmarkLZ4DecompressInto(b *testing.B)  { benchmarkDecompressInto(b, NewLZ4Compressor()) }
func BenchmarkS2Compress(b *testing.B)         { benchmarkCompress(b, NewS2Compressor()) }
func BenchmarkS2DecompressInto(b *testing.B)   { benchmarkDecompressInto(b, NewS2Compressor()) }
func BenchmarkZstdCompress(b *testing.B)       { benchmarkCompress(b, NewZstdCompressor()) }
func BenchmarkZstdDecompressInto(b *testing.B) { benchmarkDecompressInto(b, NewZstdCompressor()) }
