package width

import (
	"strings"
	"testing"
)

func benchmarkChapter() string {
	long := strings.Repeat("prose that runs well past the limit ", 4)
	section := strings.Join([]string{
		"## Section",
		"",
		"Short introductory prose.",
		long,
		"[spec](https://example.com/" + strings.Repeat("p", 90) + ").",
		"```rust",
		"fn main() { println!(\"" + strings.Repeat("x", 100) + "\"); }",
		"```",
		"$$",
		"\\sum_{i=0}^{n} " + strings.Repeat("a_i + ", 20),
		"$$",
		"| a | b |",
		"|---|---|",
		"",
	}, "\n")
	return strings.Repeat(section, 200)
}

func BenchmarkCheck(b *testing.B) {
	content := benchmarkChapter()
	b.SetBytes(int64(len(content)))
	b.ResetTimer()
	for range b.N {
		Check(content)
	}
}

func BenchmarkClassifyViolation(b *testing.B) {
	line := strings.Repeat("word ", 30)
	b.ResetTimer()
	for range b.N {
		Classify(line)
	}
}

func BenchmarkInherentReason(b *testing.B) {
	line := "  [a](https://a.example.com/" + strings.Repeat("x", 40) + "), [b](https://b.example.com/y)!"
	b.ResetTimer()
	for range b.N {
		InherentReason(line)
	}
}
