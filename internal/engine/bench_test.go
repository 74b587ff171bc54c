package engine

import (
	"strings"
	"testing"

	"github.com/dshills/fluffy/internal/engine/cursor"
)

// ============================================================================
// Setup Helpers
// ============================================================================

func setupLargeEngine(b *testing.B, lines int) *Engine {
	b.Helper()
	var sb strings.Builder
	line := strings.Repeat("x", 80)
	for i := 0; i < lines; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(line)
	}
	return New(WithContent(sb.String()))
}

// ============================================================================
// Read Operation Benchmarks
// ============================================================================

func BenchmarkEngineText(b *testing.B) {
	e := setupLargeEngine(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Text()
	}
}

func BenchmarkEngineLines(b *testing.B) {
	e := setupLargeEngine(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.Lines()
	}
}

func BenchmarkEngineLineText(b *testing.B) {
	e := setupLargeEngine(b, 10000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.LineText(i % 10000)
	}
}

// ============================================================================
// Edit Operation Benchmarks
// ============================================================================

func BenchmarkEngineInsertText(b *testing.B) {
	e := New()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if i%100 == 0 {
			_ = e.SplitLine()
		}
		_ = e.InsertText("x")
	}
}

func BenchmarkEngineSplitJoin(b *testing.B) {
	e := setupLargeEngine(b, 1000)
	_ = e.SetCursor(cursor.New(40, 500))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = e.SplitLine()
		_ = e.DeleteBackward()
	}
}

func BenchmarkEnginePaste(b *testing.B) {
	text := strings.Repeat("pasted line of text\n", 20)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		e := New()
		_ = e.Paste(text)
	}
}

func BenchmarkEngineMoveCursor(b *testing.B) {
	e := setupLargeEngine(b, 1000)
	dirs := []Direction{DirDown, DirRight, DirUp, DirLeft}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = e.MoveCursor(dirs[i%len(dirs)])
	}
}
