package energy

import (
	"math"
	"strings"
	"testing"
)

func TestLog_RecordAndTotal(t *testing.T) {
	l := NewLog(10)

	l.Record(0, 1.0)
	l.Record(1, 2.5)

	if l.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", l.Len())
	}
	if math.Abs(l.Total()-35.0) > 1e-9 {
		t.Errorf("expected total 35, got %v", l.Total())
	}

	entries := l.Entries()
	if entries[0].Cost != 10 || entries[1].Cost != 25 {
		t.Errorf("unexpected entry costs: %v", entries)
	}
}

func TestLog_Monotonic(t *testing.T) {
	l := NewLog(10)

	prev := 0.0
	for i := 0; i < 500; i++ {
		l.Record(i, float64(i%7)*0.1)
		if l.Total() < prev {
			t.Fatalf("total decreased at step %d: %v < %v", i, l.Total(), prev)
		}
		prev = l.Total()
	}
}

func TestLog_ZeroDisplacement(t *testing.T) {
	l := NewLog(10)

	l.Record(0, 0)
	if l.Len() != 1 {
		t.Errorf("zero-cost step must still be logged, got %d entries", l.Len())
	}
	if l.Total() != 0 {
		t.Errorf("expected zero total, got %v", l.Total())
	}
}

func TestLog_DefaultRate(t *testing.T) {
	for _, rate := range []float64{0, -5} {
		l := NewLog(rate)
		if l.Rate() != DefaultRate {
			t.Errorf("rate %v: expected fallback to %v, got %v", rate, DefaultRate, l.Rate())
		}
	}
}

func TestLog_Render(t *testing.T) {
	l := NewLog(10)
	l.Record(0, 1.0)
	l.Record(1, 0.5)

	out := l.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "Step 0: 10 units" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if lines[1] != "Step 1: 5 units" {
		t.Errorf("unexpected second line: %q", lines[1])
	}
}

func BenchmarkRecord(b *testing.B) {
	l := NewLog(10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Record(i, 0.5)
	}
}
