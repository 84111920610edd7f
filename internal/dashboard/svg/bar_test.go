package svg

import (
	"strings"
	"testing"
)

func TestBarsProducesSVG(t *testing.T) {
	html, err := Bars(480, 240, []float64{1200, 800.5}, []string{"2026-01", "2026-02"}, BarOpts{
		Title:       "Receita mensal",
		SeriesLabel: "Total",
	})
	if err != nil {
		t.Fatalf("bars renderer error: %v", err)
	}
	output := string(html)
	if !strings.HasPrefix(output, "<svg") {
		t.Fatalf("expected svg output, got %s", output)
	}
	if got := strings.Count(output, "<rect x"); got != 3 {
		t.Fatalf("expected two bars and a legend swatch, got %d rects", got)
	}
	if !strings.Contains(output, ">R$0<") {
		t.Fatalf("expected R$ axis ticks in %s", output)
	}
	if !strings.Contains(output, "2026-02: R$800.50") {
		t.Fatalf("expected bar tooltip")
	}
	if !strings.Contains(output, "receita-mensal-bar-title") {
		t.Fatalf("expected title id derived from title")
	}
}

func TestBarsRejectsBadInput(t *testing.T) {
	if _, err := Bars(0, 0, nil, nil, BarOpts{}); err != ErrEmptySeries {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	if _, err := Bars(0, 0, []float64{1}, []string{"a", "b"}, BarOpts{}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestFormatCurrencyTick(t *testing.T) {
	cases := map[float64]string{0: "R$0", 1500: "R$1500", 12.5: "R$12.50"}
	for in, want := range cases {
		if got := FormatCurrencyTick(in); got != want {
			t.Errorf("FormatCurrencyTick(%v) = %q, want %q", in, got, want)
		}
	}
}
