package wager

import (
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	s := Calculate(50, 1, 0, 1, 2, 3)

	if s.TotalCost != 50 {
		t.Errorf("total cost = %.2f, want 50", s.TotalCost)
	}
	want := PayoutFirst + PayoutThird + 2*PayoutStarter + 3*PayoutConsolation
	if math.Abs(s.Winnings-want) > 1e-9 {
		t.Errorf("winnings = %.2f, want %.2f", s.Winnings, want)
	}
	if math.Abs(s.Net-(want-50)) > 1e-9 {
		t.Errorf("net = %.2f, want %.2f", s.Net, want-50)
	}
}

func TestBestAndWorstCase(t *testing.T) {
	best := BestCase(23)
	if best.FirstPrizes != 1 || best.Starters != 10 || best.Consolations != 10 {
		t.Errorf("best case prize counts wrong: %+v", best)
	}
	wantWinnings := PayoutFirst + PayoutSecond + PayoutThird + 10*PayoutStarter + 10*PayoutConsolation
	if math.Abs(best.Winnings-wantWinnings) > 1e-9 {
		t.Errorf("best winnings = %.2f, want %.2f", best.Winnings, wantWinnings)
	}

	worst := WorstCase(23)
	if worst.Winnings != 0 {
		t.Errorf("worst winnings = %.2f, want 0", worst.Winnings)
	}
	if worst.Net != -23 {
		t.Errorf("worst net = %.2f, want -23", worst.Net)
	}
}
