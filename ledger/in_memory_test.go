package ledger

import (
	"sync"
	"testing"
)

func TestInMemory_SpendAndRemaining(t *testing.T) {
	l := NewInMemory(5.00)

	if got := l.GetBudgetRemaining(); got != 5.00 {
		t.Fatalf("expected 5.00 remaining, got %v", got)
	}
	if !l.RecordSpend(1.25) {
		t.Fatal("expected spend within budget to be accepted")
	}
	if got := l.GetBudgetRemaining(); got != 3.75 {
		t.Fatalf("expected 3.75 remaining, got %v", got)
	}
	if got := l.Spent(); got != 1.25 {
		t.Fatalf("expected 1.25 spent, got %v", got)
	}
}

func TestInMemory_RejectsOverspend(t *testing.T) {
	l := NewInMemory(2.00)

	if l.RecordSpend(2.50) {
		t.Fatal("expected overspend to be rejected")
	}
	if got := l.GetBudgetRemaining(); got != 2.00 {
		t.Fatalf("rejected spend must not change the balance, got %v", got)
	}
	// spending the exact balance is allowed
	if !l.RecordSpend(2.00) {
		t.Fatal("expected exact-balance spend to be accepted")
	}
	if got := l.GetBudgetRemaining(); got != 0 {
		t.Fatalf("expected empty balance, got %v", got)
	}
}

func TestInMemory_RejectsNegativeCost(t *testing.T) {
	l := NewInMemory(1.00)
	if l.RecordSpend(-0.50) {
		t.Fatal("expected negative cost to be rejected")
	}
	if got := l.GetBudgetRemaining(); got != 1.00 {
		t.Fatalf("expected balance unchanged, got %v", got)
	}
}

func TestInMemory_ClampsNegativeInitial(t *testing.T) {
	l := NewInMemory(-3)
	if got := l.GetBudgetRemaining(); got != 0 {
		t.Fatalf("expected zero balance, got %v", got)
	}
}

func TestInMemory_ConcurrentSpends(t *testing.T) {
	l := NewInMemory(30)

	var wg sync.WaitGroup
	accepted := make(chan bool, 50)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			accepted <- l.RecordSpend(1)
		}()
	}
	wg.Wait()
	close(accepted)

	count := 0
	for ok := range accepted {
		if ok {
			count++
		}
	}
	if count != 30 {
		t.Fatalf("expected exactly 30 accepted spends, got %d", count)
	}
	if got := l.GetBudgetRemaining(); got != 0 {
		t.Fatalf("expected zero remaining, got %v", got)
	}
}
