package bridge

import "fmt"

// Accounting tracks the aggregate locked-token balance: the sum of amounts
// over all orders still holding funds. Locked exactly once per order at
// creation, released exactly once at the first accounting-terminal event
// (complete, confirm or refund). Release never clamps; an underflow means a
// status guard was bypassed and must surface loudly.
type Accounting struct {
	locked uint64
}

func NewAccounting(locked uint64) *Accounting {
	return &Accounting{locked: locked}
}

func (a *Accounting) Lock(amount uint64) {
	a.locked += amount
}

func (a *Accounting) Release(amount uint64) error {
	if amount > a.locked {
		return fmt.Errorf("accounting underflow: release %d with %d locked", amount, a.locked)
	}
	a.locked -= amount
	return nil
}

func (a *Accounting) Locked() uint64 {
	return a.locked
}
