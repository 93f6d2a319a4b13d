package models

import (
	"github.com/golangdaddy/truckin/pkg/config"
	"github.com/golangdaddy/truckin/pkg/random"
)

// Contract is a delivery job measured in distance units
type Contract struct {
	Target    int     // Full length of the job, paid on completion
	Remaining float64 // Distance still to drive
}

// DeliveryLedger holds the active contract and the money earned so far.
type DeliveryLedger struct {
	tiers    []config.Tier
	src      random.Source
	contract Contract
	money    int
	settled  int
}

// NewDeliveryLedger creates a ledger with no money and a freshly drawn contract.
func NewDeliveryLedger(cfg config.DeliveryConfig, src random.Source) *DeliveryLedger {
	l := &DeliveryLedger{
		tiers: cfg.Tiers,
		src:   src,
	}
	l.NewContract()
	return l
}

// Reset clears the balance and starts a new contract
func (l *DeliveryLedger) Reset() {
	l.money = 0
	l.settled = 0
	l.NewContract()
}

// NewContract draws a target from the tier distribution and makes it the
// active contract.
func (l *DeliveryLedger) NewContract() Contract {
	target := l.drawTarget()
	l.contract = Contract{Target: target, Remaining: float64(target)}
	return l.contract
}

// drawTarget picks a tier by weight, then a whole distance uniformly inside it.
func (l *DeliveryLedger) drawTarget() int {
	total := 0.0
	for _, t := range l.tiers {
		total += t.Weight
	}
	roll := l.src.Float64() * total

	tier := l.tiers[len(l.tiers)-1]
	for _, t := range l.tiers {
		if roll < t.Weight {
			tier = t
			break
		}
		roll -= t.Weight
	}
	return tier.Min + l.src.Intn(tier.Max-tier.Min)
}

// Advance counts distance driven against the active contract
func (l *DeliveryLedger) Advance(distance float64) {
	l.contract.Remaining -= distance
}

// TrySettle pays out a finished contract and starts the next one. The
// payout is the contract's full target; overshoot is neither charged nor paid.
func (l *DeliveryLedger) TrySettle() (paid int, ok bool) {
	if l.contract.Remaining > 0 {
		return 0, false
	}
	paid = l.contract.Target
	l.money += paid
	l.settled++
	l.NewContract()
	return paid, true
}

// Contract returns the active contract.
func (l *DeliveryLedger) Contract() Contract {
	return l.contract
}

// Money returns the balance earned this game.
func (l *DeliveryLedger) Money() int {
	return l.money
}

// Settled returns how many contracts have been paid this game.
func (l *DeliveryLedger) Settled() int {
	return l.settled
}
