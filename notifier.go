// SPDX-License-Identifier: GPL-3.0-or-later

package router

import "sync/atomic"

// notifierWordBits is the width of one notifier word.
const notifierWordBits = 32

// notifierCapacityBits is the fixed total number of signal bits a router's
// notifier bank can allocate, grounded on NOTIFIER_QUEUE_BITS-style
// constants in the original implementation's headers.
const notifierCapacityBits = 1024

// notifierBank holds a fixed-capacity array of atomic words, each bit an
// activity signal a scheduler can poll instead of spinning on an idle
// subgraph. The array is allocated together with the router by NewRouter,
// not on the first signal request. Grounded on Notifier/NotifierSignal in
// router.cc.
type notifierBank struct {
	words [notifierCapacityBits / notifierWordBits]atomic.Uint32
	next  atomic.Int32
}

func newNotifierBank() *notifierBank {
	return &notifierBank{}
}

// NotifierSignal is a handle to one allocated bit: a shared word pointer
// plus the bit's position within it, so callers can set/clear it with
// lock-free atomic operations.
type NotifierSignal struct {
	bank *notifierBank
	bit  int
}

// Active reports whether the signal's bit is currently set.
func (s NotifierSignal) Active() bool {
	word := &s.bank.words[s.bit/notifierWordBits]
	return word.Load()&(1<<uint(s.bit%notifierWordBits)) != 0
}

// SetActive sets the signal's bit, indicating the associated subgraph has
// work available.
func (s NotifierSignal) SetActive() {
	s.atomicOr(1 << uint(s.bit%notifierWordBits))
}

// SetInactive clears the signal's bit.
func (s NotifierSignal) SetInactive() {
	s.atomicAnd(^uint32(1 << uint(s.bit%notifierWordBits)))
}

func (s NotifierSignal) atomicOr(mask uint32) {
	word := &s.bank.words[s.bit/notifierWordBits]
	for {
		old := word.Load()
		if word.CompareAndSwap(old, old|mask) {
			return
		}
	}
}

func (s NotifierSignal) atomicAnd(mask uint32) {
	word := &s.bank.words[s.bit/notifierWordBits]
	for {
		old := word.Load()
		if word.CompareAndSwap(old, old&mask) {
			return
		}
	}
}

// NewNotifierSignal allocates the next free bit, initializes it active, and
// returns it. Once the fixed capacity is exhausted it reports
// [ErrNotifierCapacityExhausted]. Grounded on
// Router::new_notifier_signal.
func (r *Router) NewNotifierSignal() (NotifierSignal, error) {
	bit := r.notifiers.next.Add(1) - 1
	if int(bit) >= notifierCapacityBits {
		return NotifierSignal{}, ErrNotifierCapacityExhausted
	}
	sig := NotifierSignal{bank: r.notifiers, bit: int(bit)}
	sig.SetActive()
	r.log.Debug("notifier allocated", "bit", bit)
	return sig, nil
}
