// Package primes provides the prime enumeration consumed by the ECM
// stage engines. Lists are produced by a plain sieve of Eratosthenes and
// cached per bound, since every curve attempt sharing a bounds pair
// walks the same list.
package primes

import (
	"sort"
	"sync"
)

var (
	mu    sync.RWMutex
	cache = map[uint64][]uint64{}
)

// UpTo returns all primes <= bound in ascending order. The returned
// slice is shared between callers and must not be modified.
func UpTo(bound uint64) []uint64 {
	mu.RLock()
	list, ok := cache[bound]
	mu.RUnlock()
	if ok {
		return list
	}

	list = sieve(bound)

	mu.Lock()
	cache[bound] = list
	mu.Unlock()
	return list
}

// Between returns the primes p with lo < p <= hi, ascending. The
// returned slice aliases the cached list for hi and must not be
// modified.
func Between(lo, hi uint64) []uint64 {
	list := UpTo(hi)
	i := sort.Search(len(list), func(i int) bool { return list[i] > lo })
	return list[i:]
}

func sieve(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}
	composite := make([]bool, bound+1)
	for p := uint64(2); p*p <= bound; p++ {
		if composite[p] {
			continue
		}
		for m := p * p; m <= bound; m += p {
			composite[m] = true
		}
	}
	var list []uint64
	for p := uint64(2); p <= bound; p++ {
		if !composite[p] {
			list = append(list, p)
		}
	}
	return list
}
