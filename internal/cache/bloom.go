package cache

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// CaseFilter deduplicates case records across pagination reloads and
// overlapping dates. The portal re-serves rows after every "next" click, so
// the same case can show up more than once within a run.
type CaseFilter struct {
	filter *bloom.BloomFilter
	mu     sync.Mutex
}

// NewCaseFilter creates a Bloom filter sized for the expected number of case
// keys with the given false positive rate (e.g. 100_000 and 0.001).
func NewCaseFilter(expectedItems uint, fpRate float64) *CaseFilter {
	return &CaseFilter{
		filter: bloom.NewWithEstimates(expectedItems, fpRate),
	}
}

// Seen records the key and reports whether it was already present.
func (f *CaseFilter) Seen(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.filter.TestString(key) {
		return true
	}
	f.filter.AddString(key)
	return false
}

func (f *CaseFilter) Count() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.ApproximatedSize()
}

func (f *CaseFilter) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter.ClearAll()
}
