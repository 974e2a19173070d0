package eviction

// lfu tracks read counts in frequency buckets so eviction never scans
// the full key set. minFreq is the lowest bucket currently occupied.
type lfu struct {
	freqs   map[string]int
	buckets map[int]map[string]struct{}
	minFreq int
}

func newLFU() *lfu {
	return &lfu{
		freqs:   make(map[string]int),
		buckets: make(map[int]map[string]struct{}),
	}
}

func (l *lfu) OnGet(key string) {
	freq, ok := l.freqs[key]
	if !ok {
		return
	}
	delete(l.buckets[freq], key)
	if len(l.buckets[freq]) == 0 {
		delete(l.buckets, freq)
		if l.minFreq == freq {
			l.minFreq++
		}
	}
	l.freqs[key] = freq + 1
	l.bucket(freq + 1)[key] = struct{}{}
}

func (l *lfu) OnPut(key string) {
	if _, ok := l.freqs[key]; ok {
		return
	}
	l.freqs[key] = 1
	l.bucket(1)[key] = struct{}{}
	l.minFreq = 1
}

func (l *lfu) Remove(key string) {
	freq, ok := l.freqs[key]
	if !ok {
		return
	}
	delete(l.buckets[freq], key)
	if len(l.buckets[freq]) == 0 {
		delete(l.buckets, freq)
	}
	delete(l.freqs, key)
}

// Evict picks any key from the lowest occupied bucket. Ties within a
// bucket break by map iteration order.
func (l *lfu) Evict() string {
	if len(l.freqs) == 0 {
		return ""
	}
	// Removals can leave minFreq pointing at a drained bucket.
	for len(l.buckets[l.minFreq]) == 0 {
		l.minFreq++
	}
	for key := range l.buckets[l.minFreq] {
		delete(l.buckets[l.minFreq], key)
		if len(l.buckets[l.minFreq]) == 0 {
			delete(l.buckets, l.minFreq)
		}
		delete(l.freqs, key)
		return key
	}
	return ""
}

func (l *lfu) bucket(freq int) map[string]struct{} {
	b, ok := l.buckets[freq]
	if !ok {
		b = make(map[string]struct{})
		l.buckets[freq] = b
	}
	return b
}
