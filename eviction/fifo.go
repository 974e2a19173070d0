package eviction

// fifo evicts in insertion order. Reads never change a key's position.
type fifo struct {
	queue []string
	seen  map[string]struct{}
}

func newFIFO() *fifo {
	return &fifo{seen: make(map[string]struct{})}
}

func (f *fifo) OnGet(string) {}

func (f *fifo) OnPut(key string) {
	if _, ok := f.seen[key]; ok {
		return
	}
	f.queue = append(f.queue, key)
	f.seen[key] = struct{}{}
}

func (f *fifo) Remove(key string) {
	if _, ok := f.seen[key]; !ok {
		return
	}
	delete(f.seen, key)
	for i, k := range f.queue {
		if k == key {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			break
		}
	}
}

func (f *fifo) Evict() string {
	if len(f.queue) == 0 {
		return ""
	}
	key := f.queue[0]
	f.queue = f.queue[1:]
	delete(f.seen, key)
	return key
}
