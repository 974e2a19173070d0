package eviction

import "container/list"

// lru tracks recency with a doubly-linked list: front = most recently
// used, back = next victim. All operations are O(1).
type lru struct {
	elems map[string]*list.Element
	order *list.List // element values are keys (string)
}

func newLRU() *lru {
	return &lru{
		elems: make(map[string]*list.Element),
		order: list.New(),
	}
}

func (l *lru) OnGet(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.MoveToFront(el)
	}
}

func (l *lru) OnPut(key string) {
	if _, ok := l.elems[key]; ok {
		return
	}
	l.elems[key] = l.order.PushFront(key)
}

func (l *lru) Remove(key string) {
	if el, ok := l.elems[key]; ok {
		l.order.Remove(el)
		delete(l.elems, key)
	}
}

func (l *lru) Evict() string {
	el := l.order.Back()
	if el == nil {
		return ""
	}
	key := el.Value.(string)
	l.order.Remove(el)
	delete(l.elems, key)
	return key
}
