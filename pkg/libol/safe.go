package libol

import (
	"sync"
)

// SafeStrMap is a string keyed map guarded by a RWMutex. A non-zero size
// caps the number of entries.
type SafeStrMap struct {
	size int
	data map[string]any
	lock sync.RWMutex
}

func NewSafeStrMap(size int) *SafeStrMap {
	calSize := size
	if calSize == 0 {
		calSize = 128
	}
	return &SafeStrMap{
		size: size,
		data: make(map[string]any, calSize),
	}
}

func (sm *SafeStrMap) Len() int {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return len(sm.data)
}

func (sm *SafeStrMap) add(k string, v any) error {
	if sm.size == 0 || len(sm.data) < sm.size {
		if _, ok := sm.data[k]; !ok {
			sm.data[k] = v
		}
		return nil
	}
	return NewErr("SafeStrMap.Set already full")
}

func (sm *SafeStrMap) Set(k string, v any) error {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	return sm.add(k, v)
}

func (sm *SafeStrMap) Mod(k string, v any) error {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	if _, ok := sm.data[k]; !ok {
		return sm.add(k, v)
	}
	sm.data[k] = v
	return nil
}

func (sm *SafeStrMap) Del(k string) {
	sm.lock.Lock()
	defer sm.lock.Unlock()

	delete(sm.data, k)
}

func (sm *SafeStrMap) Get(k string) any {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	return sm.data[k]
}

func (sm *SafeStrMap) GetEx(k string) (any, bool) {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	v, ok := sm.data[k]
	return v, ok
}

func (sm *SafeStrMap) Iter(proc func(k string, v any)) int {
	sm.lock.RLock()
	defer sm.lock.RUnlock()

	count := 0
	for k, u := range sm.data {
		if u != nil {
			proc(k, u)
			count += 1
		}
	}
	return count
}
