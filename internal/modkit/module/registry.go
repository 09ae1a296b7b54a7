package module

import "sync"

// process-wide registry used while main composes modules
var (
	mu  sync.RWMutex
	reg = map[string]any{}
)

// Register stores ports under name
func Register(name string, ports any) {
	mu.Lock()
	reg[name] = ports
	mu.Unlock()
}

// PortsAs fetches ports registered under name as T
func PortsAs[T any](name string) (T, bool) {
	mu.RLock()
	v, ok := reg[name]
	mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

// Reset clears the registry; tests only
func Reset() {
	mu.Lock()
	reg = map[string]any{}
	mu.Unlock()
}
