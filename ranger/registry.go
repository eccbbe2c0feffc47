package ranger

import (
	"sort"
	"sync"

	"github.com/xy-planning-network/microapp/app"
)

// A Factory constructs the app.App for a micro-app directory.
type Factory func() app.App

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Factory)
)

// Register makes a micro-app available to Discover under name,
// the name of the directory it lives in.
//
// Register is meant to be called from the init function of a micro-app's package.
// If Register is called twice with the same name or if f is nil, it panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if f == nil {
		panic("ranger: Register factory is nil")
	}

	if _, dup := registry[name]; dup {
		panic("ranger: Register called twice for micro-app " + name)
	}

	registry[name] = f
}

// Registered returns a sorted list of the names of the registered micro-apps.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	list := make([]string, 0, len(registry))
	for name := range registry {
		list = append(list, name)
	}
	sort.Strings(list)
	return list
}

func lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := registry[name]
	return f, ok
}
