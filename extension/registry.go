// registry.go implements the extension registration system.
//
// Separated from extension.go to isolate the global registry state and
// thread-safe access patterns. Extensions self-register during init(),
// before main() runs.
//
// Registration panics on duplicates, following database/sql.Register.
// Registration order is preserved so command and tool ordering is
// deterministic across runs.

package extension

import "sync"

// Registry holds all registered extensions.
var (
	mu       sync.RWMutex
	registry = make(map[string]Extension)
	order    []string // preserve registration order
)

// Register adds an extension to the registry. Called from init() functions.
// A duplicate name is a programmer error and panics.
func Register(e Extension) {
	mu.Lock()
	defer mu.Unlock()

	name := e.Name()
	if _, exists := registry[name]; exists {
		panic("extension already registered: " + name)
	}

	registry[name] = e
	order = append(order, name)
}

// All returns all registered extensions in registration order.
func All() []Extension {
	mu.RLock()
	defer mu.RUnlock()

	exts := make([]Extension, 0, len(order))
	for _, name := range order {
		exts = append(exts, registry[name])
	}
	return exts
}

// Get returns a specific extension by name, or nil if not found.
func Get(name string) Extension {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// Names returns the names of all registered extensions.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, len(order))
	copy(names, order)
	return names
}

// Tools returns the MCP tools of every registered extension in registration
// order. Two extensions exposing the same tool name is a programmer error and
// panics.
func Tools() []MCPTool {
	seen := make(map[string]string)
	var tools []MCPTool
	for _, ext := range All() {
		for _, t := range ext.MCPTools() {
			if prev, ok := seen[t.Tool.Name]; ok {
				panic("MCP tool " + t.Tool.Name + " registered by both " + prev + " and " + ext.Name())
			}
			seen[t.Tool.Name] = ext.Name()
			tools = append(tools, t)
		}
	}
	return tools
}
