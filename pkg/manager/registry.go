package manager

import (
	"os/exec"
	"sort"
	"strings"
	"sync"

	"pacwrap/internal/executor"
	"pacwrap/pkg/manager/detector"
)

// Factory builds a backend bound to the process-wide options and runner.
type Factory func(opts Options, runner *executor.Runner) Manager

// Registry knows every backend and selects the single active one.
type Registry struct {
	infos     map[string]ManagerInfo
	factories map[string]Factory
	aliases   map[string]string
	opts      Options
	runner    *executor.Runner
	lookPath  func(file string) (string, error)
	mu        sync.RWMutex
}

// NewRegistry creates an empty registry. Backends built from it share opts and runner.
func NewRegistry(opts Options, runner *executor.Runner) *Registry {
	return &Registry{
		infos:     make(map[string]ManagerInfo),
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
		opts:      opts,
		runner:    runner,
		lookPath:  exec.LookPath,
	}
}

// SetLookPath replaces the PATH lookup used by detection. Used by tests.
func (r *Registry) SetLookPath(fn func(file string) (string, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookPath = fn
}

// Register adds a backend under its name and aliases.
func (r *Registry) Register(info ManagerInfo, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.infos[info.Name] = info
	r.factories[info.Name] = factory
	for _, alias := range info.Aliases {
		r.aliases[alias] = info.Name
	}
}

// Names returns the registered backend names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.infos))
	for name := range r.infos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Info returns static information about a backend by name or alias.
func (r *Registry) Info(name string) (ManagerInfo, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	info, ok := r.infos[r.canonical(name)]
	return info, ok
}

// Get builds the backend registered under name or alias.
func (r *Registry) Get(name string) (Manager, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	factory, ok := r.factories[r.canonical(name)]
	if !ok {
		return nil, false
	}
	return factory(r.opts, r.runner), true
}

// Select returns the active backend: the override when given, otherwise the
// one matching the host. Nothing is executed.
func (r *Registry) Select(override string, sys *detector.SystemInfo) (Manager, error) {
	if override != "" {
		mgr, ok := r.Get(override)
		if !ok {
			return nil, &ConfigError{Key: "--using", Value: override, Known: r.Names(), Err: ErrUnknownBackend}
		}
		return mgr, nil
	}

	name := r.NativeName(sys)
	if name == "" {
		return nil, &ConfigError{Known: r.Names(), Err: ErrNoBackend}
	}
	mgr, ok := r.Get(name)
	if !ok {
		return nil, &ConfigError{Key: "host detection", Value: name, Known: r.Names(), Err: ErrNoBackend}
	}
	return mgr, nil
}

// NativeName returns the backend name that host detection picks, or "".
func (r *Registry) NativeName(sys *detector.SystemInfo) string {
	if sys == nil {
		return ""
	}

	switch {
	case sys.IsLinux():
		if name := detector.GetNativeManagerForFamily(sys.Distribution, sys.DistroFamily); name != "" {
			return name
		}
		return r.firstOnPath(detector.LinuxFallbackManagers)
	case sys.IsDarwin():
		return detector.GetDarwinManager()
	case sys.IsWindows():
		if name := r.firstOnPath(detector.WindowsManagers); name != "" {
			return name
		}
		return detector.WindowsManagers[0]
	}
	return ""
}

// firstOnPath returns the first registered backend whose binary is on PATH.
func (r *Registry) firstOnPath(names []string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range names {
		info, ok := r.infos[name]
		if !ok {
			continue
		}
		if _, err := r.lookPath(info.Binary); err == nil {
			return name
		}
	}
	return ""
}

// canonical maps an alias to its backend name. Caller holds the lock.
func (r *Registry) canonical(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if target, ok := r.aliases[name]; ok {
		return target
	}
	return name
}
