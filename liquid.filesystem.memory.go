package liquid

import (
	"context"
	"sort"
	"sync"
)

// MemoryFileSystem serves templates from an in-memory map. Useful for tests
// and for hosts that assemble templates at runtime.
type MemoryFileSystem struct {
	mu        sync.RWMutex
	templates map[string]string
}

// NewMemoryFileSystem creates a file system holding a copy of templates
func NewMemoryFileSystem(templates map[string]string) *MemoryFileSystem {
	m := &MemoryFileSystem{templates: make(map[string]string, len(templates))}
	for name, source := range templates {
		m.templates[name] = source
	}
	return m
}

// Set stores source under name, replacing any previous source
func (m *MemoryFileSystem) Set(name, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.templates[name] = source
}

// Delete removes name and reports whether it existed
func (m *MemoryFileSystem) Delete(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.templates[name]
	delete(m.templates, name)
	return ok
}

// Names returns the stored template names in sorted order
func (m *MemoryFileSystem) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.templates))
	for name := range m.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReadTemplateFile implements FileSystem
func (m *MemoryFileSystem) ReadTemplateFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" {
		return "", &FileSystemError{Message: ErrMsgEmptyTemplateName}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	source, ok := m.templates[name]
	if !ok {
		return "", NewTemplateNotFoundError(name)
	}
	return source, nil
}

func init() {
	RegisterFileSystemDriver(FileSystemDriverMemory, FileSystemDriverFunc(func(string) (FileSystem, error) {
		return NewMemoryFileSystem(nil), nil
	}))
}
