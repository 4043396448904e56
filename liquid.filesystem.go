package liquid

import (
	"context"
	"sort"
	"sync"
)

// FileSystem loads template sources by logical name for the include tag.
// Implementations must be safe for concurrent reads.
type FileSystem interface {
	ReadTemplateFile(ctx context.Context, name string) (string, error)
}

// BlankFileSystem refuses every include
type BlankFileSystem struct{}

// ReadTemplateFile always fails
func (BlankFileSystem) ReadTemplateFile(_ context.Context, name string) (string, error) {
	return "", NewNoFileSystemError(name)
}

// FileSystemDriver creates file systems from a connection string.
// Drivers register themselves during init().
type FileSystemDriver interface {
	Open(connection string) (FileSystem, error)
}

// FileSystemDriverFunc adapts a function to FileSystemDriver
type FileSystemDriverFunc func(connection string) (FileSystem, error)

// Open implements FileSystemDriver
func (f FileSystemDriverFunc) Open(connection string) (FileSystem, error) {
	return f(connection)
}

var (
	fileSystemDriversMu sync.RWMutex
	fileSystemDrivers   = make(map[string]FileSystemDriver)
)

// RegisterFileSystemDriver makes a driver available by name.
// It panics if driver is nil or the name is already taken.
func RegisterFileSystemDriver(name string, driver FileSystemDriver) {
	fileSystemDriversMu.Lock()
	defer fileSystemDriversMu.Unlock()

	if driver == nil {
		panic(ErrMsgNilFileSystemDriver)
	}
	if _, exists := fileSystemDrivers[name]; exists {
		panic(ErrMsgDriverAlreadyRegistered + ": " + name)
	}
	fileSystemDrivers[name] = driver
}

// OpenFileSystem opens a file system using a registered driver.
//
//	fs, err := liquid.OpenFileSystem("local", "./templates")
//	fs, err := liquid.OpenFileSystem("postgres", "postgres://localhost/app")
func OpenFileSystem(driverName, connection string) (FileSystem, error) {
	fileSystemDriversMu.RLock()
	driver, ok := fileSystemDrivers[driverName]
	fileSystemDriversMu.RUnlock()

	if !ok {
		return nil, NewFileSystemDriverNotFoundError(driverName)
	}
	return driver.Open(connection)
}

// ListFileSystemDrivers returns the registered driver names in sorted order
func ListFileSystemDrivers() []string {
	fileSystemDriversMu.RLock()
	defer fileSystemDriversMu.RUnlock()

	names := make([]string, 0, len(fileSystemDrivers))
	for name := range fileSystemDrivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
