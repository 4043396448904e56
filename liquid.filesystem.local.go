package liquid

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var templateNameRe = regexp.MustCompile(patternTemplateName)

// LocalFileSystem reads partial templates from a directory tree. The name
// "a/b" maps to <root>/a/_b.liquid and "b" to <root>/_b.liquid. Names must
// consist of letters, digits, underscores and slashes and must not start
// with a slash; resolved paths never leave the root.
type LocalFileSystem struct {
	root   string
	logger *zap.Logger
}

// NewLocalFileSystem creates a file system rooted at root, which must be
// an existing directory.
func NewLocalFileSystem(root string, logger *zap.Logger) (*LocalFileSystem, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, &FileSystemError{Message: ErrMsgInvalidRoot, Name: root, Cause: err}
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, &FileSystemError{Message: ErrMsgInvalidRoot, Name: root, Cause: err}
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return nil, &FileSystemError{Message: ErrMsgInvalidRoot, Name: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &FileSystemError{Message: ErrMsgInvalidRoot, Name: root}
	}

	return &LocalFileSystem{root: resolved, logger: logger}, nil
}

// Root returns the resolved root directory
func (l *LocalFileSystem) Root() string {
	return l.root
}

// FullPath maps a template name to its file path, rejecting names outside
// the allowed character set and paths escaping the root.
func (l *LocalFileSystem) FullPath(name string) (string, error) {
	if !templateNameRe.MatchString(name) {
		return "", &FileSystemError{Message: ErrMsgIllegalTemplateName, Name: name}
	}

	dir, base := path.Split(name)
	full := filepath.Join(l.root, filepath.FromSlash(dir), TemplateFilePrefix+base+TemplateFileExtension)

	if !l.contains(full) {
		return "", &FileSystemError{Message: ErrMsgIllegalTemplatePath, Name: name}
	}
	// Symlinks inside the root may still point elsewhere.
	if real, err := filepath.EvalSymlinks(full); err == nil && !l.contains(real) {
		return "", &FileSystemError{Message: ErrMsgIllegalTemplatePath, Name: name}
	}
	return full, nil
}

func (l *LocalFileSystem) contains(p string) bool {
	rel, err := filepath.Rel(l.root, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ReadTemplateFile implements FileSystem
func (l *LocalFileSystem) ReadTemplateFile(ctx context.Context, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	full, err := l.FullPath(name)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", NewTemplateNotFoundError(name)
		}
		return "", &FileSystemError{Message: ErrMsgTemplateReadFailed, Name: name, Cause: err}
	}

	l.logger.Debug(LogMsgFileRead, zap.String(LogFieldPath, full), zap.Int(LogFieldBytes, len(data)))
	return string(data), nil
}

func init() {
	RegisterFileSystemDriver(FileSystemDriverLocal, FileSystemDriverFunc(func(connection string) (FileSystem, error) {
		fs, err := NewLocalFileSystem(connection, nil)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}))
}
