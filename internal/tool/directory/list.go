package directory

import (
	"context"
	"strings"

	"github.com/Cyclone1070/lsdir/internal/tool/service/git"
	"go.uber.org/zap"
)

// ListDirectoryTool handles directory listing operations.
type ListDirectoryTool struct {
	fs     fileSystem
	logger *zap.Logger
}

// NewListDirectoryTool creates a new ListDirectoryTool with injected dependencies.
// A nil logger is replaced with a no-op logger.
func NewListDirectoryTool(fs fileSystem, logger *zap.Logger) *ListDirectoryTool {
	if fs == nil {
		panic("fs is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ListDirectoryTool{
		fs:     fs,
		logger: logger,
	}
}

// Run lists the immediate entries of req.Path ("." when empty) in the order
// the OS returns them. Any failure is a *FilesystemAccessError and no entries
// are returned with it.
func (t *ListDirectoryTool) Run(ctx context.Context, req ListDirectoryRequest) (*ListDirectoryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := req.Path
	if path == "" {
		path = "."
	}
	log := t.logger.With(zap.String("path", path))

	info, err := t.fs.Stat(path)
	if err != nil {
		return nil, newAccessError(path, err)
	}
	if !info.IsDir() {
		return nil, &FilesystemAccessError{Path: path, Kind: ErrNotADirectory}
	}

	var matcher ignoreMatcher = &git.NoOpMatcher{}
	if req.RespectGitignore {
		m, err := git.NewIgnoreMatcher(path, t.fs)
		if err != nil {
			return nil, &FilesystemAccessError{Path: path, Kind: ErrAccessFailed, Cause: err}
		}
		matcher = m
	}

	log.Debug("reading directory")
	raw, err := t.fs.ListDir(path)
	if err != nil {
		return nil, newAccessError(path, err)
	}

	entries := make([]DirectoryEntry, 0, len(raw))
	for _, e := range raw {
		name := e.Name()
		if !req.ShowHidden && strings.HasPrefix(name, ".") {
			log.Debug("skipping hidden entry", zap.String("name", name))
			continue
		}
		if matcher.ShouldIgnore(name, e.IsDir()) {
			log.Debug("skipping gitignored entry", zap.String("name", name))
			continue
		}
		entries = append(entries, DirectoryEntry{Name: name, IsDir: e.IsDir()})
	}

	log.Debug("directory read", zap.Int("read", len(raw)), zap.Int("emitted", len(entries)))

	return &ListDirectoryResponse{
		DirectoryPath: path,
		Entries:       entries,
	}, nil
}
