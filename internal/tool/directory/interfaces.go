package directory

import (
	"os"
)

// fileSystem defines the filesystem operations needed for listing a directory.
type fileSystem interface {
	Stat(path string) (os.FileInfo, error)
	ListDir(path string) ([]os.DirEntry, error)
	ReadFile(path string) ([]byte, error)
}

// ignoreMatcher decides whether an entry is excluded by .gitignore rules.
type ignoreMatcher interface {
	ShouldIgnore(relativePath string, isDir bool) bool
}
