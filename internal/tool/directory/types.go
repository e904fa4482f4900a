package directory

// DirectoryEntry represents a single entry in a directory listing
type DirectoryEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// ListDirectoryRequest describes which directory to list and how to filter it.
// The zero value lists the working directory and keeps every entry except
// dot-prefixed ones; use DefaultRequest for the unfiltered listing.
type ListDirectoryRequest struct {
	Path             string
	ShowHidden       bool
	RespectGitignore bool
}

// DefaultRequest returns a request for path that keeps every entry.
func DefaultRequest(path string) ListDirectoryRequest {
	return ListDirectoryRequest{Path: path, ShowHidden: true}
}

// ListDirectoryResponse contains the result of a ListDirectory operation
type ListDirectoryResponse struct {
	DirectoryPath string
	Entries       []DirectoryEntry // In the order returned by the OS
}

// Names returns the entry names in listing order.
func (r *ListDirectoryResponse) Names() []string {
	names := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.Name
	}
	return names
}
