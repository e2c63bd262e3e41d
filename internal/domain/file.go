package domain

// FileMeta describes one uploaded blob. Path is the public route the blob is
// served under; ServerPath is the filesystem location and exists only so the
// clear operation can delete the blob.
type FileMeta struct {
	Name       string `json:"name"`
	Size       int64  `json:"size"`
	Type       string `json:"type"`
	Path       string `json:"path"`
	ServerPath string `json:"serverPath"`
}
