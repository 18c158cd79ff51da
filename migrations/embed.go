package migrations

import (
	"embed"
	"io/fs"
)

// Each driver has its own dialect of the schema under a subdirectory
// named after it.
//
//go:embed sqlite/*.sql postgres/*.sql
var Files embed.FS

// GetFS returns the migrations filesystem
func GetFS() fs.FS {
	return Files
}
