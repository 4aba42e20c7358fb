package platform

import (
	"syscall"
)

//go:generate go tool counterfeiter -generate

// Platform bundles the OS facilities the runner needs.
type Platform interface {
	OSOperations
	ProcessOperations
}

// OSOperations defines file system and environment operations
//
//counterfeiter:generate . OSOperations
type OSOperations interface {
	// WriteTempFile creates a new uniquely named file in dir (the default
	// temp directory when empty), writes data with the given permissions and
	// returns its path.
	WriteTempFile(dir, pattern string, data []byte, perm uint32) (string, error)
	Remove(path string) error
	IsNotExist(err error) bool

	Environ() []string
	Getenv(key string) string
}

// ProcessOperations defines process control operations
type ProcessOperations interface {
	Kill(pid int, sig syscall.Signal) error
	LookPath(file string) (string, error)
}
