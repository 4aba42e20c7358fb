package platform

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"syscall"
)

// Linux is the production Platform backed by the os and syscall packages.
type Linux struct{}

// NewPlatform returns the host platform. playrunner targets Linux only.
func NewPlatform() Platform {
	return &Linux{}
}

func (p *Linux) WriteTempFile(dir, pattern string, data []byte, perm uint32) (string, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return "", err
	}
	path := f.Name()

	if err := f.Chmod(fs.FileMode(perm)); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("chmod %s: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

func (p *Linux) Remove(path string) error {
	return os.Remove(path)
}

func (p *Linux) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (p *Linux) Environ() []string {
	return os.Environ()
}

func (p *Linux) Getenv(key string) string {
	return os.Getenv(key)
}

// Kill signals pid. A negative pid addresses the whole process group.
func (p *Linux) Kill(pid int, sig syscall.Signal) error {
	return syscall.Kill(pid, sig)
}

func (p *Linux) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
