// Package vfs keeps source files and compiled outputs in memory so a batch
// of compilations can run without touching the host until PersistTo.
package vfs

import (
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultQuota is the byte limit used by NewVirtualDisk.
const DefaultQuota = 8 << 20

// validFilename accepts flat names only: no separators, no leading dot.
var validFilename = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9_.-]{0,63}$`)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrInvalidFilename = errors.New("invalid filename")
	ErrQuotaExceeded   = errors.New("disk quota exceeded")
	ErrFileExists      = errors.New("file already exists")
)

// VirtualDisk is an in-memory, concurrency-safe set of named files.
type VirtualDisk struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirty map[string]bool
	used  int
	quota int
}

// NewVirtualDisk creates a disk limited to DefaultQuota bytes.
func NewVirtualDisk() *VirtualDisk {
	return NewVirtualDiskWithQuota(DefaultQuota)
}

func NewVirtualDiskWithQuota(quota int) *VirtualDisk {
	return &VirtualDisk{
		files: make(map[string][]byte),
		dirty: make(map[string]bool),
		quota: quota,
	}
}

func checkName(name string) error {
	if !validFilename.MatchString(name) || strings.Contains(name, "..") {
		return ErrInvalidFilename
	}
	return nil
}

// Write stores a copy of data under name, replacing any existing file.
func (vd *VirtualDisk) Write(name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	vd.mu.Lock()
	defer vd.mu.Unlock()

	oldSize := 0
	if existing, ok := vd.files[name]; ok {
		oldSize = len(existing)
	}
	if vd.used-oldSize+len(data) > vd.quota {
		return ErrQuotaExceeded
	}

	vd.files[name] = append([]byte(nil), data...)
	vd.dirty[name] = true
	vd.used += len(data) - oldSize
	return nil
}

// WriteString is Write for text files.
func (vd *VirtualDisk) WriteString(name, text string) error {
	return vd.Write(name, []byte(text))
}

// Read returns a copy of the named file's contents.
func (vd *VirtualDisk) Read(name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	vd.mu.RLock()
	defer vd.mu.RUnlock()

	entry, ok := vd.files[name]
	if !ok {
		return nil, ErrFileNotFound
	}
	return append([]byte(nil), entry...), nil
}

// Delete removes a file; the removal reaches the host on the next PersistTo.
func (vd *VirtualDisk) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	vd.mu.Lock()
	defer vd.mu.Unlock()

	entry, ok := vd.files[name]
	if !ok {
		return ErrFileNotFound
	}
	vd.used -= len(entry)
	delete(vd.files, name)
	vd.dirty[name] = true
	return nil
}

func (vd *VirtualDisk) Used() int {
	vd.mu.RLock()
	defer vd.mu.RUnlock()
	return vd.used
}

func (vd *VirtualDisk) Dirty() bool {
	vd.mu.RLock()
	defer vd.mu.RUnlock()
	return len(vd.dirty) > 0
}

// List returns the sorted names of files whose name ends in ext; an empty
// ext lists everything.
func (vd *VirtualDisk) List(ext string) []string {
	vd.mu.RLock()
	defer vd.mu.RUnlock()

	names := make([]string, 0, len(vd.files))
	for name := range vd.files {
		if strings.HasSuffix(name, ext) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// LoadFrom copies a host file onto the disk under its base name. It fails
// with ErrFileExists if that name is already taken, so two host files with
// the same base name cannot replace one another.
func (vd *VirtualDisk) LoadFrom(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	name := filepath.Base(path)
	if err := checkName(name); err != nil {
		return "", err
	}

	vd.mu.Lock()
	defer vd.mu.Unlock()

	if _, ok := vd.files[name]; ok {
		return "", ErrFileExists
	}
	if vd.used+len(data) > vd.quota {
		return "", ErrQuotaExceeded
	}
	// not marked dirty: the file is already on the host
	vd.files[name] = append([]byte(nil), data...)
	vd.used += len(data)
	return name, nil
}

// PersistTo writes dirty files whose name ends in ext into dir, creating it
// if needed, and removes files deleted since the last persist.
// Returns the first error encountered; failed files stay dirty.
func (vd *VirtualDisk) PersistTo(dir, ext string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// snapshot under the lock, do I/O without it
	vd.mu.Lock()
	writes := make(map[string][]byte)
	var removes []string
	for name := range vd.dirty {
		if !strings.HasSuffix(name, ext) {
			continue
		}
		if entry, ok := vd.files[name]; ok {
			writes[name] = append([]byte(nil), entry...)
		} else {
			removes = append(removes, name)
		}
		delete(vd.dirty, name)
	}
	vd.mu.Unlock()

	var firstErr error
	fail := func(name string, err error) {
		vd.mu.Lock()
		vd.dirty[name] = true
		vd.mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for _, name := range removes {
		if err := os.Remove(filepath.Join(dir, name)); err != nil && !os.IsNotExist(err) {
			fail(name, err)
		}
	}
	for name, data := range writes {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
			fail(name, err)
		}
	}
	return firstErr
}
