//go:build unix

package diskbuf

import (
	"os"

	"golang.org/x/sys/unix"
)

// Create opens (creating if needed) the file at path, sizes it to size
// bytes, and maps it read-write. The returned flush syncs the mapping to
// disk; release unmaps and closes the file. The caller must call release
// exactly once, after every use of buf has ended.
func Create(path string, size int) (buf []byte, flush func() error, release func() error, err error) {
	if size < 0 {
		return nil, nil, nil, ErrInvalidSize
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := f.Truncate(int64(size)); err != nil {
		_ = f.Close()
		return nil, nil, nil, err
	}
	if size == 0 {
		return []byte{}, func() error { return nil }, f.Close, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		_ = f.Close()
		return nil, nil, nil, err
	}

	flush = func() error { return unix.Msync(data, unix.MS_SYNC) }
	release = func() error {
		if uerr := unix.Munmap(data); uerr != nil {
			_ = f.Close()
			return uerr
		}
		return f.Close()
	}
	return data, flush, release, nil
}
