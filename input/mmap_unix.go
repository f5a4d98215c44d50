// SPDX-License-Identifier: MIT

//go:build unix

package input

import (
	"os"

	"golang.org/x/sys/unix"
)

const mmapSupported = true

// mapCopy maps f read-only, copies size bytes into an owned buffer and
// unmaps before returning, so the result outlives the mapping and the file.
func mapCopy(f *os.File, size int) ([]byte, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, err
	}
	// advisory only; EINVAL on odd alignments is harmless
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)

	buf := make([]byte, size)
	copy(buf, data)
	if err = unix.Munmap(data); err != nil {
		return nil, err
	}

	return buf, nil
}
