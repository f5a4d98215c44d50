// SPDX-License-Identifier: MIT

//go:build !unix

package input

import (
	"io"
	"os"
)

const mmapSupported = false

func mapCopy(f *os.File, size int) ([]byte, error) {
	buf := make([]byte, size)
	if _, err := io.ReadFull(f, buf); err != nil {
		return nil, err
	}

	return buf, nil
}
