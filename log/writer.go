// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"io"
	"os"

	"github.com/jrick/logrotate/rotator"
)

// NewRotatingBackend creates a Backend that writes to both stdout and a
// size-rotated log file at logPath, the dual-sink convention the teacher's
// btcd-family daemons use for their own log initialization (e.g.
// initLogRotator in flokicoind's log.go).
func NewRotatingBackend(logPath string, maxRollMB int) (*Backend, error) {
	r, err := rotator.New(logPath, int64(maxRollMB)*1024, false, 10)
	if err != nil {
		return nil, err
	}
	return NewBackend(io.MultiWriter(os.Stdout, r)), nil
}
