// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/havenchain/havencore/log"
	"github.com/havenchain/havencore/mining"
)

var havendLog log.Logger

// initLogging wires a rotating file backend (falling back to stdout-only on
// failure) and distributes per-subsystem loggers the way the teacher's
// flokicoind initLogRotator/useLogger pair does.
func initLogging(dataDir, levelName string, maxRollMB int) {
	level, ok := log.LevelFromString(levelName)
	if !ok {
		level = log.LevelInfo
	}

	backend, err := log.NewRotatingBackend(filepath.Join(dataDir, "havend.log"), maxRollMB)
	if err != nil {
		os.Stderr.WriteString("warning: log rotation unavailable, logging to stdout only: " + err.Error() + "\n")
		backend = log.NewDefaultBackend()
	}

	havendLog = backend.Logger("HVND")
	havendLog.SetLevel(level)

	miningLog := backend.Logger("MING")
	miningLog.SetLevel(level)
	mining.UseLogger(miningLog)
}
