// Copyright (c) 2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package mining

import hlog "github.com/havenchain/havencore/log"

// log is a logger that is initialized with no output filters. This means
// the package will not perform any logging by default until the caller
// requests it.
var log hlog.Logger = hlog.Disabled

// DisableLog disables all library log output. Logging output is disabled
// by default until UseLogger is called.
func DisableLog() {
	log = hlog.Disabled
}

// UseLogger uses a specified Logger to output package logging info.
func UseLogger(logger hlog.Logger) {
	log = logger
}
