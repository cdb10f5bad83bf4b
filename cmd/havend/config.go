// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/havenchain/havencore/chaincfg"
)

var defaultDataDir = filepath.Join(".", "havend-data")

// config defines the configuration options for havend. It is deliberately
// thin: havend's job is to wire blockchain.Validator, mining.Builder, and a
// chainstore.ChainReader together, not to expose the full surface a
// networked daemon would.
type config struct {
	DataDir     string `short:"b" long:"datadir" description:"Directory to store the block index"`
	TestNet     bool   `long:"testnet" description:"Use the test network"`
	StrictAux   bool   `long:"strictauxparent" description:"Reject AuxPoW blocks whose claimed parent hash does not match the computed one"`
	LogLevel    string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical}"`
	MaxLogRollMB int   `long:"logrollmb" default:"10" description:"Maximum log file size in MB before rotating"`
}

func loadConfig() (*config, *chaincfg.Params, error) {
	cfg := config{
		DataDir:  defaultDataDir,
		LogLevel: "info",
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	params := &chaincfg.MainNetParams
	if cfg.TestNet {
		params = &chaincfg.TestNetParams
	}

	if err := os.MkdirAll(cfg.DataDir, 0700); err != nil {
		return nil, nil, fmt.Errorf("create data dir: %w", err)
	}

	return &cfg, params, nil
}
