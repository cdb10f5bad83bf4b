// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command havend demonstrates the block validation and chain-extension
// core wired end to end: it opens (or creates) a leveldb-backed chain
// store seeded with the network's genesis block, builds a candidate
// block, mines it with a reference brute-force Miner, validates the
// result, attaches it to the store, and prints its standardized
// projection.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"path/filepath"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/chainstore"
	"github.com/havenchain/havencore/mining"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "havend:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, params, err := loadConfig()
	if err != nil {
		return err
	}

	initLogging(cfg.DataDir, cfg.LogLevel, cfg.MaxLogRollMB)
	havendLog.Infof("starting havend on %s", params.Name)

	store, err := chainstore.OpenLevelStore(filepath.Join(cfg.DataDir, "chain.ldb"), params)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	if err := seedGenesis(ctx, store, params); err != nil {
		return err
	}

	reader := chainstore.NewCachingReader(store, 2*uint64(11))
	validator := blockchain.NewValidator(reader)
	validator.StrictAuxParentHash = cfg.StrictAux

	builder := mining.NewBuilder(reader)
	miner := &bruteForceMiner{}

	header, txs, err := builder.MineNextBlock(ctx, miner, nil)
	if err != nil {
		return fmt.Errorf("mine next block: %w", err)
	}

	block := blockchain.NewBlock(header, txs)

	if err := validator.CheckHash(block); err != nil {
		return fmt.Errorf("candidate failed hash check: %w", err)
	}
	if err := validator.CheckBlockHeaderSanity(ctx, header); err != nil {
		return fmt.Errorf("candidate failed header sanity: %w", err)
	}
	if err := validator.CheckBlockSanity(ctx, header, txs); err != nil {
		return fmt.Errorf("candidate failed block sanity: %w", err)
	}
	if err := validator.CheckBlockContext(ctx, header); err != nil {
		return fmt.Errorf("candidate failed context check: %w", err)
	}

	tip, err := reader.TopBlock(ctx)
	if err != nil {
		return err
	}

	block.AttachTo(tip)

	if err := store.PutBlock(block); err != nil {
		return fmt.Errorf("store block: %w", err)
	}

	havendLog.Infof("accepted block %s at height %d", block.Hash(), block.Height())

	out, err := json.MarshalIndent(blockchain.Standardize(block), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	return nil
}

// seedGenesis stores the network's genesis block at height 0 if the store
// is empty, giving every lookup BlockByHeight/TopBlock/BlocksByHeights a
// valid height-0 anchor to walk back to.
func seedGenesis(ctx context.Context, store *chainstore.LevelStore, params *chaincfg.Params) error {
	if _, err := store.TopBlock(ctx); err == nil {
		return nil
	}

	genesis := blockchain.NewBlockAt(params.GenesisBlock, nil, 0, big.NewInt(0))
	return store.PutBlock(genesis)
}
