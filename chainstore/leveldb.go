// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainstore

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/havenchain/havencore/blockchain"
	"github.com/havenchain/havencore/chaincfg"
	"github.com/havenchain/havencore/wire"
	"github.com/syndtr/goleveldb/leveldb"
)

var topKey = []byte("top")

// LevelStore is a goleveldb-backed blockchain.ChainReader. It is a
// reference implementation, not a production storage engine: spec.md §6
// treats the chain store as an opaque external collaborator, so this type
// exists to give tests (and the cmd/havend demo) something real to validate
// against, the same role the teacher's own ffldb gives its block manager in
// integration tests.
type LevelStore struct {
	db     *leveldb.DB
	params *chaincfg.Params
}

// OpenLevelStore opens (creating if necessary) a LevelStore at path for the
// given network parameters.
func OpenLevelStore(path string, params *chaincfg.Params) (*LevelStore, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("chainstore: open %s: %w", path, err)
	}
	return &LevelStore{db: db, params: params}, nil
}

// Close releases the underlying database handle.
func (s *LevelStore) Close() error {
	return s.db.Close()
}

// Params returns the network parameters this store was opened under.
func (s *LevelStore) Params() *chaincfg.Params {
	return s.params
}

func heightKey(height int32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(height))
	return buf[:]
}

// PutBlock persists blk under its own height, and updates the stored tip
// pointer if blk is now the highest block known.
func (s *LevelStore) PutBlock(blk *blockchain.Block) error {
	var buf bytes.Buffer
	if err := encodeStoredBlock(&buf, blk); err != nil {
		return err
	}

	batch := new(leveldb.Batch)
	batch.Put(heightKey(blk.Height()), buf.Bytes())

	top, err := s.TopBlock(context.Background())
	if err != nil || blk.Height() > top.Height() {
		batch.Put(topKey, heightKey(blk.Height()))
	}

	return s.db.Write(batch, nil)
}

// TopBlock returns the highest block PutBlock has recorded.
func (s *LevelStore) TopBlock(ctx context.Context) (*blockchain.Block, error) {
	topHeightBytes, err := s.db.Get(topKey, nil)
	if err != nil {
		return nil, fmt.Errorf("chainstore: no blocks stored yet: %w", err)
	}
	height := int32(binary.BigEndian.Uint32(topHeightBytes))
	return s.BlockByHeight(ctx, height)
}

// BlockByHeight returns the block stored at height.
func (s *LevelStore) BlockByHeight(ctx context.Context, height int32) (*blockchain.Block, error) {
	raw, err := s.db.Get(heightKey(height), nil)
	if err != nil {
		return nil, fmt.Errorf("chainstore: no block at height %d: %w", height, err)
	}
	return decodeStoredBlock(bytes.NewReader(raw))
}

// BlocksByHeights returns the blocks stored at each of heights, in order.
func (s *LevelStore) BlocksByHeights(ctx context.Context, heights []int32) ([]*blockchain.Block, error) {
	blocks := make([]*blockchain.Block, len(heights))
	for i, h := range heights {
		blk, err := s.BlockByHeight(ctx, h)
		if err != nil {
			return nil, err
		}
		blocks[i] = blk
	}
	return blocks, nil
}

// encodeStoredBlock serializes a block's header, transactions, height, and
// chain work for persistence: the same fields NewBlockAt needs to
// rehydrate it without replaying the chain from genesis.
func encodeStoredBlock(w *bytes.Buffer, blk *blockchain.Block) error {
	if err := blk.Header().Serialize(w); err != nil {
		return err
	}

	var heightBuf [4]byte
	binary.BigEndian.PutUint32(heightBuf[:], uint32(blk.Height()))
	w.Write(heightBuf[:])

	workBytes := blk.ChainWork().Bytes()
	var workLenBuf [4]byte
	binary.BigEndian.PutUint32(workLenBuf[:], uint32(len(workBytes)))
	w.Write(workLenBuf[:])
	w.Write(workBytes)

	txs := blk.Transactions()
	var txCountBuf [4]byte
	binary.BigEndian.PutUint32(txCountBuf[:], uint32(len(txs)))
	w.Write(txCountBuf[:])
	for _, tx := range txs {
		if err := tx.Serialize(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeStoredBlock(r *bytes.Reader) (*blockchain.Block, error) {
	header := new(wire.BlockHeader)
	if err := header.Deserialize(r); err != nil {
		return nil, err
	}

	var heightBuf [4]byte
	if _, err := r.Read(heightBuf[:]); err != nil {
		return nil, err
	}
	height := int32(binary.BigEndian.Uint32(heightBuf[:]))

	var workLenBuf [4]byte
	if _, err := r.Read(workLenBuf[:]); err != nil {
		return nil, err
	}
	workLen := binary.BigEndian.Uint32(workLenBuf[:])
	workBytes := make([]byte, workLen)
	if _, err := r.Read(workBytes); err != nil {
		return nil, err
	}
	work := new(big.Int).SetBytes(workBytes)

	var txCountBuf [4]byte
	if _, err := r.Read(txCountBuf[:]); err != nil {
		return nil, err
	}
	txCount := binary.BigEndian.Uint32(txCountBuf[:])
	txs := make([]*wire.MsgTx, txCount)
	for i := range txs {
		tx := new(wire.MsgTx)
		if err := tx.Deserialize(r); err != nil {
			return nil, err
		}
		txs[i] = tx
	}

	return blockchain.NewBlockAt(header, txs, height, work), nil
}
