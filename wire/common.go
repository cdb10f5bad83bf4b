// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2026 The Haven developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"

	"github.com/havenchain/havencore/chaincfg/chainhash"
)

// littleEndian is the byte order used for every integer field on the wire.
var littleEndian = binary.LittleEndian

// binarySerializer provides a pool of scratch buffers used to avoid
// allocating a new small slice on every field read/write, mirroring the
// pattern used throughout btcd-family wire packages.
var binarySerializer = scratchPool{}

type scratchPool struct {
	pool sync.Pool
}

func (p *scratchPool) Borrow() []byte {
	if b := p.pool.Get(); b != nil {
		return b.([]byte)
	}
	return make([]byte, 8)
}

func (p *scratchPool) Return(b []byte) {
	p.pool.Put(b) //nolint:staticcheck // byte slice pool, not pointer-like
}

// WriteVarInt serializes val to w using a variable number of bytes depending
// on its value.
func WriteVarInt(w io.Writer, pver uint32, val uint64) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	switch {
	case val < 0xfd:
		buf[0] = byte(val)
		_, err := w.Write(buf[:1])
		return err
	case val <= 0xffff:
		buf[0] = 0xfd
		littleEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err
	case val <= 0xffffffff:
		buf[0] = 0xfe
		littleEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err
	default:
		buf[0] = 0xff
		littleEndian.PutUint64(buf[1:9], val)
		_, err := w.Write(buf[:9])
		return err
	}
}

// ReadVarInt reads a variable length integer from r and returns it as a
// uint64.
func ReadVarInt(r io.Reader, pver uint32) (uint64, error) {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	discriminant := buf[0]

	switch discriminant {
	case 0xff:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return 0, err
		}
		return littleEndian.Uint64(buf[:8]), nil
	case 0xfe:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return 0, err
		}
		return uint64(littleEndian.Uint32(buf[:4])), nil
	case 0xfd:
		if _, err := io.ReadFull(r, buf[:2]); err != nil {
			return 0, err
		}
		return uint64(littleEndian.Uint16(buf[:2])), nil
	default:
		return uint64(discriminant), nil
	}
}

// VarIntSerializeSize returns the number of bytes it would take to serialize
// val as a variable length integer.
func VarIntSerializeSize(val uint64) int {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// writeElement writes a single fixed-width element to w using the wire's
// little-endian integer convention and the chainhash.Hash raw byte
// convention.
func writeElement(w io.Writer, element interface{}) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	switch e := element.(type) {
	case uint32:
		littleEndian.PutUint32(buf[:4], e)
		_, err := w.Write(buf[:4])
		return err
	case int32:
		littleEndian.PutUint32(buf[:4], uint32(e))
		_, err := w.Write(buf[:4])
		return err
	case uint64:
		littleEndian.PutUint64(buf[:8], e)
		_, err := w.Write(buf[:8])
		return err
	case *chainhash.Hash:
		_, err := w.Write(e[:])
		return err
	default:
		return fmt.Errorf("writeElement: unsupported type %T", element)
	}
}

// readElement reads a single fixed-width element from r into element,
// mirroring writeElement's supported type set.
func readElement(r io.Reader, element interface{}) error {
	buf := binarySerializer.Borrow()
	defer binarySerializer.Return(buf)

	switch e := element.(type) {
	case *uint32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = littleEndian.Uint32(buf[:4])
		return nil
	case *int32:
		if _, err := io.ReadFull(r, buf[:4]); err != nil {
			return err
		}
		*e = int32(littleEndian.Uint32(buf[:4]))
		return nil
	case *uint64:
		if _, err := io.ReadFull(r, buf[:8]); err != nil {
			return err
		}
		*e = littleEndian.Uint64(buf[:8])
		return nil
	case *chainhash.Hash:
		_, err := io.ReadFull(r, e[:])
		return err
	default:
		return fmt.Errorf("readElement: unsupported type %T", element)
	}
}
