/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"

	"github.com/unidoc/fontcolor/common"
)

// byteWriter provides methods to write binary data as fit for truetype fonts into a buffer, used
// for encoding single tables. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	len int64

	buffer bytes.Buffer
}

func newByteWriter() *byteWriter {
	return &byteWriter{}
}

// bytes returns a copy of the current buffer.
func (w *byteWriter) bytes() []byte {
	return append([]byte(nil), w.buffer.Bytes()...)
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the checksum of the current buffer.
func (w *byteWriter) checksum() uint32 {
	return checksum(w.buffer.Bytes())
}

// checksum returns the sfnt checksum of `data`: the sum of its big endian uint32 words with the
// last word zero padded.
func checksum(data []byte) uint32 {
	common.Log.Trace("Checksum data length: %d", len(data))

	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		return w.writeUint8(t...)
	case []uint16:
		return w.writeUint16(t...)
	case []uint32:
		for _, val := range t {
			err := w.writeUint32(val)
			if err != nil {
				return err
			}
		}
	default:
		common.Log.Debug("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// Write a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch t := f.(type) {
		case uint8:
			err := w.writeUint8(t)
			if err != nil {
				return err
			}
		case uint16:
			err := w.writeUint16(t)
			if err != nil {
				return err
			}
		case int16:
			err := w.writeInt16(t)
			if err != nil {
				return err
			}
		case uint32:
			err := w.writeUint32(t)
			if err != nil {
				return err
			}
		case tag:
			err := w.writeTag(t)
			if err != nil {
				return err
			}
		case offset16:
			err := w.writeOffset16(t)
			if err != nil {
				return err
			}
		case offset32:
			err := w.writeOffset32(t)
			if err != nil {
				return err
			}
		default:
			common.Log.Debug("Write type check error: %T", t)
			return errTypeCheck
		}
	}

	return nil
}

func (w *byteWriter) writeBytes(data []byte) error {
	n, err := w.buffer.Write(data)
	w.len += int64(n)
	return err
}

func (w *byteWriter) writeUint8(vals ...uint8) error {
	err := binary.Write(&w.buffer, binary.BigEndian, vals)
	if err != nil {
		return err
	}
	w.len += int64(len(vals))
	return nil
}

func (w *byteWriter) writeUint16(vals ...uint16) error {
	err := binary.Write(&w.buffer, binary.BigEndian, vals)
	if err != nil {
		return err
	}
	w.len += 2 * int64(len(vals))
	return nil
}

func (w *byteWriter) writeInt16(vals ...int16) error {
	err := binary.Write(&w.buffer, binary.BigEndian, vals)
	if err != nil {
		return err
	}
	w.len += 2 * int64(len(vals))
	return nil
}

func (w *byteWriter) writeUint32(val uint32) error {
	err := binary.Write(&w.buffer, binary.BigEndian, val)
	if err != nil {
		return err
	}
	w.len += 4
	return nil
}

func (w *byteWriter) writeTag(val tag) error {
	err := binary.Write(&w.buffer, binary.BigEndian, val)
	if err != nil {
		return err
	}
	w.len += 4
	return nil
}

func (w *byteWriter) writeOffset16(val offset16) error {
	err := binary.Write(&w.buffer, binary.BigEndian, val)
	if err != nil {
		return err
	}
	w.len += 2
	return nil
}

func (w *byteWriter) writeOffset32(val offset32) error {
	err := binary.Write(&w.buffer, binary.BigEndian, val)
	if err != nil {
		return err
	}
	w.len += 4
	return nil
}
