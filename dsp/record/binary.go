package record

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cwbudde/algo-fourier/dsp/core"
)

// BinaryDecoder decodes packed 16-byte records. A nil Order reads
// big-endian. Detect ignores Order and picks the order with DetectByteOrder.
type BinaryDecoder struct {
	Order  binary.ByteOrder
	Detect bool
}

// Decode reads all of r and unpacks it into records.
func (d BinaryDecoder) Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("record: read binary: %w", err)
	}

	order := d.Order
	if order == nil {
		order = binary.BigEndian
	}
	if d.Detect {
		order, err = DetectByteOrder(data)
		if err != nil {
			return nil, err
		}
	}

	return decodeBinary(data, order)
}

func decodeBinary(data []byte, order binary.ByteOrder) ([]Record, error) {
	if rem := len(data) % Size; rem != 0 {
		return nil, fmt.Errorf("record: %d trailing bytes after %d complete records: %w",
			rem, len(data)/Size, core.ErrValidation)
	}

	recs := make([]Record, len(data)/Size)
	if err := binary.Read(bytes.NewReader(data), order, recs); err != nil {
		return nil, fmt.Errorf("record: decode binary: %w", err)
	}
	return recs, nil
}

// BinaryEncoder writes packed 16-byte records. A nil Order writes big-endian.
type BinaryEncoder struct {
	Order binary.ByteOrder
}

// Encode writes recs to w.
func (e BinaryEncoder) Encode(w io.Writer, recs []Record) error {
	order := e.Order
	if order == nil {
		order = binary.BigEndian
	}
	if err := binary.Write(w, order, recs); err != nil {
		return fmt.Errorf("record: encode binary: %w", err)
	}
	return nil
}

// DetectByteOrder picks the byte order under which every nanosecond field
// lies in [0, 1e9) and seconds never decrease. Big-endian wins when both
// orders are plausible. Valid streams may break these rules (nanoseconds
// of 1e9 and above are allowed), so detection is a heuristic and never the
// default.
func DetectByteOrder(data []byte) (binary.ByteOrder, error) {
	candidates := []binary.ByteOrder{binary.BigEndian, binary.LittleEndian}
	for _, order := range candidates {
		recs, err := decodeBinary(data, order)
		if err != nil {
			return nil, err
		}
		if plausible(recs) {
			return order, nil
		}
	}
	return nil, fmt.Errorf("record: no byte order yields valid timestamps: %w", core.ErrValidation)
}

func plausible(recs []Record) bool {
	for i, r := range recs {
		if r.Nanoseconds < 0 || r.Nanoseconds >= nanosPerSecond {
			return false
		}
		if i > 0 && r.Seconds < recs[i-1].Seconds {
			return false
		}
	}
	return true
}
