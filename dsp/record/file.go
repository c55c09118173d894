package record

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/cwbudde/algo-fourier/dsp/samples"
)

// Format is a record file encoding.
type Format int

// Supported formats.
const (
	FormatBinary Format = iota
	FormatCSV
)

// String returns "binary" or "csv".
func (f Format) String() string {
	switch f {
	case FormatBinary:
		return "binary"
	case FormatCSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf infers the format from a file name. A trailing ".gz" is ignored.
func FormatOf(path string) (Format, error) {
	name := strings.TrimSuffix(strings.ToLower(path), ".gz")
	switch filepath.Ext(name) {
	case ".dat", ".bin":
		return FormatBinary, nil
	case ".csv", ".txt":
		return FormatCSV, nil
	default:
		return 0, fmt.Errorf("record: unsupported file type %q (want .dat, .bin, .csv or .txt)", filepath.Base(path))
	}
}

// NewDecoder returns the decoder for f. order applies to binary data; nil
// reads big-endian.
func NewDecoder(f Format, order binary.ByteOrder) (Decoder, error) {
	return newDecoder(f, BinaryDecoder{Order: order})
}

func newDecoder(f Format, bin BinaryDecoder) (Decoder, error) {
	switch f {
	case FormatBinary:
		return bin, nil
	case FormatCSV:
		return CSVDecoder{}, nil
	default:
		return nil, fmt.Errorf("record: unknown format %v", f)
	}
}

// NewEncoder returns the encoder for f. order applies to binary data; nil
// writes big-endian.
func NewEncoder(f Format, order binary.ByteOrder) (Encoder, error) {
	switch f {
	case FormatBinary:
		return BinaryEncoder{Order: order}, nil
	case FormatCSV:
		return CSVEncoder{}, nil
	default:
		return nil, fmt.Errorf("record: unknown format %v", f)
	}
}

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if cerr := g.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Open opens path for reading, gunzipping it when the name ends in ".gz".
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(path), ".gz") {
		return f, nil
	}

	zr, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("record: open %s: %w", filepath.Base(path), err)
	}
	return gzipFile{Reader: zr, f: f}, nil
}

// Load reads and decodes the record file at path. order applies to binary
// files; nil reads big-endian.
func Load(path string, order binary.ByteOrder) ([]Record, error) {
	return load(path, BinaryDecoder{Order: order})
}

// LoadDetect is Load with the binary byte order picked by DetectByteOrder.
func LoadDetect(path string) ([]Record, error) {
	return load(path, BinaryDecoder{Detect: true})
}

func load(path string, bin BinaryDecoder) ([]Record, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	dec, err := newDecoder(format, bin)
	if err != nil {
		return nil, err
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return dec.Decode(rc)
}

// LoadBuffer reads path and converts its records into a sample buffer.
func LoadBuffer(path string, order binary.ByteOrder) (*samples.Buffer, error) {
	recs, err := Load(path, order)
	if err != nil {
		return nil, err
	}
	return ToBuffer(recs)
}

// LoadBufferDetect is LoadBuffer with byte-order detection.
func LoadBufferDetect(path string) (*samples.Buffer, error) {
	recs, err := LoadDetect(path)
	if err != nil {
		return nil, err
	}
	return ToBuffer(recs)
}
