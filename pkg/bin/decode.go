package bin

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/binkit/internal/mmfile"
	"github.com/joshuapare/binkit/internal/reader"
	"github.com/joshuapare/binkit/pkg/types"
)

// zstdMagic starts every zstd frame.
var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// maxInflated bounds the size of a decompressed document.
const maxInflated = 1 << 30

var zstdDecoder = sync.OnceValues(func() (*zstd.Decoder, error) {
	return zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(0),
		zstd.WithDecoderMaxMemory(maxInflated),
	)
})

// Decode parses a complete document held in data. data is read in place and
// may be released once Decode returns; the document holds no references to
// it. zstd-framed input is inflated first.
func Decode(data []byte, res types.NameResolver, opts types.DecodeOptions) (*types.Document, error) {
	if IsCompressed(data) {
		raw, err := inflate(data)
		if err != nil {
			return nil, err
		}
		data = raw
	}
	return reader.Decode(data, res, opts)
}

// DecodeFile decodes the document stored at path.
func DecodeFile(path string, res types.NameResolver, opts types.DecodeOptions) (*types.Document, error) {
	m, err := mmfile.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer m.Close()

	doc, err := Decode(m.Bytes(), res, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// IsCompressed reports whether data starts with a zstd frame header.
func IsCompressed(data []byte) bool {
	return bytes.HasPrefix(data, zstdMagic)
}

func inflate(data []byte) ([]byte, error) {
	dec, err := zstdDecoder()
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	return raw, nil
}
