package primitive

import (
	"encoding/binary"
	"fmt"

	"github.com/pierrec/lz4/v4"
)

// sizePrefixLen is the width of the little-endian uncompressed-length header
// prepended to every compressed frame, matching lz4_flex's
// compress_prepend_size / decompress_size_prepended convention: a raw LZ4
// block, not the framed format with magic bytes and checksums.
const sizePrefixLen = 4

// Compress LZ4-compresses src and prepends its uncompressed length as a
// little-endian uint32.
func Compress(src []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(src))
	dst := make([]byte, sizePrefixLen+bound)
	binary.LittleEndian.PutUint32(dst[:sizePrefixLen], uint32(len(src)))

	var c lz4.Compressor
	n, err := c.CompressBlock(src, dst[sizePrefixLen:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCompressFailure, err)
	}
	if n == 0 && len(src) > 0 {
		// CompressBlock reports 0 bytes only when dst is shorter than
		// CompressBlockBound. dst is bound-sized here, so incompressible
		// input is emitted as an expanded literal block and this raw-store
		// branch is not reached in practice.
		dst = append(dst[:sizePrefixLen], src...)
		return dst, nil
	}
	return dst[:sizePrefixLen+n], nil
}

// Decompress reverses Compress.
func Decompress(frame []byte) ([]byte, error) {
	if len(frame) < sizePrefixLen {
		return nil, ErrFrameTooShort
	}
	size := binary.LittleEndian.Uint32(frame[:sizePrefixLen])
	body := frame[sizePrefixLen:]
	dst := make([]byte, size)

	n, err := lz4.UncompressBlock(body, dst)
	if err != nil {
		// Accept a body stored verbatim, the layout Compress's raw-store
		// branch writes.
		if uint32(len(body)) == size {
			return append([]byte(nil), body...), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrDecompressFailure, err)
	}
	if uint32(n) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrDecompressFailure, size, n)
	}
	return dst[:n], nil
}
