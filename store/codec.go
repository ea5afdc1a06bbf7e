package store

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
)

// codec packs float64 series for storage using XOR encoding followed by zstd
// compression. XOR of consecutive bit patterns leaves mostly zero bytes for
// slowly varying series, which zstd then compresses well, and NaN values
// survive the round trip bit-exactly.
type codec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newCodec(level int) (*codec, error) {
	encLevel := zstd.SpeedDefault
	switch level {
	case 1:
		encLevel = zstd.SpeedFastest
	case 2:
		encLevel = zstd.SpeedDefault
	case 3:
		encLevel = zstd.SpeedBetterCompression
	case 4:
		encLevel = zstd.SpeedBestCompression
	}

	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(encLevel))
	if err != nil {
		return nil, fmt.Errorf("creating encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("creating decoder: %w", err)
	}

	return &codec{encoder: encoder, decoder: decoder}, nil
}

// compressSeries packs a float64 series into a compressed byte buffer.
func (c *codec) compressSeries(values []float64) ([]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}

	buf := new(bytes.Buffer)

	if err := binary.Write(buf, binary.LittleEndian, math.Float64bits(values[0])); err != nil {
		return nil, err
	}

	prevBits := math.Float64bits(values[0])
	for i := 1; i < len(values); i++ {
		currentBits := math.Float64bits(values[i])
		if err := binary.Write(buf, binary.LittleEndian, currentBits^prevBits); err != nil {
			return nil, err
		}
		prevBits = currentBits
	}

	return c.encoder.EncodeAll(buf.Bytes(), make([]byte, 0, buf.Len())), nil
}

// decompressSeries unpacks a series of the given length from a compressed
// buffer.
func (c *codec) decompressSeries(data []byte, count int) ([]float64, error) {
	if count == 0 {
		return nil, nil
	}

	decompressed, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	buf := bytes.NewReader(decompressed)
	values := make([]float64, count)

	var firstBits uint64
	if err := binary.Read(buf, binary.LittleEndian, &firstBits); err != nil {
		return nil, err
	}
	values[0] = math.Float64frombits(firstBits)

	prevBits := firstBits
	for i := 1; i < count; i++ {
		var xorBits uint64
		if err := binary.Read(buf, binary.LittleEndian, &xorBits); err != nil {
			return nil, err
		}

		currentBits := xorBits ^ prevBits
		values[i] = math.Float64frombits(currentBits)
		prevBits = currentBits
	}

	return values, nil
}

func (c *codec) close() {
	if c.encoder != nil {
		c.encoder.Close()
	}
	if c.decoder != nil {
		c.decoder.Close()
	}
}
