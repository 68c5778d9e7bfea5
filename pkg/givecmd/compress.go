package givecmd

import (
	"bytes"

	"github.com/klauspost/compress/gzip"
)

// Compressor compresses a generated payload before base64 encoding. It is
// injected rather than discovered at runtime so its absence is a build-time
// fact, not a dynamic failure.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// GzipCompressor is the default Compressor.
type GzipCompressor struct {
	// Level is a gzip compression level; zero means default.
	Level int
}

// Compress implements Compressor.
func (g GzipCompressor) Compress(data []byte) ([]byte, error) {
	level := g.Level
	if level == 0 {
		level = gzip.DefaultCompression
	}

	var buf bytes.Buffer
	w, err := gzip.NewWriterLevel(&buf, level)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
