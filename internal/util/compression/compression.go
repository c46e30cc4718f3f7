// Package compression abstracts the codec used for stored markdown snapshots.
package compression

type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}
