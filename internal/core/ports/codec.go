package ports

// InstanceCodec frames a persisted instance document as a versioned blob.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type InstanceCodec interface {
	// Encode serializes v with the current format version.
	Encode(v any) ([]byte, error)
	// Decode reads a blob produced by Encode into v and returns its format version.
	Decode(blob []byte, v any) (uint16, error)
}
