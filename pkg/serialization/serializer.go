// Package serialization provides the binary codec used to persist
// network snapshots in the sqlite and postgres stores.
package serialization

import (
	"bytes"
	"compress/gzip"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec turns a value into bytes and back.
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
	Name() string
}

// CompressionType selects the compression applied after encoding.
type CompressionType string

const (
	CompressionNone CompressionType = "none"
	CompressionGzip CompressionType = "gzip"
	CompressionZstd CompressionType = "zstd"
)

// Config holds serializer settings.
type Config struct {
	Codec       Codec
	Compression CompressionType
	EncryptKey  []byte // AES-256 key (32 bytes); empty disables encryption
}

// Serializer runs the full encode/compress/encrypt pipeline and its
// inverse. Geometry payloads compress well: coordinate sequences are
// highly repetitive.
type Serializer struct {
	config Config
}

// NewSerializer creates a serializer with the given configuration.
func NewSerializer(config Config) *Serializer {
	return &Serializer{config: config}
}

// DefaultSerializer uses msgpack encoding with zstd compression.
func DefaultSerializer() *Serializer {
	return NewSerializer(Config{
		Codec:       NewMsgPackCodec(),
		Compression: CompressionZstd,
	})
}

// Serialize encodes, compresses, and optionally encrypts a value.
func (s *Serializer) Serialize(v interface{}) ([]byte, error) {
	data, err := s.config.Codec.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("codec encoding failed: %w", err)
	}
	data, err = s.compress(data)
	if err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	if len(s.config.EncryptKey) > 0 {
		data, err = s.encrypt(data)
		if err != nil {
			return nil, fmt.Errorf("encryption failed: %w", err)
		}
	}
	return data, nil
}

// Deserialize decrypts, decompresses, and decodes into v.
func (s *Serializer) Deserialize(data []byte, v interface{}) error {
	var err error
	if len(s.config.EncryptKey) > 0 {
		data, err = s.decrypt(data)
		if err != nil {
			return fmt.Errorf("decryption failed: %w", err)
		}
	}
	data, err = s.decompress(data)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}
	if err := s.config.Codec.Decode(data, v); err != nil {
		return fmt.Errorf("codec decoding failed: %w", err)
	}
	return nil
}

func (s *Serializer) compress(data []byte) ([]byte, error) {
	switch s.config.Compression {
	case CompressionGzip:
		var buf bytes.Buffer
		writer := gzip.NewWriter(&buf)
		if _, err := writer.Write(data); err != nil {
			return nil, err
		}
		if err := writer.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer encoder.Close()
		return encoder.EncodeAll(data, nil), nil
	default:
		return data, nil
	}
}

func (s *Serializer) decompress(data []byte) ([]byte, error) {
	switch s.config.Compression {
	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return decoder.DecodeAll(data, nil)
	default:
		return data, nil
	}
}

// encrypt seals data with AES-GCM, prefixing the nonce.
func (s *Serializer) encrypt(data []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.config.EncryptKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, data, nil), nil
}

// decrypt opens AES-GCM sealed data.
func (s *Serializer) decrypt(data []byte) ([]byte, error) {
	block, err := aes.NewCipher(s.config.EncryptKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return nil, fmt.Errorf("invalid ciphertext size")
	}
	nonce, ciphertext := data[:nonceSize], data[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// JSONCodec implements JSON serialization.
type JSONCodec struct{}

func (c *JSONCodec) Encode(v interface{}) ([]byte, error)    { return json.Marshal(v) }
func (c *JSONCodec) Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (c *JSONCodec) Name() string                            { return "json" }

// MsgPackCodec implements MessagePack serialization.
type MsgPackCodec struct{}

func (c *MsgPackCodec) Encode(v interface{}) ([]byte, error)    { return msgpack.Marshal(v) }
func (c *MsgPackCodec) Decode(data []byte, v interface{}) error { return msgpack.Unmarshal(data, v) }
func (c *MsgPackCodec) Name() string                            { return "msgpack" }

// NewJSONCodec creates a JSON codec.
func NewJSONCodec() Codec { return &JSONCodec{} }

// NewMsgPackCodec creates a MessagePack codec.
func NewMsgPackCodec() Codec { return &MsgPackCodec{} }
