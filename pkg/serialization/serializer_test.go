package serialization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netmend/netmend/internal/core/geometry"
)

type payload struct {
	Name  string          `msgpack:"name" json:"name"`
	Lines []geometry.Line `msgpack:"lines" json:"lines"`
}

func testPayload() payload {
	return payload{
		Name: "snapshot",
		Lines: []geometry.Line{
			{
				Points:     []geometry.Point{{X: 0, Y: 0}, {X: 1.5, Y: 2.5}, {X: 3, Y: 3}},
				Attributes: geometry.Attributes{ID: "a", Category: "pipe", Length: 5},
			},
		},
	}
}

func TestSerializer_RoundTrip(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}

	configs := map[string]Config{
		"default":         {Codec: NewMsgPackCodec(), Compression: CompressionZstd},
		"json gzip":       {Codec: NewJSONCodec(), Compression: CompressionGzip},
		"msgpack plain":   {Codec: NewMsgPackCodec(), Compression: CompressionNone},
		"json encrypted":  {Codec: NewJSONCodec(), Compression: CompressionZstd, EncryptKey: key},
		"msgpack nothing": {Codec: NewMsgPackCodec()},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			s := NewSerializer(cfg)
			in := testPayload()

			data, err := s.Serialize(in)
			require.NoError(t, err)
			require.NotEmpty(t, data)

			var out payload
			require.NoError(t, s.Deserialize(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestDefaultSerializer(t *testing.T) {
	s := DefaultSerializer()

	data, err := s.Serialize(testPayload())
	require.NoError(t, err)

	var out payload
	require.NoError(t, s.Deserialize(data, &out))
	assert.Equal(t, "snapshot", out.Name)
}

func TestSerializer_EncryptionChangesBytes(t *testing.T) {
	key := make([]byte, 32)
	plain := NewSerializer(Config{Codec: NewJSONCodec(), Compression: CompressionNone})
	sealed := NewSerializer(Config{Codec: NewJSONCodec(), Compression: CompressionNone, EncryptKey: key})

	in := testPayload()
	plainData, err := plain.Serialize(in)
	require.NoError(t, err)
	sealedData, err := sealed.Serialize(in)
	require.NoError(t, err)

	assert.NotEqual(t, plainData, sealedData)

	// Random nonce per call: the same payload never seals identically.
	sealedAgain, err := sealed.Serialize(in)
	require.NoError(t, err)
	assert.NotEqual(t, sealedData, sealedAgain)
}

func TestSerializer_WrongKey(t *testing.T) {
	keyA := make([]byte, 32)
	keyB := make([]byte, 32)
	keyB[0] = 1

	a := NewSerializer(Config{Codec: NewJSONCodec(), EncryptKey: keyA})
	b := NewSerializer(Config{Codec: NewJSONCodec(), EncryptKey: keyB})

	data, err := a.Serialize(testPayload())
	require.NoError(t, err)

	var out payload
	assert.Error(t, b.Deserialize(data, &out))
}

func TestSerializer_TruncatedCiphertext(t *testing.T) {
	key := make([]byte, 32)
	s := NewSerializer(Config{Codec: NewJSONCodec(), EncryptKey: key})

	var out payload
	assert.Error(t, s.Deserialize([]byte{1, 2, 3}, &out))
}

func TestSerializer_BadKeySize(t *testing.T) {
	s := NewSerializer(Config{Codec: NewJSONCodec(), EncryptKey: []byte("short")})

	_, err := s.Serialize(testPayload())
	assert.Error(t, err)
}

func TestSerializer_GarbageInput(t *testing.T) {
	s := DefaultSerializer()

	var out payload
	assert.Error(t, s.Deserialize([]byte("definitely not zstd"), &out))
}

func TestCodecNames(t *testing.T) {
	assert.Equal(t, "json", NewJSONCodec().Name())
	assert.Equal(t, "msgpack", NewMsgPackCodec().Name())
}
