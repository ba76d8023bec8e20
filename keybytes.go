package cuckoo

import (
	"encoding/binary"
	"fmt"
)

// defaultKeyBytes covers string and integer keys plus raw []byte, and
// falls back to a formatted representation for anything else. Callers
// with a performance-sensitive custom key type should supply WithKeyBytes
// instead.
func defaultKeyBytes[K comparable](k K) []byte {
	switch v := any(k).(type) {
	case string:
		return []byte(v)
	case []byte:
		return v
	case int:
		return encodeInt64(int64(v))
	case int8:
		return []byte{byte(v)}
	case int16:
		return encodeInt64(int64(v))[:2]
	case int32:
		return encodeInt64(int64(v))[:4]
	case int64:
		return encodeInt64(v)
	case uint:
		return encodeUint64(uint64(v))
	case uint8:
		return []byte{v}
	case uint16:
		return encodeUint64(uint64(v))[:2]
	case uint32:
		return encodeUint64(uint64(v))[:4]
	case uint64:
		return encodeUint64(v)
	default:
		return []byte(fmt.Sprintf("%v", v))
	}
}

func encodeInt64(v int64) []byte {
	return encodeUint64(uint64(v))
}

func encodeUint64(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}
