package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/diarit/core"
)

// Key prefixes for different data types
const (
	contextRecordPrefix = "ctxrec"
	contextIDPrefix     = "ctxid"
	userMarkerPrefix    = "ctxusr"
	contextPosSeq       = "ctxrecseq"
)

// makeContextRecordKey generates a key for a context record at a user's
// insertion position. Positions are written BigEndian so lexicographic key
// order matches insertion order within a user's prefix.
func makeContextRecordKey(userID string, pos uint64) []byte {
	prefix := fmt.Sprintf("%s:%s:", contextRecordPrefix, userID)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	binary.BigEndian.PutUint64(buf[offset:], pos)
	return buf
}

// makeUserRecordPrefix generates the iteration prefix for all of a user's records.
func makeUserRecordPrefix(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", contextRecordPrefix, userID))
}

// makeContextIDKey generates a key for the record-ID index.
// Format: prefix:user:id -> position
func makeContextIDKey(userID string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%s", contextIDPrefix, userID, id))
}

// makeUserMarkerKey generates the key marking a user as seeded.
func makeUserMarkerKey(userID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", userMarkerPrefix, userID))
}

// encodePos encodes a record position for storage as an index value.
func encodePos(pos uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, pos)
	return buf
}

// decodePos decodes a record position from an index value.
func decodePos(data []byte) (uint64, error) {
	if len(data) != 8 {
		return 0, fmt.Errorf("invalid position encoding: %d bytes", len(data))
	}
	return binary.BigEndian.Uint64(data), nil
}
