package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/faqit/core"
)

// Key prefixes for different data types
const (
	entryRecordPrefix = "entrec"
	entryOrderPrefix  = "entord"
	entrySeq          = "entseq"
)

// makeEntryKey generates a key for an entry by ID.
func makeEntryKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", entryRecordPrefix, id))
}

// makeEntryOrderKey generates a composite key for the per-locale order index.
// Format: prefix:locale:seq
func makeEntryOrderKey(locale core.Locale, seq uint64) []byte {
	prefix := makeEntryOrderPrefix(locale)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// BigEndian so keys sort in insertion order
	binary.BigEndian.PutUint64(buf[offset:], seq)
	return buf
}

// makeEntryOrderPrefix generates the prefix of a locale's order index.
func makeEntryOrderPrefix(locale core.Locale) []byte {
	return []byte(entryOrderPrefix + ":" + string(locale) + ":")
}
