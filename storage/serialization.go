// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"
	"time"

	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/faqit/core"
)

// EntryMUS is the MUS serializer of core.Entry. Field order is the wire
// order; timestamps are Unix microseconds with 0 for the zero time.
var EntryMUS = entryMUS{}

// EntryRecordMUS prefixes an entry with its per-locale insertion sequence.
var EntryRecordMUS = entryRecordMUS{}

type entryMUS struct{}

func (entryMUS) Size(e core.Entry) (size int) {
	size = varint.Uint64.Size(uint64(e.Id))
	size += ord.String.Size(string(e.Locale))
	size += ord.String.Size(e.Question)
	size += ord.String.Size(e.Answer)
	size += ord.String.Size(e.Category)
	size += ord.String.Size(e.ImagePath)
	size += stringsSize(e.RelatedTopics)
	size += stringsSize(e.Keywords)
	return size + varint.Int64.Size(unixMicro(e.InsertedAt))
}

func (entryMUS) Marshal(e core.Entry, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(e.Id), bs)
	n += ord.String.Marshal(string(e.Locale), bs[n:])
	n += ord.String.Marshal(e.Question, bs[n:])
	n += ord.String.Marshal(e.Answer, bs[n:])
	n += ord.String.Marshal(e.Category, bs[n:])
	n += ord.String.Marshal(e.ImagePath, bs[n:])
	n += marshalStrings(e.RelatedTopics, bs[n:])
	n += marshalStrings(e.Keywords, bs[n:])
	return n + varint.Int64.Marshal(unixMicro(e.InsertedAt), bs[n:])
}

func (entryMUS) Unmarshal(bs []byte) (e core.Entry, n int, err error) {
	id, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	e.Id = core.ID(id)

	var (
		locale string
		n1     int
	)
	locale, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Locale = core.Locale(locale)

	for _, field := range []*string{&e.Question, &e.Answer, &e.Category, &e.ImagePath} {
		*field, n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}

	e.RelatedTopics, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.Keywords, n1, err = unmarshalStrings(bs[n:])
	n += n1
	if err != nil {
		return
	}

	var micros int64
	micros, n1, err = varint.Int64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	e.InsertedAt = fromUnixMicro(micros)
	return
}

type entryRecordMUS struct{}

func (entryRecordMUS) Size(seq uint64, e core.Entry) int {
	return varint.Uint64.Size(seq) + EntryMUS.Size(e)
}

func (entryRecordMUS) Marshal(seq uint64, e core.Entry, bs []byte) (n int) {
	n = varint.Uint64.Marshal(seq, bs)
	return n + EntryMUS.Marshal(e, bs[n:])
}

func (entryRecordMUS) Unmarshal(bs []byte) (seq uint64, e core.Entry, n int, err error) {
	seq, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	e, n1, err = EntryMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func stringsSize(ss []string) int {
	size := varint.Uint64.Size(uint64(len(ss)))
	for _, s := range ss {
		size += ord.String.Size(s)
	}
	return size
}

func marshalStrings(ss []string, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(len(ss)), bs)
	for _, s := range ss {
		n += ord.String.Marshal(s, bs[n:])
	}
	return n
}

func unmarshalStrings(bs []byte) (ss []string, n int, err error) {
	length, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return nil, n, err
	}
	if length > uint64(len(bs)) {
		return nil, n, ErrTruncatedData
	}
	ss = make([]string, length)
	for i := range ss {
		var n1 int
		ss[i], n1, err = ord.String.Unmarshal(bs[n:])
		n += n1
		if err != nil {
			return nil, n, err
		}
	}
	return ss, n, nil
}

func unixMicro(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixMicro()
}

func fromUnixMicro(micros int64) time.Time {
	if micros == 0 {
		return time.Time{}
	}
	return time.UnixMicro(micros).UTC()
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := varint.Uint64.Unmarshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return core.ID(id), nil
}

// MarshalEntry serializes an Entry to bytes.
func MarshalEntry(entry *core.Entry) []byte {
	buf := make([]byte, EntryMUS.Size(*entry))
	EntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalEntry deserializes an Entry from bytes.
func UnmarshalEntry(data []byte) (*core.Entry, error) {
	entry, _, err := EntryMUS.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return &entry, nil
}

// MarshalEntryRecord serializes an entry together with its insertion sequence.
func MarshalEntryRecord(seq uint64, entry *core.Entry) []byte {
	buf := make([]byte, EntryRecordMUS.Size(seq, *entry))
	EntryRecordMUS.Marshal(seq, *entry, buf)
	return buf
}

// UnmarshalEntryRecord deserializes a stored entry and its insertion sequence.
func UnmarshalEntryRecord(data []byte) (uint64, *core.Entry, error) {
	seq, entry, _, err := EntryRecordMUS.Unmarshal(data)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrSerializationFailed, err)
	}
	return seq, &entry, nil
}
