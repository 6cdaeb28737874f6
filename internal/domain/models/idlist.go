package models

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// IDList is a comma-joined list of record ids stored in a single column.
// It behaves as a set with insertion order: Append never duplicates.
type IDList string

func JoinIDs(ids []uint) IDList {
	asStr := lo.Map(ids, func(id uint, _ int) string {
		return strconv.FormatUint(uint64(id), 10)
	})
	return IDList(strings.Join(asStr, ","))
}

func (l IDList) AsArray() []uint {
	if l == "" {
		return []uint{}
	}

	parts := strings.Split(string(l), ",")
	ids := make([]uint, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}
	return ids
}

func (l IDList) Contains(id uint) bool {
	return lo.Contains(l.AsArray(), id)
}

func (l IDList) Append(id uint) IDList {
	if l.Contains(id) {
		return l
	}
	return JoinIDs(append(l.AsArray(), id))
}

func (l IDList) Remove(id uint) IDList {
	return JoinIDs(lo.Without(l.AsArray(), id))
}

func (l IDList) Len() int {
	return len(l.AsArray())
}
