package models

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	domain "github.com/ghuser/itemsvc/services/item/domain"
)

// ItemID is a value object for the 24-character hexadecimal item identifier
// (12 raw bytes: 4-byte big-endian unix timestamp followed by 8 random bytes).
// The canonical form is lowercase.
type ItemID string

const itemIDLength = 24

// NewItemID generates a fresh identifier. The timestamp prefix keeps ids
// roughly sortable by creation time, matching the created_at sort order.
func NewItemID() ItemID {
	var raw [12]byte
	binary.BigEndian.PutUint32(raw[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(raw[4:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic(fmt.Sprintf("item id entropy: %v", err))
	}
	return ItemID(hex.EncodeToString(raw[:]))
}

// ParseItemID validates identifier syntax and returns the canonical lowercase
// form. Any string that is not exactly 24 hex characters fails with
// ErrMalformedItemID, before the store is ever consulted.
func ParseItemID(s string) (ItemID, error) {
	if len(s) != itemIDLength {
		return "", domain.ErrMalformedItemID
	}
	if _, err := hex.DecodeString(s); err != nil {
		return "", domain.ErrMalformedItemID
	}
	return ItemID(strings.ToLower(s)), nil
}

// String returns the underlying string value.
func (id ItemID) String() string {
	return string(id)
}
