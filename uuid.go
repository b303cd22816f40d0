package berkas

import (
	"crypto/rand"
	"fmt"
	"time"
)

type UUID [16]byte

// String mengembalikan string representation UUID dalam standard format.
// Format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func (u UUID) String() string {
	return fmt.Sprintf("%08x-%04x-%04x-%04x-%012x",
		u[0:4],
		u[4:6],
		u[6:8],
		u[8:10],
		u[10:16])
}

// NewUuid menghasilkan UUID baru menggunakan v7 (time-based) atau v4 (random) sebagai fallback.
// Prefer v7 karena sortable berdasarkan timestamp, lebih efficient untuk database indexing.
//
// Example:
//
//	user.ID = NewUuid().String()
func NewUuid() UUID {
	uuid, err := NewV7()
	if err != nil {
		return NewV4()
	}
	return uuid
}

// NewV7 menghasilkan UUID v7 (time-based dengan random component).
// Format: timestamp 48 bits | version 4 bits | random 12 bits | variant 2 bits | random 62 bits.
func NewV7() (UUID, error) {
	timestamp := time.Now().UnixMilli()

	randomBytes := make([]byte, 10)
	if _, err := rand.Read(randomBytes); err != nil {
		return UUID{}, err
	}

	var uuid UUID

	// Timestamp menempati 6 byte pertama (big-endian)
	uuid[0] = byte(timestamp >> 40)
	uuid[1] = byte(timestamp >> 32)
	uuid[2] = byte(timestamp >> 24)
	uuid[3] = byte(timestamp >> 16)
	uuid[4] = byte(timestamp >> 8)
	uuid[5] = byte(timestamp)

	copy(uuid[6:], randomBytes)

	// Set version (7) dan variant (RFC 4122)
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid, nil
}

// NewV4 menghasilkan UUID v4 (fully random).
// Dipakai sebagai fallback jika v7 generation gagal.
func NewV4() UUID {
	var uuid UUID
	// rand.Read dari crypto/rand tidak pernah gagal di platform yang didukung
	_, _ = rand.Read(uuid[:])

	uuid[6] = (uuid[6] & 0x0f) | 0x40
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return uuid
}
