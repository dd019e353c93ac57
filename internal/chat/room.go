// Package chat derives the one-to-one chat room key from a pair of user
// identifiers. Rooms are never persisted; the name is only a fan-out
// grouping key and the wire contract for the chat endpoint.
package chat

import (
	"fmt"
	"strconv"
	"strings"

	"socialnet/backend/internal/apperr"
)

// RoomName builds the canonical room key for two users: the ids in
// ascending order joined by an underscore, e.g. RoomName(5, 2) == "2_5".
func RoomName(a, b uint) string {
	if a > b {
		a, b = b, a
	}
	return fmt.Sprintf("%d_%d", a, b)
}

// ParseRoomName recovers the two participant ids from a room name. The
// name must be exactly two distinct positive ids in ascending order, so
// every valid pair has a single spelling.
func ParseRoomName(name string) (low, high uint, err error) {
	parts := strings.Split(name, "_")
	if len(parts) != 2 {
		return 0, 0, apperr.ErrInvalidRequest
	}
	l, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil {
		return 0, 0, apperr.ErrInvalidRequest
	}
	h, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return 0, 0, apperr.ErrInvalidRequest
	}
	if l == 0 || l >= h {
		return 0, 0, apperr.ErrInvalidRequest
	}
	return uint(l), uint(h), nil
}
