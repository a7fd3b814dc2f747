// Package hashing provides duplicate detection for positions.
package hashing

import (
	"hash/fnv"

	"github.com/lgbarn/chessplus-go/internal/chess"
	"github.com/lgbarn/chessplus-go/internal/position"
)

// Hash returns the FNV-64a hash of the position notation of board with
// side to move.
func Hash(board *chess.Board, side chess.Side) uint64 {
	return hashNotation(position.Format(board, side))
}

func hashNotation(notation string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(notation))
	return h.Sum64()
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable maps hashes to the notations seen with that hash
	hashTable map[uint64][]string
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored positions (0 = unlimited)
	maxCapacity int
	uniqueCount int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]string),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position was seen before and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board, side chess.Side) bool {
	if board == nil {
		return false
	}

	notation := position.Format(board, side)
	hash := hashNotation(notation)

	// Equal hashes are confirmed on the notation itself.
	for _, seen := range d.hashTable[hash] {
		if seen == notation {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[hash] = append(d.hashTable[hash], notation)
	d.uniqueCount++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of recorded positions.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}
