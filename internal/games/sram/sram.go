// Package sram reads finish times and collection rates out of battery save
// files attached to submissions
package sram

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"time"

	"github.com/KirkDiggler/murahdahla/internal/models"
)

// SRAMError is a custom error type for save file parsing
type SRAMError string

// Error implements the error interface
func (e SRAMError) Error() string {
	return string(e)
}

const (
	ErrUnsupportedGame SRAMError = "game does not support save parsing"
	ErrInvalidSize     SRAMError = "save file has the wrong size"
	ErrInvalidSave     SRAMError = "save file failed validation"
	ErrNoTime          SRAMError = "save file has no in-game time"
)

const (
	framesPerSecond = 60

	z3SaveSize  = 32768
	smVARIASize = 8192
	smTotalSize = 16384

	z3ValidityMarker = 0x55AA
	z3InverseBase    = 0x5A5A
)

// SaveParser exposes the race relevant fields of a validated save
type SaveParser interface {
	// Finished reports whether the final boss was defeated
	Finished() bool

	// Duration is the in-game time, truncated to whole seconds
	Duration() (time.Duration, error)

	// Score is the collection rate, if the save records one
	Score() (int, bool)
}

// Supports reports whether Parse understands saves of the given game
func Supports(game models.GameTag) bool {
	switch game {
	case models.GameTagALTTPR, models.GameTagSMZ3, models.GameTagSMVARIA, models.GameTagSMTotal:
		return true
	}
	return false
}

// Parse validates data as a save file of the given game
func Parse(game models.GameTag, data []byte) (SaveParser, error) {
	switch game {
	case models.GameTagALTTPR:
		return newZ3rSave(data)
	case models.GameTagSMZ3:
		return newSMZ3Save(data)
	case models.GameTagSMVARIA:
		return newSMSave(data, smVARIASize)
	case models.GameTagSMTotal:
		return newSMSave(data, smTotalSize)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedGame, game)
}

func framesToDuration(frames uint32) (time.Duration, error) {
	if frames == 0 {
		return 0, ErrNoTime
	}
	return time.Duration(frames/framesPerSecond) * time.Second, nil
}

// checkZ3Header validates the layout shared by ALTTPR and SMZ3 saves
func checkZ3Header(data []byte) error {
	if len(data) != z3SaveSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(data), z3SaveSize)
	}
	if binary.LittleEndian.Uint16(data[0x3E1:]) != z3ValidityMarker || data[0x4F0] != 0xFF {
		return fmt.Errorf("%w: missing validity marker", ErrInvalidSave)
	}
	return nil
}

// Z3InverseChecksum is the value stored at 0x4FE of a valid ALTTPR save
func Z3InverseChecksum(data []byte) uint16 {
	var sum uint16
	for i := 0; i < 0x4FE; i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return z3InverseBase - sum
}

type z3rSave struct {
	data []byte
}

func newZ3rSave(data []byte) (*z3rSave, error) {
	if err := checkZ3Header(data); err != nil {
		return nil, err
	}

	switch string(data[0x2000:0x2002]) {
	case "VT", "ER":
	default:
		return nil, fmt.Errorf("%w: unknown rom name", ErrInvalidSave)
	}

	if binary.LittleEndian.Uint16(data[0x4FE:]) != Z3InverseChecksum(data) {
		return nil, fmt.Errorf("%w: bad checksum", ErrInvalidSave)
	}

	return &z3rSave{data: data}, nil
}

func (s *z3rSave) Finished() bool {
	return s.data[0x443] == 1
}

func (s *z3rSave) Duration() (time.Duration, error) {
	return framesToDuration(binary.LittleEndian.Uint32(s.data[0x43E:]))
}

func (s *z3rSave) Score() (int, bool) {
	return int(s.data[0x423]), true
}

type smz3Save struct {
	data []byte
}

func newSMZ3Save(data []byte) (*smz3Save, error) {
	if err := checkZ3Header(data); err != nil {
		return nil, err
	}
	return &smz3Save{data: data}, nil
}

// Finished requires both final bosses
func (s *smz3Save) Finished() bool {
	return s.data[0x3402] == 1 && s.data[0x3506] == 1
}

func (s *smz3Save) Duration() (time.Duration, error) {
	z3 := binary.LittleEndian.Uint32(s.data[0x43E:])
	sm := binary.LittleEndian.Uint32(s.data[0x3A00:])
	return framesToDuration(z3 + sm)
}

func (s *smz3Save) Score() (int, bool) {
	return int(s.data[0x423]) + int(s.data[0x3A3A]), true
}

// smSave is a Super Metroid save, used by both VARIA and Total seeds
type smSave struct {
	data []byte
}

// SMChecksum is the value stored at offset 0 of a valid Super Metroid save
func SMChecksum(data []byte) uint16 {
	var sum uint16
	for i := 0x10; i < 0x65C; i += 2 {
		sum += binary.LittleEndian.Uint16(data[i:])
	}
	return sum
}

func newSMSave(data []byte, size int) (*smSave, error) {
	if len(data) != size {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSize, len(data), size)
	}
	if binary.LittleEndian.Uint16(data[0:]) != SMChecksum(data) {
		return nil, fmt.Errorf("%w: bad checksum", ErrInvalidSave)
	}
	return &smSave{data: data}, nil
}

func (s *smSave) Finished() bool {
	return string(s.data[0x1FE0:0x1FEC]) == "supermetroid"
}

func (s *smSave) Duration() (time.Duration, error) {
	return framesToDuration(binary.LittleEndian.Uint32(s.data[0x1400:]))
}

// Score counts ammo packs, tanks and item and beam bits
func (s *smSave) Score() (int, bool) {
	d := s.data
	score := int(d[0x36])/5 + int(d[0x3A])/5 + int(d[0x3E])/5
	score += (int(d[0x32]) + 1) / 100
	score += int(d[0x42]) / 100
	score += bits.OnesCount16(binary.LittleEndian.Uint16(d[0x12:]))
	score += bits.OnesCount16(binary.LittleEndian.Uint16(d[0x16:]))
	return score, true
}
