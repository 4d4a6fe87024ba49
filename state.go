package dotmatrix

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/dotmatrixgb/dotmatrix/cpu"
	"github.com/dotmatrixgb/dotmatrix/memory"
	"github.com/dotmatrixgb/dotmatrix/video"
)

// snapshotVersion guards against loading snapshots written by an
// incompatible layout of the state structures.
const snapshotVersion = 1

// Snapshot is the serialized machine state. The cartridge identity
// fields tie a snapshot to the ROM it was taken from; ROM contents are
// not stored.
type Snapshot struct {
	Version int `json:"version"`

	Title          string `json:"title"`
	HeaderChecksum uint8  `json:"headerChecksum"`
	GlobalChecksum uint16 `json:"globalChecksum"`
	ROMLength      int    `json:"romLength"`

	CPU cpu.State    `json:"cpu"`
	PPU video.State  `json:"ppu"`
	MMU memory.State `json:"mmu"`
}

// validate rejects field values no running machine can produce. Restore
// paths trust their input, so anything that would index out of range
// has to be caught here, before the machine is touched.
func (s *Snapshot) validate() error {
	switch {
	case s.PPU.Mode > 3:
		return errors.Wrapf(ErrSnapshotIncompatible, "PPU mode %d out of range", s.PPU.Mode)
	case s.PPU.Line < 0 || s.PPU.Line > 153:
		return errors.Wrapf(ErrSnapshotIncompatible, "PPU line %d out of range", s.PPU.Line)
	case s.PPU.WindowLine < 0 || s.PPU.WindowLine > 153:
		return errors.Wrapf(ErrSnapshotIncompatible, "PPU window line %d out of range", s.PPU.WindowLine)
	case s.MMU.VRAMBank > 1:
		return errors.Wrapf(ErrSnapshotIncompatible, "VRAM bank %d out of range", s.MMU.VRAMBank)
	}
	return nil
}

// SaveState serializes the full machine state.
func (m *Machine) SaveState() ([]byte, error) {
	if m.status == StatusIdle {
		return nil, ErrNoCartridge
	}

	cart := m.mmu.Cartridge()
	snapshot := Snapshot{
		Version:        snapshotVersion,
		Title:          cart.Title(),
		HeaderChecksum: cart.HeaderChecksum(),
		GlobalChecksum: cart.GlobalChecksum(),
		ROMLength:      cart.Length(),
		CPU:            m.cpu.Save(),
		PPU:            m.ppu.Save(),
		MMU:            m.mmu.Save(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, errors.Wrap(err, "serializing snapshot")
	}
	return data, nil
}

// LoadState replaces the machine state with a previously saved
// snapshot. The snapshot must have been taken with the same cartridge
// inserted; nothing is modified when it is rejected.
func (m *Machine) LoadState(data []byte) error {
	if m.status == StatusIdle {
		return ErrNoCartridge
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return errors.Wrap(ErrSnapshotIncompatible, err.Error())
	}

	if snapshot.Version != snapshotVersion {
		return errors.Wrapf(ErrSnapshotIncompatible, "snapshot version %d, want %d", snapshot.Version, snapshotVersion)
	}

	cart := m.mmu.Cartridge()
	switch {
	case snapshot.Title != cart.Title():
		return errors.Wrapf(ErrSnapshotIncompatible, "snapshot is for %q, loaded cartridge is %q", snapshot.Title, cart.Title())
	case snapshot.HeaderChecksum != cart.HeaderChecksum(),
		snapshot.GlobalChecksum != cart.GlobalChecksum(),
		snapshot.ROMLength != cart.Length():
		return errors.Wrap(ErrSnapshotIncompatible, "snapshot checksums do not match the loaded cartridge")
	}

	if err := snapshot.validate(); err != nil {
		return err
	}

	m.cpu.Restore(snapshot.CPU)
	m.ppu.Restore(snapshot.PPU)
	m.mmu.Restore(snapshot.MMU)

	return nil
}
