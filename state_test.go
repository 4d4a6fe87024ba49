package dotmatrix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveState_requiresCartridge(t *testing.T) {
	m := New()

	_, err := m.SaveState()
	assert.ErrorIs(t, err, ErrNoCartridge)

	assert.ErrorIs(t, m.LoadState([]byte(`{}`)), ErrNoCartridge)
}

func TestState_roundTrip(t *testing.T) {
	rom := loopROM("STATES")

	m1 := New()
	require.NoError(t, m1.LoadROM(rom))
	_, _, err := m1.RunFrame()
	require.NoError(t, err)

	// leave some distinctive traces before saving
	m1.mmu.Write(0xC123, 0x42)
	m1.cpu.Regs.SetBC(0xBEEF)

	saved, err := m1.SaveState()
	require.NoError(t, err)

	m2 := New()
	require.NoError(t, m2.LoadROM(rom))
	require.NoError(t, m2.LoadState(saved))

	assert.Equal(t, m1.cpu.Regs, m2.cpu.Regs)
	assert.Equal(t, uint8(0x42), m2.mmu.Read(0xC123))

	// a second snapshot of the restored machine is identical
	resaved, err := m2.SaveState()
	require.NoError(t, err)
	assert.JSONEq(t, string(saved), string(resaved))
}

func TestLoadState_versionMismatch(t *testing.T) {
	m := New()
	require.NoError(t, m.LoadROM(loopROM("VERSION")))

	saved, err := m.SaveState()
	require.NoError(t, err)

	var snapshot Snapshot
	require.NoError(t, json.Unmarshal(saved, &snapshot))
	snapshot.Version = 99
	tampered, err := json.Marshal(snapshot)
	require.NoError(t, err)

	assert.ErrorIs(t, m.LoadState(tampered), ErrSnapshotIncompatible)
}

func TestLoadState_rejectsOutOfRangeFields(t *testing.T) {
	m := New()
	require.NoError(t, m.LoadROM(loopROM("RANGES")))
	saved, err := m.SaveState()
	require.NoError(t, err)

	tamper := func(mutate func(*Snapshot)) []byte {
		var s Snapshot
		require.NoError(t, json.Unmarshal(saved, &s))
		mutate(&s)
		data, err := json.Marshal(s)
		require.NoError(t, err)
		return data
	}

	cases := []struct {
		name string
		blob []byte
	}{
		{"vram bank", tamper(func(s *Snapshot) { s.MMU.VRAMBank = 7 })},
		{"ppu mode", tamper(func(s *Snapshot) { s.PPU.Mode = 9 })},
		{"ppu line", tamper(func(s *Snapshot) { s.PPU.Line = 300 })},
		{"window line", tamper(func(s *Snapshot) { s.PPU.WindowLine = -1 })},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, m.LoadState(tc.blob), ErrSnapshotIncompatible)

			// the machine was not touched and stays usable
			assert.NotPanics(t, func() { m.mmu.Read(0x8000) })
			_, complete, err := m.RunFrame()
			require.NoError(t, err)
			assert.True(t, complete)
		})
	}
}

func TestLoadState_wrongCartridge(t *testing.T) {
	m1 := New()
	require.NoError(t, m1.LoadROM(loopROM("FIRST")))
	saved, err := m1.SaveState()
	require.NoError(t, err)

	m2 := New()
	require.NoError(t, m2.LoadROM(loopROM("SECOND")))

	before := m2.cpu.Regs
	assert.ErrorIs(t, m2.LoadState(saved), ErrSnapshotIncompatible)
	assert.Equal(t, before, m2.cpu.Regs, "a rejected snapshot must not touch the machine")
}

func TestLoadState_checksumMismatch(t *testing.T) {
	rom := loopROM("SAME")
	m1 := New()
	require.NoError(t, m1.LoadROM(rom))
	saved, err := m1.SaveState()
	require.NoError(t, err)

	// same title, different global checksum
	altered := append([]byte(nil), rom...)
	altered[0x14E] = 0xAB
	m2 := New()
	require.NoError(t, m2.LoadROM(altered))

	assert.ErrorIs(t, m2.LoadState(saved), ErrSnapshotIncompatible)
}

func TestLoadState_malformed(t *testing.T) {
	m := New()
	require.NoError(t, m.LoadROM(loopROM("GARBAGE")))

	assert.ErrorIs(t, m.LoadState([]byte("not json")), ErrSnapshotIncompatible)
}
