package memory

import "github.com/dotmatrixgb/dotmatrix/audio"

// State is the serializable MMU snapshot: every RAM segment, the banking
// selectors, the palette RAM and the attached device state. Cartridge ROM
// is excluded; a snapshot only loads against the same cartridge.
type State struct {
	VRAM     [][]byte `json:"vram"`
	VRAMBank uint8    `json:"vramBank"`
	WRAM     [][]byte `json:"wram"`
	SVBK     uint8    `json:"svbk"`
	OAM      []byte   `json:"oam"`
	IO       []byte   `json:"io"`
	HRAM     []byte   `json:"hram"`
	IE       byte     `json:"ie"`

	BGPaletteRAM []byte `json:"bgPaletteRam"`
	OBPaletteRAM []byte `json:"obPaletteRam"`
	BGPI         byte   `json:"bgpi"`
	OBPI         byte   `json:"obpi"`

	HDMASrc    uint16 `json:"hdmaSrc"`
	HDMADst    uint16 `json:"hdmaDst"`
	HDMALen    uint8  `json:"hdmaLen"`
	HDMAActive bool   `json:"hdmaActive"`

	JoypadButtons uint8 `json:"joypadButtons"`
	JoypadDpad    uint8 `json:"joypadDpad"`

	Timer TimerState  `json:"timer"`
	APU   audio.State `json:"apu"`
	MBC   *MBCState   `json:"mbc,omitempty"`
}

// Save captures the full MMU state.
func (m *MMU) Save() State {
	s := State{
		VRAM:          make([][]byte, len(m.vram)),
		VRAMBank:      m.vramBank,
		WRAM:          make([][]byte, len(m.wram)),
		SVBK:          m.svbk,
		OAM:           append([]byte(nil), m.oam[:]...),
		IO:            append([]byte(nil), m.io[:]...),
		HRAM:          append([]byte(nil), m.hram[:]...),
		IE:            m.ie,
		BGPaletteRAM:  append([]byte(nil), m.bgPaletteRAM[:]...),
		OBPaletteRAM:  append([]byte(nil), m.obPaletteRAM[:]...),
		BGPI:          m.bgpi,
		OBPI:          m.obpi,
		HDMASrc:       m.hdmaSrc,
		HDMADst:       m.hdmaDst,
		HDMALen:       m.hdmaLen,
		HDMAActive:    m.hdmaActive,
		JoypadButtons: m.joypadButtons,
		JoypadDpad:    m.joypadDpad,
		Timer:         m.timer.State(),
		APU:           m.APU.Save(),
	}
	for i := range m.vram {
		s.VRAM[i] = append([]byte(nil), m.vram[i][:]...)
	}
	for i := range m.wram {
		s.WRAM[i] = append([]byte(nil), m.wram[i][:]...)
	}
	if m.mbc != nil {
		state := m.mbc.State()
		s.MBC = &state
	}
	return s
}

// Restore replaces the full MMU state. The caller is responsible for
// checking that the snapshot belongs to the inserted cartridge.
func (m *MMU) Restore(s State) {
	for i := range m.vram {
		if i < len(s.VRAM) {
			copy(m.vram[i][:], s.VRAM[i])
		}
	}
	m.vramBank = s.VRAMBank
	for i := range m.wram {
		if i < len(s.WRAM) {
			copy(m.wram[i][:], s.WRAM[i])
		}
	}
	m.svbk = s.SVBK
	copy(m.oam[:], s.OAM)
	copy(m.io[:], s.IO)
	copy(m.hram[:], s.HRAM)
	m.ie = s.IE
	copy(m.bgPaletteRAM[:], s.BGPaletteRAM)
	copy(m.obPaletteRAM[:], s.OBPaletteRAM)
	m.bgpi = s.BGPI
	m.obpi = s.OBPI
	m.hdmaSrc = s.HDMASrc
	m.hdmaDst = s.HDMADst
	m.hdmaLen = s.HDMALen
	m.hdmaActive = s.HDMAActive
	m.joypadButtons = s.JoypadButtons
	m.joypadDpad = s.JoypadDpad
	m.timer.Restore(s.Timer)
	m.APU.Restore(s.APU)
	if m.mbc != nil && s.MBC != nil {
		m.mbc.Restore(*s.MBC)
	}
}
