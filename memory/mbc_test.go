package memory

import (
	"testing"
	"time"
)

// bankedROM builds a fake ROM where every byte holds its bank number.
func bankedROM(banks int) []uint8 {
	rom := make([]uint8, banks*0x4000)
	for i := range rom {
		rom[i] = uint8(i / 0x4000)
	}
	return rom
}

func TestNoMBC(t *testing.T) {
	rom := make([]uint8, 0x8000)
	rom[0x1234] = 0xAB
	mbc := NewNoMBC(rom)

	if got := mbc.Read(0x1234); got != 0xAB {
		t.Errorf("Read(0x1234) = 0x%02X; want 0xAB", got)
	}
	if got := mbc.Read(0xA000); got != 0xFF {
		t.Errorf("Read(0xA000) = 0x%02X; want 0xFF (no RAM)", got)
	}

	// writes are ignored
	mbc.Write(0x2000, 0x02)
	if got := mbc.Read(0x4000); got != rom[0x4000] {
		t.Errorf("bank switch should have no effect")
	}
}

func TestMBC1(t *testing.T) {
	t.Run("fixed bank 0", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), false, 0)
		if got := mbc.Read(0x2000); got != 0 {
			t.Errorf("Read(0x2000) = 0x%02X; want 0x00", got)
		}
	})

	t.Run("bank switching", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), false, 0)

		tests := []struct {
			name string
			bank uint8
			want uint8
		}{
			{"default bank", 0, 1},
			{"bank 2", 2, 2},
			{"bank 3", 3, 3},
			{"bank 0 maps to 1", 0, 1},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				if tt.bank > 0 {
					mbc.Write(0x2000, tt.bank)
				} else {
					mbc.Write(0x2000, 0)
				}
				if got := mbc.Read(0x4000); got != tt.want {
					t.Errorf("Read(0x4000) = 0x%02X; want 0x%02X", got, tt.want)
				}
			})
		}
	})

	t.Run("out of range bank wraps", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), false, 0)
		mbc.Write(0x2000, 0x05) // only 4 banks present
		if got := mbc.Read(0x4000); got != 1 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x01 (bank 5 mod 4)", got)
		}
	})

	t.Run("upper bank bits in mode 0", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(64), false, 0)
		mbc.Write(0x2000, 0x01) // lower 5 bits
		mbc.Write(0x4000, 0x01) // upper 2 bits -> bank 0x21
		if got := mbc.Read(0x4000); got != 0x21 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x21", got)
		}
	})

	t.Run("RAM enable gate", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), true, 1)

		mbc.Write(0xA000, 0x42)
		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("disabled RAM should read 0xFF, got 0x%02X", got)
		}

		mbc.Write(0x0000, 0x0A)
		mbc.Write(0xA000, 0x42)
		if got := mbc.Read(0xA000); got != 0x42 {
			t.Errorf("Read(0xA000) = 0x%02X; want 0x42", got)
		}

		mbc.Write(0x0000, 0x00)
		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("re-disabled RAM should read 0xFF, got 0x%02X", got)
		}
	})

	t.Run("RAM banking in mode 1", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), true, 4)
		mbc.Write(0x0000, 0x0A) // enable RAM
		mbc.Write(0x6000, 0x01) // mode 1

		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0x11)
		mbc.Write(0x4000, 0x02)
		mbc.Write(0xA000, 0x22)

		mbc.Write(0x4000, 0x00)
		if got := mbc.Read(0xA000); got != 0x11 {
			t.Errorf("bank 0 Read(0xA000) = 0x%02X; want 0x11", got)
		}
		mbc.Write(0x4000, 0x02)
		if got := mbc.Read(0xA000); got != 0x22 {
			t.Errorf("bank 2 Read(0xA000) = 0x%02X; want 0x22", got)
		}
	})

	t.Run("state round trip", func(t *testing.T) {
		mbc := NewMBC1(bankedROM(4), true, 1)
		mbc.Write(0x0000, 0x0A)
		mbc.Write(0x2000, 0x03)
		mbc.Write(0xA000, 0x99)

		state := mbc.State()

		restored := NewMBC1(bankedROM(4), true, 1)
		restored.Restore(state)

		if got := restored.Read(0x4000); got != 3 {
			t.Errorf("restored bank read = 0x%02X; want 0x03", got)
		}
		if got := restored.Read(0xA000); got != 0x99 {
			t.Errorf("restored RAM read = 0x%02X; want 0x99", got)
		}
	})
}

func TestMBC2(t *testing.T) {
	t.Run("address bit 8 selects the register", func(t *testing.T) {
		mbc := NewMBC2(bankedROM(4))

		// bit 8 clear: RAM enable
		mbc.Write(0x0000, 0x0A)
		// bit 8 set: ROM bank
		mbc.Write(0x0100, 0x03)

		if got := mbc.Read(0x4000); got != 3 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x03", got)
		}

		mbc.Write(0xA000, 0x5F)
		if got := mbc.Read(0xA000); got != 0xFF {
			t.Errorf("Read(0xA000) = 0x%02X; want 0xFF (upper nibble unwired)", got)
		}
	})

	t.Run("bank 0 maps to 1", func(t *testing.T) {
		mbc := NewMBC2(bankedROM(4))
		mbc.Write(0x0100, 0x00)
		if got := mbc.Read(0x4000); got != 1 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x01", got)
		}
	})
}

type fixedClock struct {
	now time.Time
}

func (f *fixedClock) Now() time.Time { return f.now }

func TestMBC3(t *testing.T) {
	t.Run("7-bit bank number", func(t *testing.T) {
		mbc := NewMBC3(bankedROM(8), 0, false, nil)
		mbc.Write(0x2000, 0x85) // high bit ignored
		if got := mbc.Read(0x4000); got != 5 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x05", got)
		}
	})

	t.Run("RTC registers", func(t *testing.T) {
		clock := &fixedClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
		mbc := NewMBC3(bankedROM(4), 1, true, clock)

		mbc.Write(0x0000, 0x0A) // enable
		mbc.Write(0x4000, 0x08) // seconds register

		clock.now = clock.now.Add(42 * time.Second)
		mbc.Write(0x6000, 0x00) // latch

		if got := mbc.Read(0xA000); got != 42 {
			t.Errorf("seconds register = %d; want 42", got)
		}
	})

	t.Run("RAM and RTC banks coexist", func(t *testing.T) {
		mbc := NewMBC3(bankedROM(4), 4, false, nil)
		mbc.Write(0x0000, 0x0A)

		mbc.Write(0x4000, 0x01)
		mbc.Write(0xA000, 0x77)
		if got := mbc.Read(0xA000); got != 0x77 {
			t.Errorf("Read(0xA000) = 0x%02X; want 0x77", got)
		}
	})
}

func TestMBC5(t *testing.T) {
	t.Run("9-bit bank number", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(4), false, 0)
		mbc.Write(0x2000, 0x02)
		if got := mbc.Read(0x4000); got != 2 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x02", got)
		}

		// the 9th bit lives in its own register; out of range wraps
		mbc.Write(0x3000, 0x01) // bank 0x102 -> mod 4 = 2
		if got := mbc.Read(0x4000); got != 2 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x02", got)
		}
	})

	t.Run("bank 0 is selectable", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(4), false, 0)
		mbc.Write(0x2000, 0x00)
		if got := mbc.Read(0x4000); got != 0 {
			t.Errorf("Read(0x4000) = 0x%02X; want 0x00", got)
		}
	})

	t.Run("RAM banking", func(t *testing.T) {
		mbc := NewMBC5(bankedROM(4), false, 8)
		mbc.Write(0x0000, 0x0A)

		mbc.Write(0x4000, 0x00)
		mbc.Write(0xA000, 0x11)
		mbc.Write(0x4000, 0x07)
		mbc.Write(0xA000, 0x77)

		mbc.Write(0x4000, 0x00)
		if got := mbc.Read(0xA000); got != 0x11 {
			t.Errorf("bank 0 read = 0x%02X; want 0x11", got)
		}
	})
}

// Images smaller than a whole number of banks are padded at load, so
// every controller read lands inside the slice and padding reads as
// open bus.
func TestMBCShortImageReadsOpenBus(t *testing.T) {
	for _, tc := range []struct {
		name string
		code uint8
	}{
		{"MBC1", 0x01},
		{"MBC2", 0x05},
		{"MBC3", 0x11},
		{"MBC5", 0x19},
	} {
		t.Run(tc.name, func(t *testing.T) {
			rom := make([]uint8, 0x150)
			rom[0x120] = 0x42
			rom[0x147] = tc.code

			cart, err := NewCartridgeWithData(rom)
			if err != nil {
				t.Fatalf("NewCartridgeWithData: %v", err)
			}
			if got := cart.Length(); got != 0x150 {
				t.Errorf("Length() = %d; want %d", got, 0x150)
			}

			mbc := newMBC(cart)
			if got := mbc.Read(0x0120); got != 0x42 {
				t.Errorf("Read(0x0120) = 0x%02X; want 0x42", got)
			}
			for _, address := range []uint16{0x0150, 0x3FFF, 0x4000, 0x7FFF} {
				if got := mbc.Read(address); got != 0xFF {
					t.Errorf("Read(0x%04X) = 0x%02X; want 0xFF", address, got)
				}
			}

			// a bank far past the image wraps and still reads padding
			mbc.Write(0x2100, 0x1F)
			if got := mbc.Read(0x4000); got != 0xFF {
				t.Errorf("banked Read(0x4000) = 0x%02X; want 0xFF", got)
			}
		})
	}
}
