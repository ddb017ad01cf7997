// This file is part of Gopher8051.
//
// Gopher8051 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8051 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8051.  If not, see <https://www.gnu.org/licenses/>.

package engine

// Direct addresses of the special function registers.
const (
	P0   uint8 = 0x80
	SP   uint8 = 0x81
	DPL  uint8 = 0x82
	DPH  uint8 = 0x83
	PCON uint8 = 0x87
	TCON uint8 = 0x88
	TMOD uint8 = 0x89
	TL0  uint8 = 0x8a
	TL1  uint8 = 0x8b
	TH0  uint8 = 0x8c
	TH1  uint8 = 0x8d
	P1   uint8 = 0x90
	SCON uint8 = 0x98
	SBUF uint8 = 0x99
	P2   uint8 = 0xa0
	IE   uint8 = 0xa8
	P3   uint8 = 0xb0
	IP   uint8 = 0xb8
	PSW  uint8 = 0xd0
	ACC  uint8 = 0xe0
	B    uint8 = 0xf0
)

// SFRBase is the lowest SFR direct address.
const SFRBase = 0x80

// SFRIndex converts a direct address to an index into State.SFR.
func SFRIndex(register uint8) int {
	return int(register - SFRBase)
}

var sfrNames = map[uint8]string{
	P0:   "P0",
	SP:   "SP",
	DPL:  "DPL",
	DPH:  "DPH",
	PCON: "PCON",
	TCON: "TCON",
	TMOD: "TMOD",
	TL0:  "TL0",
	TL1:  "TL1",
	TH0:  "TH0",
	TH1:  "TH1",
	P1:   "P1",
	SCON: "SCON",
	SBUF: "SBUF",
	P2:   "P2",
	IE:   "IE",
	P3:   "P3",
	IP:   "IP",
	PSW:  "PSW",
	ACC:  "ACC",
	B:    "B",
}

// SFRName returns the name of the register at the direct address. An empty
// string is returned for unnamed addresses.
func SFRName(register uint8) string {
	return sfrNames[register]
}
