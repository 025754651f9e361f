// This file is part of Gopher64.
//
// Gopher64 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher64 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher64.  If not, see <https://www.gnu.org/licenses/>.

package cart

import "strings"

// SaveType is the kind of backup memory on the cartridge. Some cartridges
// are listed as having more than one kind because the game ID does not
// identify which of the kinds the cartridge really has.
type SaveType int

// List of save types. The values can be combined.
const (
	SaveNone      SaveType = 0
	SaveEEPROM4k  SaveType = 1 << 0
	SaveEEPROM16k SaveType = 1 << 1
	SaveSRAM      SaveType = 1 << 2
	SaveFlashRAM  SaveType = 1 << 3
)

func (t SaveType) String() string {
	if t == SaveNone {
		return "none"
	}
	var s []string
	if t.Has(SaveEEPROM4k) {
		s = append(s, "eeprom4k")
	}
	if t.Has(SaveEEPROM16k) {
		s = append(s, "eeprom16k")
	}
	if t.Has(SaveSRAM) {
		s = append(s, "sram")
	}
	if t.Has(SaveFlashRAM) {
		s = append(s, "flashram")
	}
	return strings.Join(s, "+")
}

// Has returns true if the save type includes the other type.
func (t SaveType) Has(o SaveType) bool {
	return t&o == o
}

var eeprom16kGames = []string{
	"NB7", // Banjo-Tooie
	"NGT", // City Tour GrandPrix
	"NFU", // Conker's Bad Fur Day
	"NCW", // Cruis'n World
	"NCZ", // Custom Robo V2
	"ND6", // Densha de Go! 64
	"NDO", // Donkey Kong 64
	"ND2", // Doraemon 2
	"N3D", // Doraemon 3
	"NMX", // Excitebike 64
	"NGC", // GT 64
	"NIM", // Ide Yosuke no Mahjong Juku
	"NNB", // Kobe Bryant in NBA Courtside
	"NMV", // Mario Party 3
	"NM8", // Mario Tennis
	"NEV", // Neon Genesis Evangelion
	"NPP", // Parlor! Pro 64
	"NUB", // PD Ultraman Battle Collection 64
	"NPD", // Perfect Dark
	"NRZ", // Ridge Racer 64
	"NR7", // Robot Poncots 64
	"NEP", // Star Wars Episode I: Racer
	"NYS", // Yoshi's Story
}

var flashRAMGames = []string{
	"NCC", // Command & Conquer
	"NDA", // Derby Stallion 64
	"NAF", // Doubutsu no Mori
	"NJF", // Jet Force Gemini
	"NKJ", // Ken Griffey Jr.'s Slugfest
	"NZS", // Majora's Mask
	"NM6", // Mega Man 64
	"NCK", // NBA Courtside 2
	"NMQ", // Paper Mario
	"NPN", // Pokemon Puzzle League
	"NPF", // Pokemon Snap
	"NPO", // Pokemon Stadium
	"CP2", // Pocket Monsters Stadium 2
	"NP3", // Pokemon Stadium 2
	"NRH", // Rockman Dash
	"NSQ", // StarCraft 64
	"NT9", // Tigger's Honey Hunt
	"NW4", // WWF No Mercy
	"NDP", // Dinosaur Planet
}

var noSaveGames = []string{
	"NPQ", // Powerpuff Girls: Chemical X Traction
}

var saveTypes map[string]SaveType

func init() {
	saveTypes = make(map[string]SaveType)
	for _, id := range eeprom16kGames {
		saveTypes[id] = SaveEEPROM16k
	}
	for _, id := range flashRAMGames {
		saveTypes[id] = SaveFlashRAM
	}
	for _, id := range noSaveGames {
		saveTypes[id] = SaveNone
	}
}

// SaveTypeForGame returns the save type for the game ID. Games that are not
// listed are assumed to have a 4k EEPROM or SRAM.
func SaveTypeForGame(gameID string) SaveType {
	if t, ok := saveTypes[gameID]; ok {
		return t
	}
	return SaveEEPROM4k | SaveSRAM
}
