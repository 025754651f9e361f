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

// Package macro runs Lua scripts that drive the joybus and the cartridge
// backup devices. Scripts are useful for exercising the emulation without a
// game, and for reproducing the exact sequence of commands that a game sends.
//
// The first line of a script must be the comment:
//
//	-- gopher64 macro
//
// The emulation is controlled through the n64 table. Addresses and values
// are numbers. Controller ports are numbered from zero, the same as the
// joybus channels.
//
//	n64.write_pif(address, value)       write a word to PIF RAM
//	n64.read_pif(address)               read a word from PIF RAM
//	n64.update_pif()                    process every joybus channel
//	n64.step(cycles)                    advance the emulation
//	n64.cycles()                        the current cycle count
//	n64.reset()                         reset the console
//
//	n64.read_cart(address)              read a word from the backup device
//	n64.write_cart(address, value)      write a word to the backup device
//	n64.dma_read(cart, dram, length)    transfer from RDRAM to the cartridge
//	n64.dma_write(cart, dram, length)   transfer from the cartridge to RDRAM
//	n64.pi_busy()                       true if the PI is busy
//	n64.read_rdram(address)             read a word from RDRAM
//	n64.write_rdram(address, value)     write a word to RDRAM
//	n64.flush()                         write the save files to disk
//
//	n64.insert(port, kind)              insert a pak ("mempak", "rumblepak",
//	                                    "transferpak" or "none")
//	n64.pak(port)                       the kind of pak in the controller
//	n64.press(port, buttons)            set the buttons of a controller
//	n64.release(port)                   release every button
//	n64.change_pak(port)                start the pak switch gesture
//	n64.rumble(port)                    the rumble value of the controller
//	n64.notices()                       list of notifications since the
//	                                    previous call
//
//	n64.say(word, ...)                  words to be recognised by the VRU,
//	                                    one for each time the VRU listens
//
//	n64.snapshot()                      the machine state as a string
//	n64.restore(state)                  restore the machine state
//
// The log(...) function writes its arguments to the log.
//
// Errors in the emulation stop the script. The error is returned by Run().
package macro
