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

package controller

import (
	"github.com/gopher64/gopher64/hardware/controller/paks"
)

// games that are known to work best with the rumble pak inserted at startup
var rumbleGames = map[string]bool{
	"NCT": true, // Chameleon Twist
}

// DefaultPak returns the kind of pak that should be inserted into a
// controller at startup. The game ID is the three character ID from the
// cartridge header. A transfer pak is chosen if a Game Boy cartridge has
// been provided.
func DefaultPak(gameID string, gbCart bool) paks.Kind {
	if gbCart {
		return paks.TransferPak
	}
	if rumbleGames[gameID] {
		return paks.RumblePak
	}
	return paks.MemPak
}
