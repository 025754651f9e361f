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

package notifications

// Notice describes events that are of interest to the user but which do not
// otherwise affect the emulation. For example, the rumble pak being swapped
// for a controller pak.
type Notice string

// List of defined notifications.
const (
	// a pak has been removed from a controller as part of the pak switch. the
	// new pak will be inserted once the pak switch delay has passed
	NotifyPakRemoved Notice = "NotifyPakRemoved"

	// notifications sent when the pak switch completes. one notice for each
	// type of pak
	NotifyPakInsertedMemPak      Notice = "NotifyPakInsertedMemPak"
	NotifyPakInsertedRumblePak   Notice = "NotifyPakInsertedRumblePak"
	NotifyPakInsertedTransferPak Notice = "NotifyPakInsertedTransferPak"

	// the voice recognition unit is listening for a spoken word. the word is
	// chosen from a list by the user
	NotifyVRUListening Notice = "NotifyVRUListening"
	NotifyVRUStopped   Notice = "NotifyVRUStopped"

	// a save file has been written to disk
	NotifySaveWritten Notice = "NotifySaveWritten"
)

// Notify is used for direct communication between the hardware and the
// front end.
type Notify interface {
	Notify(notice Notice) error
}
