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

//go:build statsview

package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/gopher64/gopher64/logger"
)

const path = "/debug/statsview"

// Launch the statsview server in a new goroutine. The server runs until the
// program ends.
func Launch(perm logger.Permission) {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go func() {
		if err := mgr.Start(); err != nil {
			logger.Log(perm, "statsview", err)
		}
	}()
	logger.Logf(perm, "statsview", "available at http://%s%s", Address, path)
}

// Available returns true if the statsview server can be launched.
func Available() bool {
	return true
}
