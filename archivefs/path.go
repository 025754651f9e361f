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

package archivefs

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gopher64/gopher64/curated"
)

// Sentinal errors returned by the package.
const (
	NotFound  = "archivefs: %s: %v"
	NoFile    = "archivefs: %s: no file with extension %s"
	Ambiguous = "archivefs: %s: more than one file with extension %s"
)

// Path is a location in the file system, possibly inside a zip archive.
type Path struct {
	current string

	zf *zip.ReadCloser

	// location inside the archive. the separator is always a forward slash
	inZip string
	isDir bool
}

func (p *Path) String() string {
	return p.current
}

// InArchive returns true if the path is inside an archive.
func (p *Path) InArchive() bool {
	return p.zf != nil
}

// IsDir returns true if the path is a directory. The root of an archive is
// a directory.
func (p *Path) IsDir() bool {
	return p.isDir
}

// Close the archive, if there is one, and clear the path.
func (p *Path) Close() {
	if p.zf != nil {
		p.zf.Close()
		p.zf = nil
	}
	p.current = ""
	p.inZip = ""
	p.isDir = false
}

// Set the path. Each element of the path is checked in turn and an archive
// is entered when it is found.
func (p *Path) Set(filename string) error {
	p.Close()

	filename = filepath.Clean(filename)
	parts := strings.Split(filename, string(filepath.Separator))
	if parts[0] == "" {
		parts[0] = string(filepath.Separator)
	}

	var current string
	for _, part := range parts {
		current = filepath.Join(current, part)

		if p.zf != nil {
			p.inZip = path.Join(p.inZip, part)
			f, err := p.zf.Open(p.inZip)
			if err != nil {
				p.Close()
				return curated.Errorf(NotFound, filename, err)
			}
			fi, err := f.Stat()
			f.Close()
			if err != nil {
				p.Close()
				return curated.Errorf(NotFound, filename, err)
			}
			p.isDir = fi.IsDir()
			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			p.Close()
			return curated.Errorf(NotFound, filename, err)
		}
		p.isDir = fi.IsDir()
		if p.isDir {
			continue
		}

		zf, err := zip.OpenReader(current)
		if err == nil {
			p.zf = zf
			p.isDir = true
			continue
		}
		if !errors.Is(err, zip.ErrFormat) {
			p.Close()
			return curated.Errorf(NotFound, filename, err)
		}
	}

	p.current = current
	return nil
}

// ReadAll returns the contents of the file at the path.
//
// If the path is a directory inside an archive, or the root of an archive,
// the one file in that directory with one of the extensions is read. The
// extensions are case insensitive.
func (p *Path) ReadAll(exts ...string) ([]uint8, error) {
	if p.zf == nil {
		return os.ReadFile(p.current)
	}

	name := p.inZip
	if p.isDir {
		var err error
		name, err = p.find(exts)
		if err != nil {
			return nil, err
		}
	}

	f, err := p.zf.Open(name)
	if err != nil {
		return nil, curated.Errorf(NotFound, p.current, err)
	}
	defer f.Close()
	return io.ReadAll(f)
}

// find the single file with one of the extensions in the current archive
// directory
func (p *Path) find(exts []string) (string, error) {
	var found string
	for _, f := range p.zf.File {
		if path.Dir(f.Name) != path.Clean(path.Join(".", p.inZip)) || f.FileInfo().IsDir() {
			continue
		}
		if !hasExtension(f.Name, exts) {
			continue
		}
		if found != "" {
			return "", curated.Errorf(Ambiguous, p.current, strings.Join(exts, " "))
		}
		found = f.Name
	}
	if found == "" {
		return "", curated.Errorf(NoFile, p.current, strings.Join(exts, " "))
	}
	return found, nil
}

func hasExtension(name string, exts []string) bool {
	e := path.Ext(name)
	for _, ext := range exts {
		if strings.EqualFold(e, ext) {
			return true
		}
	}
	return false
}

// ReadFile returns the contents of the file. The filename can name a file
// inside an archive or an archive itself, in which case the file with one of
// the extensions is read.
func ReadFile(filename string, exts ...string) ([]uint8, error) {
	var p Path
	if err := p.Set(filename); err != nil {
		return nil, err
	}
	defer p.Close()
	return p.ReadAll(exts...)
}
