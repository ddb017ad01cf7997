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

package loader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/gopher8051/gopher8051/curated"
	"github.com/gopher8051/gopher8051/logger"
)

// Format of the program image.
type Format int

// List of valid formats.
const (
	FormatHex Format = iota
	FormatRaw
)

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "intel hex"
	case FormatRaw:
		return "raw"
	}
	return "unknown"
}

// LoadError is the pattern for all errors returned by the loader package.
const LoadError = "loader: %v"

// Loader is used to specify the program to place in code memory.
type Loader struct {
	// filename of program to load
	Filename string

	Format Format

	// expected hash of the loaded file. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// Files with the extensions ".BIN" and ".RAW" are raw images. All other files
// are Intel HEX files unless the raw argument is true.
func NewLoader(filename string, raw bool) Loader {
	ld := Loader{
		Filename: filename,
		Format:   FormatHex,
	}

	if raw {
		ld.Format = FormatRaw
	} else {
		switch strings.ToUpper(path.Ext(filename)) {
		case ".BIN", ".RAW":
			ld.Format = FormatRaw
		}
	}

	return ld
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the file data. Loader filenames with a valid schema will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (ld *Loader) Load() error {
	if len(ld.Data) > 0 {
		return nil
	}

	scheme := "file"
	u, err := url.Parse(ld.Filename)
	if err == nil {
		scheme = u.Scheme
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		defer resp.Body.Close()

		ld.Data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	case "file", "":
		ld.Data, err = os.ReadFile(ld.Filename)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}

	default:
		return curated.Errorf(LoadError, fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	if len(ld.Data) == 0 {
		return curated.Errorf(LoadError, "empty file")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(ld.Data))
	if ld.Hash != "" && ld.Hash != hash {
		ld.Data = nil
		return curated.Errorf(LoadError, "unexpected hash value")
	}
	ld.Hash = hash

	return nil
}

// Attach loads the file, if it hasn't been loaded already, and places the
// program in code memory. Returns the number of bytes placed in code memory.
func (ld *Loader) Attach(code []uint8) (int, error) {
	if err := ld.Load(); err != nil {
		return 0, err
	}

	var n int
	var err error

	switch ld.Format {
	case FormatRaw:
		n, err = Raw(ld.Data, code)
	default:
		n, err = Hex(strings.NewReader(string(ld.Data)), code)
	}
	if err != nil {
		return n, err
	}

	logger.Logf(logger.Allow, "loader", "%s: %d bytes (%s)", ld.ShortName(), n, ld.Format)
	return n, nil
}

// Raw copies the image to the start of code memory. It is an error for the
// image to be larger than code memory.
func Raw(data []byte, code []uint8) (int, error) {
	if len(data) > len(code) {
		return 0, curated.Errorf(LoadError, fmt.Sprintf("image too large (%d bytes)", len(data)))
	}
	return copy(code, data), nil
}
