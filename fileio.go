/*
 * fileio.go, part of goseis
 *
 *
 * Copyright (c) 2024 The goSeis developers <goseis_dot_dev_at_tuta_dot_io>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License  as published by
 * the Free Software Foundation; either version 2.1 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program; if not, write to the Free Software
 * Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston,
 * MA 02110-1301, USA.
 */

package seis

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"compress/lzw"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

const (
	lzwLitwidth int = 8
)

//fileExt returns the lowercased extension of name, without the dot. A name
//with no dot returns as a whole, which simply won't match any compression.
func fileExt(name string) string {
	temp := strings.Split(name, ".")
	return strings.ToLower(temp[len(temp)-1])
}

//Compression formats we know we don't support, worth a heads-up when seen.
func looksCompressed(ext string) bool {
	for _, v := range []string{"zstd", "gzip", "bz2", "xz", "zip"} {
		if ext == v {
			return true
		}
	}
	return false
}

//zstd's *Decoder has a Close method without an error return, so it doesn't
//satisfy io.ReadCloser by itself and needs this little detour.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the decoder. It can not be used after this call.
func (s zstdql) Close() error {
	s.closeql()
	return nil
}

//srcFile couples a decompressor to the file under it, so one Close releases
//both.
type srcFile struct {
	f *os.File
	z io.ReadCloser //nil when the file is read as plain text
}

func (s *srcFile) Read(p []byte) (int, error) {
	if s.z != nil {
		return s.z.Read(p)
	}
	return s.f.Read(p)
}

func (s *srcFile) Close() error {
	if s.z != nil {
		if err := s.z.Close(); err != nil {
			s.f.Close()
			return err
		}
	}
	return s.f.Close()
}

//dstFile is the writing counterpart of srcFile.
type dstFile struct {
	f *os.File
	z io.WriteCloser //nil when the file is written as plain text
}

func (d *dstFile) Write(p []byte) (int, error) {
	if d.z != nil {
		return d.z.Write(p)
	}
	return d.f.Write(p)
}

func (d *dstFile) Close() error {
	if d.z != nil {
		if err := d.z.Close(); err != nil {
			d.f.Close()
			return err
		}
	}
	return d.f.Close()
}

// FileOpen opens name for reading, transparently decompressing the contents
// when the extension is one of .zst, .gz, .flate or .lzw. Any other name is
// read as plain text. All the FileRead functions in the library go through
// here, so every codec reads compressed files for free.
func FileOpen(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, SError{ErrIO, UnableToOpen + ": " + err.Error(), name, 0, []string{"FileOpen"}}
	}
	ret := &srcFile{f: f}
	reader := bufio.NewReader(f)
	switch ext := fileExt(name); ext {
	case "zst":
		z, err := zstd.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, SError{ErrIO, err.Error(), name, 0, []string{"zstd.NewReader", "FileOpen"}}
		}
		ret.z = zstdql{z.Close, z}
	case "gz":
		z, err := gzip.NewReader(reader)
		if err != nil {
			f.Close()
			return nil, SError{ErrIO, err.Error(), name, 0, []string{"gzip.NewReader", "FileOpen"}}
		}
		ret.z = z
	case "flate":
		ret.z = flate.NewReader(reader)
	case "lzw":
		ret.z = lzw.NewReader(reader, lzw.MSB, lzwLitwidth)
	default:
		if looksCompressed(ext) {
			log.Printf("Compression %s not supported. %s will be read as plain text", ext, name)
		}
	}
	return ret, nil
}

// FileCreate creates name for writing, compressing through the format given
// by the extension, with the same rules as FileOpen. The optional level
// applies to gzip and flate only, in their -2 to 9 range; zstd always uses
// its best setting.
func FileCreate(name string, level ...int) (io.WriteCloser, error) {
	lv := flate.DefaultCompression
	if len(level) > 0 {
		lv = level[0]
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, SError{ErrIO, UnableToCreate + ": " + err.Error(), name, 0, []string{"FileCreate"}}
	}
	ret := &dstFile{f: f}
	switch ext := fileExt(name); ext {
	case "zst":
		z, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return nil, SError{ErrIO, err.Error(), name, 0, []string{"zstd.NewWriter", "FileCreate"}}
		}
		ret.z = z
	case "gz":
		z, err := gzip.NewWriterLevel(f, lv)
		if err != nil {
			f.Close()
			return nil, SError{ErrIO, err.Error(), name, 0, []string{"gzip.NewWriterLevel", "FileCreate"}}
		}
		ret.z = z
	case "flate":
		z, err := flate.NewWriter(f, lv)
		if err != nil {
			f.Close()
			return nil, SError{ErrIO, err.Error(), name, 0, []string{"flate.NewWriter", "FileCreate"}}
		}
		ret.z = z
	case "lzw":
		ret.z = lzw.NewWriter(f, lzw.MSB, lzwLitwidth)
	default:
		if looksCompressed(ext) {
			log.Printf("Compression %s not supported. %s will be written as plain text", ext, name)
		}
	}
	return ret, nil
}
