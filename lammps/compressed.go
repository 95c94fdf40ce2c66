/*
 * compressed.go, part of gotraj
 *
 * Copyright 2024 Raul Mera A. <rmera{at}usachDOTcl>
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

package lammps

import (
	"bufio"
	"bytes"
	"compress/bzip2"
	"compress/gzip"
	"io"
	"log"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//prepSource opens the named dump file and returns a seekable source for
//it. Plain text files are used directly; compressed files are expanded
//into memory, since the step index needs to seek and none of the
//compressed formats supports that.
func prepSource(fname string) (io.ReadSeeker, io.Closer, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, nil, err
	}
	temp := strings.Split(fname, ".")
	format := strings.ToLower(temp[len(temp)-1])
	var dec io.Reader
	switch format {
	case "gz":
		gz, err := gzip.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		defer gz.Close()
		dec = gz
	case "zst":
		zr, err := zstd.NewReader(bufio.NewReader(f))
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		defer zr.Close()
		dec = zr
	case "bz2":
		dec = bzip2.NewReader(bufio.NewReader(f))
	case "lammpstrj", "dump", "txt":
		return f, f, nil
	default:
		log.Printf("Extension %s not recognized. %s will be assumed to be a plain-text dump file", format, fname)
		return f, f, nil
	}
	defer f.Close()
	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, nil, err
	}
	return bytes.NewReader(data), nil, nil
}

//prepSink creates the named dump file and returns the writer frames should
//be serialized to, compressing on the fly when the extension asks for it.
//The returned closer flushes the compressor, if any, and closes the file.
func prepSink(fname string) (io.Writer, io.Closer, error) {
	f, err := os.Create(fname)
	if err != nil {
		return nil, nil, err
	}
	temp := strings.Split(fname, ".")
	format := strings.ToLower(temp[len(temp)-1])
	switch format {
	case "gz":
		gz := gzip.NewWriter(f)
		return gz, &stackedCloser{first: gz, second: f}, nil
	case "zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, nil, err
		}
		return zw, &stackedCloser{first: zw, second: f}, nil
	}
	return f, f, nil
}

//stackedCloser closes a compressor and then the file under it.
type stackedCloser struct {
	first  io.Closer
	second io.Closer
}

func (s *stackedCloser) Close() error {
	err := s.first.Close()
	if err2 := s.second.Close(); err == nil {
		err = err2
	}
	return err
}
