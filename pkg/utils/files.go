package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
)

// ErrEmptyArchive is returned when an archive holds no files.
var ErrEmptyArchive = errors.New("archive contains no files")

// LoadFile loads the given file and performs decompression if
// necessary, based on the file extension. Archives (.zip, .7z)
// yield their first file, compressed streams (.gz, .br) are
// decompressed, and anything else is returned as is.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	data, err = Decompress(strings.ToLower(filepath.Ext(filename)), data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", filename, err)
	}
	return data, nil
}

// Decompress decodes data according to the given file extension.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch ext {
	case ".gz":
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		decoder = gz
	case ".br":
		br := cbrotli.NewReader(bytes.NewReader(data))
		defer br.Close()
		decoder = br
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(zipReader.File) == 0 {
			return nil, ErrEmptyArchive
		}

		// read the first file in the archive
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, err
		}
		if len(r.File) == 0 {
			return nil, ErrEmptyArchive
		}

		rc, err := r.File[0].Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		decoder = rc
	default:
		return data, nil
	}

	return io.ReadAll(decoder)
}
