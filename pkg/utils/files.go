package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/pkg/errors"
)

// LoadFile loads the given file and performs decompression if necessary.
// Archives (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "utils: reading file")
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to the file extension ext. Unknown
// extensions are returned as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, errors.Wrap(err, "utils: opening gzip stream")
		}
		defer gz.Close()
		decoder = gz
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "utils: opening zip archive")
		}
		if len(zipReader.File) == 0 {
			return nil, errors.New("utils: zip archive is empty")
		}
		f, err := zipReader.File[0].Open()
		if err != nil {
			return nil, errors.Wrapf(err, "utils: opening %s", zipReader.File[0].Name)
		}
		defer f.Close()
		decoder = f
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, errors.Wrap(err, "utils: opening 7z archive")
		}
		if len(r.File) == 0 {
			return nil, errors.New("utils: 7z archive is empty")
		}
		f, err := r.File[0].Open()
		if err != nil {
			return nil, errors.Wrapf(err, "utils: opening %s", r.File[0].Name)
		}
		defer f.Close()
		decoder = f
	default:
		// return the data as is
		return data, nil
	}

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrap(err, "utils: decompressing")
	}
	return out, nil
}
