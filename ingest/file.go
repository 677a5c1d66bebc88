package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Read dispatches on the extension of filename, which only names the format of r
func Read(r io.Reader, filename string, opt *Options) (*Table, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".xlsx", ".xlsm":
		return ReadXLSX(r, opt)
	case ".csv", ".txt":
		return ReadCSV(r, opt)
	default:
		return nil, fmt.Errorf("%q, %w", ext, ErrUnsupportedFormat)
	}
}

// ReadFile opens path and reads it as a table
func ReadFile(path string, opt *Options) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%v, %w", err, ErrReadTable)
	}
	defer file.Close()

	return Read(file, path, opt)
}
