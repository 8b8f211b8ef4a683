package datfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// WriteValues writes one value per line at the given fixed decimal
// precision, overwriting any existing file. The file is rendered in memory
// and moved into place atomically, so a failed run never leaves a
// half-written output behind.
func WriteValues(path string, vals []float64, decimals int) error {
	var buf bytes.Buffer
	for _, v := range vals {
		fmt.Fprintf(&buf, "%.*f\n", decimals, v)
	}

	return commit(path, buf.Bytes())
}

// WriteBlocks writes several value listings separated by single blank
// lines, each formatted as in WriteValues.
func WriteBlocks(path string, blocks [][]float64, decimals int) error {
	var buf bytes.Buffer
	for i, block := range blocks {
		if i > 0 {
			buf.WriteByte('\n')
		}
		for _, v := range block {
			fmt.Fprintf(&buf, "%.*f\n", decimals, v)
		}
	}

	return commit(path, buf.Bytes())
}

// commit writes content to a temporary file in the destination directory and
// renames it over path.
func commit(path string, content []byte) error {
	path = ExpandHome(path)

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return pfx.Err(err)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	return nil
}
