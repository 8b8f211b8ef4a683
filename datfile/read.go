// Package datfile reads header-less whitespace-delimited numeric tables
// with a fixed column schema, and writes flat newline-delimited output
// files. Column indices are 1-based and part of each file's contract.
package datfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

// Column identifies a column in a fixed-schema table. The first column is 1.
type Column int

// ReadColumns reads the requested columns from a whitespace-delimited
// numeric table. Blank lines and lines starting with '#' are skipped. The
// returned slices are parallel: out[j][i] is row i of cols[j]. A row that is
// shorter than the highest requested column, or a cell that does not parse
// as a float, is a fatal error naming the offending line.
func ReadColumns(path string, cols ...Column) ([][]float64, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("no columns requested from %s", path)
	}
	for _, c := range cols {
		if c < 1 {
			return nil, fmt.Errorf("column indices are 1-based; got %d", c)
		}
	}

	f, err := os.Open(ExpandHome(path))
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	r, err := maybeDecompress(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	out := make([][]float64, len(cols))

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		for j, c := range cols {
			if int(c) > len(fields) {
				return nil, fmt.Errorf("%s line %d: wanted column %d but row has only %d columns", path, lineNum, c, len(fields))
			}

			v, err := strconv.ParseFloat(fields[c-1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d column %d: %q is not numeric", path, lineNum, c, fields[c-1])
			}

			out[j] = append(out[j], v)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	if len(out[0]) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}

	return out, nil
}
