package datfile

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type dataType byte

const (
	dataTypeInvalid dataType = iota
	dataTypeNoCompression
	dataTypeGzip
	dataTypeZip
	dataTypeXZ
	dataTypeZ
	dataTypeBZip2
)

var byteCodeSigs = map[dataType][]byte{
	dataTypeGzip:  {0x1f, 0x8b, 0x08},
	dataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	dataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	dataTypeZ:     {0x1f, 0x9d},
	dataTypeBZip2: {0x42, 0x5a, 0x68},
}

// ExpandHome expands ~ to its proper path, where appropriate.
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			log.Fatalln(pfx.Err(err))
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path
}

// detectDataType attempts to detect the compression of a stream by checking
// its leading bytes against a set of known signatures.
func detectDataType(r io.Reader) (dataType, error) {
	buff := make([]byte, 6)
	if _, err := r.Read(buff); err != nil {
		return dataTypeInvalid, err
	}

Outer:
	for dt, sig := range byteCodeSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return dataTypeNoCompression, nil
}

// maybeDecompress wraps f in the appropriate decompressor if its signature
// identifies a known compressed format; otherwise it returns f unchanged.
// Observation tables are sometimes handed around gzipped, so the table
// readers accept either form.
func maybeDecompress(f *os.File) (io.ReadCloser, error) {
	dt, err := detectDataType(f)
	if err != nil {
		return nil, err
	}

	// Rewind before handing f to a decompressor, which reads its header at
	// construction time.
	if _, err := f.Seek(0, 0); err != nil {
		return nil, err
	}

	switch dt {
	case dataTypeGzip:
		return gzip.NewReader(f)
	case dataTypeZip:
		return &readCloserFaker{zipstream.NewReader(f)}, nil
	case dataTypeBZip2:
		return &readCloserFaker{bzip2.NewReader(f)}, nil
	case dataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			return nil, err
		}
		return &readCloserFaker{reader}, nil
	case dataTypeZ:
		return zlib.NewReader(f)
	}

	return f, nil
}

// readCloserFaker "upgrades" readers that don't need to be closed
type readCloserFaker struct {
	io.Reader
}

func (c *readCloserFaker) Close() error {
	return nil
}
