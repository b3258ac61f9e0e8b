package deck

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
)

// A deck file holds one CBOR data item (RFC 8949): an array of text
// strings, one per card, in deck order. A nil deck is written as an empty
// array. There is no header or version field.

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		NilContainers: cbor.NilContainerAsEmpty,
	}.EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		UTF8: cbor.UTF8RejectInvalid,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Encode returns the binary encoding of d
func Encode(d Deck) ([]byte, error) {
	return encMode.Marshal(d)
}

// Decode parses data produced by Encode. The returned deck is never nil on
// success.
func Decode(data []byte) (Deck, error) {
	var d Deck
	if err := decMode.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, errors.New("deck is null, want an array")
	}
	return d, nil
}

// Save writes d to path, replacing any existing file. The data is written to
// a temporary file in the same directory and renamed into place.
func Save(d Deck, path string) error {
	data, err := Encode(d)
	if err != nil {
		return wrap(CodeWriteFailure, path, err)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return wrap(CodeWriteFailure, path, err)
	}
	tmpPath := tmp.Name()

	if err := writeAndClose(tmp, data); err != nil {
		os.Remove(tmpPath)
		return wrap(CodeWriteFailure, path, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return wrap(CodeWriteFailure, path, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return wrap(CodeWriteFailure, path, err)
	}

	return nil
}

func writeAndClose(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Load reads a deck saved by Save. A missing or unreadable file yields
// CodeReadFailure; content that is not an encoded deck yields
// CodeDecodeFailure.
func Load(path string) (Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, wrap(CodeReadFailure, path, err)
	}

	d, err := Decode(data)
	if err != nil {
		return nil, wrap(CodeDecodeFailure, path, err)
	}

	return d, nil
}
