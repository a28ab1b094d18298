package main

import (
	"encoding/hex"
	"io"
	"os"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/pkg/errors"
)

// input is one thing to decode: a named file or stdin.
type input struct {
	name string
	data []byte
}

// readInputs reads every file named in args, or stdin when there are none.
func readInputs(args []string, max datasize.ByteSize, isHex bool) ([]input, error) {
	if len(args) == 0 {
		data, err := readLimited(os.Stdin, max)
		if err != nil {
			return nil, errors.Wrap(err, "read stdin")
		}
		if isHex {
			if data, err = decodeHex(data); err != nil {
				return nil, errors.Wrap(err, "stdin")
			}
		}
		return []input{{name: "-", data: data}}, nil
	}
	inputs := make([]input, 0, len(args))
	for _, name := range args {
		data, err := readFile(name, max)
		if err != nil {
			return nil, err
		}
		if isHex {
			if data, err = decodeHex(data); err != nil {
				return nil, errors.Wrap(err, name)
			}
		}
		inputs = append(inputs, input{name: name, data: data})
	}
	return inputs, nil
}

func readFile(name string, max datasize.ByteSize) ([]byte, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()
	data, err := readLimited(f, max)
	return data, errors.Wrap(err, name)
}

// readLimited reads all of r, failing if it holds more than max bytes.
func readLimited(r io.Reader, max datasize.ByteSize) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) > max.Bytes() {
		return nil, errors.Errorf("input exceeds %s", max.String())
	}
	return data, nil
}

// decodeHex decodes hex text such as "aced0005 7400 03..." or
// "\xac\xed\x00\x05". Whitespace and 0x or \x prefixes are ignored.
func decodeHex(p []byte) ([]byte, error) {
	s := strings.Join(strings.Fields(string(p)), "")
	s = strings.TrimPrefix(s, "0x")
	s = strings.ReplaceAll(s, `\x`, "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "decode hex input")
	}
	return data, nil
}
