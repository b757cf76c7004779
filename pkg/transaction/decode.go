package transaction

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	// ErrInvalidEncoding is returned when an RLP batch is not hex or not a well-formed RLP list.
	ErrInvalidEncoding = errors.New("invalid hex string")
	// ErrInvalidElementLength is returned when a decoded batch element is not exactly 32 bytes.
	ErrInvalidElementLength = errors.New("invalid hash length")
	// ErrInvalidIdentifier is returned when a single hash is not 32 bytes of hex.
	ErrInvalidIdentifier = errors.New("invalid transaction hash")
)

// DecodeRLPHex decodes a hex string (0x prefix optional) holding an RLP list
// of 32-byte strings. Decoding is all-or-nothing.
func DecodeRLPHex(s string) ([]common.Hash, error) {
	data, err := hex.DecodeString(trim0x(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	var elems [][]byte
	if err := rlp.DecodeBytes(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEncoding, err)
	}

	hashes := make([]common.Hash, 0, len(elems))
	for i, elem := range elems {
		if len(elem) != common.HashLength {
			return nil, fmt.Errorf("%w: element %d has %d bytes", ErrInvalidElementLength, i, len(elem))
		}
		hashes = append(hashes, common.BytesToHash(elem))
	}
	return hashes, nil
}

// EncodeRLPHex is the inverse of DecodeRLPHex. The result carries no 0x prefix
// so it can be used directly as a path segment.
func EncodeRLPHex(hashes []common.Hash) (string, error) {
	elems := make([][]byte, len(hashes))
	for i := range hashes {
		elems[i] = hashes[i].Bytes()
	}
	data, err := rlp.EncodeToBytes(elems)
	if err != nil {
		return "", fmt.Errorf("failed to encode hashes: %w", err)
	}
	return hex.EncodeToString(data), nil
}

// ParseHash parses a single 32-byte hash given as hex with or without 0x.
func ParseHash(s string) (common.Hash, error) {
	b, err := hexutil.Decode("0x" + trim0x(strings.TrimSpace(s)))
	if err != nil {
		return common.Hash{}, fmt.Errorf("%w %q: %v", ErrInvalidIdentifier, s, err)
	}
	if len(b) != common.HashLength {
		return common.Hash{}, fmt.Errorf("%w %q: got %d bytes", ErrInvalidIdentifier, s, len(b))
	}
	return common.BytesToHash(b), nil
}

// ParseHashes parses every entry of raw; one malformed hash fails the batch.
func ParseHashes(raw []string) ([]common.Hash, error) {
	hashes := make([]common.Hash, 0, len(raw))
	for _, s := range raw {
		h, err := ParseHash(s)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
