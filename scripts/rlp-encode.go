// +build ignore

// This script RLP-encodes transaction hashes into the hex path segment
// accepted by /lime/eth/{rlphex}.
// Run with: go run scripts/rlp-encode.go 0x<hash> 0x<hash> ...

package main

import (
	"fmt"
	"os"

	"github.com/chainsafe/lime-api/pkg/transaction"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: go run scripts/rlp-encode.go <hash> [hash...]")
		os.Exit(2)
	}

	hashes, err := transaction.ParseHashes(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid hash: %v\n", err)
		os.Exit(1)
	}

	encoded, err := transaction.EncodeRLPHex(hashes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding hashes: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(encoded)
}
