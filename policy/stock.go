package policy

import (
	"bytes"
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/syndtr/goleveldb/leveldb/util"
)

// HashSeed is the seed used by the Hash functions of the stock policies.
const HashSeed uint32 = 0xbc9f1d34

// Ordered returns a policy for any type with a natural order.
func Ordered[T cmp.Ordered]() *Policy[T] {
	return &Policy[T]{
		Cmp: cmp.Compare[T],
		Str: func(w io.Writer, v T) error {
			_, err := fmt.Fprint(w, v)
			return err
		},
		Pri: cmp.Compare[T],
	}
}

// Strings returns a policy for strings.
func Strings() *Policy[string] {
	return &Policy[string]{
		Cmp: strings.Compare,
		Str: func(w io.Writer, v string) error {
			_, err := fmt.Fprintf(w, "%q", v)
			return err
		},
		Hash: func(v string) uint64 {
			return uint64(util.Hash([]byte(v), HashSeed))
		},
		Pri: strings.Compare,
	}
}

// Bytes returns a policy for byte slices. Values are deep copied, so a
// copied list never aliases the source's slices.
func Bytes() *Policy[[]byte] {
	return &Policy[[]byte]{
		Cmp:  bytes.Compare,
		Copy: bytes.Clone,
		Str: func(w io.Writer, v []byte) error {
			_, err := fmt.Fprintf(w, "%q", v)
			return err
		},
		Hash: func(v []byte) uint64 {
			return uint64(util.Hash(v, HashSeed))
		},
		Pri: bytes.Compare,
	}
}
