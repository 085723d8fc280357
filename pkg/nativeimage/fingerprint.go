package nativeimage

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable 16 hex digit key for an argument vector.
//
// Each argument is length-prefixed so that ["ab", "c"] and ["a", "bc"]
// differ. The vector is hashed in the order given.
func Fingerprint(args []string) string {
	d := xxhash.New()
	var length [8]byte
	for _, arg := range args {
		binary.LittleEndian.PutUint64(length[:], uint64(len(arg)))
		_, _ = d.Write(length[:])
		_, _ = d.WriteString(arg)
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
