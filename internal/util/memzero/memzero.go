// Package memzero wipes secrets held in byte slices once they are no longer
// needed: derived store keys, passphrase copies and decrypted session blobs.
package memzero

import "runtime"

// Zero overwrites every given buffer with zeros. Nil and empty buffers are
// skipped.
func Zero(bufs ...[]byte) {
	for _, b := range bufs {
		if len(b) == 0 {
			continue
		}
		clear(b)
		runtime.KeepAlive(b)
	}
}
