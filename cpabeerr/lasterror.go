package cpabeerr

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// The original C library exposed bswabe_error()/bswabe_last_error() backed
// by a thread_local. Go has no equivalent of a thread_local tied to an OS
// thread, and goroutines are not threads, but callers porting code from the
// C API still expect "the error the last call on this thread produced" to
// be recoverable without threading a return value through. goroutineID
// recovers a per-goroutine key from the runtime stack trace header
// ("goroutine 123 [running]:"), and last mirrors goroutine-scoped state
// behind it.
var last = struct {
	mu sync.Mutex
	m  map[int64]error
}{m: make(map[int64]error)}

func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	const prefix = "goroutine "
	if !bytes.HasPrefix(b, []byte(prefix)) {
		return 0
	}
	b = b[len(prefix):]
	i := bytes.IndexByte(b, ' ')
	if i < 0 {
		return 0
	}
	id, err := strconv.ParseInt(string(b[:i]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// SetLast records err as the calling goroutine's last error for later
// retrieval via LastError. cpabe.Encrypt (policy parse failure) and
// cpabe.Decrypt (policy not satisfied) call this on those recoverable
// failure paths before returning the same error normally; other failures
// are only returned. Passing nil clears it.
func SetLast(err error) {
	id := goroutineID()
	last.mu.Lock()
	defer last.mu.Unlock()
	if err == nil {
		delete(last.m, id)
		return
	}
	last.m[id] = err
}

// LastError returns the last error recorded by SetLast on the calling
// goroutine, or nil if none is set. It exists for callers migrating from
// the original library's last_error() API; new code should just check the
// error returned from the call it made.
func LastError() error {
	id := goroutineID()
	last.mu.Lock()
	defer last.mu.Unlock()
	return last.m[id]
}
