// internal/smc/fake_test.go
package smc

import (
	"errors"
	"io"
)

// fakePort is a scripted transport: reads drain replies, writes are recorded.
type fakePort struct {
	replies  []byte
	written  []byte
	writeErr error
	shortBy  int // bytes to drop from every write
	readErr  error
	closes   int
}

func (f *fakePort) Write(p []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	n := len(p) - f.shortBy
	if n < 0 {
		n = 0
	}
	f.written = append(f.written, p[:n]...)
	return n, nil
}

func (f *fakePort) Read(p []byte) (int, error) {
	if f.readErr != nil {
		return 0, f.readErr
	}
	if len(f.replies) == 0 {
		return 0, io.EOF
	}
	// one byte at a time, like a slow line
	p[0] = f.replies[0]
	f.replies = f.replies[1:]
	return 1, nil
}

func (f *fakePort) Close() error {
	f.closes++
	if f.closes > 1 {
		return errors.New("fake: closed twice")
	}
	return nil
}

func openerFor(ports map[string]*fakePort) Opener {
	return func(path string) (io.ReadWriteCloser, error) {
		p, ok := ports[path]
		if !ok {
			return nil, errors.New("no such device")
		}
		return p, nil
	}
}
