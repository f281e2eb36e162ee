package endpoints

import (
	"io"
)

// Handle is an open endpoint. Like a proc file, the content is rendered
// by the first read and every following read returns io.EOF.
type Handle struct {
	endpoint Endpoint
	offset   int64
}

func (h *Handle) Read(p []byte) (int, error) {
	n, err := h.ReadAt(p, h.offset)
	h.offset += int64(n)
	return n, err
}

func (h *Handle) ReadAt(p []byte, off int64) (int, error) {
	if off != 0 {
		return 0, io.EOF
	}
	content := h.endpoint.Content()
	n := copy(p, content)
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (h *Handle) Write(p []byte) (int, error) {
	if err := h.endpoint.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (h *Handle) Close() error {
	return nil
}
