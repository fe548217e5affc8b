package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical recipe response without growing
const initialBufferSize = 1024

// bufferPool recycles the buffers JSON responses are encoded into
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
