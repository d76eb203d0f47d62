package handler

import (
	"bytes"
	"sync"
)

// Snapshot responses dominate the response mix and serialize to a few hundred
// bytes, so encoding buffers are pooled rather than allocated per request.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

func putBuffer(buf *bytes.Buffer) {
	buf.Reset()
	bufferPool.Put(buf)
}
