package icat

import "sync"

var transformerPool = sync.Pool{
	New: func() any {
		return &transformer{}
	},
}

func acquireTransformer() *transformer {
	return transformerPool.Get().(*transformer)
}

func releaseTransformer(t *transformer) {
	if t == nil {
		return
	}
	t.clear()
	transformerPool.Put(t)
}
