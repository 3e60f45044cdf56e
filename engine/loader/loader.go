package loader

import (
	"log"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orrery/common"
)

// TextureLoader decodes image files into common.Textures in the background.
// Load returns immediately with a pending texture; a worker pool reads and decodes
// the file and flips the texture to ready (or failed). Results are cached by name,
// so asking for the same texture twice returns the same instance.
type TextureLoader interface {
	// Load returns the texture for the given file name, queuing a decode the first time.
	// The name is resolved against the loader root.
	//
	// Parameters:
	//   - name: file name relative to the root directory
	//
	// Returns:
	//   - *common.Texture: the cached or newly queued texture
	Load(name string) *common.Texture

	// LoadData queues a decode of already-read encoded bytes under the given name.
	//
	// Parameters:
	//   - name: cache key
	//   - data: PNG or JPEG bytes
	//
	// Returns:
	//   - *common.Texture: the cached or newly queued texture
	LoadData(name string, data []byte) *common.Texture

	// Get returns a cached texture or nil.
	//
	// Parameters:
	//   - name: cache key
	//
	// Returns:
	//   - *common.Texture: the texture or nil
	Get(name string) *common.Texture

	// Pending returns how many decodes have been queued but not finished.
	//
	// Returns:
	//   - int: outstanding decode count
	Pending() int

	// Wait blocks until every queued decode has finished.
	Wait()

	// Close waits for outstanding decodes and stops the worker pool.
	Close()
}

type textureLoader struct {
	mu *sync.Mutex
	wg sync.WaitGroup

	root      string
	workers   int
	queueSize int

	pool    worker.DynamicWorkerPool
	cache   map[string]*common.Texture
	nextID  int
	pending atomic.Int64
	closed  bool
}

var _ TextureLoader = &textureLoader{}

// NewTextureLoader creates a TextureLoader backed by a worker pool.
//
// Parameters:
//   - options: functional options to configure the loader
//
// Returns:
//   - TextureLoader: the newly created loader
func NewTextureLoader(options ...TextureLoaderOption) TextureLoader {
	l := &textureLoader{
		mu:        &sync.Mutex{},
		workers:   max(runtime.NumCPU()-1, 1),
		queueSize: 32,
		cache:     make(map[string]*common.Texture),
	}
	for _, option := range options {
		option(l)
	}
	l.pool = worker.NewDynamicWorkerPool(l.workers, l.queueSize, 5*time.Second)
	return l
}

func (l *textureLoader) Load(name string) *common.Texture {
	path := name
	if l.root != "" && !filepath.IsAbs(name) {
		path = filepath.Join(l.root, name)
	}
	return l.enqueue(common.NewTexture(name, path))
}

func (l *textureLoader) LoadData(name string, data []byte) *common.Texture {
	tex := common.NewTexture(name, "")
	tex.Data = data
	return l.enqueue(tex)
}

func (l *textureLoader) Get(name string) *common.Texture {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cache[name]
}

func (l *textureLoader) Pending() int {
	return int(l.pending.Load())
}

func (l *textureLoader) Wait() {
	l.wg.Wait()
}

func (l *textureLoader) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.mu.Unlock()

	l.wg.Wait()
	l.pool.Stop()
}

// enqueue caches tex under its name and submits the decode, unless the name is already cached.
func (l *textureLoader) enqueue(tex *common.Texture) *common.Texture {
	l.mu.Lock()
	if cached, ok := l.cache[tex.Name]; ok {
		l.mu.Unlock()
		return cached
	}
	l.cache[tex.Name] = tex
	if l.closed {
		l.mu.Unlock()
		log.Printf("[Loader] loader closed, %s left untextured", tex.Name)
		return tex
	}
	id := l.nextID
	l.nextID++
	l.wg.Add(1)
	l.pending.Add(1)
	l.mu.Unlock()

	l.pool.SubmitTask(worker.Task{
		ID:      id,
		Payload: tex.Name,
		Do: func() (any, error) {
			defer l.wg.Done()
			defer l.pending.Add(-1)

			if err := tex.Decode(); err != nil {
				log.Printf("[Loader] warning: %v", err)
				return nil, err
			}
			return tex, nil
		},
	})
	return tex
}
