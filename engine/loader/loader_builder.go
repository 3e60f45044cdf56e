package loader

// TextureLoaderOption is a functional option for configuring a TextureLoader.
type TextureLoaderOption func(*textureLoader)

// WithRoot sets the directory texture names are resolved against.
//
// Parameters:
//   - root: directory path
//
// Returns:
//   - TextureLoaderOption: option function to apply
func WithRoot(root string) TextureLoaderOption {
	return func(l *textureLoader) {
		l.root = root
	}
}

// WithWorkers sets the maximum number of concurrent decodes. Defaults to runtime.NumCPU()-1.
//
// Parameters:
//   - n: worker count (minimum 1)
//
// Returns:
//   - TextureLoaderOption: option function to apply
func WithWorkers(n int) TextureLoaderOption {
	return func(l *textureLoader) {
		l.workers = max(n, 1)
	}
}

// WithQueueSize sets how many decodes may wait before Load blocks.
//
// Parameters:
//   - n: queue capacity
//
// Returns:
//   - TextureLoaderOption: option function to apply
func WithQueueSize(n int) TextureLoaderOption {
	return func(l *textureLoader) {
		l.queueSize = max(n, 0)
	}
}
