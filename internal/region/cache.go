package region

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"
)

// CanvasCache holds decoded canvas images so repeated compositing calls for
// the same canvas skip disk I/O.
//
// Entries come from two places: Load decodes a file and caches it under its
// path, and Store registers an in-memory canvas (e.g. a BlankCanvas) under a
// caller-chosen key. Safe for concurrent use.
//
// Entries stay resident until evicted; long-running servers handling many
// canvases should Evict or Clear between documents.
type CanvasCache struct {
	mu       sync.RWMutex
	canvases map[string]image.Image
}

// NewCanvasCache creates an empty canvas cache.
func NewCanvasCache() *CanvasCache {
	return &CanvasCache{
		canvases: make(map[string]image.Image),
	}
}

// Load returns the canvas cached under path, decoding it from disk on the
// first call. PNG, JPEG, and GIF are supported. The path string is the cache
// key as-is, so relative and absolute spellings of the same file cache
// separately.
func (c *CanvasCache) Load(path string) (image.Image, error) {
	c.mu.RLock()
	if img, ok := c.canvases[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open canvas: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode canvas: %w", err)
	}

	c.mu.Lock()
	c.canvases[path] = img
	c.mu.Unlock()

	return img, nil
}

// Store registers an in-memory canvas under key, replacing any existing
// entry.
func (c *CanvasCache) Store(key string, img image.Image) {
	c.mu.Lock()
	c.canvases[key] = img
	c.mu.Unlock()
}

// Evict removes the entry for key, if present.
func (c *CanvasCache) Evict(key string) {
	c.mu.Lock()
	delete(c.canvases, key)
	c.mu.Unlock()
}

// Clear drops every cached canvas.
func (c *CanvasCache) Clear() {
	c.mu.Lock()
	c.canvases = make(map[string]image.Image)
	c.mu.Unlock()
}

// Dimensions returns the pixel size of the canvas cached under path, loading
// it first if necessary.
func (c *CanvasCache) Dimensions(path string) (width, height int, err error) {
	img, err := c.Load(path)
	if err != nil {
		return 0, 0, err
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
