package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// maxDownloads bounds concurrent image downloads.
const maxDownloads = 6

// ImageCache provides disk + memory caching for card images.
type ImageCache struct {
	cacheDir string
	client   *http.Client
	logger   *slog.Logger

	mu     sync.RWMutex
	memory map[string]image.Image

	group singleflight.Group
	sem   *semaphore.Weighted
}

// NewImageCache creates a new image cache with the given disk directory.
func NewImageCache(cacheDir string, logger *slog.Logger) (*ImageCache, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ImageCache{
		cacheDir: cacheDir,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		memory:   make(map[string]image.Image),
		sem:      semaphore.NewWeighted(maxDownloads),
	}, nil
}

// Get returns a cached image if available, or nil.
func (ic *ImageCache) Get(url string) image.Image {
	ic.mu.RLock()
	defer ic.mu.RUnlock()
	return ic.memory[url]
}

// Load returns the image for url, downloading it on a miss. Concurrent
// loads of the same url share one download.
func (ic *ImageCache) Load(ctx context.Context, url string) (image.Image, error) {
	if img := ic.Get(url); img != nil {
		return img, nil
	}
	v, err, _ := ic.group.Do(url, func() (any, error) {
		if err := ic.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer ic.sem.Release(1)

		img, err := ic.loadImage(ctx, url)
		if err != nil {
			return nil, err
		}
		ic.mu.Lock()
		ic.memory[url] = img
		ic.mu.Unlock()
		return img, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

// LoadAsync starts loading an image in the background. The callback runs on
// a goroutine and only on success.
func (ic *ImageCache) LoadAsync(ctx context.Context, url string, callback func(image.Image)) {
	if img := ic.Get(url); img != nil {
		callback(img)
		return
	}
	go func() {
		img, err := ic.Load(ctx, url)
		if err != nil {
			ic.logger.Debug("image load failed", "url", url, "err", err)
			return
		}
		callback(img)
	}()
}

func (ic *ImageCache) loadImage(ctx context.Context, url string) (image.Image, error) {
	diskPath := ic.diskPath(url)

	// Try disk cache first
	if f, err := os.Open(diskPath); err == nil {
		img, _, err := image.Decode(f)
		f.Close()
		if err == nil {
			return img, nil
		}
		// Corrupt cache file, remove and re-download
		os.Remove(diskPath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := ic.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image download failed: %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(diskPath), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(diskPath)
	if err != nil {
		return nil, err
	}

	// Tee to disk while decoding
	tee := io.TeeReader(resp.Body, f)
	img, _, err := image.Decode(tee)
	f.Close()
	if err != nil {
		os.Remove(diskPath)
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}

	return img, nil
}

func (ic *ImageCache) diskPath(url string) string {
	h := sha256.Sum256([]byte(url))
	name := fmt.Sprintf("%x", h[:16])
	return filepath.Join(ic.cacheDir, name[:2], name)
}

// CacheDir returns the disk cache directory path.
func (ic *ImageCache) CacheDir() string {
	return ic.cacheDir
}

// Clear removes all cached images from memory.
func (ic *ImageCache) Clear() {
	ic.mu.Lock()
	ic.memory = make(map[string]image.Image)
	ic.mu.Unlock()
}

// ClearDisk removes all cached images from disk.
func (ic *ImageCache) ClearDisk() error {
	return os.RemoveAll(ic.cacheDir)
}
