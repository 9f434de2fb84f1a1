package dataset

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/shopsight/inventory-ai/internal/drive"
	"github.com/shopsight/inventory-ai/internal/storage"
	"golang.org/x/sync/semaphore"
)

const maxConcurrentDownloads = 4

func isDatasetFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// FetchFromObjectStorage downloads every CSV/XLSX object under prefix into
// destDir. Downloads run concurrently, bounded by a weighted semaphore.
func FetchFromObjectStorage(ctx context.Context, client storage.ObjectStorage, prefix, destDir string) ([]string, error) {
	objects, err := client.ListObjects(ctx, strings.TrimSpace(prefix))
	if err != nil {
		return nil, fmt.Errorf("failed to list objects for prefix %s: %w", prefix, err)
	}

	var keys []string
	for _, obj := range objects {
		if isDatasetFile(obj.Key) {
			keys = append(keys, obj.Key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("no dataset files found for prefix %s", prefix)
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to ensure download dir %s: %w", destDir, err)
	}

	sem := semaphore.NewWeighted(maxConcurrentDownloads)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	localPaths := make([]string, len(keys))
	for i, key := range keys {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("could not acquire semaphore: %w", err)
		}

		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			defer sem.Release(1)

			localPath := filepath.Join(destDir, objectRelativePath(prefix, key))
			if err := client.DownloadObject(ctx, key, localPath); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}

			log.Debug().Str("key", key).Str("path", localPath).Msg("downloaded dataset object")
			localPaths[i] = localPath
		}(i, key)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Strings(localPaths)
	return localPaths, nil
}

// FetchFromDrive downloads every CSV/XLSX file in a Drive folder path into
// destDir.
func FetchFromDrive(svc *drive.Service, folderPath, destDir string) ([]string, error) {
	folderID, err := svc.FindFolderByPath(folderPath)
	if err != nil {
		return nil, err
	}

	files, err := svc.ListFiles(folderID)
	if err != nil {
		return nil, err
	}

	var localPaths []string
	for _, f := range files {
		if !isDatasetFile(f.Name) {
			continue
		}

		localPath := filepath.Join(destDir, f.Name)
		if err := svc.DownloadFile(f.ID, localPath); err != nil {
			return nil, err
		}
		localPaths = append(localPaths, localPath)
	}

	if len(localPaths) == 0 {
		return nil, fmt.Errorf("no dataset files found in Drive folder %s", folderPath)
	}

	sort.Strings(localPaths)
	return localPaths, nil
}

func objectRelativePath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	prefixTrimmed := strings.TrimSuffix(strings.TrimSpace(prefix), "/")
	rel := strings.TrimPrefix(key, prefixTrimmed+"/")
	if rel == "" {
		return filepath.Base(key)
	}
	return rel
}
