package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

const (
	kvObject   = "flappy"
	kvBestProp = "best"
)

// KVBest keeps the best score in the platform's app data directory.
type KVBest struct {
	manager *gdata.Manager
}

// OpenKV opens the app data store for appName.
func OpenKV(appName string) (*KVBest, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open app data: %w", err)
	}
	return &KVBest{manager: m}, nil
}

// LoadBest returns the stored best score, or 0 if none was stored.
func (k *KVBest) LoadBest() (int, error) {
	if !k.manager.ObjectPropExists(kvObject, kvBestProp) {
		return 0, nil
	}
	data, err := k.manager.LoadObjectProp(kvObject, kvBestProp)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot load best score: %w", err)
	}
	best, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("storage: corrupt best score %q: %w", data, err)
	}
	return max(0, best), nil
}

// SaveBest stores score unless a higher one is already stored.
func (k *KVBest) SaveBest(score int) error {
	if cur, err := k.LoadBest(); err == nil && cur >= score {
		return nil
	}
	if err := k.manager.SaveObjectProp(kvObject, kvBestProp, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}
