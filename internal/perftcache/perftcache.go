// Package perftcache memoizes perft node counts in BadgerDB, keyed on the
// position's Zobrist hash and the depth being counted.
package perftcache

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/dgraph-io/badger/v4"
)

const appName = "chessplay"

// dataDir returns the platform-specific perft cache directory, creating it
// if needed:
//   - macOS:   ~/Library/Application Support/chessplay/perftcache/
//   - Windows: %APPDATA%/chessplay/perftcache/
//   - other:   $XDG_DATA_HOME/chessplay/perftcache/, falling back to
//     ~/.local/share/chessplay/perftcache/
func dataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dir := filepath.Join(baseDir, appName, "perftcache")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// Cache wraps a BadgerDB instance storing hash|depth -> node count.
type Cache struct {
	db *badger.DB
}

// Open opens (creating if needed) the perft cache database in the default
// platform data directory.
func Open() (*Cache, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens the perft cache database at an explicit directory, mainly
// useful for tests.
func OpenAt(dir string) (*Cache, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("perftcache: open %s: %w", dir, err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}
	return c.db.Close()
}

func key(hash uint64, depth int) []byte {
	k := make([]byte, 9)
	binary.LittleEndian.PutUint64(k, hash)
	k[8] = byte(depth)
	return k
}

// Get returns the cached node count for (hash, depth), if present.
func (c *Cache) Get(hash uint64, depth int) (nodes uint64, found bool, err error) {
	err = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(hash, depth))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return fmt.Errorf("perftcache: corrupt value for hash %x depth %d", hash, depth)
			}
			nodes = binary.LittleEndian.Uint64(val)
			return nil
		})
	})
	return nodes, found, err
}

// Put stores the node count for (hash, depth).
func (c *Cache) Put(hash uint64, depth int, nodes uint64) error {
	val := make([]byte, 8)
	binary.LittleEndian.PutUint64(val, nodes)
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(hash, depth), val)
	})
}
