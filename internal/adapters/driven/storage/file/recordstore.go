package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/akashic-archives/cartographer/internal/core/domain"
	"github.com/akashic-archives/cartographer/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// RecordStore persists documents as files below a root directory.
type RecordStore struct {
	root string
}

// NewRecordStore creates a store rooted at root. The directory is created
// lazily on first write.
func NewRecordStore(root string) (*RecordStore, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("archive root: %w", domain.ErrInvalidInput)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving archive root: %w", err)
	}
	return &RecordStore{root: abs}, nil
}

// Root returns the absolute archive root.
func (s *RecordStore) Root() string {
	return s.root
}

// Path returns the file path of a document. Keys that resolve outside the
// archive root are rejected.
func (s *RecordStore) Path(key domain.DocumentKey) (string, error) {
	return s.within(key.Collection, key.Name+"."+key.Format)
}

func (s *RecordStore) within(elem ...string) (string, error) {
	path := filepath.Join(append([]string{s.root}, elem...)...)
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s escapes archive root: %w", filepath.Join(elem...), domain.ErrInvalidInput)
	}
	return path, nil
}

// Get reads a document from disk.
func (s *RecordStore) Get(ctx context.Context, key domain.DocumentKey) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.Path(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

// Put writes a document through a temp file and an atomic rename.
func (s *RecordStore) Put(ctx context.Context, key domain.DocumentKey, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	target, err := s.Path(key)
	if err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	tmp := filepath.Join(dir, "."+filepath.Base(target)+".tmp-"+uuid.NewString())
	if err := os.WriteFile(tmp, data, filePerm); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing %s: %w", target, err)
	}
	return nil
}

// List returns every document in a collection. A missing collection
// directory is an empty collection.
func (s *RecordStore) List(ctx context.Context, collection string) ([]domain.DocumentKey, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := s.within(collection)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []domain.DocumentKey{}, nil
		}
		return nil, fmt.Errorf("listing %s: %w", collection, err)
	}

	keys := make([]domain.DocumentKey, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if key, ok := keyFromName(collection, entry.Name()); ok {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Name != keys[j].Name {
			return keys[i].Name < keys[j].Name
		}
		return keys[i].Format < keys[j].Format
	})
	return keys, nil
}

// keyFromName parses "name.format". Hidden files (temp writes) are skipped.
func keyFromName(collection, base string) (domain.DocumentKey, bool) {
	if strings.HasPrefix(base, ".") {
		return domain.DocumentKey{}, false
	}
	ext := filepath.Ext(base)
	if len(ext) < 2 {
		return domain.DocumentKey{}, false
	}
	return domain.DocumentKey{
		Collection: collection,
		Name:       strings.TrimSuffix(base, ext),
		Format:     ext[1:],
	}, true
}
