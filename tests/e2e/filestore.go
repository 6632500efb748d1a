//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"io"
	"sync"

	"barangay-reservation/internal/usecase/commands"
)

// MemoryFileStore keeps uploads in memory and hands out predictable keys.
type MemoryFileStore struct {
	mu    sync.Mutex
	files map[string][]byte
	Fail  error
}

func (m *MemoryFileStore) Store(_ context.Context, file commands.FileUpload, category string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return "", m.Fail
	}
	body, err := io.ReadAll(file.Body)
	if err != nil {
		return "", err
	}
	if m.files == nil {
		m.files = map[string][]byte{}
	}
	key := fmt.Sprintf("%s/%d-%s", category, len(m.files)+1, file.Filename)
	m.files[key] = body
	return key, nil
}

func (m *MemoryFileStore) Get(key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.files[key]
	return b, ok
}

func (m *MemoryFileStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files = nil
	m.Fail = nil
}
