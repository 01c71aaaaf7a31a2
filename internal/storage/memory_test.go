package storage

import "testing"

func TestMemoryStorageContract(t *testing.T) {
	runStorageContract(t, func(t *testing.T) Storage {
		t.Helper()
		return NewMemoryStorage()
	})
}
