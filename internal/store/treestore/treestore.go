// Package treestore is the key-addressed tree the user and client records
// live in. Paths are slash-separated strings, values are opaque JSON blobs.
package treestore

import "context"

type Store interface {
	// Get returns the value at path. found is false when the path is absent;
	// err is reserved for transport failures.
	Get(ctx context.Context, path string) (value []byte, found bool, err error)

	Set(ctx context.Context, path string, value []byte) error

	Delete(ctx context.Context, path string) error

	// List returns every value stored under prefix.
	List(ctx context.Context, prefix string) ([][]byte, error)
}
