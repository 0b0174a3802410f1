// Package storage defines the record port used to persist visitor state and
// the adapters that implement it.
package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Recorder stores opaque values under string keys. Every value is read and
// written as a whole.
type Recorder interface {
	// Get returns ErrNotFound when key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

type Type string

const (
	InMem Type = "in_mem"
	File  Type = "file"
	Redis Type = "redis"
	PG    Type = "pg"
)

func Types() []Type {
	return []Type{InMem, File, Redis, PG}
}

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
