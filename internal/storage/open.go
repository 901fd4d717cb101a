package storage

import (
	"context"
	"fmt"
)

// Open returns the backend selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		store *SQLStore
		err   error
	)
	switch cfg.Driver {
	case DriverSQLite:
		store, err = OpenSQLite(ctx, cfg.Path)
	case DriverMySQL:
		store, err = OpenMySQL(ctx, cfg)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}
	// Avoid handing back a typed nil inside the interface.
	if err != nil {
		return nil, err
	}
	return store, nil
}
