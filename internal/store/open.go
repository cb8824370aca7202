package store

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
	"github.com/ChinmayIngle26/College-hub-sub000/internal/database"
)

// Open builds the configured backend. The firebase app is only used by the
// firestore backend and may be nil otherwise.
func Open(ctx context.Context, cfg *config.Config, app *firebase.App) (Store, error) {
	switch cfg.Store.Backend {
	case "sql":
		db, err := database.Initialize(cfg.Database)
		if err != nil {
			return nil, err
		}
		return NewGormStore(db), nil
	case "firestore":
		if app == nil {
			return nil, fmt.Errorf("firestore backend requires a firebase app")
		}
		client, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize firestore: %w", err)
		}
		return NewFirestoreStore(client), nil
	default:
		return nil, fmt.Errorf("unsupported store backend %q", cfg.Store.Backend)
	}
}

// Migrate runs schema migrations when the backend is SQL; Firestore is schemaless.
func Migrate(s Store) error {
	gs, ok := s.(*GormStore)
	if !ok {
		return nil
	}
	return database.RunMigrations(gs.DB())
}
