// internal/database/firebase.go
package database

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/ChinmayIngle26/College-hub-sub000/internal/config"
)

// NewFirebaseApp initializes the Admin SDK with server credentials.
func NewFirebaseApp(ctx context.Context, cfg config.FirebaseConfig) (*firebase.App, error) {
	var opts []option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		logrus.WithField("path", cfg.CredentialsFile).Info("Using firebase credentials file")
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	case cfg.CredentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	default:
		logrus.Warn("No explicit firebase credentials found, falling back to application default credentials")
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}
	return app, nil
}
