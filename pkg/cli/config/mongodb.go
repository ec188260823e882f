package config

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/dockyard/pkg/domain/types"
	"github.com/secmon-lab/dockyard/pkg/repository/mongodb"
	"github.com/urfave/cli/v3"
)

const DefaultMongoDBConfigPath = "./config.json"

type MongoDB struct {
	uri        types.MongoDBURI
	configPath string
	database   string
	collection string
}

// mongoDBConfigFile is the JSON configuration file format. Only mongodbUri is read.
type mongoDBConfigFile struct {
	MongoDBURI string `json:"mongodbUri"`
}

func (x *MongoDB) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "mongodb-uri",
			Usage:       "MongoDB connection string. Overrides mongodbUri in the config file",
			Category:    "MongoDB",
			Destination: (*string)(&x.uri),
			Sources:     cli.EnvVars("DOCKYARD_MONGODB_URI", "MONGODB_URI"),
		},
		&cli.StringFlag{
			Name:        "mongodb-config",
			Usage:       "Path to JSON config file that has mongodbUri field (optional)",
			Category:    "MongoDB",
			Value:       DefaultMongoDBConfigPath,
			Destination: &x.configPath,
			Sources:     cli.EnvVars("DOCKYARD_MONGODB_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "mongodb-database",
			Usage:       "MongoDB database name",
			Category:    "MongoDB",
			Value:       mongodb.DefaultDatabase,
			Destination: &x.database,
			Sources:     cli.EnvVars("DOCKYARD_MONGODB_DATABASE"),
		},
		&cli.StringFlag{
			Name:        "mongodb-collection",
			Usage:       "MongoDB collection name",
			Category:    "MongoDB",
			Value:       mongodb.DefaultCollection,
			Destination: &x.collection,
			Sources:     cli.EnvVars("DOCKYARD_MONGODB_COLLECTION"),
		},
	}
}

// URI returns the connection string from flag or environment variable, then from the config file.
// Empty URI without error means MongoDB is not configured.
func (x *MongoDB) URI() (types.MongoDBURI, error) {
	if x.uri != "" {
		return x.uri, nil
	}
	if x.configPath == "" {
		return "", nil
	}

	raw, err := os.ReadFile(x.configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", goerr.Wrap(err, "failed to read MongoDB config file", goerr.V("path", x.configPath))
	}

	var cfg mongoDBConfigFile
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return "", goerr.Wrap(types.ErrInvalidOption, "failed to parse MongoDB config file",
			goerr.V("path", x.configPath),
			goerr.V("error", err.Error()),
		)
	}

	return types.MongoDBURI(cfg.MongoDBURI), nil
}

// NewStore connects to MongoDB. It returns nil without error if no URI is configured.
func (x *MongoDB) NewStore(ctx context.Context) (*mongodb.Store, error) {
	uri, err := x.URI()
	if err != nil {
		return nil, err
	}
	if uri == "" {
		return nil, nil
	}

	return mongodb.New(ctx, uri, x.database, x.collection)
}

func (x *MongoDB) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("URI", x.uri),
		slog.String("ConfigPath", x.configPath),
		slog.String("Database", x.database),
		slog.String("Collection", x.collection),
	)
}
