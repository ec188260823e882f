package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RepositoryID string
	RequestID    string

	// MongoDBURI may embed credentials, so it is never printed as is.
	MongoDBURI string
)

func NewRepositoryID() RepositoryID {
	return RepositoryID(uuid.NewString())
}

func (x RepositoryID) String() string {
	return string(x)
}

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func (x RequestID) String() string {
	return string(x)
}

func (x MongoDBURI) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x MongoDBURI) String() string {
	return "***********"
}
