package model

import (
	"time"

	"github.com/secmon-lab/dockyard/pkg/domain/types"
)

// Repository is a registered GitHub repository that contains a Dockerfile. A record
// is created only after a positive scan, so HasDockerfile is always true for stored records.
type Repository struct {
	ID            types.RepositoryID `json:"id" firestore:"id"`
	OwnerName     string             `json:"name" firestore:"name"`
	RepoLink      string             `json:"repoLink" firestore:"repoLink"`
	HasDockerfile bool               `json:"hasDockerfile" firestore:"hasDockerfile"`
	CreatedAt     time.Time          `json:"createdAt" firestore:"createdAt"`
}

// RepositorySummary is the projection returned by listing endpoints
type RepositorySummary struct {
	OwnerName     string `json:"name"`
	RepoLink      string `json:"repoLink"`
	HasDockerfile bool   `json:"hasDockerfile"`
}

func (x *Repository) Summary() *RepositorySummary {
	return &RepositorySummary{
		OwnerName:     x.OwnerName,
		RepoLink:      x.RepoLink,
		HasDockerfile: x.HasDockerfile,
	}
}

// Summarize converts repositories to their list projection. It never returns nil so
// that an empty result is encoded as `[]`.
func Summarize(repos []*Repository) []*RepositorySummary {
	resp := make([]*RepositorySummary, 0, len(repos))
	for _, repo := range repos {
		resp = append(resp, repo.Summary())
	}
	return resp
}
