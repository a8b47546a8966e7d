package interfaces

import (
	"context"
	"errors"

	"clearlot/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the job's stored version no
// longer matches the expected one, i.e. another writer won the race.
var ErrVersionConflict = errors.New("job version conflict")

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/mock_job_repository.go

// IJobRepository abstracts DynamoDB persistence for the Job aggregate.
//
// Update is a compare-and-swap: it persists the job only if the stored
// version equals expectedVersion, bumping the version on success. All stage
// transitions and the cancellation decision go through it, which gives the
// single-writer-per-job semantics the workflow depends on.

type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, job entities.Job, expectedVersion int64) (entities.Job, error)
}
