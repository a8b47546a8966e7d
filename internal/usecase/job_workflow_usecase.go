package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"clearlot/internal/domain/entities"
	"clearlot/internal/domain/projection"
	"clearlot/internal/domain/workflow"
	"clearlot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound               = errors.New("job not found")
	ErrInvalidJobID              = errors.New("invalid job id")
	ErrInvalidIntake             = errors.New("invalid intake: client name and property address are required")
	ErrInvalidEstimateInput      = errors.New("invalid estimate: recommended price must be positive")
	ErrInvalidReviewer           = errors.New("invalid reviewer")
	ErrInvalidCrew               = errors.New("invalid crew assignment")
	ErrInvalidScheduleDate       = errors.New("invalid schedule date")
	ErrMissingCancellationReason = errors.New("cancellation reason is required")
	ErrConcurrentUpdateExhausted = errors.New("job update kept conflicting, giving up")
)

// maxUpdateAttempts bounds the reload-and-reapply loop on version conflicts.
// The transform's precondition runs again on every attempt, so a loser whose
// precondition no longer holds fails with the typed domain error instead of
// silently proceeding.
const maxUpdateAttempts = 3

// IJobWorkflowUseCase exposes the job lifecycle operations: intake, the eight
// stage transitions (deposit and final invoice live on the settlement use
// case), cancellation, and the role-gated read views.

type IJobWorkflowUseCase interface {
	CreateJob(ctx context.Context, intake IntakeInput) (entities.Job, error)
	GetJob(ctx context.Context, id string) (entities.Job, error)
	GenerateEstimate(ctx context.Context, jobID string, estimate entities.InternalEstimate) (entities.Job, error)
	SubmitOpsReview(ctx context.Context, jobID string, input workflow.ReviewInput) (entities.Job, error)
	SendQuote(ctx context.Context, jobID string) (entities.Job, error)
	RecordClientResponse(ctx context.Context, jobID string, accepted bool, reason string) (entities.Job, error)
	ScheduleJob(ctx context.Context, jobID, crew string, date time.Time) (entities.Job, error)
	CompleteJob(ctx context.Context, jobID string) (entities.Job, error)
	CancelJob(ctx context.Context, jobID, reason, cancelledBy string) (entities.Job, error)
	CanCancel(ctx context.Context, jobID string) (workflow.CancelDecision, error)
	GetClientView(ctx context.Context, jobID string) (projection.ClientView, error)
	GetInternalView(ctx context.Context, jobID string) (projection.InternalView, error)
}

type IntakeInput struct {
	ClientName      string
	ClientEmail     string
	PropertyAddress string
}

type JobWorkflowUseCase struct {
	repo interfaces.IJobRepository
	now  func() time.Time
}

var _ IJobWorkflowUseCase = (*JobWorkflowUseCase)(nil)

func NewJobWorkflowUseCase(repo interfaces.IJobRepository) *JobWorkflowUseCase {
	return &JobWorkflowUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *JobWorkflowUseCase) CreateJob(ctx context.Context, intake IntakeInput) (entities.Job, error) {
	name := strings.TrimSpace(intake.ClientName)
	address := strings.TrimSpace(intake.PropertyAddress)
	if name == "" || address == "" {
		return entities.Job{}, ErrInvalidIntake
	}

	job := workflow.NewJob(uuid.NewString(), name, strings.TrimSpace(intake.ClientEmail), address, u.now())
	return u.repo.Create(ctx, job)
}

func (u *JobWorkflowUseCase) GetJob(ctx context.Context, id string) (entities.Job, error) {
	return u.load(ctx, id)
}

func (u *JobWorkflowUseCase) GenerateEstimate(ctx context.Context, jobID string, estimate entities.InternalEstimate) (entities.Job, error) {
	if estimate.SuggestedPriceRange.Recommended <= 0 {
		return entities.Job{}, ErrInvalidEstimateInput
	}
	return u.mutate(ctx, jobID, func(job entities.Job, now time.Time) (entities.Job, error) {
		return workflow.GenerateEstimate(job, estimate, now)
	})
}

func (u *JobWorkflowUseCase) SubmitOpsReview(ctx context.Context, jobID string, input workflow.ReviewInput) (entities.Job, error) {
	input.Reviewer = strings.TrimSpace(input.Reviewer)
	if input.Reviewer == "" {
		return entities.Job{}, ErrInvalidReviewer
	}
	return u.mutate(ctx, jobID, func(job entities.Job, now time.Time) (entities.Job, error) {
		return workflow.SubmitOpsReview(job, input, now)
	})
}

func (u *JobWorkflowUseCase) SendQuote(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, workflow.SendQuote)
}

func (u *JobWorkflowUseCase) RecordClientResponse(ctx context.Context, jobID string, accepted bool, reason string) (entities.Job, error) {
	return u.mutate(ctx, jobID, func(job entities.Job, now time.Time) (entities.Job, error) {
		return workflow.RecordClientResponse(job, accepted, reason, now)
	})
}

func (u *JobWorkflowUseCase) ScheduleJob(ctx context.Context, jobID, crew string, date time.Time) (entities.Job, error) {
	crew = strings.TrimSpace(crew)
	if crew == "" {
		return entities.Job{}, ErrInvalidCrew
	}
	if date.IsZero() {
		return entities.Job{}, ErrInvalidScheduleDate
	}
	return u.mutate(ctx, jobID, func(job entities.Job, now time.Time) (entities.Job, error) {
		return workflow.ScheduleJob(job, crew, date, now)
	})
}

func (u *JobWorkflowUseCase) CompleteJob(ctx context.Context, jobID string) (entities.Job, error) {
	return u.mutate(ctx, jobID, workflow.CompleteJob)
}

func (u *JobWorkflowUseCase) CancelJob(ctx context.Context, jobID, reason, cancelledBy string) (entities.Job, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entities.Job{}, ErrMissingCancellationReason
	}
	return u.mutate(ctx, jobID, func(job entities.Job, now time.Time) (entities.Job, error) {
		return workflow.Cancel(job, reason, strings.TrimSpace(cancelledBy), now)
	})
}

func (u *JobWorkflowUseCase) CanCancel(ctx context.Context, jobID string) (workflow.CancelDecision, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return workflow.CancelDecision{}, err
	}
	return workflow.CanCancel(job), nil
}

func (u *JobWorkflowUseCase) GetClientView(ctx context.Context, jobID string) (projection.ClientView, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return projection.ClientView{}, err
	}
	return projection.ForClient(job), nil
}

func (u *JobWorkflowUseCase) GetInternalView(ctx context.Context, jobID string) (projection.InternalView, error) {
	job, err := u.load(ctx, jobID)
	if err != nil {
		return projection.InternalView{}, err
	}
	return projection.ForStaff(job), nil
}

func (u *JobWorkflowUseCase) load(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	job, err := u.repo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if job.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return job, nil
}

func (u *JobWorkflowUseCase) mutate(ctx context.Context, jobID string, apply func(entities.Job, time.Time) (entities.Job, error)) (entities.Job, error) {
	return mutateJob(ctx, u.repo, u.now, jobID, apply)
}

// mutateJob runs one optimistic read-modify-write cycle: load the snapshot,
// apply the pure transform, save conditionally on the version read. On a
// version conflict it reloads and re-applies, so the precondition is always
// re-checked against the latest state before anything is written.
func mutateJob(ctx context.Context, repo interfaces.IJobRepository, now func() time.Time, jobID string, apply func(entities.Job, time.Time) (entities.Job, error)) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		job, err := repo.GetByID(ctx, jobID)
		if err != nil {
			return entities.Job{}, err
		}
		if job.ID == "" {
			return entities.Job{}, ErrJobNotFound
		}

		next, err := apply(job, now())
		if err != nil {
			return entities.Job{}, err
		}

		saved, err := repo.Update(ctx, next, job.Version)
		if errors.Is(err, interfaces.ErrVersionConflict) {
			continue
		}
		if err != nil {
			return entities.Job{}, err
		}
		return saved, nil
	}
	return entities.Job{}, ErrConcurrentUpdateExhausted
}
