package repository

import (
	"context"
	"errors"
	"strconv"

	"clearlot/internal/domain/entities"
	"clearlot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultJobsTableName = "jobs"

type priceRangeItem struct {
	Min         float64 `dynamodbav:"min"`
	Max         float64 `dynamodbav:"max"`
	Recommended float64 `dynamodbav:"recommended"`
}

type internalEstimateItem struct {
	VanLoads            int            `dynamodbav:"van_loads"`
	RiskFlags           []string       `dynamodbav:"risk_flags,omitempty"`
	SuggestedPriceRange priceRangeItem `dynamodbav:"suggested_price_range"`
	Confidence          float64        `dynamodbav:"confidence"`
	AnalysisNotes       string         `dynamodbav:"analysis_notes,omitempty"`
	GeneratedAt         string         `dynamodbav:"generated_at"`
}

type clientResponseItem struct {
	Accepted        bool   `dynamodbav:"accepted"`
	RespondedAt     string `dynamodbav:"responded_at"`
	RejectionReason string `dynamodbav:"rejection_reason,omitempty"`
}

type clientQuoteItem struct {
	FixedPrice         float64             `dynamodbav:"fixed_price"`
	DepositAmount      float64             `dynamodbav:"deposit_amount"`
	ScopeOfWork        []string            `dynamodbav:"scope_of_work,omitempty"`
	CompletionTimeline string              `dynamodbav:"completion_timeline"`
	CancellationTerms  string              `dynamodbav:"cancellation_terms"`
	ValidUntil         string              `dynamodbav:"valid_until,omitempty"`
	SentAt             string              `dynamodbav:"sent_at,omitempty"`
	ClientResponse     *clientResponseItem `dynamodbav:"client_response,omitempty"`
}

type operationsReviewItem struct {
	Reviewer      string          `dynamodbav:"reviewer"`
	ReviewedAt    string          `dynamodbav:"reviewed_at"`
	Approved      bool            `dynamodbav:"approved"`
	FinalPrice    float64         `dynamodbav:"final_price"`
	RiskBuffer    float64         `dynamodbav:"risk_buffer"`
	InternalNotes string          `dynamodbav:"internal_notes,omitempty"`
	QuoteDraft    clientQuoteItem `dynamodbav:"quote_draft"`
}

type jobItem struct {
	ID              string `dynamodbav:"id"`
	ClientName      string `dynamodbav:"client_name"`
	ClientEmail     string `dynamodbav:"client_email,omitempty"`
	PropertyAddress string `dynamodbav:"property_address"`

	CurrentStage int    `dynamodbav:"current_stage"`
	Status       string `dynamodbav:"status"`

	InternalEstimate *internalEstimateItem `dynamodbav:"internal_estimate,omitempty"`
	OperationsReview *operationsReviewItem `dynamodbav:"operations_review,omitempty"`
	ClientQuote      *clientQuoteItem      `dynamodbav:"client_quote,omitempty"`

	DepositPaid   bool   `dynamodbav:"deposit_paid"`
	DepositPaidAt string `dynamodbav:"deposit_paid_at,omitempty"`

	Scheduled     bool   `dynamodbav:"scheduled"`
	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`
	CrewAssigned  string `dynamodbav:"crew_assigned,omitempty"`

	WorkCompleted bool   `dynamodbav:"work_completed"`
	CompletedAt   string `dynamodbav:"completed_at,omitempty"`

	Verified      bool `dynamodbav:"verified"`
	FinalInvoiced bool `dynamodbav:"final_invoiced"`

	CancellationReason string  `dynamodbav:"cancellation_reason,omitempty"`
	CancelledBy        string  `dynamodbav:"cancelled_by,omitempty"`
	CancelledAt        string  `dynamodbav:"cancelled_at,omitempty"`
	RefundStatus       string  `dynamodbav:"refund_status,omitempty"`
	RefundAmount       float64 `dynamodbav:"refund_amount,omitempty"`
	RefundedAt         string  `dynamodbav:"refunded_at,omitempty"`

	Version   int64  `dynamodbav:"version"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// JobDynamoRepository persists the Job aggregate in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - version (number) attribute on every item
//
// Update is conditional on the stored version matching the version the caller
// read, which implements the per-job compare-and-swap the workflow relies on.

type JobDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IJobRepository = (*JobDynamoRepository)(nil)

func NewJobDynamoRepository(ddb *dynamodb.Client) *JobDynamoRepository {
	return &JobDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("JOBS_TABLE", defaultJobsTableName),
	}
}

func (r *JobDynamoRepository) Create(ctx context.Context, job entities.Job) (entities.Job, error) {
	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Job{}, err
	}
	return job, nil
}

func (r *JobDynamoRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Job{}, err
	}
	if len(out.Item) == 0 {
		return entities.Job{}, nil
	}

	var it jobItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Job{}, err
	}
	return fromJobItem(it), nil
}

// Update writes the whole aggregate conditionally on the stored version. A
// missing item also fails the condition, so Update never creates jobs.
func (r *JobDynamoRepository) Update(ctx context.Context, job entities.Job, expectedVersion int64) (entities.Job, error) {
	job.Version = expectedVersion + 1

	av, err := attributevalue.MarshalMap(toJobItem(job))
	if err != nil {
		return entities.Job{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("#version = :expected"),
		ExpressionAttributeNames: map[string]string{
			"#version": "version",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Job{}, interfaces.ErrVersionConflict
		}
		return entities.Job{}, err
	}
	return job, nil
}

func toJobItem(job entities.Job) jobItem {
	it := jobItem{
		ID:              job.ID,
		ClientName:      job.ClientName,
		ClientEmail:     job.ClientEmail,
		PropertyAddress: job.PropertyAddress,

		CurrentStage: int(job.CurrentStage),
		Status:       string(job.Status),

		DepositPaid:   job.DepositPaid,
		DepositPaidAt: timePtrToString(job.DepositPaidAt),

		Scheduled:     job.Scheduled,
		ScheduledDate: timePtrToString(job.ScheduledDate),
		CrewAssigned:  job.CrewAssigned,

		WorkCompleted: job.WorkCompleted,
		CompletedAt:   timePtrToString(job.CompletedAt),

		Verified:      job.Verified,
		FinalInvoiced: job.FinalInvoiced,

		CancellationReason: job.CancellationReason,
		CancelledBy:        job.CancelledBy,
		CancelledAt:        timePtrToString(job.CancelledAt),
		RefundStatus:       string(job.RefundStatus),
		RefundAmount:       job.RefundAmount,
		RefundedAt:         timePtrToString(job.RefundedAt),

		Version:   job.Version,
		CreatedAt: timeToString(job.CreatedAt),
		UpdatedAt: timeToString(job.UpdatedAt),
	}

	if e := job.InternalEstimate; e != nil {
		flags := make([]string, 0, len(e.RiskFlags))
		for _, f := range e.RiskFlags {
			flags = append(flags, string(f))
		}
		it.InternalEstimate = &internalEstimateItem{
			VanLoads:  e.VanLoads,
			RiskFlags: flags,
			SuggestedPriceRange: priceRangeItem{
				Min:         e.SuggestedPriceRange.Min,
				Max:         e.SuggestedPriceRange.Max,
				Recommended: e.SuggestedPriceRange.Recommended,
			},
			Confidence:    e.Confidence,
			AnalysisNotes: e.AnalysisNotes,
			GeneratedAt:   timeToString(e.GeneratedAt),
		}
	}
	if rv := job.OperationsReview; rv != nil {
		it.OperationsReview = &operationsReviewItem{
			Reviewer:      rv.Reviewer,
			ReviewedAt:    timeToString(rv.ReviewedAt),
			Approved:      rv.Approved,
			FinalPrice:    rv.FinalPrice,
			RiskBuffer:    rv.RiskBuffer,
			InternalNotes: rv.InternalNotes,
			QuoteDraft:    toClientQuoteItem(rv.QuoteDraft),
		}
	}
	if q := job.ClientQuote; q != nil {
		quote := toClientQuoteItem(*q)
		it.ClientQuote = &quote
	}
	return it
}

func fromJobItem(it jobItem) entities.Job {
	job := entities.Job{
		ID:              it.ID,
		ClientName:      it.ClientName,
		ClientEmail:     it.ClientEmail,
		PropertyAddress: it.PropertyAddress,

		CurrentStage: entities.Stage(it.CurrentStage),
		Status:       entities.JobStatus(it.Status),

		DepositPaid:   it.DepositPaid,
		DepositPaidAt: stringToTimePtr(it.DepositPaidAt),

		Scheduled:     it.Scheduled,
		ScheduledDate: stringToTimePtr(it.ScheduledDate),
		CrewAssigned:  it.CrewAssigned,

		WorkCompleted: it.WorkCompleted,
		CompletedAt:   stringToTimePtr(it.CompletedAt),

		Verified:      it.Verified,
		FinalInvoiced: it.FinalInvoiced,

		CancellationReason: it.CancellationReason,
		CancelledBy:        it.CancelledBy,
		CancelledAt:        stringToTimePtr(it.CancelledAt),
		RefundStatus:       entities.RefundStatus(it.RefundStatus),
		RefundAmount:       it.RefundAmount,
		RefundedAt:         stringToTimePtr(it.RefundedAt),

		Version:   it.Version,
		CreatedAt: stringToTime(it.CreatedAt),
		UpdatedAt: stringToTime(it.UpdatedAt),
	}

	if e := it.InternalEstimate; e != nil {
		flags := make([]entities.RiskFlag, 0, len(e.RiskFlags))
		for _, f := range e.RiskFlags {
			flags = append(flags, entities.RiskFlag(f))
		}
		job.InternalEstimate = &entities.InternalEstimate{
			VanLoads:  e.VanLoads,
			RiskFlags: flags,
			SuggestedPriceRange: entities.PriceRange{
				Min:         e.SuggestedPriceRange.Min,
				Max:         e.SuggestedPriceRange.Max,
				Recommended: e.SuggestedPriceRange.Recommended,
			},
			Confidence:    e.Confidence,
			AnalysisNotes: e.AnalysisNotes,
			GeneratedAt:   stringToTime(e.GeneratedAt),
		}
	}
	if rv := it.OperationsReview; rv != nil {
		job.OperationsReview = &entities.OperationsReview{
			Reviewer:      rv.Reviewer,
			ReviewedAt:    stringToTime(rv.ReviewedAt),
			Approved:      rv.Approved,
			FinalPrice:    rv.FinalPrice,
			RiskBuffer:    rv.RiskBuffer,
			InternalNotes: rv.InternalNotes,
			QuoteDraft:    fromClientQuoteItem(rv.QuoteDraft),
		}
	}
	if q := it.ClientQuote; q != nil {
		quote := fromClientQuoteItem(*q)
		job.ClientQuote = &quote
	}
	return job
}

func toClientQuoteItem(q entities.ClientQuote) clientQuoteItem {
	it := clientQuoteItem{
		FixedPrice:         q.FixedPrice,
		DepositAmount:      q.DepositAmount,
		ScopeOfWork:        q.ScopeOfWork,
		CompletionTimeline: q.CompletionTimeline,
		CancellationTerms:  q.CancellationTerms,
		ValidUntil:         timeToString(q.ValidUntil),
		SentAt:             timeToString(q.SentAt),
	}
	if r := q.ClientResponse; r != nil {
		it.ClientResponse = &clientResponseItem{
			Accepted:        r.Accepted,
			RespondedAt:     timeToString(r.RespondedAt),
			RejectionReason: r.RejectionReason,
		}
	}
	return it
}

func fromClientQuoteItem(it clientQuoteItem) entities.ClientQuote {
	q := entities.ClientQuote{
		FixedPrice:         it.FixedPrice,
		DepositAmount:      it.DepositAmount,
		ScopeOfWork:        it.ScopeOfWork,
		CompletionTimeline: it.CompletionTimeline,
		CancellationTerms:  it.CancellationTerms,
		ValidUntil:         stringToTime(it.ValidUntil),
		SentAt:             stringToTime(it.SentAt),
	}
	if r := it.ClientResponse; r != nil {
		q.ClientResponse = &entities.ClientResponse{
			Accepted:        r.Accepted,
			RespondedAt:     stringToTime(r.RespondedAt),
			RejectionReason: r.RejectionReason,
		}
	}
	return q
}
