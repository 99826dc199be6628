package judge

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/google/uuid"
	"github.com/guregu/dynamo/v2"
)

// SubmissionRow represents the submission data structure.
type SubmissionRow struct {
	Uuid      string `dynamo:"uuid,hash"` // Primary key
	Token     string `dynamo:"token"`
	ProblemId string `dynamo:"problem_id"`
	TeamId    string `dynamo:"team_id"`
	LangId    int    `dynamo:"lang_id"`
	State     string `dynamo:"state"`
	Points    int    `dynamo:"points"`
	Code      string `dynamo:"code"`
	UnixTime  int64  `dynamo:"unix_timestamp"`
}

// DynamoDbSubmTable represents the DynamoDB table.
type DynamoDbSubmTable struct {
	ddbClient *dynamodb.Client
	tableName string
	submTable dynamo.Table
}

// NewDynamoDbSubmTable initializes a new DynamoDbSubmTable.
func NewDynamoDbSubmTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbSubmTable {
	ddb := &DynamoDbSubmTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	ddb.submTable = db.Table(ddb.tableName)

	return ddb
}

// Store implements submRepo.
func (ddb *DynamoDbSubmTable) Store(ctx context.Context, subm Submission) error {
	row := &SubmissionRow{
		Uuid:      subm.ID.String(),
		Token:     subm.Token,
		ProblemId: subm.ProblemID,
		TeamId:    subm.TeamID,
		LangId:    subm.LangID,
		State:     string(subm.State),
		Points:    subm.Points,
		Code:      subm.Code,
		UnixTime:  subm.CreatedAt.Unix(),
	}
	return ddb.submTable.Put(row).Run(ctx)
}

// Get implements submRepo.
func (ddb *DynamoDbSubmTable) Get(ctx context.Context, id uuid.UUID) (*Submission, error) {
	row := new(SubmissionRow)
	err := ddb.submTable.Get("uuid", id.String()).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rowToSubm(row)
}

// GetByToken implements submRepo.
func (ddb *DynamoDbSubmTable) GetByToken(ctx context.Context, token string) (*Submission, error) {
	var rows []SubmissionRow
	err := ddb.submTable.Scan().Filter("'token' = ?", token).All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rowToSubm(&rows[0])
}

// List implements submRepo.
func (ddb *DynamoDbSubmTable) List(ctx context.Context) ([]Submission, error) {
	var rows []SubmissionRow
	err := ddb.submTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	subms := make([]Submission, 0, len(rows))
	for i := range rows {
		subm, err := rowToSubm(&rows[i])
		if err != nil {
			return nil, err
		}
		subms = append(subms, *subm)
	}
	return subms, nil
}

// Clear implements submRepo.
func (ddb *DynamoDbSubmTable) Clear(ctx context.Context) error {
	var rows []SubmissionRow
	if err := ddb.submTable.Scan().All(ctx, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		if err := ddb.submTable.Delete("uuid", row.Uuid).Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func rowToSubm(row *SubmissionRow) (*Submission, error) {
	id, err := uuid.Parse(row.Uuid)
	if err != nil {
		return nil, err
	}
	return &Submission{
		ID:        id,
		Token:     row.Token,
		ProblemID: row.ProblemId,
		TeamID:    row.TeamId,
		LangID:    row.LangId,
		State:     State(row.State),
		Points:    row.Points,
		Code:      row.Code,
		CreatedAt: time.Unix(row.UnixTime, 0),
	}, nil
}
