package problem

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// ProblemRow represents the problem data structure.
type ProblemRow struct {
	Id         string `dynamo:"id,hash"` // Primary key
	Generation int64  `dynamo:"generation"`

	Name      string `dynamo:"name"`
	MaxPoints int    `dynamo:"max_points"`

	InputText        string `dynamo:"input_text"`
	OutputText       string `dynamo:"output_text"`
	InstructionsText string `dynamo:"instructions_text"`

	InputFileURL        string `dynamo:"input_file_url"`
	OutputFileURL       string `dynamo:"output_file_url"`
	InstructionsFileURL string `dynamo:"instructions_file_url"`
	WindowsFileURL      string `dynamo:"windows_file_url"`
	ObjectFileURL       string `dynamo:"object_file_url"`
	MacFileURL          string `dynamo:"mac_file_url"`

	Multiplier   int    `dynamo:"multiplier"`
	SampleInput  string `dynamo:"sample_input"`
	SampleOutput string `dynamo:"sample_output"`
}

// DynamoDbProblemTable represents the DynamoDB table.
type DynamoDbProblemTable struct {
	ddbClient    *dynamodb.Client
	tableName    string
	problemTable dynamo.Table
}

// NewDynamoDbProblemTable initializes a new DynamoDbProblemTable.
func NewDynamoDbProblemTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbProblemTable {
	ddb := &DynamoDbProblemTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	ddb.problemTable = db.Table(ddb.tableName)

	return ddb
}

// Get implements Repo.
func (ddb *DynamoDbProblemTable) Get(ctx context.Context, id string) (*Problem, error) {
	row := new(ProblemRow)
	err := ddb.problemTable.Get("id", id).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	p := rowToProblem(row)
	return &p, nil
}

// List implements Repo.
func (ddb *DynamoDbProblemTable) List(ctx context.Context) ([]Problem, error) {
	var rows []ProblemRow
	err := ddb.problemTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	problems := make([]Problem, 0, len(rows))
	for i := range rows {
		problems = append(problems, rowToProblem(&rows[i]))
	}
	return problems, nil
}

// ReplaceAll implements Repo. DynamoDB has no multi-item swap, so
// the new generation is written first and superseded rows are deleted
// after; a concurrent reader sees a union of generations, never an
// empty table.
func (ddb *DynamoDbProblemTable) ReplaceAll(ctx context.Context, problems []Problem) error {
	generation := time.Now().UnixNano()
	keep := make(map[string]struct{}, len(problems))
	for i := range problems {
		row := problemToRow(&problems[i], generation)
		if err := ddb.problemTable.Put(row).Run(ctx); err != nil {
			return err
		}
		keep[row.Id] = struct{}{}
	}

	var rows []ProblemRow
	if err := ddb.problemTable.Scan().All(ctx, &rows); err != nil {
		return err
	}
	for i := range rows {
		if _, ok := keep[rows[i].Id]; ok {
			continue
		}
		if err := ddb.problemTable.Delete("id", rows[i].Id).Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

func rowToProblem(row *ProblemRow) Problem {
	return Problem{
		ID:                  row.Id,
		Name:                row.Name,
		MaxPoints:           row.MaxPoints,
		InputText:           row.InputText,
		OutputText:          row.OutputText,
		InstructionsText:    row.InstructionsText,
		InputFileURL:        row.InputFileURL,
		OutputFileURL:       row.OutputFileURL,
		InstructionsFileURL: row.InstructionsFileURL,
		WindowsFileURL:      row.WindowsFileURL,
		ObjectFileURL:       row.ObjectFileURL,
		MacFileURL:          row.MacFileURL,
		Multiplier:          row.Multiplier,
		SampleInput:         row.SampleInput,
		SampleOutput:        row.SampleOutput,
	}
}

func problemToRow(p *Problem, generation int64) *ProblemRow {
	return &ProblemRow{
		Id:                  p.ID,
		Generation:          generation,
		Name:                p.Name,
		MaxPoints:           p.MaxPoints,
		InputText:           p.InputText,
		OutputText:          p.OutputText,
		InstructionsText:    p.InstructionsText,
		InputFileURL:        p.InputFileURL,
		OutputFileURL:       p.OutputFileURL,
		InstructionsFileURL: p.InstructionsFileURL,
		WindowsFileURL:      p.WindowsFileURL,
		ObjectFileURL:       p.ObjectFileURL,
		MacFileURL:          p.MacFileURL,
		Multiplier:          p.Multiplier,
		SampleInput:         p.SampleInput,
		SampleOutput:        p.SampleOutput,
	}
}
