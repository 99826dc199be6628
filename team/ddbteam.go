package team

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/guregu/dynamo/v2"
)

// TeamRow represents the team data structure.
type TeamRow struct {
	Id     string `dynamo:"id,hash"` // Primary key
	Name   string `dynamo:"name"`
	Points int    `dynamo:"points"`
}

// ParticipantRow represents the participant data structure.
type ParticipantRow struct {
	Id             string  `dynamo:"id,hash"` // Primary key
	Name           string  `dynamo:"name"`
	Email          string  `dynamo:"email"`
	GoogleID       string  `dynamo:"google_id"`
	IsAdmin        bool    `dynamo:"is_admin"`
	TeamName       string  `dynamo:"team_name"`
	PhoneNumber    *string `dynamo:"phone_number"`
	RegistrationNo *string `dynamo:"registration_no"`
}

// DynamoDbTeamTable represents the DynamoDB team table.
type DynamoDbTeamTable struct {
	ddbClient *dynamodb.Client
	tableName string
	teamTable dynamo.Table
}

// NewDynamoDbTeamTable initializes a new DynamoDbTeamTable.
func NewDynamoDbTeamTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbTeamTable {
	ddb := &DynamoDbTeamTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	ddb.teamTable = db.Table(ddb.tableName)

	return ddb
}

// Get implements TeamRepo.
func (ddb *DynamoDbTeamTable) Get(ctx context.Context, id string) (*Team, error) {
	row := new(TeamRow)
	err := ddb.teamTable.Get("id", id).One(ctx, row)
	if err != nil {
		if errors.Is(err, dynamo.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &Team{ID: row.Id, Name: row.Name, Points: row.Points}, nil
}

// List implements TeamRepo.
func (ddb *DynamoDbTeamTable) List(ctx context.Context) ([]Team, error) {
	var rows []TeamRow
	err := ddb.teamTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	teams := make([]Team, 0, len(rows))
	for _, row := range rows {
		teams = append(teams, Team{ID: row.Id, Name: row.Name, Points: row.Points})
	}
	return teams, nil
}

// ReplaceAll implements TeamRepo. New rows are written before superseded
// rows are removed; see the problem table for the same trade-off.
func (ddb *DynamoDbTeamTable) ReplaceAll(ctx context.Context, teams []Team) error {
	keep := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		row := &TeamRow{Id: t.ID, Name: t.Name, Points: t.Points}
		if err := ddb.teamTable.Put(row).Run(ctx); err != nil {
			return err
		}
		keep[t.ID] = struct{}{}
	}
	var rows []TeamRow
	if err := ddb.teamTable.Scan().All(ctx, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		if _, ok := keep[row.Id]; ok {
			continue
		}
		if err := ddb.teamTable.Delete("id", row.Id).Run(ctx); err != nil {
			return err
		}
	}
	return nil
}

// DynamoDbParticipantTable represents the DynamoDB participant table.
type DynamoDbParticipantTable struct {
	ddbClient        *dynamodb.Client
	tableName        string
	participantTable dynamo.Table
}

// NewDynamoDbParticipantTable initializes a new DynamoDbParticipantTable.
func NewDynamoDbParticipantTable(ddbClient *dynamodb.Client, tableName string) *DynamoDbParticipantTable {
	ddb := &DynamoDbParticipantTable{
		ddbClient: ddbClient,
		tableName: tableName,
	}
	db := dynamo.NewFromIface(ddb.ddbClient)
	ddb.participantTable = db.Table(ddb.tableName)

	return ddb
}

// List implements ParticipantRepo.
func (ddb *DynamoDbParticipantTable) List(ctx context.Context) ([]Participant, error) {
	var rows []ParticipantRow
	err := ddb.participantTable.Scan().All(ctx, &rows)
	if err != nil {
		return nil, err
	}
	participants := make([]Participant, 0, len(rows))
	for i := range rows {
		row := rows[i]
		participants = append(participants, Participant{
			ID:             row.Id,
			Name:           row.Name,
			Email:          row.Email,
			GoogleID:       row.GoogleID,
			IsAdmin:        row.IsAdmin,
			TeamName:       row.TeamName,
			PhoneNumber:    row.PhoneNumber,
			RegistrationNo: row.RegistrationNo,
		})
	}
	return participants, nil
}

// ReplaceAll implements ParticipantRepo.
func (ddb *DynamoDbParticipantTable) ReplaceAll(ctx context.Context, participants []Participant) error {
	keep := make(map[string]struct{}, len(participants))
	for i := range participants {
		p := participants[i]
		row := &ParticipantRow{
			Id:             p.ID,
			Name:           p.Name,
			Email:          p.Email,
			GoogleID:       p.GoogleID,
			IsAdmin:        p.IsAdmin,
			TeamName:       p.TeamName,
			PhoneNumber:    p.PhoneNumber,
			RegistrationNo: p.RegistrationNo,
		}
		if err := ddb.participantTable.Put(row).Run(ctx); err != nil {
			return err
		}
		keep[p.ID] = struct{}{}
	}
	var rows []ParticipantRow
	if err := ddb.participantTable.Scan().All(ctx, &rows); err != nil {
		return err
	}
	for _, row := range rows {
		if _, ok := keep[row.Id]; ok {
			continue
		}
		if err := ddb.participantTable.Delete("id", row.Id).Run(ctx); err != nil {
			return err
		}
	}
	return nil
}
