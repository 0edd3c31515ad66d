// Package ddb implements the repository interfaces using AWS DynamoDB.
// This is the only layer that should have knowledge of DynamoDB specifics.
package ddb

import (
	"context"
	"errors"
	"time"

	"streaming-backend/internal/domain"
	"streaming-backend/internal/repository"
	appErrors "streaming-backend/pkg/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ddbUser represents the structure of a user item in DynamoDB.
type ddbUser struct {
	Email        string `dynamodbav:"email"`
	Name         string `dynamodbav:"nome"`
	PasswordHash string `dynamodbav:"senhaHash"`
	CreatedAt    string `dynamodbav:"createdAt"`
}

// UserRepository is the DynamoDB implementation of repository.UserRepository.
type UserRepository struct {
	dbClient  *dynamodb.Client
	tableName string
}

// NewUserRepository creates a new instance of the DynamoDB user repository.
func NewUserRepository(dbClient *dynamodb.Client, tableName string) *UserRepository {
	return &UserRepository{
		dbClient:  dbClient,
		tableName: tableName,
	}
}

// FindByEmail implements repository.UserRepository.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	out, err := r.dbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to get user item")
	}
	if len(out.Item) == 0 {
		return nil, repository.NewNotFound("user", email)
	}

	var item ddbUser
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, appErrors.Wrap(err, "failed to unmarshal user item")
	}
	return item.toDomain(), nil
}

// Create implements repository.UserRepository. The put is conditional on
// the email not existing yet, so two concurrent registrations for the same
// address cannot both win.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	item, err := attributevalue.MarshalMap(ddbUser{
		Email:        user.Email,
		Name:         user.Name,
		PasswordHash: user.PasswordHash,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return appErrors.Wrap(err, "failed to marshal user item")
	}

	_, err = r.dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(email)"),
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return repository.NewConflict("user", user.Email, "email already registered")
		}
		return appErrors.Wrap(err, "failed to put user item")
	}
	return nil
}

func (u ddbUser) toDomain() *domain.User {
	createdAt, _ := time.Parse(time.RFC3339, u.CreatedAt)
	return &domain.User{
		Email:        u.Email,
		Name:         u.Name,
		PasswordHash: u.PasswordHash,
		CreatedAt:    createdAt,
	}
}
