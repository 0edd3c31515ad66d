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
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ddbMediaItem represents the structure of a media item in DynamoDB.
type ddbMediaItem struct {
	MediaID      string `dynamodbav:"mediaId"`
	Title        string `dynamodbav:"titulo"`
	Description  string `dynamodbav:"descricao"`
	Type         string `dynamodbav:"tipo"`
	ReleaseYear  int    `dynamodbav:"anoLancamento"`
	Genre        string `dynamodbav:"genero"`
	ThumbnailURL string `dynamodbav:"urlThumbnail,omitempty"`
	CreatedAt    string `dynamodbav:"createdAt"`
}

// MediaRepository is the DynamoDB implementation of repository.MediaRepository.
type MediaRepository struct {
	dbClient  *dynamodb.Client
	tableName string
}

// NewMediaRepository creates a new instance of the DynamoDB media repository.
func NewMediaRepository(dbClient *dynamodb.Client, tableName string) *MediaRepository {
	return &MediaRepository{
		dbClient:  dbClient,
		tableName: tableName,
	}
}

// Create implements repository.MediaRepository.
func (r *MediaRepository) Create(ctx context.Context, item *domain.MediaItem) error {
	av, err := attributevalue.MarshalMap(fromDomain(item))
	if err != nil {
		return appErrors.Wrap(err, "failed to marshal media item")
	}

	// Ids are freshly generated UUIDs; the condition guards against the
	// astronomically unlikely collision instead of silently overwriting.
	_, err = r.dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(mediaId)"),
	})
	if err != nil {
		return appErrors.Wrap(err, "failed to put media item")
	}
	return nil
}

// FindByID implements repository.MediaRepository.
func (r *MediaRepository) FindByID(ctx context.Context, mediaID string) (*domain.MediaItem, error) {
	out, err := r.dbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       mediaKey(mediaID),
	})
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to get media item")
	}
	if len(out.Item) == 0 {
		return nil, repository.NewNotFound("media", mediaID)
	}

	var item ddbMediaItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, appErrors.Wrap(err, "failed to unmarshal media item")
	}
	return item.toDomain(), nil
}

// FindAll implements repository.MediaRepository with a full-table scan.
func (r *MediaRepository) FindAll(ctx context.Context) ([]domain.MediaItem, error) {
	items := []domain.MediaItem{}

	paginator := dynamodb.NewScanPaginator(r.dbClient, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, appErrors.Wrap(err, "failed to scan media table")
		}

		var pageItems []ddbMediaItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageItems); err != nil {
			return nil, appErrors.Wrap(err, "failed to unmarshal media items")
		}
		for _, item := range pageItems {
			items = append(items, *item.toDomain())
		}
	}
	return items, nil
}

// Update implements repository.MediaRepository. Only the provided fields
// are written; the post-update item is read back from the same call.
func (r *MediaRepository) Update(ctx context.Context, mediaID string, update domain.MediaUpdate) (*domain.MediaItem, error) {
	var upd expression.UpdateBuilder
	if update.Title != nil {
		upd = upd.Set(expression.Name("titulo"), expression.Value(*update.Title))
	}
	if update.Description != nil {
		upd = upd.Set(expression.Name("descricao"), expression.Value(*update.Description))
	}
	if update.Type != nil {
		upd = upd.Set(expression.Name("tipo"), expression.Value(string(*update.Type)))
	}
	if update.ReleaseYear != nil {
		upd = upd.Set(expression.Name("anoLancamento"), expression.Value(*update.ReleaseYear))
	}
	if update.Genre != nil {
		upd = upd.Set(expression.Name("genero"), expression.Value(*update.Genre))
	}
	if update.ThumbnailURL != nil {
		upd = upd.Set(expression.Name("urlThumbnail"), expression.Value(*update.ThumbnailURL))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(upd).
		WithCondition(expression.AttributeExists(expression.Name("mediaId"))).
		Build()
	if err != nil {
		return nil, appErrors.Wrap(err, "failed to build update expression")
	}

	out, err := r.dbClient.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       mediaKey(mediaID),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccf *types.ConditionalCheckFailedException
		if errors.As(err, &ccf) {
			return nil, repository.NewNotFound("media", mediaID)
		}
		return nil, appErrors.Wrap(err, "failed to update media item")
	}

	var item ddbMediaItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, appErrors.Wrap(err, "failed to unmarshal updated media item")
	}
	return item.toDomain(), nil
}

// Delete implements repository.MediaRepository. DynamoDB does not report
// whether the key existed, which makes the operation idempotent.
func (r *MediaRepository) Delete(ctx context.Context, mediaID string) error {
	_, err := r.dbClient.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key:       mediaKey(mediaID),
	})
	if err != nil {
		return appErrors.Wrap(err, "failed to delete media item")
	}
	return nil
}

func mediaKey(mediaID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"mediaId": &types.AttributeValueMemberS{Value: mediaID},
	}
}

func fromDomain(item *domain.MediaItem) ddbMediaItem {
	return ddbMediaItem{
		MediaID:      item.MediaID,
		Title:        item.Title,
		Description:  item.Description,
		Type:         string(item.Type),
		ReleaseYear:  item.ReleaseYear,
		Genre:        item.Genre,
		ThumbnailURL: item.ThumbnailURL,
		CreatedAt:    item.CreatedAt.Format(time.RFC3339),
	}
}

func (i ddbMediaItem) toDomain() *domain.MediaItem {
	createdAt, _ := time.Parse(time.RFC3339, i.CreatedAt)
	return &domain.MediaItem{
		MediaID:      i.MediaID,
		Title:        i.Title,
		Description:  i.Description,
		Type:         domain.MediaType(i.Type),
		ReleaseYear:  i.ReleaseYear,
		Genre:        i.Genre,
		ThumbnailURL: i.ThumbnailURL,
		CreatedAt:    createdAt,
	}
}
