package storage

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/frontiertower/floorfinder-sub000/logging"
)

type RoomStorage interface {
	Get(ctx context.Context, id string) (*Room, error)
	GetAll(ctx context.Context) ([]*Room, error)
	Create(ctx context.Context, room *Room) error
	Update(ctx context.Context, room *Room) error
	Delete(ctx context.Context, id string) error
}

type DynamoRoomStorage struct {
	Client    DynamoClient
	TableName string
}

// GetAll pages through the whole table. Rooms that fail to unmarshal are
// skipped so one bad record does not hide the rest of the building.
func (s *DynamoRoomStorage) GetAll(ctx context.Context) ([]*Room, error) {
	var rooms []*Room
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		out, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &s.TableName,
			ExclusiveStartKey: lastEvaluatedKey,
		})
		if err != nil {
			logging.Log.Errorf("ROOM: scan failed: %v", err)
			return nil, err
		}

		for _, item := range out.Items {
			var room Room
			if err := attributevalue.UnmarshalMap(item, &room); err != nil {
				logging.Log.Warnf("ROOM: skipping malformed room record: %v", err)
				continue
			}
			rooms = append(rooms, &room)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}
	return rooms, nil
}

func (s *DynamoRoomStorage) Get(ctx context.Context, id string) (*Room, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("ROOM: failed to marshal key for ID %s: %v", id, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("ROOM: GetItem for ID %s failed: %v", id, err)
		return nil, err
	}
	if out.Item == nil {
		logging.Log.Warnf("ROOM: no room found with ID %s", id)
		return nil, nil
	}

	var room Room
	if err := attributevalue.UnmarshalMap(out.Item, &room); err != nil {
		logging.Log.Errorf("ROOM: failed to unmarshal room: %v", err)
		return nil, err
	}
	return &room, nil
}

func (s *DynamoRoomStorage) Create(ctx context.Context, room *Room) error {
	item, err := attributevalue.MarshalMap(room)
	if err != nil {
		logging.Log.Errorf("ROOM: failed to marshal room: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("ROOM: item with ID %s already exists", room.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("ROOM: failed to create room: %v", err)
		return err
	}
	return nil
}

// Update replaces the room only if it already exists.
func (s *DynamoRoomStorage) Update(ctx context.Context, room *Room) error {
	item, err := attributevalue.MarshalMap(room)
	if err != nil {
		logging.Log.Errorf("ROOM: failed to marshal updated room: %v", err)
		return err
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           &s.TableName,
		Item:                item,
		ConditionExpression: aws.String("attribute_exists(PK)"),
	})
	if err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("ROOM: no room with ID %s to update", room.ID)
			return ErrItemNotFound
		}
		logging.Log.Errorf("ROOM: failed to update room: %v", err)
		return err
	}
	return nil
}

func (s *DynamoRoomStorage) Delete(ctx context.Context, id string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"PK": id})
	if err != nil {
		logging.Log.Errorf("ROOM: failed to marshal delete key for ID %s: %v", id, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       key,
	})
	if err != nil {
		logging.Log.Errorf("ROOM: failed to delete room with ID %s: %v", id, err)
		return err
	}
	logging.Log.Infof("ROOM: deleted room with ID %s", id)
	return nil
}
