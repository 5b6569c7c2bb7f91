package storage

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/frontiertower/floorfinder-sub000/logging"
)

const dynamoPutAttempts = 3

type DynamoKeyValueStorage struct {
	Client    DynamoClient
	TableName string
	Now       func() time.Time
}

func (s *DynamoKeyValueStorage) Get(ctx context.Context, key string) (*Entry, error) {
	pk, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal key %s: %v", key, err)
		return nil, err
	}

	out, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      &s.TableName,
		Key:            pk,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		logging.Log.Errorf("KV: GetItem for %s failed: %v", key, err)
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var entry Entry
	if err := attributevalue.UnmarshalMap(out.Item, &entry); err != nil {
		logging.Log.Errorf("KV: failed to unmarshal entry %s: %v", key, err)
		return nil, err
	}
	return &entry, nil
}

// Put with AnyVersion reads the current version and writes conditionally on
// it, retrying when another writer gets in between. Every write advances
// the version, so concurrent compare-and-set callers notice the replace.
func (s *DynamoKeyValueStorage) Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	if expectedVersion >= 0 {
		return s.putVersion(ctx, key, value, expectedVersion)
	}

	for attempt := 0; attempt < dynamoPutAttempts; attempt++ {
		current, err := s.Get(ctx, key)
		if err != nil {
			return 0, err
		}
		var version int64
		if current != nil {
			version = current.Version
		}

		next, err := s.putVersion(ctx, key, value, version)
		if errors.Is(err, ErrVersionConflict) {
			continue
		}
		return next, err
	}
	logging.Log.Errorf("KV: gave up writing %s after %d contended attempts", key, dynamoPutAttempts)
	return 0, fmt.Errorf("dynamo put %s: %w", key, ErrVersionConflict)
}

func (s *DynamoKeyValueStorage) putVersion(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error) {
	input := &dynamodb.PutItemInput{
		TableName: &s.TableName,
	}
	if expectedVersion == 0 {
		input.ConditionExpression = aws.String("attribute_not_exists(PK)")
	} else {
		input.ConditionExpression = aws.String("Version = :v")
		input.ExpressionAttributeValues = map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedVersion, 10)},
		}
	}

	next := expectedVersion + 1
	item, err := attributevalue.MarshalMap(&Entry{
		Key:       key,
		Value:     value,
		Version:   next,
		UpdatedAt: s.now(),
	})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal entry %s: %v", key, err)
		return 0, err
	}
	input.Item = item

	if _, err := s.Client.PutItem(ctx, input); err != nil {
		var cce *types.ConditionalCheckFailedException
		if errors.As(err, &cce) {
			logging.Log.Warnf("KV: version conflict on %s (expected %d)", key, expectedVersion)
			return 0, ErrVersionConflict
		}
		logging.Log.Errorf("KV: PutItem for %s failed: %v", key, err)
		return 0, err
	}
	return next, nil
}

func (s *DynamoKeyValueStorage) Delete(ctx context.Context, key string) error {
	pk, err := attributevalue.MarshalMap(map[string]string{"PK": key})
	if err != nil {
		logging.Log.Errorf("KV: failed to marshal delete key %s: %v", key, err)
		return err
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: &s.TableName,
		Key:       pk,
	})
	if err != nil {
		logging.Log.Errorf("KV: DeleteItem for %s failed: %v", key, err)
		return err
	}
	logging.Log.Infof("KV: deleted %s", key)
	return nil
}

// List scans the table for keys starting with prefix. The scan reads the
// whole table, which is fine for one record per judge and per session.
func (s *DynamoKeyValueStorage) List(ctx context.Context, prefix string) ([]string, error) {
	paginator := dynamodb.NewScanPaginator(s.Client, &dynamodb.ScanInput{
		TableName:            &s.TableName,
		ConsistentRead:       aws.Bool(true),
		FilterExpression:     aws.String("begins_with(PK, :p)"),
		ProjectionExpression: aws.String("PK"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: prefix},
		},
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			logging.Log.Errorf("KV: Scan for prefix %s failed: %v", prefix, err)
			return nil, err
		}
		var items []struct {
			Key string `dynamodbav:"PK"`
		}
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			logging.Log.Errorf("KV: failed to unmarshal scanned keys: %v", err)
			return nil, err
		}
		for _, it := range items {
			keys = append(keys, it.Key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *DynamoKeyValueStorage) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}
