package storage

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// AnyVersion disables the version check on Put.
const AnyVersion int64 = -1

const (
	ratingsKeyPrefix = "ratings:"
	sessionKeyPrefix = "session:"
)

// KeyValueStorage keeps opaque values under string keys. Every value is
// replaced as a whole; readers never observe a partially written value.
type KeyValueStorage interface {
	// Get returns nil and no error when the key is absent.
	Get(ctx context.Context, key string) (*Entry, error)
	// Put replaces the value. With expectedVersion >= 0 the write only
	// succeeds when the stored version matches (0 means the key must not
	// exist yet), otherwise ErrVersionConflict is returned.
	Put(ctx context.Context, key string, value []byte, expectedVersion int64) (int64, error)
	Delete(ctx context.Context, key string) error
	// List returns the stored keys starting with prefix, in order.
	List(ctx context.Context, prefix string) ([]string, error)
}

// DynamoClient is the subset of the DynamoDB API the storages use.
type DynamoClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

func RatingsKey(judgeID string) string {
	return ratingsKeyPrefix + judgeID
}

// RatingsKeyPrefix is shared by every RatingsKey.
func RatingsKeyPrefix() string {
	return ratingsKeyPrefix
}

// JudgeFromRatingsKey reverses RatingsKey.
func JudgeFromRatingsKey(key string) (string, bool) {
	if !strings.HasPrefix(key, ratingsKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, ratingsKeyPrefix), true
}

func SessionKey(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

// SessionKeyPrefix is shared by every SessionKey.
func SessionKeyPrefix() string {
	return sessionKeyPrefix
}

// SessionFromKey reverses SessionKey.
func SessionFromKey(key string) (string, bool) {
	if !strings.HasPrefix(key, sessionKeyPrefix) {
		return "", false
	}
	return strings.TrimPrefix(key, sessionKeyPrefix), true
}
