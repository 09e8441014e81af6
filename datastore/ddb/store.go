/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/datastore/meta"
	"github.com/suparena/modelstore/errors"
)

// DynamodbDataStore implements datastore.DataStore[T] on top of a
// single DynamoDB table. Items are keyed by "<kind>#<key>" and carry
// an EntityKind attribute so kind-scoped queries can run against the
// configured kind index.
type DynamodbDataStore[T any] struct {
	client  *sdk.Client
	cfg     StoreConfig
	meta    *meta.ModelMeta[T]
	keyFunc func(*T) string
	logger  zerolog.Logger
}

// NewDynamoDBClient initializes a DynamoDB client using static AWS
// credentials.
func NewDynamoDBClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a DynamoDB-backed store for type T. keyFunc extracts
// the string key from a model and is required because Put has no other
// way to derive the item key.
func New[T any](client *sdk.Client, cfg StoreConfig, m *meta.ModelMeta[T], keyFunc func(*T) string) (*DynamodbDataStore[T], error) {
	if client == nil {
		return nil, errors.NewInvalidArgumentError("client", "client must not be nil")
	}
	if m == nil {
		return nil, errors.NewInvalidArgumentError("meta", "model meta must not be nil")
	}
	if keyFunc == nil {
		return nil, errors.NewInvalidArgumentError("keyFunc", "key function must not be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &DynamodbDataStore[T]{
		client:  client,
		cfg:     cfg,
		meta:    m,
		keyFunc: keyFunc,
		logger:  zerolog.Nop(),
	}, nil
}

// WithLogger sets the store's logger and returns the store.
func (d *DynamodbDataStore[T]) WithLogger(logger zerolog.Logger) *DynamodbDataStore[T] {
	d.logger = logger
	return d
}

func (d *DynamodbDataStore[T]) itemKey(key string) map[string]types.AttributeValue {
	pk := fmt.Sprintf("%s#%s", d.meta.Kind(), key)
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: pk},
		attrSK: &types.AttributeValueMemberS{Value: pk},
	}
}

// GetOne retrieves a single model by its string key.
func (d *DynamodbDataStore[T]) GetOne(ctx context.Context, key string) (*T, error) {
	out, err := d.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &d.cfg.Table,
		Key:       d.itemKey(key),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem error: %w", err)
	}
	if out.Item == nil {
		return nil, errors.NewNotFoundError(d.meta.Kind(), key)
	}
	return d.meta.EntityToModel(decodeRecord(d.meta.Kind(), out.Item))
}

// Put stores the given model, overwriting any item with the same key.
func (d *DynamodbDataStore[T]) Put(ctx context.Context, model *T) error {
	if model == nil {
		return errors.NewInvalidArgumentError("model", "model must not be nil")
	}
	rec, err := d.meta.ModelToEntity(model)
	if err != nil {
		return err
	}

	key := d.keyFunc(model)
	if key == "" {
		return errors.NewInvalidArgumentError("model", "key function returned an empty key")
	}

	item := encodeRecord(rec)
	pk := fmt.Sprintf("%s#%s", d.meta.Kind(), key)
	item[attrPK] = &types.AttributeValueMemberS{Value: pk}
	item[attrSK] = &types.AttributeValueMemberS{Value: pk}
	item[attrKind] = &types.AttributeValueMemberS{Value: d.meta.Kind()}

	if _, err := d.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &d.cfg.Table,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	d.logger.Debug().Str("kind", d.meta.Kind()).Str("key", key).Msg("stored item")
	return nil
}

// Delete removes the item with the given key. Deleting a missing key
// is not an error.
func (d *DynamodbDataStore[T]) Delete(ctx context.Context, key string) error {
	if _, err := d.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &d.cfg.Table,
		Key:       d.itemKey(key),
	}); err != nil {
		return fmt.Errorf("failed to delete item in DynamoDB: %w", err)
	}
	return nil
}

// Query runs a kind-scoped query with the accumulated filter terms and
// returns all matching models.
func (d *DynamodbDataStore[T]) Query(ctx context.Context, q *datastore.Query) ([]*T, error) {
	input, err := d.buildQueryInput(q)
	if err != nil {
		return nil, err
	}

	var results []*T
	for {
		out, err := d.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}
		for _, item := range out.Items {
			model, err := d.meta.EntityToModel(decodeRecord(d.meta.Kind(), item))
			if err != nil {
				return nil, err
			}
			results = append(results, model)
			if q.Limit() != nil && int32(len(results)) >= *q.Limit() {
				return results, nil
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return results, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// buildQueryInput translates a query into a DynamoDB QueryInput against
// the kind index.
func (d *DynamodbDataStore[T]) buildQueryInput(q *datastore.Query) (*sdk.QueryInput, error) {
	if q == nil {
		return nil, errors.NewInvalidArgumentError("query", "query must not be nil")
	}
	if q.Kind() != d.meta.Kind() {
		return nil, errors.NewInvalidArgumentError("query",
			fmt.Sprintf("query kind %q does not match store kind %q", q.Kind(), d.meta.Kind()))
	}

	filterExpr, names, values, err := buildFilterExpression(q.Filters())
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = make(map[string]string)
	}
	if values == nil {
		values = make(map[string]types.AttributeValue)
	}
	names["#kind"] = d.cfg.KindIndex.PartitionKeyName
	values[":kind"] = &types.AttributeValueMemberS{Value: q.Kind()}

	indexName := d.cfg.KindIndex.IndexName
	if q.Index() != nil {
		indexName = *q.Index()
	}

	input := &sdk.QueryInput{
		TableName:                 &d.cfg.Table,
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    aws.String("#kind = :kind"),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ScanIndexForward:          q.ScanForward(),
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
	}
	if q.Limit() != nil {
		input.Limit = q.Limit()
	}
	if start := q.StartKey(); start != nil {
		esk := make(map[string]types.AttributeValue, len(start))
		for k, v := range start {
			esk[k] = valueToAttribute(v)
		}
		input.ExclusiveStartKey = esk
	}
	return input, nil
}
