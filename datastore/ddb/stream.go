/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/datastore"
)

// Stream performs a streaming query against DynamoDB with configurable
// buffering, paging and retry behavior.
func (d *DynamodbDataStore[T]) Stream(ctx context.Context, q *datastore.Query, opts ...datastore.StreamOption) <-chan datastore.StreamResult[T] {
	options := datastore.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}

	resultCh := make(chan datastore.StreamResult[T], options.BufferSize)
	go d.streamWorker(ctx, q, options, resultCh)
	return resultCh
}

// streamWorker handles the actual streaming logic.
func (d *DynamodbDataStore[T]) streamWorker(
	ctx context.Context,
	q *datastore.Query,
	options datastore.StreamOptions,
	resultCh chan<- datastore.StreamResult[T],
) {
	defer close(resultCh)

	var itemIndex int64
	var pageNumber int
	startTime := time.Now()
	var pageErrors []error

	reportProgress := func(lastKey map[string]types.AttributeValue) {
		if options.ProgressHandler == nil {
			return
		}
		progress := datastore.StreamProgress{
			ItemsProcessed: atomic.LoadInt64(&itemIndex),
			PagesProcessed: pageNumber,
			Errors:         pageErrors,
			StartTime:      startTime,
		}
		if len(lastKey) > 0 {
			progress.LastKey = make(map[string]datastore.Value, len(lastKey))
			for k, av := range lastKey {
				progress.LastKey[k] = attributeToValue(av)
			}
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	input, err := d.buildQueryInput(q)
	if err != nil {
		resultCh <- datastore.StreamResult[T]{Error: err, Meta: d.streamMeta(0, 0)}
		return
	}
	input.Limit = aws.Int32(options.PageSize)

	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := d.queryWithRetry(ctx, input, options)
		if err != nil {
			if options.ErrorHandler != nil && options.ErrorHandler(err) {
				pageErrors = append(pageErrors, err)
				continue
			}
			resultCh <- datastore.StreamResult[T]{
				Error: fmt.Errorf("query failed: %w", err),
				Meta:  d.streamMeta(atomic.LoadInt64(&itemIndex), pageNumber),
			}
			return
		}

		pageNumber++

		for _, item := range out.Items {
			result := d.processItem(item, atomic.LoadInt64(&itemIndex), pageNumber)
			atomic.AddInt64(&itemIndex, 1)

			select {
			case <-ctx.Done():
				return
			case resultCh <- result:
			}

			if result.Error != nil {
				pageErrors = append(pageErrors, result.Error)
			}
		}

		reportProgress(out.LastEvaluatedKey)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	reportProgress(nil)
}

// queryWithRetry executes a query with exponential backoff on
// retryable DynamoDB errors.
func (d *DynamodbDataStore[T]) queryWithRetry(
	ctx context.Context,
	input *sdk.QueryInput,
	options datastore.StreamOptions,
) (*sdk.QueryOutput, error) {
	var lastErr error

	for attempt := 0; attempt <= options.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		out, err := d.client.Query(ctx, input)
		if err == nil {
			return out, nil
		}

		lastErr = err
		if !isRetryableError(err) {
			return nil, err
		}

		if attempt < options.MaxRetries {
			backoff := time.Duration(attempt+1) * options.RetryBackoff
			d.logger.Debug().Err(err).Int("attempt", attempt+1).Dur("backoff", backoff).Msg("retrying query")
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}
	}

	return nil, fmt.Errorf("query failed after %d retries: %w", options.MaxRetries, lastErr)
}

// processItem converts one DynamoDB item into a typed stream result.
// Items that fail the binding-table decode fall back to direct
// attribute unmarshaling, so records written by other tooling can
// still be streamed.
func (d *DynamodbDataStore[T]) processItem(
	item map[string]types.AttributeValue,
	index int64,
	pageNumber int,
) datastore.StreamResult[T] {
	meta := d.streamMeta(index, pageNumber)

	rec := decodeRecord(d.meta.Kind(), item)
	model, err := d.meta.EntityToModel(rec)
	if err != nil {
		fallback := new(T)
		if uerr := attributevalue.UnmarshalMap(item, fallback); uerr == nil {
			return datastore.StreamResult[T]{Item: fallback, Raw: rec, Meta: meta}
		}
		return datastore.StreamResult[T]{Error: err, Raw: rec, Meta: meta}
	}
	return datastore.StreamResult[T]{Item: model, Raw: rec, Meta: meta}
}

func (d *DynamodbDataStore[T]) streamMeta(index int64, pageNumber int) datastore.StreamMeta {
	return datastore.StreamMeta{
		Index:      index,
		PageNumber: pageNumber,
		Timestamp:  time.Now(),
	}
}

// isRetryableError determines if a DynamoDB error is retryable.
func isRetryableError(err error) bool {
	switch err.(type) {
	case *types.ProvisionedThroughputExceededException:
		return true
	case *types.RequestLimitExceeded:
		return true
	case *types.InternalServerError:
		return true
	}
	if awsErr, ok := err.(interface{ IsRetryable() bool }); ok {
		return awsErr.IsRetryable()
	}
	return false
}
