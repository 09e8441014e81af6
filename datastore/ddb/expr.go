/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/modelstore/datastore"
	"github.com/suparena/modelstore/errors"
)

// buildFilterExpression renders a query's filter terms into a DynamoDB
// filter expression plus the attribute name and value placeholder maps.
// Terms are combined with AND in the order they were added.
func buildFilterExpression(filters []datastore.Filter) (string, map[string]string, map[string]types.AttributeValue, error) {
	if len(filters) == 0 {
		return "", nil, nil, nil
	}

	names := make(map[string]string, len(filters))
	values := make(map[string]types.AttributeValue)
	clauses := make([]string, 0, len(filters))

	for i, f := range filters {
		nameph := fmt.Sprintf("#f%d", i)
		names[nameph] = f.Name

		switch f.Operator {
		case datastore.Equal, datastore.NotEqual,
			datastore.LessThan, datastore.LessThanOrEqual,
			datastore.GreaterThan, datastore.GreaterThanOrEqual:
			valph := fmt.Sprintf(":v%d", i)
			values[valph] = valueToAttribute(f.Value)
			clauses = append(clauses, fmt.Sprintf("%s %s %s", nameph, f.Operator, valph))

		case datastore.In:
			if f.Value.Kind() != datastore.KindList || f.Value.Len() == 0 {
				return "", nil, nil, errors.NewInvalidArgumentError(f.Name, "IN filter requires a non-empty list value")
			}
			phs := make([]string, 0, f.Value.Len())
			for j, cand := range f.Value.Elements() {
				valph := fmt.Sprintf(":v%d_%d", i, j)
				values[valph] = valueToAttribute(cand)
				phs = append(phs, valph)
			}
			clauses = append(clauses, fmt.Sprintf("%s IN (%s)", nameph, strings.Join(phs, ", ")))

		case datastore.IsNotNull:
			clauses = append(clauses, fmt.Sprintf("attribute_exists(%s)", nameph))

		default:
			return "", nil, nil, errors.NewInvalidArgumentError(f.Name, fmt.Sprintf("unsupported filter operator %v", f.Operator))
		}
	}

	if len(values) == 0 {
		values = nil
	}
	return strings.Join(clauses, " AND "), names, values, nil
}
