package freshbooks

import (
	"fmt"
)

// EntityDecoder turns an unwrapped response payload into one entity.
type EntityDecoder[T any] func(payload any) (*T, error)

// ListDecoder turns an unwrapped list payload into a page of entities.
type ListDecoder[T any] func(payload any) (*ListResult[T], error)

// DecodeEntity returns a decoder for single-entity payloads. Accounting
// resources nest the entity under envelopeField ({"client": {...}}); business
// resources return it bare, which is handled by passing an empty field or by
// the field simply being absent.
func DecodeEntity[T any](fields FieldMap[T], envelopeField string) EntityDecoder[T] {
	return func(payload any) (*T, error) {
		data, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, payload)
		}

		if envelopeField != "" {
			if nested, found := data[envelopeField]; found {
				return fields.DecodeValue(nested)
			}
		}

		return fields.Decode(data)
	}
}

// DecodeList returns a decoder for list payloads in either of the two shapes
// the API produces:
//
//	{"result": [...], "meta": {"total": .., "per_page": .., "page": .., "pages": ..}}
//	{"<listField>": [...], "total": .., "per_page": .., "page": .., "pages": ..}
//
// A bare array decodes with zero pagination metadata.
func DecodeList[T any](fields FieldMap[T], listField string) ListDecoder[T] {
	return func(payload any) (*ListResult[T], error) {
		if raw, ok := payload.([]any); ok {
			items, err := DecodeItems(raw, fields)
			if err != nil {
				return nil, err
			}

			return &ListResult[T]{Items: items}, nil
		}

		data, ok := payload.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrNotAnObject, payload)
		}

		metaSource := data
		itemsKey := listField

		if meta, found := data["meta"]; found {
			metaData, isObject := meta.(map[string]any)
			if !isObject {
				return nil, fmt.Errorf("meta: %w: got %T", ErrNotAnObject, meta)
			}

			metaSource = metaData

			if _, hasResult := data["result"]; hasResult {
				itemsKey = "result"
			}
		}

		result := &ListResult[T]{Items: []T{}}

		if rawItems, found := data[itemsKey]; found && rawItems != nil {
			items, err := DecodeItems(rawItems, fields)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", itemsKey, err)
			}

			result.Items = items
		}

		meta, err := DecodePaginationMeta(metaSource)
		if err != nil {
			return nil, err
		}

		result.Meta = meta

		return result, nil
	}
}
