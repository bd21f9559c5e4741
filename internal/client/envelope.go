package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/fivetwenty-io/freshbooks/pkg/freshbooks"
)

// Static errors for err113 compliance.
var errTrailingData = errors.New("trailing data after JSON document")

// parseEnvelope unwraps {"response": {...}, "meta": {...}}. It returns the
// payload (the inner "result" when present, the inner object otherwise) and
// the top-level meta, which is nil when absent. Statuses >= 400 are turned
// into an error by classifyError.
func parseEnvelope(statusCode int, body []byte) (any, map[string]any, error) {
	rawBody := string(body)

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var document any

	err := decoder.Decode(&document)
	if err != nil {
		return nil, nil, freshbooks.NewMalformedResponseError(statusCode, rawBody, err)
	}

	if decoder.More() {
		return nil, nil, freshbooks.NewMalformedResponseError(statusCode, rawBody, errTrailingData)
	}

	envelope, ok := document.(map[string]any)
	if !ok {
		return nil, nil, freshbooks.NewUnexpectedResponseShapeError(statusCode, rawBody)
	}

	response, found := envelope["response"]
	if !found || response == nil {
		return nil, nil, freshbooks.NewUnexpectedResponseShapeError(statusCode, rawBody)
	}

	var meta map[string]any
	if rawMeta, hasMeta := envelope["meta"].(map[string]any); hasMeta {
		meta = rawMeta
	}

	inner, isObject := response.(map[string]any)

	if statusCode >= http.StatusBadRequest {
		if !isObject {
			return nil, nil, freshbooks.NewUnknownAPIError(statusCode, rawBody)
		}

		return nil, nil, classifyError(statusCode, inner, rawBody)
	}

	if !isObject {
		return response, meta, nil
	}

	if result, hasResult := inner["result"]; hasResult {
		return result, meta, nil
	}

	return inner, meta, nil
}

// classifyError builds the error for a failed call from the inner response
// object. Only the first element of an error list is reported.
func classifyError(statusCode int, inner map[string]any, rawBody string) error {
	rawErrors, found := inner["errors"]
	if !found {
		return freshbooks.NewUnknownAPIError(statusCode, rawBody)
	}

	var first map[string]any

	switch errs := rawErrors.(type) {
	case []any:
		if len(errs) == 0 {
			return freshbooks.NewUnknownAPIError(statusCode, rawBody)
		}

		first, _ = errs[0].(map[string]any)
	case map[string]any:
		first = errs
	}

	if first == nil {
		return freshbooks.NewUnknownAPIError(statusCode, rawBody)
	}

	message := freshbooks.DefaultErrorMessage
	if rawMessage, ok := first["message"]; ok && rawMessage != nil {
		if text, err := freshbooks.CoerceString(rawMessage); err == nil {
			message = text
		}
	}

	if rawCode, ok := first["errno"]; ok && rawCode != nil {
		code, err := freshbooks.CoerceInt(rawCode)
		if err == nil {
			return freshbooks.NewAPIError(message, statusCode, rawBody, code)
		}
	}

	return freshbooks.NewAPIErrorWithoutCode(message, statusCode, rawBody)
}

// withPagination prepares a list payload for decoding. A payload without its
// own meta is paired with the meta captured from the envelope, and a missing
// page count is derived from total and per_page.
func withPagination(payload any, meta map[string]any) any {
	object, isObject := payload.(map[string]any)

	if isObject {
		if ownMeta, hasMeta := object["meta"].(map[string]any); hasMeta {
			fillPages(ownMeta)

			return object
		}
	}

	if meta != nil {
		fillPages(meta)

		return map[string]any{
			"result": payload,
			"meta":   meta,
		}
	}

	if isObject {
		if _, hasTotal := object["total"]; hasTotal {
			fillPages(object)
		}
	}

	return payload
}

// fillPages sets "pages" to floor(total/per_page)+1 when it is absent.
func fillPages(meta map[string]any) {
	if pages, found := meta["pages"]; found && pages != nil {
		return
	}

	total, _ := freshbooks.CoerceInt(meta["total"])
	perPage, _ := freshbooks.CoerceInt(meta["per_page"])

	meta["pages"] = freshbooks.ComputePages(total, perPage)
}
