package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/policedept/records-system/internal/core/domain"
)

// readBody drains the request body. Resource payloads are small; there is no
// need for streaming decode.
func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return nil, domain.NewError(domain.KindInvalidFormat, "unreadable request body")
	}
	return body, nil
}

// decodeJSON unmarshals body into dst, translating field-level type errors
// into the taxonomy. A non-numeric or fractional agentId is an identifier
// problem, not a generic format one. An empty body decodes like an empty
// object, mirroring fieldSet.
func decodeJSON(body []byte, dst any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			if typeErr.Field == "agentId" {
				return domain.FieldError(domain.KindInvalidIdentifier, "agentId", "agentId must be a positive integer")
			}
			return domain.FieldError(domain.KindInvalidFormat, typeErr.Field, typeErr.Field+" has the wrong type")
		}
		return domain.NewError(domain.KindInvalidFormat, "malformed JSON body")
	}
	return nil
}

// fieldSet returns the top-level keys of the JSON body. An empty body counts
// as an empty object so an empty PATCH is a valid no-op.
func fieldSet(body []byte) (map[string]json.RawMessage, error) {
	if len(body) == 0 {
		return map[string]json.RawMessage{}, nil
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, domain.NewError(domain.KindInvalidFormat, "malformed JSON body")
	}
	return fields, nil
}

// checkAllowed rejects any key outside the operation's allow-list. A
// provided "id" is always an immutable-field violation, whatever the list.
func checkAllowed(fields map[string]json.RawMessage, allowed ...string) error {
	if _, ok := fields["id"]; ok {
		return domain.FieldError(domain.KindImmutableField, "id", "id cannot be changed")
	}
	for name := range fields {
		found := false
		for _, a := range allowed {
			if name == a {
				found = true
				break
			}
		}
		if !found {
			return domain.FieldError(domain.KindUnknownField, name, "unknown field: "+name)
		}
	}
	return nil
}

// pathID parses the :id route parameter. Malformed identifiers fail before
// any service or storage call.
func pathID(c echo.Context) (int64, error) {
	id, ok := domain.ParseID(c.Param("id"))
	if !ok {
		return 0, domain.FieldError(domain.KindInvalidIdentifier, "id", "id must be a positive integer")
	}
	return id, nil
}
