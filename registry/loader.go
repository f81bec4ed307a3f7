package registry

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errMissingField = errors.New("missing required field")

// rawBuilder mirrors one entry of the builders document. Required fields are
// pointers so that a missing field can be told apart from an empty one:
// missing required fields are parse errors, not zero-value substitutions.
type rawBuilder struct {
	Name                  *string  `json:"name"`
	Identifier            *string  `json:"identifier"`
	Website               *string  `json:"website"`
	SearcherRPC           *string  `json:"searcher_rpc"`
	MevShareRPC           *string  `json:"mev_share_rpc"`
	ExtraData             *string  `json:"extra_data"`
	Signing               *Signing `json:"signing"`
	AccountRequired       *bool    `json:"account_required"`
	RequiresExtraHandling *bool    `json:"requires_extra_handling"`
}

// UnmarshalJSON decodes a signing classification, rejecting unknown values.
func (s *Signing) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}

	switch Signing(value) {
	case SigningRequired, SigningOptional, SigningNotSupported:
		*s = Signing(value)
		return nil
	default:
		return fmt.Errorf("unknown signing value %q", value)
	}
}

// parseBuilders decodes the builders document into its raw entries.
func parseBuilders(document string, data []byte) ([]rawBuilder, error) {
	var builders []rawBuilder
	if err := decodeStrict(data, &builders); err != nil {
		return nil, &ParseError{Document: document, Err: err}
	}

	for i, builder := range builders {
		if field, ok := missingField(builder); ok {
			return nil, &ParseError{
				Document: document,
				Field:    field,
				Err:      fmt.Errorf("%w (entry #%d)", errMissingField, i+1),
			}
		}
	}

	return builders, nil
}

// parseStats decodes the stats document into a map from builder extra data to
// the block count observed over the aggregation window.
func parseStats(document string, data []byte) (map[string]uint64, error) {
	var stats map[string]uint64
	if err := decodeStrict(data, &stats); err != nil {
		return nil, &ParseError{Document: document, Err: err}
	}

	return stats, nil
}

// decodeStrict decodes JSON, rejecting unknown fields and trailing garbage.
func decodeStrict(data []byte, dst any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return err
	}
	if decoder.More() {
		return errors.New("unexpected trailing data")
	}

	return nil
}

func missingField(builder rawBuilder) (string, bool) {
	switch {
	case builder.Name == nil:
		return "name", true
	case builder.Identifier == nil:
		return "identifier", true
	case builder.Website == nil:
		return "website", true
	case builder.SearcherRPC == nil:
		return "searcher_rpc", true
	case builder.Signing == nil:
		return "signing", true
	case builder.AccountRequired == nil:
		return "account_required", true
	}

	return "", false
}

// toBuilder converts a raw entry into a Builder with no statistics attached.
// Optional fields absent from the source become empty strings; the extra data
// is trimmed the same way the statistics aggregation trims it.
func (r rawBuilder) toBuilder() Builder {
	builder := Builder{
		Name:            *r.Name,
		Identifier:      *r.Identifier,
		Website:         *r.Website,
		SearcherRPC:     *r.SearcherRPC,
		Signing:         *r.Signing,
		AccountRequired: *r.AccountRequired,
		extraHandling:   r.RequiresExtraHandling,
	}
	if r.MevShareRPC != nil {
		builder.MevShareRPC = *r.MevShareRPC
	}
	if r.ExtraData != nil {
		builder.ExtraData = strings.TrimSpace(*r.ExtraData)
	}

	return builder
}
