package registry

import (
	"fmt"
	"net/url"
	"regexp"
)

var identifierPattern = regexp.MustCompile(`^[a-z0-9]+$`)

// validate runs every invariant check over the full candidate set and
// aggregates all violations into a single ValidationError, so that one
// fix-and-rebuild cycle can address every issue at once. Any violation fails
// the whole generation; there is no partial table.
func validate(builders []Builder) error {
	var violations []error

	seenIdentifiers := make(map[string]string, len(builders))
	seenNames := make(map[string]string, len(builders))
	seenWebsites := make(map[string]string, len(builders))
	seenSearcherRPCs := make(map[string]string, len(builders))
	seenMevShareRPCs := make(map[string]string, len(builders))
	seenExtraData := make(map[string]string, len(builders))

	for _, builder := range builders {
		violations = append(violations, validateFields(builder)...)

		if prev, ok := seenIdentifiers[builder.Identifier]; ok {
			violations = append(violations, fmt.Errorf("%w: %q and %q share identifier %q",
				ErrDuplicateIdentifier, prev, builder.Name, builder.Identifier))
		} else {
			seenIdentifiers[builder.Identifier] = builder.Name
		}

		if prev, ok := seenNames[builder.Name]; ok {
			violations = append(violations, fmt.Errorf("%w: %q and %q share name %q",
				ErrDuplicateName, prev, builder.Identifier, builder.Name))
		} else {
			seenNames[builder.Name] = builder.Identifier
		}

		if prev, ok := seenWebsites[builder.Website]; ok {
			violations = append(violations, fmt.Errorf("%w: %q and %q share website %q",
				ErrDuplicateWebsite, prev, builder.Identifier, builder.Website))
		} else {
			seenWebsites[builder.Website] = builder.Identifier
		}

		if prev, ok := seenSearcherRPCs[builder.SearcherRPC]; ok {
			violations = append(violations, fmt.Errorf("%w: %q and %q share searcher_rpc %q",
				ErrDuplicateRPC, prev, builder.Identifier, builder.SearcherRPC))
		} else {
			seenSearcherRPCs[builder.SearcherRPC] = builder.Identifier
		}

		if builder.MevShareRPC != "" {
			if prev, ok := seenMevShareRPCs[builder.MevShareRPC]; ok {
				violations = append(violations, fmt.Errorf("%w: %q and %q share mev_share_rpc %q",
					ErrDuplicateRPC, prev, builder.Identifier, builder.MevShareRPC))
			} else {
				seenMevShareRPCs[builder.MevShareRPC] = builder.Identifier
			}
		}

		if builder.ExtraData != "" {
			if prev, ok := seenExtraData[builder.ExtraData]; ok {
				violations = append(violations, fmt.Errorf("%w: %q and %q both claim extra data %q",
					ErrAmbiguousExtraData, prev, builder.Identifier, builder.ExtraData))
			} else {
				seenExtraData[builder.ExtraData] = builder.Identifier
			}
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}

	return nil
}

func validateFields(builder Builder) []error {
	var violations []error

	if builder.Name == "" {
		violations = append(violations, fmt.Errorf("%w: name (identifier %q)", ErrEmptyField, builder.Identifier))
	}
	if builder.Identifier == "" {
		violations = append(violations, fmt.Errorf("%w: identifier (name %q)", ErrEmptyField, builder.Name))
	} else if !identifierPattern.MatchString(builder.Identifier) {
		violations = append(violations, fmt.Errorf("%w: %q", ErrInvalidIdentifier, builder.Identifier))
	}
	if builder.SearcherRPC == "" {
		violations = append(violations, fmt.Errorf("%w: searcher_rpc (identifier %q)", ErrEmptyField, builder.Identifier))
	}

	if err := validateURL(builder.Website); err != nil {
		violations = append(violations, fmt.Errorf("%w: website of %q: %v", ErrInvalidURL, builder.Identifier, err))
	}
	if err := validateURL(builder.SearcherRPC); err != nil {
		violations = append(violations, fmt.Errorf("%w: searcher_rpc of %q: %v", ErrInvalidURL, builder.Identifier, err))
	}
	if builder.MevShareRPC != "" {
		if err := validateURL(builder.MevShareRPC); err != nil {
			violations = append(violations, fmt.Errorf("%w: mev_share_rpc of %q: %v", ErrInvalidURL, builder.Identifier, err))
		}
	}

	return violations
}

// validateURL checks that a URL field parses and carries an http(s) scheme
// and a host.
func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("empty url")
	}

	parsed, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q in %q", parsed.Scheme, rawURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("missing host in %q", rawURL)
	}

	return nil
}
