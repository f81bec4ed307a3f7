package registry

import "strings"

// Signing indicates if a builder requires signing for bundles using the
// X-Flashbots-Signature header.
//
// All builders besides Flashbots have signing as optional or not supported.
// If provided, the builder may give better priority to signed bundles.
type Signing string

const (
	// SigningRequired means the bundle gets rejected if not signed.
	SigningRequired Signing = "Required"
	// SigningOptional means signing is optional and may give better priority.
	SigningOptional Signing = "Optional"
	// SigningNotSupported means the builder does not support signing.
	SigningNotSupported Signing = "NotSupported"
)

// IsRequired returns true if the builder requires signing for bundles.
func (s Signing) IsRequired() bool {
	return s == SigningRequired
}

// IsOptional returns true if the builder supports signing, but it is optional.
func (s Signing) IsOptional() bool {
	return s == SigningOptional
}

// IsNotSupported returns true if the builder does not support signing.
func (s Signing) IsNotSupported() bool {
	return s == SigningNotSupported
}

// extraHandlingIdentifiers is the fixed set of builders that need non-standard
// client configuration:
//   - buildernet: requires a custom cert or an insecure connection. See: https://buildernet.org/docs/api#example-request-
//   - bloxroute: requires an account to use the RPC.
var extraHandlingIdentifiers = map[string]bool{
	"buildernet": true,
	"bloxroute":  true,
}

// Builder represents a known MEV block builder with its details.
//
// Builders are created by Generate and must not be modified afterwards.
type Builder struct {
	// Name is the human-readable name of the builder.
	Name string
	// Identifier is the unique identifier for the builder (lowercase alphanumeric).
	Identifier string
	// Website is the website URL for the builder.
	Website string
	// SearcherRPC is the RPC endpoint for the searcher.
	SearcherRPC string
	// MevShareRPC is the RPC endpoint for MEV-Share. Empty if the builder does
	// not support it.
	MevShareRPC string
	// ExtraData is the extra data the builder puts into blocks it produces.
	// Spaces at the start and end are trimmed. Empty if unknown. Be aware that
	// everyone can impersonate the builder using this extra data.
	ExtraData string
	// Signing indicates if the builder requires signing for bundles.
	Signing Signing
	// AccountRequired is true if an account is required to use the RPC.
	AccountRequired bool
	// Blocks is the number of blocks landed by this builder over the
	// observation window.
	Blocks uint64

	// extraHandling overrides the default extra-handling classification when
	// set in the source document.
	extraHandling *bool
}

// RequiresExtraHandling returns true if the builder needs non-standard client
// configuration (e.g. custom TLS trust or a registered account).
func (b Builder) RequiresExtraHandling() bool {
	if b.extraHandling != nil {
		return *b.extraHandling
	}
	return extraHandlingIdentifiers[b.Identifier]
}

// List is a read-only list of builders.
//
// It must not be modified once created.
// It must not be instantiated directly, except for testing purposes.
type List []Builder

// Identifiers returns the builder identifiers in list order.
func (l List) Identifiers() []string {
	identifiers := make([]string, len(l))
	for i, builder := range l {
		identifiers[i] = builder.Identifier
	}

	return identifiers
}

// String returns a comma separated string of builder identifiers.
//
// Implements fmt.Stringer interface.
func (l List) String() string {
	return strings.Join(l.Identifiers(), ",")
}
