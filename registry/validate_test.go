package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flashbots/mev-builders/registry"
	"github.com/flashbots/mev-builders/registry/regtest"
)

func generationError(t *testing.T, builders ...regtest.BuilderDoc) *registry.ValidationError {
	t.Helper()

	_, err := registry.Generate(regtest.BuildersJSON(t, builders...), regtest.StatsJSON(t, nil))

	var validationErr *registry.ValidationError
	require.ErrorAs(t, err, &validationErr)

	return validationErr
}

func TestGenerateValidation(t *testing.T) {
	t.Parallel()

	t.Run("it rejects duplicate identifiers naming both builders", func(t *testing.T) {
		t.Parallel()

		first := regtest.ValidBuilderDoc("flashbots")
		second := regtest.ValidBuilderDoc("flashbots")
		second.Name = regtest.Str("Flashbots Again")
		second.Website = regtest.Str("https://again.test")
		second.SearcherRPC = regtest.Str("https://rpc.again.test")

		validationErr := generationError(t, first, second)

		require.Len(t, validationErr.Violations, 1)
		assert.ErrorIs(t, validationErr, registry.ErrDuplicateIdentifier)
		assert.Contains(t, validationErr.Error(), "Builder flashbots")
		assert.Contains(t, validationErr.Error(), "Flashbots Again")
	})

	t.Run("it rejects ambiguous extra data naming both identifiers", func(t *testing.T) {
		t.Parallel()

		first := regtest.ValidBuilderDocWithExtraData("alpha", "shared-tag")
		second := regtest.ValidBuilderDocWithExtraData("beta", "shared-tag")

		validationErr := generationError(t, first, second)

		assert.ErrorIs(t, validationErr, registry.ErrAmbiguousExtraData)
		assert.Contains(t, validationErr.Error(), "alpha")
		assert.Contains(t, validationErr.Error(), "beta")
		assert.Contains(t, validationErr.Error(), "shared-tag")
	})

	t.Run("it rejects identifiers with uppercase or underscores", func(t *testing.T) {
		t.Parallel()

		buildersJSON := []byte(`[{"name":"Flash Bots","identifier":"Flash_Bots","website":"https://fb.test",
			"searcher_rpc":"https://rpc.fb.test","signing":"Required","account_required":false}]`)

		_, err := registry.Generate(buildersJSON, []byte(`{}`))

		var validationErr *registry.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.ErrorIs(t, validationErr, registry.ErrInvalidIdentifier)
	})

	t.Run("it accepts a plain lowercase alphanumeric identifier", func(t *testing.T) {
		t.Parallel()

		_, err := registry.Generate(regtest.BuildersJSON(t, regtest.ValidBuilderDoc("flashbots")), []byte(`{}`))

		require.NoError(t, err)
	})

	t.Run("it rejects empty required fields", func(t *testing.T) {
		t.Parallel()

		doc := regtest.ValidBuilderDoc("flashbots")
		doc.Name = regtest.Str("")

		validationErr := generationError(t, doc)

		assert.ErrorIs(t, validationErr, registry.ErrEmptyField)
	})

	t.Run("it rejects malformed urls", func(t *testing.T) {
		t.Parallel()

		doc := regtest.ValidBuilderDoc("flashbots")
		doc.Website = regtest.Str("not-a-url")

		validationErr := generationError(t, doc)

		assert.ErrorIs(t, validationErr, registry.ErrInvalidURL)
	})

	t.Run("it rejects urls with a non-http scheme", func(t *testing.T) {
		t.Parallel()

		doc := regtest.ValidBuilderDoc("flashbots")
		doc.SearcherRPC = regtest.Str("ftp://rpc.flashbots.test")

		validationErr := generationError(t, doc)

		assert.ErrorIs(t, validationErr, registry.ErrInvalidURL)
	})

	t.Run("it validates the mev share rpc only when present", func(t *testing.T) {
		t.Parallel()

		doc := regtest.ValidBuilderDoc("flashbots")
		doc.MevShareRPC = regtest.Str("://broken")

		validationErr := generationError(t, doc)

		assert.ErrorIs(t, validationErr, registry.ErrInvalidURL)
	})

	t.Run("it rejects duplicate names, websites and rpc endpoints", func(t *testing.T) {
		t.Parallel()

		first := regtest.ValidBuilderDoc("alpha")
		second := regtest.ValidBuilderDoc("beta")
		second.Name = first.Name
		second.Website = first.Website
		second.SearcherRPC = first.SearcherRPC

		validationErr := generationError(t, first, second)

		assert.ErrorIs(t, validationErr, registry.ErrDuplicateName)
		assert.ErrorIs(t, validationErr, registry.ErrDuplicateWebsite)
		assert.ErrorIs(t, validationErr, registry.ErrDuplicateRPC)
	})

	t.Run("it collects every violation instead of stopping at the first", func(t *testing.T) {
		t.Parallel()

		first := regtest.ValidBuilderDoc("alpha")
		first.Website = regtest.Str("not-a-url")
		second := regtest.ValidBuilderDoc("beta")
		second.Name = regtest.Str("")
		third := regtest.ValidBuilderDocWithExtraData("gamma", "tag")
		fourth := regtest.ValidBuilderDocWithExtraData("delta", "tag")

		validationErr := generationError(t, first, second, third, fourth)

		assert.ErrorIs(t, validationErr, registry.ErrInvalidURL)
		assert.ErrorIs(t, validationErr, registry.ErrEmptyField)
		assert.ErrorIs(t, validationErr, registry.ErrAmbiguousExtraData)
		assert.GreaterOrEqual(t, len(validationErr.Violations), 3)
	})
}
