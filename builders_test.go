package mevbuilders_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mevbuilders "github.com/flashbots/mev-builders"
)

func TestMinFiveBuildersArePresent(t *testing.T) {
	assert.GreaterOrEqual(t, len(mevbuilders.All()), 5, "there should be at least 5 builders defined")
}

func TestActiveBuildersSortedByBlocks(t *testing.T) {
	active := mevbuilders.Active()

	for i := 1; i < len(active); i++ {
		assert.GreaterOrEqual(t, active[i-1].Blocks, active[i].Blocks,
			"builders should be sorted by blocks in descending order: %s (%d blocks) comes before %s (%d blocks)",
			active[i-1].Name, active[i-1].Blocks, active[i].Name, active[i].Blocks)
	}
}

func TestActiveBuildersHaveBlocks(t *testing.T) {
	for _, builder := range mevbuilders.Active() {
		assert.GreaterOrEqual(t, builder.Blocks, uint64(1), "active builder %s should have landed blocks", builder.Identifier)
	}
	for _, builder := range mevbuilders.Other() {
		assert.Equal(t, uint64(0), builder.Blocks, "inactive builder %s should have no landed blocks", builder.Identifier)
	}
}

func TestRequiredFieldsNotEmpty(t *testing.T) {
	for _, builder := range mevbuilders.All() {
		assert.NotEmpty(t, builder.Name, "builder name should not be empty")
		assert.NotEmpty(t, builder.Identifier, "builder identifier should not be empty")
		assert.NotEmpty(t, builder.Website, "builder website should not be empty")
		assert.NotEmpty(t, builder.SearcherRPC, "builder searcher RPC should not be empty")
	}
}

func TestIdentifierFormat(t *testing.T) {
	for _, builder := range mevbuilders.All() {
		for _, c := range builder.Identifier {
			assert.True(t, (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9'),
				"builder identifier should be lowercase alphanumeric: %s", builder.Identifier)
		}
	}
}

func TestURLsValidFormat(t *testing.T) {
	hasScheme := func(u string) bool {
		return strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://")
	}

	for _, builder := range mevbuilders.All() {
		assert.True(t, hasScheme(builder.Website), "builder website should start with 'https://' or 'http://': %s", builder.Website)
		assert.True(t, hasScheme(builder.SearcherRPC), "builder searcher_rpc should start with 'https://' or 'http://': %s", builder.SearcherRPC)
		if builder.MevShareRPC != "" {
			assert.True(t, hasScheme(builder.MevShareRPC), "builder mev_share_rpc should start with 'https://' or 'http://': %s", builder.MevShareRPC)
		}
	}
}

func TestUniqueFields(t *testing.T) {
	names := make(map[string]bool)
	identifiers := make(map[string]bool)
	websites := make(map[string]bool)
	searcherRPCs := make(map[string]bool)
	mevShareRPCs := make(map[string]bool)
	extraData := make(map[string]bool)

	for _, builder := range mevbuilders.All() {
		assert.False(t, names[builder.Name], "duplicate builder name found: %s", builder.Name)
		names[builder.Name] = true

		assert.False(t, identifiers[builder.Identifier], "duplicate builder identifier found: %s", builder.Identifier)
		identifiers[builder.Identifier] = true

		assert.False(t, websites[builder.Website], "duplicate builder website found: %s", builder.Website)
		websites[builder.Website] = true

		assert.False(t, searcherRPCs[builder.SearcherRPC], "duplicate searcher RPC found: %s", builder.SearcherRPC)
		searcherRPCs[builder.SearcherRPC] = true

		if builder.MevShareRPC != "" {
			assert.False(t, mevShareRPCs[builder.MevShareRPC], "duplicate MEV share RPC found: %s", builder.MevShareRPC)
			mevShareRPCs[builder.MevShareRPC] = true
		}

		if builder.ExtraData != "" {
			assert.False(t, extraData[builder.ExtraData], "duplicate extra data found: %s", builder.ExtraData)
			extraData[builder.ExtraData] = true
		}
	}
}

func TestPartitionCompleteness(t *testing.T) {
	require.Equal(t, len(mevbuilders.All()), len(mevbuilders.Active())+len(mevbuilders.Other()))

	seen := make(map[string]int)
	for _, builder := range mevbuilders.Active() {
		seen[builder.Identifier]++
	}
	for _, builder := range mevbuilders.Other() {
		seen[builder.Identifier]++
	}
	for identifier, count := range seen {
		assert.Equal(t, 1, count, "builder %s should appear in exactly one table", identifier)
	}
}

func TestLookupByIdentifier(t *testing.T) {
	flashbots, ok := mevbuilders.Get("flashbots")
	require.True(t, ok)
	assert.Equal(t, "Flashbots", flashbots.Name)
	assert.True(t, flashbots.Signing.IsRequired())

	_, ok = mevbuilders.Get("unknown")
	assert.False(t, ok)
}

func TestRequiresExtraHandling(t *testing.T) {
	assert.True(t, mevbuilders.RequiresExtraHandling("buildernet"))
	assert.True(t, mevbuilders.RequiresExtraHandling("bloxroute"))
	assert.False(t, mevbuilders.RequiresExtraHandling("flashbots"))
	assert.False(t, mevbuilders.RequiresExtraHandling("unknown"))
}
