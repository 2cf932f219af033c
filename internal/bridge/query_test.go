package bridge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalQuery_NilMap(t *testing.T) {
	assert.Equal(t, "", CanonicalQuery(nil))
}

func TestCanonicalQuery_EmptyMap(t *testing.T) {
	assert.Equal(t, "", CanonicalQuery(map[string][]string{}))
}

func TestCanonicalQuery_SingleFilter(t *testing.T) {
	query := map[string][]string{"filter": {`userName eq "bob"`}}

	// no additional encoding is performed here
	assert.Equal(t, `?filter=userName eq "bob"`, CanonicalQuery(query))
}

func TestCanonicalQuery_RepeatedValuesJoinedByComma(t *testing.T) {
	query := map[string][]string{"attributes": {"id", "userName"}}

	assert.Equal(t, "?attributes=id,userName", CanonicalQuery(query))
}

func TestCanonicalQuery_MultipleNames(t *testing.T) {
	query := map[string][]string{
		"startIndex": {"1"},
		"count":      {"10"},
		"attributes": {"id", "userName"},
	}

	got := CanonicalQuery(query)

	// map iteration order is unspecified, so compare as a token set
	require.True(t, strings.HasPrefix(got, "?"))
	tokens := strings.Split(strings.TrimPrefix(got, "?"), "&")
	assert.ElementsMatch(t, []string{"startIndex=1", "count=10", "attributes=id,userName"}, tokens)
}

func TestCanonicalQuery_EmptyValueList(t *testing.T) {
	query := map[string][]string{"excludedAttributes": {}}

	assert.Equal(t, "?excludedAttributes=", CanonicalQuery(query))
}
