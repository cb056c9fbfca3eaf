package wallets_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/wallets"
)

func TestSchemaCompiles(t *testing.T) {
	sch, err := wallets.Schema()
	require.NoError(t, err)
	require.NotNil(t, sch)
}

func TestDecode_Testdata(t *testing.T) {
	body, err := os.ReadFile("testdata/wallets.json")
	require.NoError(t, err)

	dtos, err := wallets.Decode(body)
	require.NoError(t, err)
	require.Len(t, dtos, 3)

	assert.Equal(t, "Tonkeeper", dtos[0].Name)
	assert.Equal(t, "tonkeeper.ton", dtos[0].TonDNS)
	assert.Equal(t, "tonkeeper-tc://", dtos[0].DeepLink)
	require.Len(t, dtos[0].Bridge, 2)
	assert.Equal(t, wallets.BridgeDTO{Type: "sse", URL: "https://bridge.tonapi.io/bridge"}, dtos[0].Bridge[0])
	assert.Equal(t, wallets.BridgeDTO{Type: "js", Key: "tonkeeper"}, dtos[0].Bridge[1])
}

func TestDecode_Valid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "sse with universal url",
			body: `[{"name":"A","image":"i","about_url":"a","bridge":[{"type":"sse","url":"u"}],"universal_url":"uu"}]`,
		},
		{
			name: "js with key",
			body: `[{"name":"B","image":"i","about_url":"a","bridge":[{"type":"js","key":"k"}]}]`,
		},
		{
			name: "unknown bridge type only",
			body: `[{"name":"C","image":"i","about_url":"a","bridge":[{"type":"ws","url":"wss://x"}]}]`,
		},
		{
			name: "extra fields are tolerated",
			body: `[{"name":"D","app_name":"d","image":"i","about_url":"a","platforms":["ios"],"bridge":[{"type":"js","key":"d"}]}]`,
		},
		{
			name: "empty catalog",
			body: `[]`,
		},
		{
			name: "null deep link on sse wallet",
			body: `[{"name":"E","image":"i","about_url":"a","universal_url":"uu","deepLink":null,"bridge":[{"type":"sse","url":"u"}]}]`,
		},
		{
			name: "null optional fields on js wallet",
			body: `[{"name":"F","image":"i","about_url":"a","tondns":null,"universal_url":null,"deepLink":null,"bridge":[{"type":"js","key":"f"}]}]`,
		},
		{
			name: "null url on unknown bridge type",
			body: `[{"name":"G","image":"i","about_url":"a","bridge":[{"type":"ws","url":null}]}]`,
		},
		{
			name: "null key on sse bridge",
			body: `[{"name":"H","image":"i","about_url":"a","universal_url":"uu","bridge":[{"type":"sse","url":"u","key":null}]}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := wallets.Decode([]byte(tt.body))
			assert.NoError(t, err)
		})
	}
}

func TestDecode_NullOptionalFieldsDecodeEmpty(t *testing.T) {
	body := `[{"name":"E","image":"i","about_url":"a","tondns":null,"universal_url":"uu","deepLink":null,"bridge":[{"type":"sse","url":"u","key":null}]}]`

	dtos, err := wallets.Decode([]byte(body))
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Empty(t, dtos[0].TonDNS)
	assert.Empty(t, dtos[0].DeepLink)
	assert.Equal(t, "uu", dtos[0].UniversalURL)
	require.Len(t, dtos[0].Bridge, 1)
	assert.Equal(t, "u", dtos[0].Bridge[0].URL)
	assert.Empty(t, dtos[0].Bridge[0].Key)
}

func TestDecode_Invalid(t *testing.T) {
	const good = `{"name":"ok","image":"i","about_url":"a","bridge":[{"type":"js","key":"ok"}]}`

	tests := []struct {
		name string
		body string
	}{
		{name: "object instead of array", body: `{"name":"A"}`},
		{name: "missing name", body: `[{"image":"i","about_url":"a","bridge":[{"type":"js","key":"k"}]}]`},
		{name: "empty image", body: `[{"name":"A","image":"","about_url":"a","bridge":[{"type":"js","key":"k"}]}]`},
		{name: "missing about_url", body: `[{"name":"A","image":"i","bridge":[{"type":"js","key":"k"}]}]`},
		{name: "missing bridge", body: `[{"name":"A","image":"i","about_url":"a"}]`},
		{name: "empty bridge", body: `[{"name":"A","image":"i","about_url":"a","bridge":[]}]`},
		{name: "bridge entry without type", body: `[{"name":"A","image":"i","about_url":"a","bridge":[{"url":"u"}]}]`},
		{name: "bridge entry not an object", body: `[{"name":"A","image":"i","about_url":"a","bridge":[null]}]`},
		{name: "sse without universal_url", body: `[{"name":"A","image":"i","about_url":"a","bridge":[{"type":"sse","url":"u"}]}]`},
		{name: "sse with empty universal_url", body: `[{"name":"A","image":"i","about_url":"a","universal_url":"","bridge":[{"type":"sse","url":"u"}]}]`},
		{name: "sse without url", body: `[{"name":"A","image":"i","about_url":"a","universal_url":"uu","bridge":[{"type":"sse"}]}]`},
		{name: "sse with empty url", body: `[{"name":"A","image":"i","about_url":"a","universal_url":"uu","bridge":[{"type":"sse","url":""}]}]`},
		{name: "js without key", body: `[{"name":"B","image":"i","about_url":"a","bridge":[{"type":"js"}]}]`},
		{name: "sse with null url", body: `[{"name":"A","image":"i","about_url":"a","universal_url":"uu","bridge":[{"type":"sse","url":null}]}]`},
		{name: "sse with null universal_url", body: `[{"name":"A","image":"i","about_url":"a","universal_url":null,"bridge":[{"type":"sse","url":"u"}]}]`},
		{name: "js with null key", body: `[{"name":"B","image":"i","about_url":"a","bridge":[{"type":"js","key":null}]}]`},
		{name: "js with empty key", body: `[{"name":"B","image":"i","about_url":"a","bridge":[{"type":"js","key":""}]}]`},
		{name: "one bad record rejects all", body: `[` + good + `,{"name":"B","image":"i","about_url":"a","bridge":[{"type":"js"}]}]`},
		{name: "element not an object", body: `[` + good + `, 42]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dtos, err := wallets.Decode([]byte(tt.body))
			require.Error(t, err)
			assert.Nil(t, dtos)
			assert.True(t, errors.IsValidationError(err), "expected validation error, got %v", err)
		})
	}
}

func TestDecode_NotJSON(t *testing.T) {
	_, err := wallets.Decode([]byte(`<html>rate limited</html>`))
	require.Error(t, err)

	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.False(t, errors.IsValidationError(err))
}

func TestValidateDocument_ReportsLocation(t *testing.T) {
	doc := []any{
		map[string]any{
			"name":      "A",
			"image":     "i",
			"about_url": "a",
			"bridge":    []any{map[string]any{"type": "js"}},
		},
	}

	err := wallets.ValidateDocument(doc)
	require.Error(t, err)

	var verr *errors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Field, "/0")
}
