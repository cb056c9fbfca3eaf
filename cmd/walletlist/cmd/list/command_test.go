package list

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/walletlist"
	"github.com/agentstation/walletlist/cmd/application"
	"github.com/agentstation/walletlist/pkg/errors"
	"github.com/agentstation/walletlist/pkg/injected"
	"github.com/agentstation/walletlist/pkg/logging"
	"github.com/agentstation/walletlist/pkg/wallets"
)

const catalog = `[
  {"name":"Tonkeeper","image":"https://tonkeeper.com/icon.png","about_url":"https://tonkeeper.com",
   "universal_url":"https://app.tonkeeper.com/ton-connect",
   "bridge":[{"type":"sse","url":"https://bridge.tonapi.io/bridge"}]}
]`

type fetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f fetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

func newApp(format string, f fetcherFunc) *application.Mock {
	return &application.Mock{
		Format: format,
		ManagerFunc: func(opts ...walletlist.Option) (walletlist.Manager, error) {
			base := []walletlist.Option{
				walletlist.WithFetcher(f),
				walletlist.WithLogger(logging.NewNopLogger()),
			}
			return walletlist.New(append(base, opts...)...)
		},
	}
}

func serve(body string) fetcherFunc {
	return func(context.Context, string) ([]byte, error) { return []byte(body), nil }
}

func TestListCommand_JSON(t *testing.T) {
	cmd := NewCommand(newApp("json", serve(catalog)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var list []wallets.Wallet
	require.NoError(t, json.Unmarshal(out.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Tonkeeper", list[0].Name)
	require.NotNil(t, list[0].Remote)
	assert.Equal(t, "https://bridge.tonapi.io/bridge", list[0].Remote.BridgeURL)
}

func TestListCommand_Table(t *testing.T) {
	cmd := NewCommand(newApp("table", serve(catalog)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Tonkeeper")
}

func TestListCommand_URLOverride(t *testing.T) {
	var requested string
	f := func(_ context.Context, url string) ([]byte, error) {
		requested = url
		return []byte(catalog), nil
	}

	cmd := NewCommand(newApp("json", f))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--url", "https://example.com/wallets.json"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "https://example.com/wallets.json", requested)
}

func TestListCommand_InvalidFormat(t *testing.T) {
	cmd := NewCommand(newApp("xml", serve(catalog)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestListCommand_FetchError(t *testing.T) {
	cmd := NewCommand(newApp("json", serve(`{"not":"a list"}`)))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.IsFetchWallets(err))
}

func TestListCommand_Filters(t *testing.T) {
	const two = `[
	  {"name":"Tonkeeper","image":"i","about_url":"a","universal_url":"uu","bridge":[{"type":"sse","url":"u"}]},
	  {"name":"Tonhub","image":"i","about_url":"a","bridge":[{"type":"js","key":"tonhub"}]}
	]`

	cmd := NewCommand(newApp("json", serve(two)))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--bridge", "js"})

	require.NoError(t, cmd.Execute())

	var list []wallets.Wallet
	require.NoError(t, json.Unmarshal(out.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Tonhub", list[0].Name)
}

func TestListCommand_EmbeddedFilter(t *testing.T) {
	const two = `[
	  {"name":"Tonkeeper","image":"i","about_url":"a","bridge":[{"type":"js","key":"tonkeeper"}]},
	  {"name":"Tonhub","image":"i","about_url":"a","bridge":[{"type":"js","key":"tonhub"}]}
	]`

	reg := injected.NewRegistry(
		injected.WithProviders(
			injected.Provider{BridgeKey: "tonkeeper", Name: "Tonkeeper"},
			injected.Provider{BridgeKey: "tonhub", Name: "Tonhub"},
		),
		injected.WithEmbedding("tonhub"),
	)
	app := &application.Mock{
		Format: "json",
		ManagerFunc: func(opts ...walletlist.Option) (walletlist.Manager, error) {
			base := []walletlist.Option{
				walletlist.WithFetcher(serve(two)),
				walletlist.WithInjector(reg),
				walletlist.WithLogger(logging.NewNopLogger()),
			}
			return walletlist.New(append(base, opts...)...)
		},
	}

	cmd := NewCommand(app)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--embedded"})

	require.NoError(t, cmd.Execute())

	var list []wallets.Wallet
	require.NoError(t, json.Unmarshal(out.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Tonhub", list[0].Name)
	assert.True(t, list[0].IsEmbedded())
}
