package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/walletlist/internal/cmd/table"
	"github.com/agentstation/walletlist/pkg/wallets"
)

func sampleWallets() []wallets.Wallet {
	return []wallets.Wallet{
		{
			Name:     "Tonkeeper",
			ImageURL: "https://tonkeeper.com/icon.png",
			AboutURL: "https://tonkeeper.com",
			Remote: &wallets.RemoteBridge{
				BridgeURL:     "https://bridge.tonapi.io/bridge",
				UniversalLink: "https://app.tonkeeper.com/ton-connect",
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "table", want: FormatTable},
		{in: "JSON", want: FormatJSON},
		{in: "yaml", want: FormatYAML},
		{in: "wide", want: FormatWide},
		{in: "", want: ""},
		{in: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectFormat_Explicit(t *testing.T) {
	assert.Equal(t, FormatYAML, DetectFormat("YAML"))
}

func TestFormatWallets_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatWallets(&buf, sampleWallets(), FormatJSON))

	var decoded []wallets.Wallet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleWallets(), decoded)
}

func TestFormatWallets_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatWallets(&buf, sampleWallets(), FormatYAML))

	assert.Contains(t, buf.String(), "name: Tonkeeper")
	assert.Contains(t, buf.String(), "bridgeUrl: https://bridge.tonapi.io/bridge")

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Len(t, decoded, 1)
}

func TestFormatWallets_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatWallets(&buf, sampleWallets(), FormatTable))

	out := buf.String()
	assert.Contains(t, strings.ToUpper(out), "NAME")
	assert.Contains(t, out, "Tonkeeper")
	assert.NotContains(t, out, "https://bridge.tonapi.io/bridge")

	buf.Reset()
	require.NoError(t, FormatWallets(&buf, sampleWallets(), FormatWide))
	assert.Contains(t, buf.String(), "https://bridge.tonapi.io/bridge")
}

func TestFormatWallet_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, FormatWallet(&buf, sampleWallets()[0], FormatTable))
	assert.Contains(t, buf.String(), "https://app.tonkeeper.com/ton-connect")
}

func TestTableFormatter_Struct(t *testing.T) {
	type info struct {
		Version   string `json:"version"`
		GoVersion string `json:"go_version"`
	}

	var buf bytes.Buffer
	require.NoError(t, (&TableFormatter{}).Format(&buf, info{Version: "1.0.0", GoVersion: "go1.24"}))
	assert.Contains(t, buf.String(), "1.0.0")

	data := structToTableData(info{})
	require.NotNil(t, data)
	assert.Equal(t, "Go Version", data.Rows[1][0])
}

func TestTableFormatter_Data(t *testing.T) {
	var buf bytes.Buffer
	err := (&TableFormatter{}).Format(&buf, table.Data{
		Headers:         []string{"A", "B"},
		Rows:            [][]string{{"1", "2"}},
		ColumnAlignment: []table.Align{table.AlignRight, table.AlignDefault},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1")
}
