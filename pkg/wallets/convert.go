package wallets

// FromDTO builds the normalized descriptor of one catalog record.
// An "sse" entry yields the Remote facet and a "js" entry the Injectable
// facet, whose state comes from inj. When a record lists several entries of
// the same type the last one wins. Entries of other types are ignored, so a
// record with only unknown bridges yields a Wallet with no facet at all.
func FromDTO(dto WalletDTO, inj Injector) Wallet {
	if inj == nil {
		inj = NoInjector{}
	}

	var (
		remote     *RemoteBridge
		injectable *InjectableBridge
	)
	for _, b := range dto.Bridge {
		switch b.Type {
		case BridgeTypeSSE:
			remote = &RemoteBridge{
				BridgeURL:     b.URL,
				UniversalLink: dto.UniversalURL,
				DeepLink:      dto.DeepLink,
			}
		case BridgeTypeJS:
			injectable = &InjectableBridge{
				JSBridgeKey: b.Key,
				Injected:    inj.IsWalletInjected(b.Key),
				Embedded:    inj.IsInsideWalletBrowser(b.Key),
			}
		}
	}

	return Wallet{
		Name:       dto.Name,
		ImageURL:   dto.Image,
		AboutURL:   dto.AboutURL,
		TonDNS:     dto.TonDNS,
		Remote:     remote,
		Injectable: injectable,
	}
}

// FromDTOs converts a validated catalog response, preserving order.
func FromDTOs(dtos []WalletDTO, inj Injector) []Wallet {
	out := make([]Wallet, 0, len(dtos))
	for _, dto := range dtos {
		out = append(out, FromDTO(dto, inj))
	}
	return out
}
