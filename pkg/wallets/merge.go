package wallets

// Merge unions two wallet lists by name. Names keep their first-seen order,
// base first. When a name appears in both lists the overlay wallet is laid
// over the base wallet: its non-empty fields and non-nil facets win, the
// rest is taken from base. Within one list the first wallet of a name is used.
func Merge(base, overlay []Wallet) []Wallet {
	byName := func(list []Wallet) map[string]Wallet {
		m := make(map[string]Wallet, len(list))
		for _, w := range list {
			if _, ok := m[w.Name]; !ok {
				m[w.Name] = w
			}
		}
		return m
	}
	baseByName := byName(base)
	overlayByName := byName(overlay)

	seen := make(map[string]struct{}, len(base)+len(overlay))
	merged := make([]Wallet, 0, len(base)+len(overlay))

	for _, list := range [][]Wallet{base, overlay} {
		for _, w := range list {
			if _, ok := seen[w.Name]; ok {
				continue
			}
			seen[w.Name] = struct{}{}

			b, inBase := baseByName[w.Name]
			o, inOverlay := overlayByName[w.Name]
			switch {
			case inBase && inOverlay:
				merged = append(merged, overlayWallet(b, o))
			case inBase:
				merged = append(merged, b.Clone())
			default:
				merged = append(merged, o.Clone())
			}
		}
	}
	return merged
}

// overlayWallet lays o over b field by field.
func overlayWallet(b, o Wallet) Wallet {
	out := b.Clone()
	if o.ImageURL != "" {
		out.ImageURL = o.ImageURL
	}
	if o.AboutURL != "" {
		out.AboutURL = o.AboutURL
	}
	if o.TonDNS != "" {
		out.TonDNS = o.TonDNS
	}
	oc := o.Clone()
	if oc.Remote != nil {
		out.Remote = oc.Remote
	}
	if oc.Injectable != nil {
		out.Injectable = oc.Injectable
	}
	return out
}
