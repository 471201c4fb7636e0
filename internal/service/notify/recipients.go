package notify

import (
	"github.com/safetyplan/actionplan/internal/domain"
)

// BuildRecipients returns the delivery list for a batch: owner, co-owner,
// then admin observers. Addresses are trimmed and lower-cased, anything
// without an '@' is dropped, and duplicates keep their first position.
func BuildRecipients(key Key, admins []string) []string {
	candidates := make([]string, 0, 2+len(admins))
	candidates = append(candidates, key.Responsible, key.CoResponsible)
	candidates = append(candidates, admins...)

	seen := make(map[string]struct{}, len(candidates))
	var out []string
	for _, c := range candidates {
		addr := domain.NormalizeEmail(c)
		if !domain.IsPlausibleEmail(addr) {
			continue
		}
		if _, dup := seen[addr]; dup {
			continue
		}
		seen[addr] = struct{}{}
		out = append(out, addr)
	}
	return out
}
