package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // notify.timezone must resolve on hosts without zoneinfo

	"github.com/safetyplan/actionplan/internal/domain"
)

// Validate performs the checks shared by every binary. It must be called
// after loading; Load calls it automatically.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case StoreBackendPostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for the postgres store backend")
		}
	case StoreBackendSheet:
		if strings.TrimSpace(c.Store.SheetDir) == "" {
			return fmt.Errorf("store.sheet_dir is required for the sheet store backend")
		}
	default:
		return fmt.Errorf("store.backend must be %q or %q (got %q)", StoreBackendPostgres, StoreBackendSheet, c.Store.Backend)
	}

	if c.Catalog.CacheTTL < 0 {
		return fmt.Errorf("catalog.cache_ttl must be >= 0 (got %v)", c.Catalog.CacheTTL)
	}
	if c.Catalog.CacheSize <= 0 {
		return fmt.Errorf("catalog.cache_size must be > 0 (got %d)", c.Catalog.CacheSize)
	}

	loc, err := time.LoadLocation(c.Notify.Timezone)
	if err != nil {
		return fmt.Errorf("notify.timezone: %w", err)
	}
	c.Notify.Location = loc

	return nil
}

// ValidateServer checks settings required only by the HTTP server.
func (c *Config) ValidateServer() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	return nil
}

// ValidateNotifier checks settings required by the reminder run. All missing
// mail settings are reported in a single error.
func (c *Config) ValidateNotifier() error {
	if err := c.Mail.validate(); err != nil {
		return fmt.Errorf("mail: %w", err)
	}
	return nil
}

func (m *MailConfig) validate() error {
	var missing []string
	if strings.TrimSpace(m.Host) == "" {
		missing = append(missing, "host")
	}
	if m.Port <= 0 {
		missing = append(missing, "port")
	}
	if strings.TrimSpace(m.Sender) == "" {
		missing = append(missing, "sender")
	}
	if m.Password == "" {
		missing = append(missing, "password")
	}

	admins := ParseRecipientList(m.AdminRecipientsRaw)
	if len(admins) == 0 {
		missing = append(missing, "admin_recipients")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %s", strings.Join(missing, ", "))
	}

	if m.Port > 65535 {
		return fmt.Errorf("port must be <= 65535 (got %d)", m.Port)
	}
	switch m.Security {
	case MailSecurityTLS, MailSecuritySTARTTLS:
	default:
		return fmt.Errorf("security must be %q or %q (got %q)", MailSecurityTLS, MailSecuritySTARTTLS, m.Security)
	}
	if !domain.IsPlausibleEmail(m.Sender) {
		return fmt.Errorf("sender must be an e-mail address (got %q)", m.Sender)
	}
	for _, a := range admins {
		if !domain.IsPlausibleEmail(a) {
			return fmt.Errorf("admin_recipients: %q is not an e-mail address", a)
		}
	}

	m.AdminRecipients = admins
	return nil
}

// ParseRecipientList splits a comma- or semicolon-separated address list,
// trimming blanks. It does not validate addresses.
func ParseRecipientList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ';' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
