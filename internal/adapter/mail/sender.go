// Package mail submits HTML e-mail over authenticated SMTP.
package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	netmail "net/mail"
	"net/smtp"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/safetyplan/actionplan/internal/config"
)

// Sender performs exactly one SMTP submission per Send call. It never
// retries.
type Sender struct {
	log      *slog.Logger
	host     string
	addr     string
	starttls bool
	from     netmail.Address
	auth     smtp.Auth
	timeout  time.Duration
	now      func() time.Time

	dial func(ctx context.Context) (net.Conn, error)
}

// NewSender creates a Sender from validated mail settings.
func NewSender(logger *slog.Logger, cfg config.MailConfig) *Sender {
	s := &Sender{
		log:      logger.With("adapter", "mail"),
		host:     cfg.Host,
		addr:     net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		starttls: cfg.Security == config.MailSecuritySTARTTLS,
		from:     netmail.Address{Name: cfg.FromName, Address: cfg.Sender},
		auth:     smtp.PlainAuth("", cfg.Sender, cfg.Password, cfg.Host),
		timeout:  cfg.Timeout,
		now:      time.Now,
	}
	s.dial = s.dialServer
	return s
}

// Send delivers one HTML message to every address in to.
func (s *Sender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return errors.New("mail: no recipients")
	}

	msg, err := message{
		From:      s.from,
		To:        to,
		Subject:   subject,
		HTMLBody:  htmlBody,
		Date:      s.now(),
		MessageID: uuid.NewString() + "@" + messageIDDomain(s.from.Address),
	}.bytes()
	if err != nil {
		return fmt.Errorf("mail: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	conn, err := s.dial(ctx)
	if err != nil {
		return fmt.Errorf("mail: dial %s: %w", s.addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			return fmt.Errorf("mail: set deadline: %w", err)
		}
	}
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := s.submit(conn, to, msg); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("mail: %w (%v)", ctxErr, err)
		}
		return fmt.Errorf("mail: %w", err)
	}

	s.log.DebugContext(ctx, "message submitted", slog.Int("recipients", len(to)))
	return nil
}

func (s *Sender) submit(conn net.Conn, to []string, msg []byte) error {
	c, err := smtp.NewClient(conn, s.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("greeting: %w", err)
	}
	defer c.Close()

	if s.starttls {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return errors.New("server does not support STARTTLS")
		}
		if err := c.StartTLS(&tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if err := c.Auth(s.auth); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Mail(s.from.Address); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	for _, rcpt := range to {
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("end data: %w", err)
	}

	return c.Quit()
}

// dialServer opens the transport: implicit TLS unless STARTTLS is configured.
func (s *Sender) dialServer(ctx context.Context) (net.Conn, error) {
	d := &net.Dialer{Timeout: s.timeout}
	if s.starttls {
		return d.DialContext(ctx, "tcp", s.addr)
	}
	td := &tls.Dialer{
		NetDialer: d,
		Config:    &tls.Config{ServerName: s.host, MinVersion: tls.VersionTLS12},
	}
	return td.DialContext(ctx, "tcp", s.addr)
}
