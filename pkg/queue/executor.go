package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/smtp"
	"time"

	"github.com/sourcehut/todosrht-core/ent"
	"github.com/sourcehut/todosrht-core/pkg/config"
	"github.com/sourcehut/todosrht-core/pkg/webhook"
)

// SubscriptionLookup resolves a webhook outbox entry's target (a
// WebhookSubscription id) to its URL and signing secret at delivery time,
// so a subscription rotated or revoked between enqueue and delivery is
// honored.
type SubscriptionLookup interface {
	LookupWebhookTarget(ctx context.Context, subscriptionID string) (url string, secret []byte, found bool, err error)
}

// Executor is the production DeliveryExecutor: it sends "mail" entries over
// SMTP and "webhook" entries as signed HTTP POSTs.
type Executor struct {
	smtp     config.SMTPConfig
	lookup   SubscriptionLookup
	httpc    *http.Client
	fromAddr string
}

// NewExecutor builds an Executor.
func NewExecutor(smtpCfg config.SMTPConfig, fromAddr string, lookup SubscriptionLookup) *Executor {
	return &Executor{
		smtp:     smtpCfg,
		lookup:   lookup,
		httpc:    &http.Client{Timeout: 10 * time.Second},
		fromAddr: fromAddr,
	}
}

// Deliver dispatches entry according to its Kind.
func (e *Executor) Deliver(ctx context.Context, entry *ent.OutboxEntry) *DeliveryResult {
	switch entry.Kind {
	case "mail":
		return e.deliverMail(ctx, entry)
	case "webhook":
		return e.deliverWebhook(ctx, entry)
	default:
		return &DeliveryResult{Delivered: false, Err: fmt.Errorf("unknown outbox kind %q", entry.Kind)}
	}
}

func (e *Executor) deliverMail(_ context.Context, entry *ent.OutboxEntry) *DeliveryResult {
	raw, err := json.Marshal(entry.Payload)
	if err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}
	var env struct {
		From            string
		To              string
		Subject         string
		MessageID       string
		InReplyTo       string
		ReplyTo         string
		ListUnsubscribe string
		Body            string
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}

	addr := fmt.Sprintf("%s:%d", e.smtp.Host, e.smtp.Port)
	var auth smtp.Auth
	if e.smtp.User != "" {
		auth = smtp.PlainAuth("", e.smtp.User, e.smtp.Password, e.smtp.Host)
	}

	msg := buildRFC822Message(env.From, env.To, env.Subject, env.MessageID, env.InReplyTo, env.ReplyTo, env.ListUnsubscribe, env.Body)
	if err := smtp.SendMail(addr, auth, env.From, []string{env.To}, msg); err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}
	return &DeliveryResult{Delivered: true}
}

func buildRFC822Message(from, to, subject, messageID, inReplyTo, replyTo, listUnsubscribe, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	if messageID != "" {
		fmt.Fprintf(&buf, "Message-ID: %s\r\n", messageID)
	}
	if inReplyTo != "" {
		fmt.Fprintf(&buf, "In-Reply-To: %s\r\n", inReplyTo)
		fmt.Fprintf(&buf, "References: %s\r\n", inReplyTo)
	}
	if replyTo != "" {
		fmt.Fprintf(&buf, "Reply-To: %s\r\n", replyTo)
	}
	if listUnsubscribe != "" {
		fmt.Fprintf(&buf, "List-Unsubscribe: %s\r\n", listUnsubscribe)
	}
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}

func (e *Executor) deliverWebhook(ctx context.Context, entry *ent.OutboxEntry) *DeliveryResult {
	url, secret, found, err := e.lookup.LookupWebhookTarget(ctx, entry.Target)
	if err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}
	if !found {
		// Subscription was revoked since this entry was enqueued; nothing
		// left to deliver to, but that isn't a transient failure worth
		// retrying.
		return &DeliveryResult{Delivered: true}
	}

	body, err := json.Marshal(entry.Payload)
	if err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(webhook.SignatureHeader, webhook.Sign(secret, body))

	resp, err := e.httpc.Do(req)
	if err != nil {
		return &DeliveryResult{Delivered: false, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &DeliveryResult{Delivered: false, Err: fmt.Errorf("webhook endpoint returned %d", resp.StatusCode)}
	}
	return &DeliveryResult{Delivered: true}
}
