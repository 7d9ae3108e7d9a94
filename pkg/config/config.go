package config

// Config is the umbrella configuration object for the tracker service,
// loaded once at startup from the process environment (see loader.go) and
// passed by value/pointer to the services and handlers that need it.
type Config struct {
	// Origin is this instance's own externally-visible base URL, used to
	// build absolute links in notification emails and webhook payloads.
	Origin string

	// PostingDomain is the mail domain tickets/comments can be filed
	// against by reply (e.g. "tickets.example.org"), used to parse the
	// tracker/ticket scoped id out of an inbound mail-in address.
	PostingDomain string

	// NotifyFrom is the From address on outbound notification email.
	NotifyFrom string

	SMTP SMTPConfig

	// SigningKey is the HMAC key export dumps are signed with (and import
	// signatures verified against). When empty, exports are produced
	// unsigned and every imported row classifies as unauthenticated.
	SigningKey string

	// WebhooksBrokerURL is the connection string for the queue backing
	// webhook/email outbox delivery (see pkg/queue).
	WebhooksBrokerURL string

	// OAuthClientID/OAuthClientSecret authenticate this instance against
	// the upstream identity provider for user login.
	OAuthClientID     string
	OAuthClientSecret string

	// TouchTrackerOnAdminEdit controls whether an edit of the tracker's own
	// fields (description, visibility, default access) through
	// TrackerService.Update bumps tracker.updated_at. Default false: such
	// edits leave updated_at unchanged.
	TouchTrackerOnAdminEdit bool

	// HTTPPort is the port the API server listens on.
	HTTPPort string

	// GinMode is passed through to gin.SetMode ("debug", "release", "test").
	GinMode string
}

// SMTPConfig holds outbound mail transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
}
