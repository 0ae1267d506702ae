package domain

// Session carries the player identity used to authorize vendor API calls.
// Credentials are opaque strings supplied by the user; the tool never
// issues or refreshes them.
type Session struct {
	OpenID  string
	Token   string
	AccType string // "qc" (QQ) or "wx" (WeChat)
}
