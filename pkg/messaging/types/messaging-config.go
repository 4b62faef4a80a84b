package types

import "time"

type MessagingConfigs struct {
	// Role name to notification recipient email addresses.
	NotificationRecipients map[string][]string `json:"notification_recipients" yaml:"notification_recipients"`

	GlobalEmailTemplateConstants map[string]string `json:"global_email_template_constants" yaml:"global_email_template_constants"`

	SmtpBridgeConfig *SmtpBridgeConfig `json:"smtp_bridge_config" yaml:"smtp_bridge_config"`
}

type SmtpBridgeConfig struct {
	URL            string        `json:"url" yaml:"url"`
	APIKey         string        `json:"api_key" yaml:"api_key"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// RecipientsForRoles flattens and dedupes the configured addresses for the
// given roles.
func (mc MessagingConfigs) RecipientsForRoles(roles []string) []string {
	seen := map[string]bool{}
	recipients := []string{}
	for _, role := range roles {
		for _, addr := range mc.NotificationRecipients[role] {
			if addr == "" || seen[addr] {
				continue
			}
			seen[addr] = true
			recipients = append(recipients, addr)
		}
	}
	return recipients
}

type HeaderOverrides struct {
	From      string   `bson:"from" json:"from"`
	Sender    string   `bson:"sender" json:"sender"`
	ReplyTo   []string `bson:"replyTo" json:"replyTo"`
	NoReplyTo bool     `bson:"noReplyTo" json:"noReplyTo"`
}
