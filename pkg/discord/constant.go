package discord

import "time"

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"
	webhookURLPrefix   = "https://discord.com/api/webhooks/"

	ColorBlue   = 3447003
	ColorGreen  = 3066993
	ColorYellow = 16776960
	ColorRed    = 15158332

	ColorInfo    = ColorBlue
	ColorSuccess = ColorGreen
	ColorWarning = ColorYellow
	ColorError   = ColorRed

	MaxEmbedLength    = 6000
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096
	MaxFieldValueLen  = 1024
	ReportBugDescLen  = 4096
)

const (
	DefaultTimeout    = 30 * time.Second
	DefaultRetryCount = 3
	DefaultRetryDelay = 1 * time.Second
)

const (
	DefaultUsername = "JWT Builder"
	UserAgent       = "JWT-Builder/1.0"
	ReportBugTitle  = "JWT Builder Error Report"
)
