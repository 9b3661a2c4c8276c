// Package bot dispatches incoming Telegram updates: static command
// replies, the owner access guard, and routing of URL messages into the
// download pipeline and delivery.
package bot
