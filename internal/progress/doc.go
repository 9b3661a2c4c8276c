// Package progress propagates job progress to the chat. The pipeline
// publishes (phase, bytesDone, bytesTotal) updates into a Sink; the
// Throttled decorator limits the edit cadence and the MessageEditor
// renders updates into a single edited Telegram message.
package progress
