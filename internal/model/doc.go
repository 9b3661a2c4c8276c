// Package model defines domain data structures used across the bot:
// download jobs, status enums, and the supported-platform enum.
// Structures carry explicit state transitions driven by the pipeline.
package model
