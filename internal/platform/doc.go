// Package platform recognizes video URLs of the supported platforms
// (YouTube, Facebook, Instagram) inside arbitrary message text.
package platform
