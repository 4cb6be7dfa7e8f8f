// Package advisory implements clients for the external reasoning service:
// advisory content classification, applicant verification analysis, and peer
// reply generation over an OpenAI-compatible chat-completion API.
package advisory
