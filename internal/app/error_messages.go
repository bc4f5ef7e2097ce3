// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// keyforge service layer, terminal UI and headless commands.
//
// All Msg* constants are human-readable strings shown to the user on the
// output surface, in status lines or in command output. Keeping them in one
// place ensures consistent wording between the TUI and the CLI.
package app

const (
	// MsgGenerate is the idle label of the submit control.
	MsgGenerate = "Generate"

	// MsgGenerating replaces the submit label while a request is in flight.
	MsgGenerating = "Generating..."

	// MsgServiceUnavailable is shown when the generation service could not
	// be reached at all (connection refused, DNS failure).
	MsgServiceUnavailable = "Generation service is unavailable. Check that it is running and try again"

	// MsgRequestTimedOut is shown when the client timeout expired before the
	// generation service answered.
	MsgRequestTimedOut = "Generation service did not respond in time. Please try again"

	// MsgTransportStatus formats a non-2xx answer whose body is not an
	// envelope. It takes the status code and its text.
	MsgTransportStatus = "Generation service returned HTTP %d %s"

	// MsgMalformedResponse prefixes the reason a successful envelope could
	// not be displayed.
	MsgMalformedResponse = "Generation service returned an incomplete response"

	// MsgResultNotShown is recorded when a result had no place on the output
	// surface.
	MsgResultNotShown = "Result could not be displayed"

	// MsgCopied is the transient confirmation shown next to a copy control.
	MsgCopied = "Copied!"

	// MsgCopyFailed is shown when writing to the system clipboard failed.
	MsgCopyFailed = "Failed to copy to clipboard"

	// MsgNothingToCopy is shown when the requested artifact is not on the
	// output surface.
	MsgNothingToCopy = "Nothing to copy"

	// MsgServiceHealthy and MsgServiceUnhealthy describe the health probe.
	MsgServiceHealthy   = "service online"
	MsgServiceUnhealthy = "service offline"
)
