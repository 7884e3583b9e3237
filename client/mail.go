package client

import (
	"fmt"
	"net/url"
	"strings"
)

// ConfirmationMailto builds a mailto: URL pre-filled with a confirmation
// message for the booking's customer. It is a best-effort convenience for
// the confirm action: handing it to the platform's mail handler is up to
// the caller, and nothing tracks whether the mail was actually sent.
func ConfirmationMailto(b Booking) string {
	names := make([]string, 0, len(b.Services))
	for _, s := range b.Services {
		names = append(names, s.Name)
	}

	subject := "Your booking is confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s at %s is confirmed.\n\nSee you soon!",
		b.CustomerName, strings.Join(names, ", "), b.AppointmentDate, b.AppointmentTime)

	params := url.Values{}
	params.Set("subject", subject)
	params.Set("body", body)

	// url.Values encodes spaces as '+', which mail handlers don't decode
	query := strings.ReplaceAll(params.Encode(), "+", "%20")

	return "mailto:" + b.CustomerEmail + "?" + query
}
