// Package notify delivers out-of-band account notifications. Delivery is
// best-effort: a transport failure is logged with the rendered content for
// manual handling and never surfaces to the operation that triggered it.
package notify

import (
	"fmt"
	"strings"
)

// Message is a rendered notification ready for a transport.
type Message struct {
	To      string
	Subject string
	Body    string
}

// RenderWelcome builds the welcome message sent when an account is
// created, containing the temporary credential.
func RenderWelcome(email, tempPassword string) Message {
	var b strings.Builder
	b.WriteString("Welcome to the studio hours system!\n\n")
	b.WriteString("Your account has been created. Sign in with:\n\n")
	fmt.Fprintf(&b, "  Email:              %s\n", email)
	fmt.Fprintf(&b, "  Temporary password: %s\n\n", tempPassword)
	b.WriteString("You will be asked to choose a new password on first login.\n")

	return Message{
		To:      email,
		Subject: "Studio hours system - account created",
		Body:    b.String(),
	}
}
