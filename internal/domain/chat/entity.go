package chat

import (
	"errors"
	"fmt"
	"time"
)

// Role of a message author
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a chat transcript.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the ordered list of messages of one chat.
type Transcript struct {
	WebsiteURL   string    `json:"website_url"`
	BrandContext string    `json:"-"`
	Messages     []Message `json:"messages"`
}

// WelcomeMessage is the assistant's opening line for a website.
func WelcomeMessage(websiteURL string) string {
	return fmt.Sprintf("Welcome to your AI brand strategy consultation! I've analyzed %s and I'm ready to help you explore marketing techniques, growth channels, and strategic opportunities. What would you like to discuss first?", websiteURL)
}

func (t *Transcript) Append(m Message) {
	t.Messages = append(t.Messages, m)
}

// Last returns the most recent message, or nil on an empty transcript.
func (t *Transcript) Last() *Message {
	if len(t.Messages) == 0 {
		return nil
	}
	return &t.Messages[len(t.Messages)-1]
}

// ErrEmptyMessage is returned for blank user input; nothing is sent.
var ErrEmptyMessage = errors.New("message is empty")
