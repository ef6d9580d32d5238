package valueobjects

import "fmt"

// ResponseAuthorType records which side of the conversation spoke last on a
// ticket. It is tracked independently of the ticket status so staff can see
// who the ball is with without inspecting the response thread.
type ResponseAuthorType string

const (
	AuthorNone  ResponseAuthorType = "none"
	AuthorUser  ResponseAuthorType = "user"
	AuthorAgent ResponseAuthorType = "agent"
)

var validAuthorTypes = map[ResponseAuthorType]bool{
	AuthorNone:  true,
	AuthorUser:  true,
	AuthorAgent: true,
}

func (at ResponseAuthorType) String() string {
	return string(at)
}

func (at ResponseAuthorType) IsValid() bool {
	return validAuthorTypes[at]
}

func NewResponseAuthorType(s string) (ResponseAuthorType, error) {
	at := ResponseAuthorType(s)
	if !at.IsValid() {
		return "", fmt.Errorf("invalid response author type: %s", s)
	}
	return at, nil
}
