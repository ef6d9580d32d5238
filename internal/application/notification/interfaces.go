package notification

import "context"

// EmailSender is the transport used by the event handlers. Implemented by
// the SMTP service in infrastructure/email.
type EmailSender interface {
	SendTicketStatusEmail(to, ticketCode, subject, body string) error
	SendArticlePublishedEmail(to, companyName, articleTitle string, articleID uint) error
}

// UserDirectory resolves recipient addresses. The handlers only ever need
// an email for a known user ID.
type UserDirectory interface {
	EmailByUserID(ctx context.Context, userID uint) (string, error)
}

// CompanyDirectory resolves the display name and follower set of a company
// for article announcement fan-out.
type CompanyDirectory interface {
	NameByID(ctx context.Context, companyID uint) (string, error)
	FollowerIDs(ctx context.Context, companyID uint) ([]uint, error)
}
