package models

type TicketModel struct {
	ID                     uint   `gorm:"primaryKey"`
	Code                   string `gorm:"uniqueIndex;size:50;not null"`
	CompanyID              uint   `gorm:"not null;index"`
	CreatedByUserID        uint   `gorm:"not null;index"`
	OwnerAgentID           *uint  `gorm:"index"`
	CategoryID             uint   `gorm:"not null;index"`
	AreaID                 *uint  `gorm:"index"`
	Title                  string `gorm:"size:200;not null"`
	Description            string `gorm:"type:text;not null"`
	Status                 string `gorm:"size:20;not null;index"`
	Priority               string `gorm:"size:20;not null;index"`
	LastResponseAuthorType string `gorm:"size:10;not null;default:none"`
	Version                int    `gorm:"not null;default:1"`
	CreatedAt              int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt              int64  `gorm:"autoUpdateTime:milli;not null"`
	FirstResponseAt        *int64
	ResolvedAt             *int64
	ClosedAt               *int64

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type ResponseModel struct {
	ID         uint   `gorm:"primaryKey"`
	TicketID   uint   `gorm:"not null;index"`
	AuthorID   uint   `gorm:"not null;index"`
	AuthorType string `gorm:"size:10;not null"`
	Content    string `gorm:"type:text;not null"`
	CreatedAt  int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt  int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (ResponseModel) TableName() string {
	return "ticket_responses"
}

type AttachmentModel struct {
	ID               uint   `gorm:"primaryKey"`
	TicketID         uint   `gorm:"not null;index"`
	ResponseID       *uint  `gorm:"index"`
	UploadedByUserID uint   `gorm:"not null;index"`
	FileName         string `gorm:"size:255;not null"`
	StoragePath      string `gorm:"size:500;not null"`
	MimeType         string `gorm:"size:100;not null"`
	SizeBytes        int64  `gorm:"not null"`
	CreatedAt        int64  `gorm:"autoCreateTime:milli;not null"`
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}

// TicketSequenceModel holds one row per year. Code generation locks the row
// so concurrent creates never hand out the same number.
type TicketSequenceModel struct {
	Year      int   `gorm:"primaryKey"`
	LastValue int64 `gorm:"not null;default:0"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketSequenceModel) TableName() string {
	return "ticket_sequences"
}
