package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTickets           = "tickets"
	TableTicketResponses   = "ticket_responses"
	TableTicketAttachments = "ticket_attachments"
	TableTicketSequences   = "ticket_sequences"
	TableArticles          = "help_center_articles"
	TableArticleCategories = "article_categories"
	TableCompanies         = "companies"
	TableTicketCategories  = "ticket_categories"
	TableCompanyAreas      = "company_areas"
	TableCompanyFollows    = "company_follows"
	TableUsers             = "users"
	TableRoleAssignments   = "role_assignments"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
