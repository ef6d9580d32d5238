package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Domain rule error codes surfaced to API clients as a stable {code, message} pair.
const (
	CodeTicketClosed                 = "TICKET_CLOSED"
	CodeTicketNotClosed              = "TICKET_NOT_CLOSED"
	CodeInvalidTransition            = "INVALID_TRANSITION"
	CodeAttachmentLimitReached       = "ATTACHMENT_LIMIT_REACHED"
	CodeEditWindowExpired            = "EDIT_WINDOW_EXPIRED"
	CodeArticleAlreadyPublished      = "ARTICLE_ALREADY_PUBLISHED"
	CodeArticleNotPublished          = "ARTICLE_NOT_PUBLISHED"
	CodeCannotDeletePublishedArticle = "CANNOT_DELETE_PUBLISHED_ARTICLE"
)

// DomainError is an AppError carrying a stable machine-readable rule code.
// The message always names the current state so callers can react.
type DomainError struct {
	*AppError
	RuleCode string
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.AppError.Error()
}

// Unwrap allows errors.Is and errors.As to reach the embedded AppError
func (e *DomainError) Unwrap() error {
	return e.AppError
}

// NewDomainError creates a coded domain rule violation with an explicit HTTP status.
func NewDomainError(ruleCode string, message string, httpStatus int) *DomainError {
	errType := ErrorTypeBadRequest
	switch httpStatus {
	case http.StatusForbidden:
		errType = ErrorTypeForbidden
	case http.StatusConflict:
		errType = ErrorTypeConflict
	case http.StatusUnprocessableEntity:
		errType = ErrorTypeValidation
	case http.StatusRequestEntityTooLarge:
		errType = ErrorTypePayloadTooLarge
	}
	return &DomainError{
		AppError: &AppError{
			Type:    errType,
			Message: message,
			Code:    httpStatus,
		},
		RuleCode: ruleCode,
	}
}

// NewTicketClosedError signals that an operation is rejected because the ticket is closed.
func NewTicketClosedError() *DomainError {
	return NewDomainError(CodeTicketClosed, "ticket is closed", http.StatusForbidden)
}

// NewTicketNotClosedError rejects deleting a ticket that has not been closed yet.
func NewTicketNotClosedError(currentStatus string) *DomainError {
	return NewDomainError(
		CodeTicketNotClosed,
		fmt.Sprintf("Only closed tickets can be deleted. Current status: %s", currentStatus),
		http.StatusBadRequest,
	)
}

// NewInvalidTransitionError rejects a status change the transition table forbids.
func NewInvalidTransitionError(from, to string) *DomainError {
	return NewDomainError(
		CodeInvalidTransition,
		fmt.Sprintf("cannot transition ticket from %s to %s", from, to),
		http.StatusBadRequest,
	)
}

// NewAttachmentLimitError rejects uploading past the per-ticket attachment cap.
func NewAttachmentLimitError() *DomainError {
	return NewDomainError(
		CodeAttachmentLimitReached,
		"Maximum 5 attachments per ticket",
		http.StatusUnprocessableEntity,
	)
}

// NewEditWindowExpiredError rejects mutating content past its authorial window.
func NewEditWindowExpiredError() *DomainError {
	return NewDomainError(
		CodeEditWindowExpired,
		"edit window has expired",
		http.StatusForbidden,
	)
}

// NewArticleAlreadyPublishedError rejects publishing a published article.
// The message is surfaced verbatim to the content UI, which is localized.
func NewArticleAlreadyPublishedError() *DomainError {
	return NewDomainError(
		CodeArticleAlreadyPublished,
		"El artículo ya está publicado",
		http.StatusBadRequest,
	)
}

// NewArticleNotPublishedError rejects unpublishing a draft article.
func NewArticleNotPublishedError() *DomainError {
	return NewDomainError(
		CodeArticleNotPublished,
		"El artículo no está publicado",
		http.StatusBadRequest,
	)
}

// NewCannotDeletePublishedArticleError rejects deleting a published article.
func NewCannotDeletePublishedArticleError() *DomainError {
	return NewDomainError(
		CodeCannotDeletePublishedArticle,
		"No se puede eliminar un artículo publicado",
		http.StatusBadRequest,
	)
}

// GetDomainError extracts a DomainError from an error chain.
func GetDomainError(err error) *DomainError {
	var domErr *DomainError
	if stderrors.As(err, &domErr) {
		return domErr
	}
	return nil
}

// IsDomainError checks whether the error carries a domain rule code.
func IsDomainError(err error, ruleCode string) bool {
	domErr := GetDomainError(err)
	return domErr != nil && domErr.RuleCode == ruleCode
}
