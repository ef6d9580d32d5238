package ticket

import (
	"fmt"
	"time"

	"github.com/resolvia-inc/resolvia/internal/domain/ticket/valueobjects"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 5000
)

// Ticket is the aggregate root of a support case. All state changes go
// through its methods so the transition table and timestamp invariants
// hold no matter which use case touches it.
type Ticket struct {
	id                     uint
	code                   string
	companyID              uint
	createdByUserID        uint
	ownerAgentID           *uint
	categoryID             uint
	areaID                 *uint
	title                  string
	description            string
	status                 valueobjects.TicketStatus
	priority               valueobjects.TicketPriority
	lastResponseAuthorType valueobjects.ResponseAuthorType
	version                int
	createdAt              time.Time
	updatedAt              time.Time
	firstResponseAt        *time.Time
	resolvedAt             *time.Time
	closedAt               *time.Time
}

func NewTicket(
	companyID uint,
	createdByUserID uint,
	categoryID uint,
	areaID *uint,
	title string,
	description string,
	priority valueobjects.TicketPriority,
) (*Ticket, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if createdByUserID == 0 {
		return nil, fmt.Errorf("creator user ID is required")
	}
	if categoryID == 0 {
		return nil, fmt.Errorf("category ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := biztime.NowUTC()

	return &Ticket{
		companyID:              companyID,
		createdByUserID:        createdByUserID,
		categoryID:             categoryID,
		areaID:                 areaID,
		title:                  title,
		description:            description,
		status:                 valueobjects.StatusOpen,
		priority:               priority,
		lastResponseAuthorType: valueobjects.AuthorNone,
		version:                1,
		createdAt:              now,
		updatedAt:              now,
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	companyID uint,
	createdByUserID uint,
	ownerAgentID *uint,
	categoryID uint,
	areaID *uint,
	title string,
	description string,
	status valueobjects.TicketStatus,
	priority valueobjects.TicketPriority,
	lastResponseAuthorType valueobjects.ResponseAuthorType,
	version int,
	createdAt, updatedAt time.Time,
	firstResponseAt, resolvedAt, closedAt *time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if companyID == 0 {
		return nil, fmt.Errorf("company ID is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !lastResponseAuthorType.IsValid() {
		return nil, fmt.Errorf("invalid last response author type")
	}

	return &Ticket{
		id:                     id,
		code:                   code,
		companyID:              companyID,
		createdByUserID:        createdByUserID,
		ownerAgentID:           ownerAgentID,
		categoryID:             categoryID,
		areaID:                 areaID,
		title:                  title,
		description:            description,
		status:                 status,
		priority:               priority,
		lastResponseAuthorType: lastResponseAuthorType,
		version:                version,
		createdAt:              createdAt,
		updatedAt:              updatedAt,
		firstResponseAt:        firstResponseAt,
		resolvedAt:             resolvedAt,
		closedAt:               closedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Code() string {
	return t.code
}

func (t *Ticket) CompanyID() uint {
	return t.companyID
}

func (t *Ticket) CreatedByUserID() uint {
	return t.createdByUserID
}

func (t *Ticket) OwnerAgentID() *uint {
	return t.ownerAgentID
}

func (t *Ticket) CategoryID() uint {
	return t.categoryID
}

func (t *Ticket) AreaID() *uint {
	return t.areaID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() valueobjects.TicketStatus {
	return t.status
}

func (t *Ticket) Priority() valueobjects.TicketPriority {
	return t.priority
}

func (t *Ticket) LastResponseAuthorType() valueobjects.ResponseAuthorType {
	return t.lastResponseAuthorType
}

func (t *Ticket) Version() int {
	return t.version
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) FirstResponseAt() *time.Time {
	return t.firstResponseAt
}

func (t *Ticket) ResolvedAt() *time.Time {
	return t.resolvedAt
}

func (t *Ticket) ClosedAt() *time.Time {
	return t.closedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) SetCode(code string) error {
	if len(t.code) > 0 {
		return fmt.Errorf("ticket code is already set")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code cannot be empty")
	}
	t.code = code
	return nil
}

// AssignTo hands the ticket to an agent. Assignment is allowed in any
// non-closed status.
func (t *Ticket) AssignTo(agentID uint) error {
	if agentID == 0 {
		return fmt.Errorf("agent ID cannot be zero")
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.ownerAgentID = &agentID
	t.touch()
	return nil
}

func (t *Ticket) Unassign() error {
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.ownerAgentID = nil
	t.touch()
	return nil
}

// Resolve marks the case as answered. Only open or pending tickets can be
// resolved.
func (t *Ticket) Resolve() error {
	if !t.status.IsOpen() && !t.status.IsPending() {
		return errors.NewInvalidTransitionError(t.status.String(), valueobjects.StatusResolved.String())
	}

	now := biztime.NowUTC()
	t.status = valueobjects.StatusResolved
	t.resolvedAt = &now
	t.touch()
	return nil
}

// Close finishes the case. The standard path closes a resolved ticket;
// closing straight from open or pending is the administrative override,
// which the caller gates by role. resolved_at is left untouched so an
// overridden close never fabricates a resolution timestamp.
func (t *Ticket) Close() error {
	if t.status.IsClosed() {
		return errors.NewInvalidTransitionError(t.status.String(), valueobjects.StatusClosed.String())
	}

	now := biztime.NowUTC()
	t.status = valueobjects.StatusClosed
	t.closedAt = &now
	t.touch()
	return nil
}

// Reopen returns a resolved or closed ticket to open and clears the
// settlement timestamps so the lifecycle invariants keep holding.
func (t *Ticket) Reopen() error {
	if !t.status.IsResolved() && !t.status.IsClosed() {
		return errors.NewInvalidTransitionError(t.status.String(), valueobjects.StatusOpen.String())
	}

	t.status = valueobjects.StatusOpen
	t.resolvedAt = nil
	t.closedAt = nil
	t.touch()
	return nil
}

// MarkPending flags the ticket as waiting on the other party.
func (t *Ticket) MarkPending() error {
	if !t.status.CanTransitionTo(valueobjects.StatusPending) {
		return errors.NewInvalidTransitionError(t.status.String(), valueobjects.StatusPending.String())
	}

	t.status = valueobjects.StatusPending
	t.touch()
	return nil
}

// RecordResponse updates the conversational markers after a response is
// persisted. It never changes the status: who spoke last and the case
// disposition move independently.
func (t *Ticket) RecordResponse(authorType valueobjects.ResponseAuthorType, at time.Time) error {
	if authorType != valueobjects.AuthorUser && authorType != valueobjects.AuthorAgent {
		return fmt.Errorf("invalid response author type: %s", authorType)
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	if t.firstResponseAt == nil {
		firstAt := at
		t.firstResponseAt = &firstAt
	}
	t.lastResponseAuthorType = authorType
	t.touch()
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.title = title
	t.touch()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.description = description
	t.touch()
	return nil
}

func (t *Ticket) ChangePriority(priority valueobjects.TicketPriority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}
	if t.priority == priority {
		return nil
	}

	t.priority = priority
	t.touch()
	return nil
}

func (t *Ticket) ChangeCategory(categoryID uint) error {
	if categoryID == 0 {
		return fmt.Errorf("category ID cannot be zero")
	}
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.categoryID = categoryID
	t.touch()
	return nil
}

func (t *Ticket) ChangeArea(areaID *uint) error {
	if t.status.IsClosed() {
		return errors.NewTicketClosedError()
	}

	t.areaID = areaID
	t.touch()
	return nil
}

// CanBeDeleted reports whether the hard-delete operation may run. Only a
// closed ticket is ever removed.
func (t *Ticket) CanBeDeleted() error {
	if !t.status.IsClosed() {
		return errors.NewTicketNotClosedError(t.status.String())
	}
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = biztime.NowUTC()
	t.version++
}
