package services

import (
	"context"
	"errors"
	"time"

	"aura/internal/domain"
	applog "aura/internal/log"
	"aura/internal/repos"
	"aura/internal/sheets"
)

var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDueDateRequired     = errors.New("due date is required")
	ErrWizardOutOfOrder    = errors.New("complete the previous step first")
)

// RequestService drives the bespoke-design wizard: description, then
// aesthetics (photo, style, quantity), then due date and submission. One
// draft per session; submission transmits once and resets the draft.
type RequestService struct {
	Drafts *repos.RequestRepo
	Sheets *sheets.Client
}

func NewRequestService(drafts *repos.RequestRepo, sh *sheets.Client) *RequestService {
	return &RequestService{Drafts: drafts, Sheets: sh}
}

func (s *RequestService) Draft(sessionID string) (repos.RequestDraft, error) {
	return s.Drafts.Get(sessionID)
}

// SubmitStep1 records the vision. Moving forward requires a non-empty
// description.
func (s *RequestService) SubmitStep1(sessionID, description string) (repos.RequestDraft, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return repos.RequestDraft{}, err
	}
	if description == "" {
		return d, ErrDescriptionRequired
	}
	d.Description = description
	if d.Step < 2 {
		d.Step = 2
	}
	return d, s.Drafts.Save(d)
}

// SubmitStep2 records style and quantity and advances to the due-date step.
func (s *RequestService) SubmitStep2(sessionID, style string, quantity int) (repos.RequestDraft, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return repos.RequestDraft{}, err
	}
	if d.Step < 2 {
		return d, ErrWizardOutOfOrder
	}
	if style != "" {
		d.Style = style
	}
	if quantity < 1 {
		quantity = 1
	}
	d.Quantity = quantity
	if d.Step < 3 {
		d.Step = 3
	}
	return d, s.Drafts.Save(d)
}

// AttachPhoto stores a captured or uploaded reference image. A new photo
// always discards the previous one; camera and file capture are exclusive at
// the UI and indistinguishable here.
func (s *RequestService) AttachPhoto(sessionID, dataURI string) (repos.RequestDraft, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return repos.RequestDraft{}, err
	}
	if d.Step < 2 {
		return d, ErrWizardOutOfOrder
	}
	d.Image = dataURI
	return d, s.Drafts.Save(d)
}

func (s *RequestService) RemovePhoto(sessionID string) (repos.RequestDraft, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return repos.RequestDraft{}, err
	}
	d.Image = ""
	return d, s.Drafts.Save(d)
}

// Back steps the wizard backwards unconditionally, keeping entered values.
func (s *RequestService) Back(sessionID string) (repos.RequestDraft, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return repos.RequestDraft{}, err
	}
	if d.Step > 1 {
		d.Step--
	}
	return d, s.Drafts.Save(d)
}

// Submit finalizes the request: description and due date are required, the
// payload (including the inline image when present) goes out once, and the
// wizard resets to a fresh step-1 draft. The sync result is logged but the
// confirmation is not conditioned on it.
func (s *RequestService) Submit(ctx context.Context, sessionID, dueDate, userEmail string) (domain.SpecialRequest, error) {
	d, err := s.Drafts.Get(sessionID)
	if err != nil {
		return domain.SpecialRequest{}, err
	}
	if d.Description == "" {
		return domain.SpecialRequest{}, ErrDescriptionRequired
	}
	if dueDate == "" {
		dueDate = d.DueDate
	}
	if dueDate == "" {
		return domain.SpecialRequest{}, ErrDueDateRequired
	}

	req := domain.SpecialRequest{
		Description: d.Description,
		Quantity:    d.Quantity,
		DueDate:     dueDate,
		View:        d.Style,
		Image:       d.Image,
		UserEmail:   userEmail,
		Timestamp:   time.Now().UnixMilli(),
	}
	if err := s.Sheets.Sync(ctx, sheets.ActionSpecialRequest, req); err != nil {
		applog.Error(nil, "request.sync", err, map[string]any{"email": userEmail})
	}
	if err := s.Drafts.Reset(sessionID); err != nil {
		return domain.SpecialRequest{}, err
	}
	return req, nil
}
