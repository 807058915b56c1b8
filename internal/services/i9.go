package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/logger"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/repository"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// I9Service drives the employment-verification workflow: form
// initiation, document recording, the employer's section 2, rehire
// reverifications, translator attestations, and the audit trail that
// shadows all of it.
type I9Service struct {
	i9users       *repository.I9UserRepository
	forms         *repository.I9FormRepository
	documents     *repository.I9DocumentRepository
	section2      *repository.I9Section2Repository
	reverify      *repository.I9ReverificationRepository
	translators   *repository.TranslatorRepository
	audit         *repository.AuditTrailRepository
	initiations   *repository.InitiationRepository
	notifications *NotificationService
	baseURL       string
	log           *logger.Logger
}

type I9ServiceDeps struct {
	I9Users       *repository.I9UserRepository
	Forms         *repository.I9FormRepository
	Documents     *repository.I9DocumentRepository
	Section2      *repository.I9Section2Repository
	Reverify      *repository.I9ReverificationRepository
	Translators   *repository.TranslatorRepository
	Audit         *repository.AuditTrailRepository
	Initiations   *repository.InitiationRepository
	Notifications *NotificationService
	BaseURL       string
	Log           *logger.Logger
}

func NewI9Service(deps I9ServiceDeps) *I9Service {
	return &I9Service{
		i9users:       deps.I9Users,
		forms:         deps.Forms,
		documents:     deps.Documents,
		section2:      deps.Section2,
		reverify:      deps.Reverify,
		translators:   deps.Translators,
		audit:         deps.Audit,
		initiations:   deps.Initiations,
		notifications: deps.Notifications,
		baseURL:       deps.BaseURL,
		log:           deps.Log,
	}
}

// CreateI9User registers an employee for verification, reusing the
// existing record when the address is already known.
func (s *I9Service) CreateI9User(ctx context.Context, email, firstName, lastName string) (*models.I9User, error) {
	existing, err := s.i9users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user := &models.I9User{
		ID:        uuid.New(),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.i9users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Initiate opens a new form for the employee: the form row, its
// initiation metadata, an audit entry, and the request email. The writes
// run sequentially; email failure does not undo the form.
func (s *I9Service) Initiate(ctx context.Context, i9UserID uuid.UUID, initiatedBy string, dueDate *time.Time, employeeData json.RawMessage) (*models.I9Form, error) {
	employee, err := s.i9users.Get(ctx, i9UserID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}

	now := time.Now().UTC()
	form := &models.I9Form{
		ID:           uuid.New(),
		FormID:       "I9-" + ulid.Make().String(),
		I9UserID:     i9UserID,
		Status:       models.I9FormStatusInitiated,
		EmployeeData: employeeData,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if employeeData != nil {
		form.Status = models.I9FormStatusSection1
	}
	if err := s.forms.Create(ctx, form); err != nil {
		return nil, err
	}

	meta := &models.InitiationMetadata{
		ID:            uuid.New(),
		FormID:        form.FormID,
		InitiatedBy:   initiatedBy,
		EmployeeEmail: employee.Email,
		DueDate:       dueDate,
		CreatedAt:     now,
	}
	if err := s.initiations.Create(ctx, meta); err != nil {
		return nil, err
	}

	if err := s.recordAudit(ctx, form.FormID, initiatedBy, models.AuditActionInitiated, "form initiated for "+employee.Email); err != nil {
		return nil, err
	}

	subject, body := I9RequestEmail(s.formURL(form.FormID), dueDate)
	if err := s.notifications.Send(ctx, employee.Email, subject, TemplateI9Request, &form.FormID, body); err != nil {
		s.log.Errorw("failed to send i9 request email", "form_id", form.FormID, "error", err)
	} else {
		if err := s.recordAudit(ctx, form.FormID, "system", models.AuditActionEmailSent, "i9 request sent to "+employee.Email); err != nil {
			return nil, err
		}
	}

	return form, nil
}

// Form looks a form up by its human-readable form id.
func (s *I9Service) Form(ctx context.Context, formID string) (*models.I9Form, error) {
	form, err := s.forms.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if form == nil {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}
	return form, nil
}

// Initiation returns the metadata captured when the form was opened.
func (s *I9Service) Initiation(ctx context.Context, formID string) (*models.InitiationMetadata, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	meta, err := s.initiations.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}
	return meta, nil
}

// DocumentInput is one acceptable document presented by the employee.
type DocumentInput struct {
	ListType         string
	Title            string
	IssuingAuthority string
	DocumentNumber   string
	ExpirationDate   *time.Time
	StorageKey       *string
}

// RecordDocuments stores the presented documents one at a time and
// appends one audit entry covering the batch.
func (s *I9Service) RecordDocuments(ctx context.Context, formID, actor string, inputs []DocumentInput) ([]*models.I9Document, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	docs := make([]*models.I9Document, 0, len(inputs))
	for _, in := range inputs {
		doc := &models.I9Document{
			ID:               uuid.New(),
			FormID:           formID,
			ListType:         in.ListType,
			Title:            in.Title,
			IssuingAuthority: in.IssuingAuthority,
			DocumentNumber:   in.DocumentNumber,
			ExpirationDate:   in.ExpirationDate,
			StorageKey:       in.StorageKey,
			CreatedAt:        now,
		}
		if err := s.documents.Create(ctx, doc); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	detail := fmt.Sprintf("%d document(s) recorded", len(docs))
	if err := s.recordAudit(ctx, formID, actor, models.AuditActionDocuments, detail); err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *I9Service) Documents(ctx context.Context, formID string) ([]*models.I9Document, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	return s.documents.FindAllByFormID(ctx, formID)
}

// Section2Input is the employer's review-and-verification attestation.
type Section2Input struct {
	EmployerName      string
	EmployerTitle     string
	BusinessName      string
	BusinessAddress   string
	ExaminedDocuments json.RawMessage
}

// SignSection2 records the employer attestation, advances the form to
// SECTION_2_COMPLETE, and audits the signature.
func (s *I9Service) SignSection2(ctx context.Context, formID string, in Section2Input) (*models.I9Section2, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	section := &models.I9Section2{
		ID:                uuid.New(),
		FormID:            formID,
		EmployerName:      in.EmployerName,
		EmployerTitle:     in.EmployerTitle,
		BusinessName:      in.BusinessName,
		BusinessAddress:   in.BusinessAddress,
		ExaminedDocuments: in.ExaminedDocuments,
		SignedAt:          &now,
		CreatedAt:         now,
	}
	if err := s.section2.Create(ctx, section); err != nil {
		return nil, err
	}

	if _, err := s.forms.UpdateStatus(ctx, formID, models.I9FormStatusSection2); err != nil {
		return nil, err
	}

	if err := s.recordAudit(ctx, formID, in.EmployerName, models.AuditActionSection2, "section 2 signed by "+in.EmployerName); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *I9Service) Section2(ctx context.Context, formID string) (*models.I9Section2, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	section, err := s.section2.FindByFormID(ctx, formID)
	if err != nil {
		return nil, err
	}
	if section == nil {
		return nil, apperr.New(apperr.CodeIncorrectID)
	}
	return section, nil
}

// ReverificationInput is a section 3 supplement.
type ReverificationInput struct {
	NewName        *string
	RehireDate     *time.Time
	DocumentTitle  string
	DocumentNumber string
	ExpirationDate *time.Time
}

// Reverify appends a reverification supplement, marks the form
// REVERIFIED, and audits it.
func (s *I9Service) Reverify(ctx context.Context, formID, actor string, in ReverificationInput) (*models.I9Reverification, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	rev := &models.I9Reverification{
		ID:             uuid.New(),
		FormID:         formID,
		NewName:        in.NewName,
		RehireDate:     in.RehireDate,
		DocumentTitle:  in.DocumentTitle,
		DocumentNumber: in.DocumentNumber,
		ExpirationDate: in.ExpirationDate,
		SignedAt:       &now,
		CreatedAt:      now,
	}
	if err := s.reverify.Create(ctx, rev); err != nil {
		return nil, err
	}

	if _, err := s.forms.UpdateStatus(ctx, formID, models.I9FormStatusReverified); err != nil {
		return nil, err
	}

	if err := s.recordAudit(ctx, formID, actor, models.AuditActionReverified, "reverification signed"); err != nil {
		return nil, err
	}
	return rev, nil
}

func (s *I9Service) Reverifications(ctx context.Context, formID string) ([]*models.I9Reverification, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	return s.reverify.FindAllByFormID(ctx, formID)
}

// TranslatorInput is a preparer/translator attestation for section 1.
type TranslatorInput struct {
	FirstName string
	LastName  string
	Address   string
}

// AttachTranslator records that someone assisted the employee with
// section 1.
func (s *I9Service) AttachTranslator(ctx context.Context, formID string, in TranslatorInput) (*models.Translator, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	translator := &models.Translator{
		ID:        uuid.New(),
		FormID:    formID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		SignedAt:  &now,
		CreatedAt: now,
	}
	if err := s.translators.Create(ctx, translator); err != nil {
		return nil, err
	}

	actor := in.FirstName + " " + in.LastName
	if err := s.recordAudit(ctx, formID, actor, models.AuditActionTranslator, "translator attestation attached"); err != nil {
		return nil, err
	}
	return translator, nil
}

func (s *I9Service) Translators(ctx context.Context, formID string) ([]*models.Translator, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	return s.translators.FindAllByFormID(ctx, formID)
}

// SendFormEmail re-sends the appropriate notice for the form's current
// status and audits the send.
func (s *I9Service) SendFormEmail(ctx context.Context, formID string) error {
	form, err := s.Form(ctx, formID)
	if err != nil {
		return err
	}
	employee, err := s.i9users.Get(ctx, form.I9UserID)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperr.New(apperr.CodeIncorrectID)
	}

	var subject, body, template string
	if form.Status == models.I9FormStatusReverified || form.Status == models.I9FormStatusSection2 {
		subject, body = ReverificationEmail(s.formURL(formID))
		template = TemplateReverification
	} else {
		meta, err := s.initiations.FindByFormID(ctx, formID)
		if err != nil {
			return err
		}
		var due *time.Time
		if meta != nil {
			due = meta.DueDate
		}
		subject, body = I9RequestEmail(s.formURL(formID), due)
		template = TemplateI9Request
	}

	if err := s.notifications.Send(ctx, employee.Email, subject, template, &formID, body); err != nil {
		return err
	}
	return s.recordAudit(ctx, formID, "system", models.AuditActionEmailSent, template+" sent to "+employee.Email)
}

// AuditTrail returns the form's audit entries in chronological order.
func (s *I9Service) AuditTrail(ctx context.Context, formID string) ([]*models.AuditEntry, error) {
	if _, err := s.Form(ctx, formID); err != nil {
		return nil, err
	}
	return s.audit.FindAllByFormID(ctx, formID)
}

func (s *I9Service) recordAudit(ctx context.Context, formID, actor, action, detail string) error {
	return s.audit.Append(ctx, &models.AuditEntry{
		ID:        ulid.Make().String(),
		FormID:    formID,
		Actor:     actor,
		Action:    action,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *I9Service) formURL(formID string) string {
	return fmt.Sprintf("%s/i9/forms/%s", s.baseURL, formID)
}
