package handlers

import (
	"context"
	"net/http"

	"github.com/clearhire/clearhire-api/internal/middleware"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type I9Handler struct {
	i9Service           I9ServiceInterface
	notificationService NotificationServiceInterface
	uploadService       UploadServiceInterface
}

func NewI9Handler(i9Service I9ServiceInterface, notificationService NotificationServiceInterface, uploadService UploadServiceInterface) *I9Handler {
	return &I9Handler{
		i9Service:           i9Service,
		notificationService: notificationService,
		uploadService:       uploadService,
	}
}

func (h *I9Handler) CreateUser(c *drift.Context) {
	var req dto.CreateI9UserRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	user, err := h.i9Service.CreateI9User(context.Background(), req.Email, req.FirstName, req.LastName)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, user)
}

func (h *I9Handler) Initiate(c *drift.Context) {
	var req dto.InitiateFormRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	initiatedBy := middleware.GetUserEmail(c)
	form, err := h.i9Service.Initiate(context.Background(), req.I9UserID, initiatedBy, req.DueDate, req.EmployeeData)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, form)
}

func (h *I9Handler) GetForm(c *drift.Context) {
	form, err := h.i9Service.Form(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, form)
}

func (h *I9Handler) GetInitiation(c *drift.Context) {
	meta, err := h.i9Service.Initiation(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, meta)
}

func (h *I9Handler) RecordDocuments(c *drift.Context) {
	var req dto.RecordDocumentsRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	inputs := make([]services.DocumentInput, len(req.Documents))
	for i, doc := range req.Documents {
		inputs[i] = services.DocumentInput{
			ListType:         doc.ListType,
			Title:            doc.Title,
			IssuingAuthority: doc.IssuingAuthority,
			DocumentNumber:   doc.DocumentNumber,
			ExpirationDate:   doc.ExpirationDate,
			StorageKey:       doc.StorageKey,
		}
	}

	actor := middleware.GetUserEmail(c)
	docs, err := h.i9Service.RecordDocuments(context.Background(), c.Param("formId"), actor, inputs)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, docs)
}

func (h *I9Handler) ListDocuments(c *drift.Context) {
	docs, err := h.i9Service.Documents(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, docs)
}

func (h *I9Handler) SignSection2(c *drift.Context) {
	var req dto.EmployerSectionRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	section, err := h.i9Service.SignSection2(context.Background(), c.Param("formId"), services.Section2Input{
		EmployerName:      req.EmployerName,
		EmployerTitle:     req.EmployerTitle,
		BusinessName:      req.BusinessName,
		BusinessAddress:   req.BusinessAddress,
		ExaminedDocuments: req.ExaminedDocuments,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, section)
}

func (h *I9Handler) GetSection2(c *drift.Context) {
	section, err := h.i9Service.Section2(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, section)
}

func (h *I9Handler) Reverify(c *drift.Context) {
	var req dto.ReverificationRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	actor := middleware.GetUserEmail(c)
	rev, err := h.i9Service.Reverify(context.Background(), c.Param("formId"), actor, services.ReverificationInput{
		NewName:        req.NewName,
		RehireDate:     req.RehireDate,
		DocumentTitle:  req.DocumentTitle,
		DocumentNumber: req.DocumentNumber,
		ExpirationDate: req.ExpirationDate,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, rev)
}

func (h *I9Handler) ListReverifications(c *drift.Context) {
	revs, err := h.i9Service.Reverifications(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, revs)
}

func (h *I9Handler) AttachTranslator(c *drift.Context) {
	var req dto.TranslatorRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	translator, err := h.i9Service.AttachTranslator(context.Background(), c.Param("formId"), services.TranslatorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	})
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, translator)
}

func (h *I9Handler) ListTranslators(c *drift.Context) {
	translators, err := h.i9Service.Translators(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, translators)
}

func (h *I9Handler) SendEmail(c *drift.Context) {
	if err := h.i9Service.SendFormEmail(context.Background(), c.Param("formId")); err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, map[string]bool{"sent": true})
}

func (h *I9Handler) AuditTrail(c *drift.Context) {
	entries, err := h.i9Service.AuditTrail(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, entries)
}

// SendNotification delivers an ad-hoc email and records the attempt in
// the notification log.
func (h *I9Handler) SendNotification(c *drift.Context) {
	var req dto.SendNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		badRequest(c, dto.FieldError{Param: "body", Type: "invalid"})
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		badRequest(c, errs...)
		return
	}

	if err := h.notificationService.Send(context.Background(), req.Recipient, req.Subject, req.Template, req.FormID, req.Body); err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusOK, map[string]bool{"sent": true})
}

func (h *I9Handler) Notifications(c *drift.Context) {
	entries, err := h.notificationService.History(context.Background(), c.Param("formId"))
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, http.StatusOK, entries)
}

// Upload receives a multipart document scan and stores it in the object
// store; the returned key goes into a document record's storage_key.
func (h *I9Handler) Upload(c *drift.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, dto.FieldError{Param: "file", Type: "required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key, err := h.uploadService.Upload(context.Background(), header.Filename, contentType, file)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, http.StatusCreated, dto.UploadResponse{Key: key})
}
