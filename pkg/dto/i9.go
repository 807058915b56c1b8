package dto

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateI9UserRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (r *CreateI9UserRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, required("email"))
	} else if !strings.Contains(r.Email, "@") {
		errs = append(errs, invalid("email"))
	}
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, required("first_name"))
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, required("last_name"))
	}
	return errs
}

type InitiateFormRequest struct {
	I9UserID     uuid.UUID       `json:"i9_user_id"`
	DueDate      *time.Time      `json:"due_date,omitempty"`
	EmployeeData json.RawMessage `json:"employee_data,omitempty"`
}

func (r *InitiateFormRequest) Validate() []FieldError {
	var errs []FieldError
	if r.I9UserID == uuid.Nil {
		errs = append(errs, required("i9_user_id"))
	}
	return errs
}

type DocumentRequest struct {
	ListType         string     `json:"list_type"`
	Title            string     `json:"title"`
	IssuingAuthority string     `json:"issuing_authority"`
	DocumentNumber   string     `json:"document_number"`
	ExpirationDate   *time.Time `json:"expiration_date,omitempty"`
	StorageKey       *string    `json:"storage_key,omitempty"`
}

type RecordDocumentsRequest struct {
	Documents []DocumentRequest `json:"documents"`
}

func (r *RecordDocumentsRequest) Validate() []FieldError {
	var errs []FieldError
	if len(r.Documents) == 0 {
		errs = append(errs, required("documents"))
	}
	for _, doc := range r.Documents {
		switch doc.ListType {
		case "A", "B", "C":
		default:
			errs = append(errs, invalid("list_type"))
		}
		if strings.TrimSpace(doc.Title) == "" {
			errs = append(errs, required("title"))
		}
	}
	return errs
}

type EmployerSectionRequest struct {
	EmployerName      string          `json:"employer_name"`
	EmployerTitle     string          `json:"employer_title"`
	BusinessName      string          `json:"business_name"`
	BusinessAddress   string          `json:"business_address"`
	ExaminedDocuments json.RawMessage `json:"examined_documents,omitempty"`
}

func (r *EmployerSectionRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.EmployerName) == "" {
		errs = append(errs, required("employer_name"))
	}
	if strings.TrimSpace(r.BusinessName) == "" {
		errs = append(errs, required("business_name"))
	}
	return errs
}

type ReverificationRequest struct {
	NewName        *string    `json:"new_name,omitempty"`
	RehireDate     *time.Time `json:"rehire_date,omitempty"`
	DocumentTitle  string     `json:"document_title"`
	DocumentNumber string     `json:"document_number"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
}

func (r *ReverificationRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.DocumentTitle) == "" {
		errs = append(errs, required("document_title"))
	}
	return errs
}

type TranslatorRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
}

func (r *TranslatorRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.FirstName) == "" {
		errs = append(errs, required("first_name"))
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = append(errs, required("last_name"))
	}
	return errs
}

type UploadResponse struct {
	Key string `json:"key"`
}
