package dto

import "strings"

type SendNotificationRequest struct {
	Recipient string  `json:"recipient"`
	Subject   string  `json:"subject"`
	Template  string  `json:"template"`
	FormID    *string `json:"form_id,omitempty"`
	Body      string  `json:"body"`
}

func (r *SendNotificationRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Recipient) == "" {
		errs = append(errs, required("recipient"))
	} else if !strings.Contains(r.Recipient, "@") {
		errs = append(errs, invalid("recipient"))
	}
	if strings.TrimSpace(r.Subject) == "" {
		errs = append(errs, required("subject"))
	}
	if strings.TrimSpace(r.Template) == "" {
		errs = append(errs, required("template"))
	}
	return errs
}
