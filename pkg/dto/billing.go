package dto

import "strings"

type CheckoutRequest struct {
	PriceID string `json:"price_id"`
}

func (r *CheckoutRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.PriceID) == "" {
		errs = append(errs, required("price_id"))
	}
	return errs
}

type SessionURLResponse struct {
	URL string `json:"url"`
}
