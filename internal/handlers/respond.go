package handlers

import (
	"net/http"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

func ok(c *drift.Context, status int, data any) {
	_ = c.JSON(status, dto.OK(data))
}

func badRequest(c *drift.Context, errs ...dto.FieldError) {
	_ = c.JSON(http.StatusBadRequest, dto.Fail(errs...))
}

// fail maps service errors into the envelope. Domain errors keep their
// code; everything else collapses to INTERNAL. Both surface as 500.
func fail(c *drift.Context, err error) {
	code := apperr.CodeInternal
	if ec, okCode := apperr.CodeOf(err); okCode {
		code = ec
	}
	_ = c.JSON(http.StatusInternalServerError, dto.FailCode(string(code)))
}

func paramUUID(c *drift.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		badRequest(c, dto.FieldError{Param: name, Type: "invalid"})
		return uuid.Nil, false
	}
	return id, true
}
