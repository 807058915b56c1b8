package integration

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/clearhire/clearhire-api/internal/apperr"
	"github.com/clearhire/clearhire-api/internal/models"
	"github.com/clearhire/clearhire-api/internal/services"
	"github.com/clearhire/clearhire-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestI9Service_Integration_FullVerificationWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := newI9Service(tdb)
	ctx := context.Background()

	employee, err := svc.CreateI9User(ctx, "newhire@example.com", "Ada", "Lovelace")
	require.NoError(t, err)

	due := time.Now().UTC().Add(72 * time.Hour)
	form, err := svc.Initiate(ctx, employee.ID, "hr@example.com", &due, nil)
	require.NoError(t, err)
	assert.Equal(t, models.I9FormStatusInitiated, form.Status)

	meta, err := svc.Initiation(ctx, form.FormID)
	require.NoError(t, err)
	assert.Equal(t, "hr@example.com", meta.InitiatedBy)
	assert.Equal(t, "newhire@example.com", meta.EmployeeEmail)
	require.NotNil(t, meta.DueDate)

	docs, err := svc.RecordDocuments(ctx, form.FormID, "newhire@example.com", []services.DocumentInput{
		{ListType: "B", Title: "Driver's License", IssuingAuthority: "DMV", DocumentNumber: "D1234567"},
		{ListType: "C", Title: "Social Security Card", DocumentNumber: "123-45-6789"},
	})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	section2, err := svc.SignSection2(ctx, form.FormID, services.Section2Input{
		EmployerName:    "Grace Hopper",
		EmployerTitle:   "HR Manager",
		BusinessName:    "Acme Corp",
		BusinessAddress: "1 Main St",
	})
	require.NoError(t, err)
	require.NotNil(t, section2.SignedAt)

	form, err = svc.Form(ctx, form.FormID)
	require.NoError(t, err)
	assert.Equal(t, models.I9FormStatusSection2, form.Status)

	rehire := time.Now().UTC()
	_, err = svc.Reverify(ctx, form.FormID, "hr@example.com", services.ReverificationInput{
		RehireDate:     &rehire,
		DocumentTitle:  "Employment Authorization Document",
		DocumentNumber: "EAD-99",
	})
	require.NoError(t, err)

	form, err = svc.Form(ctx, form.FormID)
	require.NoError(t, err)
	assert.Equal(t, models.I9FormStatusReverified, form.Status)

	trail, err := svc.AuditTrail(ctx, form.FormID)
	require.NoError(t, err)

	actions := make([]string, len(trail))
	for i, entry := range trail {
		actions[i] = entry.Action
	}
	assert.Contains(t, actions, models.AuditActionInitiated)
	assert.Contains(t, actions, models.AuditActionDocuments)
	assert.Contains(t, actions, models.AuditActionSection2)
	assert.Contains(t, actions, models.AuditActionReverified)
}

func TestI9Service_Integration_InitiateWithEmployeeData(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := newI9Service(tdb)
	ctx := context.Background()

	employee, err := svc.CreateI9User(ctx, "prefilled@example.com", "Alan", "Turing")
	require.NoError(t, err)

	data := json.RawMessage(`{"address":"Bletchley Park","citizenship":"citizen"}`)
	form, err := svc.Initiate(ctx, employee.ID, "hr@example.com", nil, data)
	require.NoError(t, err)
	assert.Equal(t, models.I9FormStatusSection1, form.Status)
}

func TestI9Service_Integration_CreateI9UserReusesExisting(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := newI9Service(tdb)
	ctx := context.Background()

	first, err := svc.CreateI9User(ctx, "dup@example.com", "First", "Hire")
	require.NoError(t, err)

	second, err := svc.CreateI9User(ctx, "dup@example.com", "Second", "Hire")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestI9Service_Integration_TranslatorAttached(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := newI9Service(tdb)
	ctx := context.Background()

	employee := fixtures.CreateI9User(t)
	form := fixtures.CreateI9Form(t, employee, models.I9FormStatusInitiated)

	translator, err := svc.AttachTranslator(ctx, form.FormID, services.TranslatorInput{
		FirstName: "Maria",
		LastName:  "Santos",
		Address:   "2 Oak Ave",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", translator.FirstName)

	translators, err := svc.Translators(ctx, form.FormID)
	require.NoError(t, err)
	assert.Len(t, translators, 1)
}

func TestI9Service_Integration_UnknownFormRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	svc := newI9Service(tdb)
	ctx := context.Background()

	_, err := svc.Form(ctx, "I9-DOES-NOT-EXIST")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeIncorrectID))
}
