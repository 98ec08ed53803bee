package testutil

import (
	"context"
	"database/sql"
	"time"

	"github.com/dtapi/booking-go/internal/domain/model"
)

// JobRequestBuilder provides a fluent interface for building CreateJobRequest objects for testing.
type JobRequestBuilder struct {
	req *model.CreateJobRequest
}

// NewJobRequest creates a new JobRequestBuilder with sensible defaults.
func NewJobRequest() *JobRequestBuilder {
	return &JobRequestBuilder{
		req: &model.CreateJobRequest{
			CustomerID:   "customer-1",
			Title:        "Phone interpretation",
			Body:         "30 minute phone session",
			LanguageFrom: "en",
			LanguageTo:   "sv",
			Region:       "stockholm",
		},
	}
}

// WithCustomer sets the customer id.
func (b *JobRequestBuilder) WithCustomer(customerID string) *JobRequestBuilder {
	b.req.CustomerID = customerID
	return b
}

// WithTitle sets the job title.
func (b *JobRequestBuilder) WithTitle(title string) *JobRequestBuilder {
	b.req.Title = title
	return b
}

// WithBody sets the job body.
func (b *JobRequestBuilder) WithBody(body string) *JobRequestBuilder {
	b.req.Body = body
	return b
}

// WithLanguages sets the language pair.
func (b *JobRequestBuilder) WithLanguages(from, to string) *JobRequestBuilder {
	b.req.LanguageFrom = from
	b.req.LanguageTo = to
	return b
}

// WithRegion sets the region.
func (b *JobRequestBuilder) WithRegion(region string) *JobRequestBuilder {
	b.req.Region = region
	return b
}

// ByAdmin marks the request as admin-created.
func (b *JobRequestBuilder) ByAdmin() *JobRequestBuilder {
	b.req.ByAdmin = true
	return b
}

// Build returns the constructed CreateJobRequest.
func (b *JobRequestBuilder) Build() *model.CreateJobRequest {
	return b.req
}

// SeedTranslatorParams describes a translator row to insert for a test.
type SeedTranslatorParams struct {
	Name         string
	Email        string
	Phone        string
	DeviceToken  string
	LanguageFrom string
	LanguageTo   string
	Region       string
	Active       bool
}

// SeedTranslator inserts a translator row and returns its id.
func SeedTranslator(t TestingTB, db *sql.DB, params SeedTranslatorParams) string {
	t.Helper()

	if params.Name == "" {
		params.Name = "Test Translator"
	}
	if params.Email == "" {
		params.Email = params.Name + "@example.com"
	}
	if params.LanguageFrom == "" {
		params.LanguageFrom = "en"
	}
	if params.LanguageTo == "" {
		params.LanguageTo = "sv"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var id string
	err := db.QueryRowContext(ctx, `
		INSERT INTO translators (name, email, phone, device_token, language_from, language_to, region, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, params.Name, params.Email, params.Phone, params.DeviceToken,
		params.LanguageFrom, params.LanguageTo, params.Region, params.Active,
	).Scan(&id)
	if err != nil {
		t.Fatalf("Failed to seed translator: %v", err)
	}
	return id
}
