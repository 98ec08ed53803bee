// Package mocks provides mock implementations for testing the booking system.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our repository interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockRepo := mocks.NewMockJobRepository(ctrl)
//	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(job, nil)
package mocks

// Generate mock for JobRepository interface from internal/core package.
// This creates MockJobRepository with methods for all JobRepository interface methods:
// Create, GetByID, GetWithTranslator, ConditionalUpdate, UpdateDetails, UpdateMetadata,
// SetJobEmail, UpsertDistance, GetDistance, ListByUser, ListHistory, ListOpen, ListAll
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=job_repository_mock.go github.com/dtapi/booking-go/internal/core JobRepository

// Generate mock for TranslatorRepository interface from internal/core package.
// This creates MockTranslatorRepository with methods for all TranslatorRepository interface methods:
// GetByID, ListActive, ContactsByIDs
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=translator_repository_mock.go github.com/dtapi/booking-go/internal/core TranslatorRepository

// Generate mock for ContactCache interface from internal/core package.
// This creates MockContactCache with methods for all ContactCache interface methods:
// Get, Set, Invalidate
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=contact_cache_mock.go github.com/dtapi/booking-go/internal/core ContactCache
