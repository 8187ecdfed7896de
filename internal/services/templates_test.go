package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/skillotech/ambassador-api/internal/config"
	"github.com/skillotech/ambassador-api/internal/logger"
	"github.com/skillotech/ambassador-api/internal/models"
	"github.com/skillotech/ambassador-api/internal/storage"
	"github.com/skillotech/ambassador-api/internal/storage/mocks"
	"go.uber.org/mock/gomock"
)

func TestTemplateService_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	templates := NewTemplates(mockStorage)

	testCases := []struct {
		Name          string
		Request       models.TemplateRequest
		SetupMocks    func()
		ExpectedError error
		ExpectedTags  []string
	}{
		{
			Name:          "Error. Title is required #1",
			Request:       models.TemplateRequest{Caption: "no title"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidTemplate,
		},
		{
			Name:    "Success. Tags split from a comma string #2",
			Request: models.TemplateRequest{Title: "Admission Open", Caption: "Join now", Tags: "instagram, story , ,admission"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddTemplate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template models.TemplateData) (*models.TemplateData, error) {
						return &template, nil
					})
			},
			ExpectedError: nil,
			ExpectedTags:  []string{"instagram", "story", "admission"},
		},
		{
			Name:    "Success. No tags #3",
			Request: models.TemplateRequest{Title: "Admission Open"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddTemplate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, template models.TemplateData) (*models.TemplateData, error) {
						return &template, nil
					})
			},
			ExpectedError: nil,
			ExpectedTags:  nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			template, err := templates.Add(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if template == nil {
					t.Fatal("Expected template, got nil")
				}
				if diff := cmp.Diff(tc.ExpectedTags, template.Tags); diff != "" {
					t.Errorf("Tags mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestTemplateService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	templates := NewTemplates(mockStorage)

	updated := &models.TemplateData{
		ID:      "tpl-1",
		Title:   "Admission Open",
		Caption: "Updated caption",
		Tags:    []string{"instagram"},
	}

	testCases := []struct {
		Name          string
		ID            string
		Request       models.TemplateRequest
		SetupMocks    func()
		ExpectedError error
		Expected      *models.TemplateData
	}{
		{
			Name:          "Error. Title is required #1",
			ID:            "tpl-1",
			Request:       models.TemplateRequest{},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidTemplate,
		},
		{
			Name:    "Error. Template not found #2",
			ID:      "missing",
			Request: models.TemplateRequest{Title: "Admission Open"},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateTemplate(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrTemplateNotFound)
			},
			ExpectedError: storage.ErrTemplateNotFound,
		},
		{
			Name:    "Success. Template replaced #3",
			ID:      "tpl-1",
			Request: models.TemplateRequest{Title: "Admission Open", Caption: "Updated caption", Tags: "instagram"},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateTemplate(gomock.Any(), gomock.Any()).Return(updated, nil)
			},
			ExpectedError: nil,
			Expected:      updated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			template, err := templates.Update(ctx, tc.ID, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.Expected != nil {
				if diff := cmp.Diff(tc.Expected, template); diff != "" {
					t.Errorf("Template mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestTemplateService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	templates := NewTemplates(mockStorage)

	testCases := []struct {
		Name          string
		ID            string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name: "Error. Template not found #1",
			ID:   "missing",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteTemplate(gomock.Any(), "missing").Return(storage.ErrTemplateNotFound)
			},
			ExpectedError: storage.ErrTemplateNotFound,
		},
		{
			Name: "Success. Template removed #2",
			ID:   "tpl-1",
			SetupMocks: func() {
				mockStorage.EXPECT().DeleteTemplate(gomock.Any(), "tpl-1").Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := templates.Delete(ctx, tc.ID)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	testCases := []struct {
		Name     string
		Tags     string
		Expected []string
	}{
		{Name: "Empty string", Tags: "", Expected: nil},
		{Name: "Single tag", Tags: "instagram", Expected: []string{"instagram"}},
		{Name: "Spaces trimmed", Tags: " instagram , story ", Expected: []string{"instagram", "story"}},
		{Name: "Empty entries dropped", Tags: "instagram,,story,", Expected: []string{"instagram", "story"}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if diff := cmp.Diff(tc.Expected, SplitTags(tc.Tags)); diff != "" {
				t.Errorf("Tags mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
