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
	"golang.org/x/crypto/bcrypt"
)

func TestAdminService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	admin := NewAdmin(config, mockStorage)

	testCases := []struct {
		Name          string
		Request       models.AdminRegisterRequest
		SetupMocks    func()
		ExpectedError error
		ExpectedRole  string
	}{
		{
			Name:          "Error. Invalid email #1",
			Request:       models.AdminRegisterRequest{FullName: "Admin One", Email: "bad", Password: "secret"},
			SetupMocks:    func() {},
			ExpectedError: ErrInvalidEmail,
		},
		{
			Name:    "Error. Admin already exists #2",
			Request: models.AdminRegisterRequest{FullName: "Admin One", Email: "admin@example.com", Password: "secret"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddAdmin(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			ExpectedError: ErrAdminAlreadyExists,
		},
		{
			Name:    "Success. Unknown role downgraded to ADMIN #3",
			Request: models.AdminRegisterRequest{FullName: "Admin One", Email: "admin@example.com", Password: "secret", Role: "OWNER"},
			SetupMocks: func() {
				mockStorage.EXPECT().AddAdmin(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
			ExpectedRole:  models.RoleAdmin,
		},
		{
			Name:    "Success. Super admin role kept #4",
			Request: models.AdminRegisterRequest{FullName: "Admin One", Email: "admin@example.com", Password: "secret", Role: models.RoleSuperAdmin},
			SetupMocks: func() {
				mockStorage.EXPECT().AddAdmin(gomock.Any(), gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
			ExpectedRole:  models.RoleSuperAdmin,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			data, err := admin.Register(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if data == nil {
					t.Fatal("Expected admin, got nil")
				}
				if data.Role != tc.ExpectedRole {
					t.Errorf("Expected role '%s', got: '%s'", tc.ExpectedRole, data.Role)
				}
			}
		})
	}
}

func TestAdminService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	admin := NewAdmin(config, mockStorage)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	testCases := []struct {
		Name          string
		Request       models.LoginRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:    "Error. Admin not found #1",
			Request: models.LoginRequest{Email: "missing@example.com", Password: "secret"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByEmail(gomock.Any(), "missing@example.com").
					Return(nil, storage.ErrAdminNotFound)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name:    "Error. Wrong password #2",
			Request: models.LoginRequest{Email: "admin@example.com", Password: "wrong"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByEmail(gomock.Any(), "admin@example.com").
					Return(&models.AdminData{ID: "adm-1", PasswordHash: string(hash), Role: models.RoleAdmin}, nil)
			},
			ExpectedError: ErrInvalidCredentials,
		},
		{
			Name:    "Success. Token issued #3",
			Request: models.LoginRequest{Email: "admin@example.com", Password: "secret"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByEmail(gomock.Any(), "admin@example.com").
					Return(&models.AdminData{ID: "adm-1", PasswordHash: string(hash), Role: models.RoleAdmin}, nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			token, data, err := admin.Login(ctx, tc.Request)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedError == nil {
				if token == "" {
					t.Error("Expected token, got empty string")
				}
				if data == nil {
					t.Error("Expected admin, got nil")
				}
			}
		})
	}
}

func TestAdminService_ReviewAmbassador(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	admin := NewAdmin(config, mockStorage)

	approved := &models.AmbassadorData{
		ID:       "amb-1",
		FullName: "Amb One",
		Email:    "amb@example.com",
		Status:   models.AmbassadorStatusApproved,
	}
	rejected := &models.AmbassadorData{
		ID:       "amb-1",
		FullName: "Amb One",
		Email:    "amb@example.com",
		Status:   models.AmbassadorStatusRejected,
	}

	testCases := []struct {
		Name          string
		Run           func(ctx context.Context) (*models.AmbassadorData, error)
		SetupMocks    func()
		ExpectedError error
		ExpectedData  *models.AmbassadorData
	}{
		{
			Name: "Error. Ambassador not found #1",
			Run: func(ctx context.Context) (*models.AmbassadorData, error) {
				return admin.ApproveAmbassador(ctx, "missing")
			},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateAmbassadorStatus(gomock.Any(), "missing", models.AmbassadorStatusApproved).
					Return(nil, storage.ErrAmbassadorNotFound)
			},
			ExpectedError: storage.ErrAmbassadorNotFound,
		},
		{
			Name: "Success. Approval queues a letter #2",
			Run: func(ctx context.Context) (*models.AmbassadorData, error) {
				return admin.ApproveAmbassador(ctx, "amb-1")
			},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateAmbassadorStatus(gomock.Any(), "amb-1", models.AmbassadorStatusApproved).
					Return(approved, nil)
				mockStorage.EXPECT().AddNotification(gomock.Any(), "amb@example.com", "Ambassador Application Approved",
					"Hello Amb One, your ambassador application has been approved. You can now log in.").Return(nil)
			},
			ExpectedError: nil,
			ExpectedData:  approved,
		},
		{
			Name: "Success. Rejection carries the reason #3",
			Run: func(ctx context.Context) (*models.AmbassadorData, error) {
				return admin.RejectAmbassador(ctx, "amb-1", "Incomplete documents")
			},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateAmbassadorStatus(gomock.Any(), "amb-1", models.AmbassadorStatusRejected).
					Return(rejected, nil)
				mockStorage.EXPECT().AddNotification(gomock.Any(), "amb@example.com", "Ambassador Application Rejected",
					"Hello Amb One, your ambassador application has been rejected. Reason: Incomplete documents").Return(nil)
			},
			ExpectedError: nil,
			ExpectedData:  rejected,
		},
		{
			Name: "Success. Empty reason reported as not specified #4",
			Run: func(ctx context.Context) (*models.AmbassadorData, error) {
				return admin.RejectAmbassador(ctx, "amb-1", "")
			},
			SetupMocks: func() {
				mockStorage.EXPECT().UpdateAmbassadorStatus(gomock.Any(), "amb-1", models.AmbassadorStatusRejected).
					Return(rejected, nil)
				mockStorage.EXPECT().AddNotification(gomock.Any(), "amb@example.com", "Ambassador Application Rejected",
					"Hello Amb One, your ambassador application has been rejected. Reason: Not specified").Return(nil)
			},
			ExpectedError: nil,
			ExpectedData:  rejected,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			data, err := tc.Run(ctx)

			if err != nil && tc.ExpectedError == nil {
				t.Errorf("Expected no error, got: '%v'", err)
			} else if err == nil && tc.ExpectedError != nil {
				t.Errorf("Expected error, got none")
			} else if err != nil && err.Error() != tc.ExpectedError.Error() {
				t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
			}
			if tc.ExpectedData != nil {
				if diff := cmp.Diff(tc.ExpectedData, data); diff != "" {
					t.Errorf("Ambassador mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestAdminService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	admin := NewAdmin(config, mockStorage)

	testCases := []struct {
		Name          string
		Request       models.ResetPasswordRequest
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:          "Error. Passwords do not match #1",
			Request:       models.ResetPasswordRequest{Email: "admin@example.com", Otp: "123456", NewPassword: "one", ConfirmPassword: "two"},
			SetupMocks:    func() {},
			ExpectedError: ErrPasswordMismatch,
		},
		{
			Name:    "Error. Reset OTP expired #2",
			Request: models.ResetPasswordRequest{Email: "admin@example.com", Otp: "123456", NewPassword: "secret", ConfirmPassword: "secret"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByResetOtp(gomock.Any(), "admin@example.com", "123456").
					Return(nil, storage.ErrAdminNotFound)
			},
			ExpectedError: ErrInvalidResetOtp,
		},
		{
			Name:    "Success. Password replaced #3",
			Request: models.ResetPasswordRequest{Email: "admin@example.com", Otp: "123456", NewPassword: "secret", ConfirmPassword: "secret"},
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByResetOtp(gomock.Any(), "admin@example.com", "123456").
					Return(&models.AdminData{ID: "adm-1", Email: "admin@example.com"}, nil)
				mockStorage.EXPECT().UpdateAdminPassword(gomock.Any(), "adm-1", gomock.Any()).Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := admin.ResetPassword(ctx, tc.Request)

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

func TestAdminService_ForgotPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockStorage := mocks.NewMockIStorage(ctrl)

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	admin := NewAdmin(config, mockStorage)

	testCases := []struct {
		Name          string
		Email         string
		SetupMocks    func()
		ExpectedError error
	}{
		{
			Name:  "Error. Admin not found #1",
			Email: "missing@example.com",
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByEmail(gomock.Any(), "missing@example.com").
					Return(nil, storage.ErrAdminNotFound)
			},
			ExpectedError: storage.ErrAdminNotFound,
		},
		{
			Name:  "Success. Reset code queued #2",
			Email: "admin@example.com",
			SetupMocks: func() {
				mockStorage.EXPECT().GetAdminByEmail(gomock.Any(), "admin@example.com").
					Return(&models.AdminData{ID: "adm-1", Email: "admin@example.com"}, nil)
				mockStorage.EXPECT().SetAdminResetOtp(gomock.Any(), "adm-1", gomock.Any(), gomock.Any()).Return(nil)
				mockStorage.EXPECT().AddNotification(gomock.Any(), "admin@example.com", "Password Reset OTP", gomock.Any()).
					Return(nil)
			},
			ExpectedError: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			err := admin.ForgotPassword(ctx, tc.Email)

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
