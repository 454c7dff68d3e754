package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/a2sh3r/creator-wallet/internal/apperrors"
	"github.com/a2sh3r/creator-wallet/internal/mocks/repository_mocks"
	"github.com/a2sh3r/creator-wallet/internal/models"
)

func TestUserService_Register(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		mockSetup   func(m *repository_mocks.MockUserRepository)
		expectedErr error
	}{
		{
			name:     "successful registration",
			email:    "artist1@example.com",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:     "user already exists",
			email:    "artist2@example.com",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(apperrors.ErrUserAlreadyExists)
			},
			expectedErr: apperrors.ErrUserAlreadyExists,
		},
		{
			name:     "unknown create error",
			email:    "artist3@example.com",
			password: "password123",
			mockSetup: func(m *repository_mocks.MockUserRepository) {
				m.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(errors.New("db fail"))
			},
			expectedErr: errors.New("db fail"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			tt.mockSetup(repo)

			service := NewUserService(repo)
			err := service.Register(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil && err.Error() != tt.expectedErr.Error() {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil && err != nil {
				t.Errorf("expected nil error, got %v", err)
			}
		})
	}
}

func TestUserService_Register_SetsArtistRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, user *models.User) error {
			if user.Role != models.RoleArtist {
				t.Errorf("expected role %q, got %q", models.RoleArtist, user.Role)
			}
			if user.Status != models.UserStatusActive {
				t.Errorf("expected status %q, got %q", models.UserStatusActive, user.Status)
			}
			return nil
		})

	service := NewUserService(repo)
	if err := service.Register(context.Background(), "artist@example.com", "password123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUserService_Authenticate(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	tests := []struct {
		name        string
		email       string
		password    string
		mockUser    *models.User
		mockErr     error
		expectedErr error
	}{
		{
			name:     "successful authentication",
			email:    "artist1@example.com",
			password: "password123",
			mockUser: &models.User{Email: "artist1@example.com", Password: string(hashed), Status: models.UserStatusActive},
		},
		{
			name:        "wrong password",
			email:       "artist2@example.com",
			password:    "wrongpass",
			mockUser:    &models.User{Email: "artist2@example.com", Password: string(hashed), Status: models.UserStatusActive},
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "user not found",
			email:       "artist3@example.com",
			password:    "any",
			mockErr:     errors.New("not found"),
			expectedErr: apperrors.ErrInvalidCredentials,
		},
		{
			name:        "inactive account",
			email:       "former@example.com",
			password:    "password123",
			mockUser:    &models.User{Email: "former@example.com", Password: string(hashed), Status: models.UserStatusInactive},
			expectedErr: apperrors.ErrAccountInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repository_mocks.NewMockUserRepository(ctrl)
			repo.EXPECT().GetUserByEmail(gomock.Any(), tt.email).Return(tt.mockUser, tt.mockErr)

			service := NewUserService(repo)
			user, err := service.Authenticate(context.Background(), tt.email, tt.password)

			if tt.expectedErr != nil && !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
			if tt.expectedErr == nil {
				if err != nil {
					t.Errorf("expected nil error, got %v", err)
				}
				if user == nil || user.Email != tt.email {
					t.Errorf("expected user %q, got %+v", tt.email, user)
				}
			}
		})
	}
}

func TestUserService_GetUserByEmail(t *testing.T) {
	expectedUser := &models.User{Email: "artist1@example.com", Password: "hashed"}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repository_mocks.NewMockUserRepository(ctrl)
	repo.EXPECT().GetUserByEmail(gomock.Any(), "artist1@example.com").Return(expectedUser, nil)

	service := NewUserService(repo)

	user, err := service.GetUserByEmail(context.Background(), "artist1@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != expectedUser.Email {
		t.Errorf("expected email %s, got %s", expectedUser.Email, user.Email)
	}
}
