package auth

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/medcore/hospital-api/internal/model"
	"github.com/medcore/hospital-api/internal/repository"
	"github.com/medcore/hospital-api/pkg/apperror"
	"github.com/medcore/hospital-api/pkg/auth"
	"github.com/medcore/hospital-api/pkg/security"
)

type Service struct {
	userRepo repository.UserRepository
	jwtSvc   auth.JWTService
	hasher   security.PasswordHasher
}

func NewService(userRepo repository.UserRepository, jwtSvc auth.JWTService, hasher security.PasswordHasher) *Service {
	return &Service{
		userRepo: userRepo,
		jwtSvc:   jwtSvc,
		hasher:   hasher,
	}
}

// Signup registers a PATIENT or DOCTOR account together with its
// role-profile and returns a token for immediate login. Duplicate
// emails surface as a conflict from the unique index, so two
// concurrent signups with the same email cannot both succeed.
func (s *Service) Signup(ctx context.Context, req *model.SignupRequest) (*model.TokenResponse, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	switch req.Role {
	case model.RolePatient:
		err = s.userRepo.CreateWithPatient(ctx, user, &model.Patient{Phone: req.Phone})
	case model.RoleDoctor:
		err = s.userRepo.CreateWithDoctor(ctx, user, &model.Doctor{Specialization: req.Specialization})
	default:
		return nil, apperror.Validation("unsupported signup role")
	}
	if err != nil {
		return nil, err
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info().
		Str("user_id", user.ID.String()).
		Str("role", string(user.Role)).
		Msg("account created")

	return &model.TokenResponse{Token: token, Role: user.Role}, nil
}

// Login verifies the credentials and issues a token. A missing account
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if apperror.Is(err, apperror.CodeNotFound) {
			return nil, apperror.InvalidCredential()
		}
		return nil, err
	}

	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		return nil, apperror.InvalidCredential()
	}

	token, err := s.jwtSvc.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &model.TokenResponse{Token: token, Role: user.Role}, nil
}
