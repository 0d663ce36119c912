package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/config"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/models"
	"github.com/Arvs013/CSIT327-G2-MentalEase/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, req repository.CreateStudentRequest) (*models.Student, error)
	Login(ctx context.Context, email, password string) (*models.Student, string, string, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.Student, string, string, error)
	ValidateToken(tokenString string) (*jwt.Token, error)
}

type authService struct {
	studentRepo repository.StudentRepository
	cfg         *config.Config
}

func NewAuthService(studentRepo repository.StudentRepository, cfg *config.Config) AuthService {
	return &authService{
		studentRepo: studentRepo,
		cfg:         cfg,
	}
}

func (s *authService) Signup(ctx context.Context, req repository.CreateStudentRequest) (*models.Student, error) {
	existing, err := s.studentRepo.GetStudentByEmail(ctx, req.Email)
	if err == nil && existing != nil {
		return nil, fmt.Errorf("student with email %s already exists: %w", req.Email, models.ErrConflict)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	student := &models.Student{
		FullName:               req.FullName,
		Email:                  req.Email,
		RefreshToken:           refreshToken,
		RefreshTokenExpiryTime: refreshTokenExpiry,
	}

	err = s.studentRepo.CreateStudent(ctx, student, req.Password)
	if err != nil {
		return nil, err
	}

	return student, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.Student, string, string, error) {
	student, err := s.studentRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", fmt.Errorf("authentication failed: %w", err)
	}

	accessToken, err := s.generateAccessToken(student)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.studentRepo.UpdateRefreshToken(ctx, student.StudentID, refreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return student, accessToken, refreshToken, nil
}

func (s *authService) RefreshTokens(ctx context.Context, refreshToken string) (*models.Student, string, string, error) {
	student, err := s.studentRepo.GetStudentByRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.generateAccessToken(student)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to generate access token: %w", err)
	}

	newRefreshToken, refreshTokenExpiry := s.generateRefreshToken()

	err = s.studentRepo.UpdateRefreshToken(ctx, student.StudentID, newRefreshToken, refreshTokenExpiry)
	if err != nil {
		return nil, "", "", fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	return student, accessToken, newRefreshToken, nil
}

func (s *authService) generateAccessToken(student *models.Student) (string, error) {
	claims := jwt.MapClaims{
		"studentId": student.StudentID,
		"email":     student.Email,
		"isAdmin":   student.IsAdmin,
		"exp":       time.Now().Add(s.cfg.AccessTokenDuration).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.cfg.JWTSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

func (s *authService) generateRefreshToken() (string, time.Time) {
	return uuid.New().String(), time.Now().Add(s.cfg.RefreshTokenDuration)
}

func (s *authService) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", models.ErrUnauthorized)
	}

	return token, nil
}
