// Package app is the application layer - the only component that references
// multiple domain components. It orchestrates all use cases.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pscheid92/jobpulse/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// tokenIssuer issues signed session tokens for verified principals.
type tokenIssuer interface {
	Issue(identity domain.Identity) (string, error)
}

// passwordHasher hashes and checks passwords. A mismatch is a plain false,
// never an error, so login failures stay indistinguishable.
type passwordHasher interface {
	Hash(plain string) (string, error)
	Matches(hash, plain string) bool
}

type Service struct {
	users        domain.UserRepository
	students     domain.StudentRepository
	companies    domain.CompanyRepository
	admins       domain.AdminRepository
	jobs         domain.JobRepository
	applications domain.ApplicationRepository

	tokens tokenIssuer
	hasher passwordHasher
}

func NewService(
	users domain.UserRepository,
	students domain.StudentRepository,
	companies domain.CompanyRepository,
	admins domain.AdminRepository,
	jobs domain.JobRepository,
	applications domain.ApplicationRepository,
	tokens tokenIssuer,
	hasher passwordHasher,
) *Service {
	return &Service{
		users:        users,
		students:     students,
		companies:    companies,
		admins:       admins,
		jobs:         jobs,
		applications: applications,
		tokens:       tokens,
		hasher:       hasher,
	}
}

// normalizeEmail lowercases and trims an email before any store operation,
// so lookups and the unique index agree on one canonical form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolvePrincipal looks up a decoded token identity in the credential store
// of its kind. A missing principal means the token is stale or forged and the
// caller must reject the request.
func (s *Service) ResolvePrincipal(ctx context.Context, kind domain.PrincipalKind, id primitive.ObjectID) (domain.Identity, error) {
	switch kind {
	case domain.KindUser:
		user, err := s.users.FindByID(ctx, id)
		if err != nil {
			return domain.Identity{}, err
		}
		return user.Identity(), nil
	case domain.KindStudent:
		student, err := s.students.FindByID(ctx, id)
		if err != nil {
			return domain.Identity{}, err
		}
		return student.Identity(), nil
	case domain.KindCompany:
		company, err := s.companies.FindByID(ctx, id)
		if err != nil {
			return domain.Identity{}, err
		}
		return company.Identity(), nil
	case domain.KindAdmin:
		admin, err := s.admins.FindByID(ctx, id)
		if err != nil {
			return domain.Identity{}, err
		}
		return admin.Identity(), nil
	default:
		return domain.Identity{}, fmt.Errorf("unknown principal kind %q", kind)
	}
}

// issueToken signs a session token for a verified principal.
func (s *Service) issueToken(identity domain.Identity) (string, error) {
	token, err := s.tokens.Issue(identity)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// checkLogin collapses unknown-email and wrong-password into a single
// ErrInvalidCredentials so the response never leaks which part was wrong.
func (s *Service) checkLogin(identity domain.Identity, storedHash, password string, lookupErr, notFound error) (string, error) {
	if errors.Is(lookupErr, notFound) {
		return "", domain.ErrInvalidCredentials
	}
	if lookupErr != nil {
		return "", lookupErr
	}
	if !s.hasher.Matches(storedHash, password) {
		return "", domain.ErrInvalidCredentials
	}
	return s.issueToken(identity)
}

// --- generic user ---

func (s *Service) RegisterUser(ctx context.Context, email, password, userType string) (string, *domain.User, error) {
	email = normalizeEmail(email)

	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{Email: email, PasswordHash: hash, Type: userType}
	if err := s.users.Insert(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(user.Identity())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Service) LoginUser(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.users.FindByEmail(ctx, email)
	var identity domain.Identity
	var hash string
	if user != nil {
		identity = user.Identity()
		hash = user.PasswordHash
	}

	token, err := s.checkLogin(identity, hash, password, err, domain.ErrUserNotFound)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// --- student ---

type RegisterStudentRequest struct {
	StudentName   string
	Email         string
	Password      string
	Qualification string
	CGPA          float64
}

func (s *Service) RegisterStudent(ctx context.Context, req RegisterStudentRequest) (string, *domain.Student, error) {
	email := normalizeEmail(req.Email)

	_, err := s.students.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrStudentNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", nil, err
	}

	student := &domain.Student{
		StudentName:   strings.TrimSpace(req.StudentName),
		Email:         email,
		PasswordHash:  hash,
		Qualification: req.Qualification,
		CGPA:          req.CGPA,
	}
	if err := s.students.Insert(ctx, student); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(student.Identity())
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}

func (s *Service) LoginStudent(ctx context.Context, email, password string) (string, *domain.Student, error) {
	email = normalizeEmail(email)

	student, err := s.students.FindByEmail(ctx, email)
	var identity domain.Identity
	var hash string
	if student != nil {
		identity = student.Identity()
		hash = student.PasswordHash
	}

	token, err := s.checkLogin(identity, hash, password, err, domain.ErrStudentNotFound)
	if err != nil {
		return "", nil, err
	}
	return token, student, nil
}

func (s *Service) StudentProfile(ctx context.Context, id primitive.ObjectID) (*domain.Student, error) {
	return s.students.FindByID(ctx, id)
}

// --- company ---

type RegisterCompanyRequest struct {
	CompanyName string
	Email       string
	Password    string
	Description string
	Website     string
	ContactNo   string
}

func (s *Service) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (string, *domain.Company, error) {
	email := normalizeEmail(req.Email)

	_, err := s.companies.FindByEmail(ctx, email)
	if err == nil {
		return "", nil, domain.ErrDuplicateEmail
	}
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		return "", nil, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", nil, err
	}

	company := &domain.Company{
		CompanyName:  strings.TrimSpace(req.CompanyName),
		Email:        email,
		PasswordHash: hash,
		Description:  req.Description,
		Website:      req.Website,
		ContactNo:    req.ContactNo,
	}
	if err := s.companies.Insert(ctx, company); err != nil {
		return "", nil, err
	}

	token, err := s.issueToken(company.Identity())
	if err != nil {
		return "", nil, err
	}
	return token, company, nil
}

func (s *Service) LoginCompany(ctx context.Context, email, password string) (string, *domain.Company, error) {
	email = normalizeEmail(email)

	company, err := s.companies.FindByEmail(ctx, email)
	var identity domain.Identity
	var hash string
	if company != nil {
		identity = company.Identity()
		hash = company.PasswordHash
	}

	token, err := s.checkLogin(identity, hash, password, err, domain.ErrCompanyNotFound)
	if err != nil {
		return "", nil, err
	}
	return token, company, nil
}

func (s *Service) CompanyProfile(ctx context.Context, id primitive.ObjectID) (*domain.Company, error) {
	return s.companies.FindByID(ctx, id)
}

// --- admin ---

func (s *Service) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Admin, error) {
	email = normalizeEmail(email)

	admin, err := s.admins.FindByEmail(ctx, email)
	var identity domain.Identity
	var hash string
	if admin != nil {
		identity = admin.Identity()
		hash = admin.PasswordHash
	}

	token, err := s.checkLogin(identity, hash, password, err, domain.ErrAdminNotFound)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

func (s *Service) AdminProfile(ctx context.Context, id primitive.ObjectID) (*domain.Admin, error) {
	return s.admins.FindByID(ctx, id)
}
