package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrincipalKind names one of the four authenticated actor kinds. Each kind
// has its own credential collection and its own token scope.
type PrincipalKind string

const (
	KindUser    PrincipalKind = "user"
	KindStudent PrincipalKind = "student"
	KindCompany PrincipalKind = "company"
	KindAdmin   PrincipalKind = "admin"
)

// Identity is the decoded, store-verified identity attached to an
// authenticated request.
type Identity struct {
	Kind  PrincipalKind
	ID    primitive.ObjectID
	Email string
}

// User is the generic principal from the public registration endpoint.
// PasswordHash is never serialized.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Type         string             `bson:"type" json:"type"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Student struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StudentName   string             `bson:"studentName" json:"studentName"`
	Email         string             `bson:"email" json:"email"`
	PasswordHash  string             `bson:"passwordHash" json:"-"`
	Qualification string             `bson:"qualification" json:"qualification"`
	CGPA          float64            `bson:"cgpa" json:"cgpa"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Company struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyName  string             `bson:"companyName" json:"companyName"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Description  string             `bson:"description" json:"description"`
	Website      string             `bson:"website" json:"website"`
	ContactNo    string             `bson:"contactNo" json:"contactNo"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Identity projections used by the login and registration flows.

func (u *User) Identity() Identity {
	return Identity{Kind: KindUser, ID: u.ID, Email: u.Email}
}

func (s *Student) Identity() Identity {
	return Identity{Kind: KindStudent, ID: s.ID, Email: s.Email}
}

func (c *Company) Identity() Identity {
	return Identity{Kind: KindCompany, ID: c.ID, Email: c.Email}
}

func (a *Admin) Identity() Identity {
	return Identity{Kind: KindAdmin, ID: a.ID, Email: a.Email}
}

type UserRepository interface {
	Insert(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}

type StudentRepository interface {
	Insert(ctx context.Context, student *Student) error
	FindByEmail(ctx context.Context, email string) (*Student, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Student, error)
	FindAll(ctx context.Context) ([]Student, error)
}

type CompanyRepository interface {
	Insert(ctx context.Context, company *Company) error
	FindByEmail(ctx context.Context, email string) (*Company, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Company, error)
	FindAll(ctx context.Context) ([]Company, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type AdminRepository interface {
	Insert(ctx context.Context, admin *Admin) error
	FindByEmail(ctx context.Context, email string) (*Admin, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Admin, error)
}
