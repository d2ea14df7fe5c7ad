package mongodb

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/pscheid92/jobpulse/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var testClient *mongo.Client

func TestMain(m *testing.M) {
	flag.Parse()

	// Skip container setup if running in short mode
	if testing.Short() {
		os.Exit(m.Run())
	}

	os.Exit(runWithContainer(m))
}

func runWithContainer(m *testing.M) int {
	ctx := context.Background()

	container, err := tcmongodb.Run(ctx, "mongo:7")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start mongodb container: %v\n", err)
		return 1
	}
	defer func() {
		if err := container.Terminate(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to terminate mongodb container: %v\n", err)
		}
	}()

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get connection string: %v\n", err)
		return 1
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	testClient, err = Connect(connectCtx, uri)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to test mongodb: %v\n", err)
		return 1
	}
	defer func() { _ = testClient.Disconnect(ctx) }()

	return m.Run()
}

// testDB hands each test its own database so index state never leaks
// between tests.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := testClient.Database("test_" + primitive.NewObjectID().Hex())
	require.NoError(t, EnsureIndexes(context.Background(), db))
	t.Cleanup(func() { _ = db.Drop(context.Background()) })
	return db
}

func TestUserRepo_UniqueEmailIndex(t *testing.T) {
	db := testDB(t)
	repo := NewUserRepo(db, clockwork.NewRealClock())

	first := &domain.User{Email: "a@x.com", PasswordHash: "hash", Type: "student"}
	require.NoError(t, repo.Insert(context.Background(), first))
	assert.False(t, first.ID.IsZero())
	assert.False(t, first.CreatedAt.IsZero())

	second := &domain.User{Email: "a@x.com", PasswordHash: "other", Type: "company"}
	err := repo.Insert(context.Background(), second)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestStudentRepo_RoundTrip(t *testing.T) {
	db := testDB(t)
	repo := NewStudentRepo(db, clockwork.NewRealClock())

	student := &domain.Student{
		StudentName:   "Alice",
		Email:         "a@x.com",
		PasswordHash:  "hash",
		Qualification: "BSc",
		CGPA:          3.5,
	}
	require.NoError(t, repo.Insert(context.Background(), student))

	byEmail, err := repo.FindByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, student.ID, byEmail.ID)
	assert.Equal(t, 3.5, byEmail.CGPA)

	byID, err := repo.FindByID(context.Background(), student.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.StudentName)

	_, err = repo.FindByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrStudentNotFound)
}

func TestApplicationRepo_UniqueStudentJobPair(t *testing.T) {
	db := testDB(t)
	repo := NewApplicationRepo(db, clockwork.NewRealClock())

	studentID := primitive.NewObjectID()
	jobID := primitive.NewObjectID()

	first := &domain.AppliedJob{StudentID: studentID, JobID: jobID, Experience: "2 years", Skills: "Go"}
	require.NoError(t, repo.Insert(context.Background(), first))

	duplicate := &domain.AppliedJob{StudentID: studentID, JobID: jobID, Experience: "2 years", Skills: "Go"}
	err := repo.Insert(context.Background(), duplicate)
	assert.ErrorIs(t, err, domain.ErrAlreadyApplied)

	otherJob := &domain.AppliedJob{StudentID: studentID, JobID: primitive.NewObjectID(), Experience: "2 years", Skills: "Go"}
	assert.NoError(t, repo.Insert(context.Background(), otherJob))

	exists, err := repo.ExistsByStudentAndJob(context.Background(), studentID, jobID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestJobRepo_DeleteByCompany(t *testing.T) {
	db := testDB(t)
	repo := NewJobRepo(db, clockwork.NewRealClock())

	companyID := primitive.NewObjectID()
	otherCompanyID := primitive.NewObjectID()

	for _, job := range []*domain.Job{
		{JobTitle: "Backend Engineer", Description: "Go services", CompanyID: companyID},
		{JobTitle: "SRE", Description: "on-call", CompanyID: companyID},
		{JobTitle: "Analyst", Description: "spreadsheets", CompanyID: otherCompanyID},
	} {
		require.NoError(t, repo.Insert(context.Background(), job))
	}

	deleted, err := repo.DeleteByCompany(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, otherCompanyID, remaining[0].CompanyID)
}

func TestCompanyRepo_DeleteMissing(t *testing.T) {
	db := testDB(t)
	repo := NewCompanyRepo(db, clockwork.NewRealClock())

	err := repo.Delete(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}
