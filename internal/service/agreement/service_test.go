package agreement

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiopaghe/comporto-backend-go/internal/domain/agreement"
	"github.com/studiopaghe/comporto-backend-go/internal/pkg/database"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/memory"
	"github.com/studiopaghe/comporto-backend-go/internal/repository/postgresql"
)

func newTestService(t *testing.T) AgreementService {
	t.Helper()
	return NewAgreementService(nil, memory.NewStore().Agreements())
}

func TestInitializeSeedsDefaults(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))

	agreements, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, agreements, 3)

	codes := make(map[string]int)
	for _, a := range agreements {
		codes[a.Code] = a.TotalAllowedDays
	}
	assert.Equal(t, 180, codes["COOP_SOCIALI"])
	assert.Equal(t, 180, codes["COMMERCIO"])
	assert.Equal(t, 180, codes["METALMECCANICA"])
}

func TestInitializeIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))
	require.NoError(t, svc.Initialize(ctx))

	agreements, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, agreements, 3)
}

func TestInitializeSkipsPopulatedRegistry(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, agreement.CreateAgreementRequest{
		Name:             "Edilizia",
		Code:             "EDILIZIA",
		TotalAllowedDays: 120,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Initialize(ctx))

	agreements, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, agreements, 1)
	assert.Equal(t, "EDILIZIA", agreements[0].Code)
}

func TestCreateDuplicateCode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	req := agreement.CreateAgreementRequest{
		Name:             "Commercio",
		Code:             "COMMERCIO",
		TotalAllowedDays: 180,
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, agreement.ErrAgreementCodeExists)
}

func TestCreateRejectsNonPositiveBudget(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Create(context.Background(), agreement.CreateAgreementRequest{
		Name:             "Commercio",
		Code:             "COMMERCIO",
		TotalAllowedDays: 0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total_allowed_days")
}

func TestUpdateAgreement(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx, agreement.CreateAgreementRequest{
		Name:             "Commercio",
		Code:             "COMMERCIO",
		TotalAllowedDays: 180,
	})
	require.NoError(t, err)

	days := 90
	require.NoError(t, svc.Update(ctx, agreement.UpdateAgreementRequest{ID: created.ID, TotalAllowedDays: &days}))

	agreements, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, agreements, 1)
	assert.Equal(t, 90, agreements[0].TotalAllowedDays)
}

func TestUpdateMissingAgreement(t *testing.T) {
	svc := newTestService(t)

	days := 90
	err := svc.Update(context.Background(), agreement.UpdateAgreementRequest{ID: "missing-id", TotalAllowedDays: &days})
	assert.ErrorIs(t, err, agreement.ErrAgreementNotFound)
}

func newPostgresService(t *testing.T) (AgreementService, *database.DB) {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := database.NewPostgreSQLDB(dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	_, err = db.Exec(context.Background(), "TRUNCATE TABLE absences, employees, agreements CASCADE")
	require.NoError(t, err)

	return NewAgreementService(db, postgresql.NewAgreementRepository(db)), db
}

func TestInitializeSeedIsAtomic(t *testing.T) {
	svc, db := newPostgresService(t)
	ctx := context.Background()

	// An inactive row keeps the registry empty for List but still owns the
	// COMMERCIO code, so the second seed insert hits the unique constraint.
	_, err := db.Exec(ctx, `
		INSERT INTO agreements (id, name, code, total_allowed_days, is_active, created_at, updated_at)
		VALUES (uuidv7(), 'Commercio (storico)', 'COMMERCIO', 180, FALSE, NOW(), NOW())
	`)
	require.NoError(t, err)

	require.Error(t, svc.Initialize(ctx))

	// the rows seeded before the failure must have rolled back with it
	var count int
	require.NoError(t, db.QueryRow(ctx, "SELECT COUNT(*) FROM agreements WHERE is_active = TRUE").Scan(&count))
	assert.Equal(t, 0, count)
}
