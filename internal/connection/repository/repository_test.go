package repository

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	models "github.com/binay-tripathy/CareerTree/internal/connection/model"
	userModels "github.com/binay-tripathy/CareerTree/internal/user/model"
	"github.com/binay-tripathy/CareerTree/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("careertree"),
		postgres.WithUsername("careertree"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*userModels.User)(nil),
		(*models.ConnectionRequest)(nil),
		(*models.Connection)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupTables(t *testing.T) {
	t.Cleanup(func() {
		for _, table := range []string{"connections", "connection_requests", "users"} {
			_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE `+table+` RESTART IDENTITY CASCADE`)
			require.NoError(t, err)
		}
	})
}

func seedUser(t *testing.T, name string) *userModels.User {
	t.Helper()
	u := &userModels.User{
		FirstName:    name,
		LastName:     "Test",
		Email:        name + "@example.com",
		PasswordHash: "x",
	}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func Test_CreateRequest(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	req := &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}
	require.NoError(t, repo.CreateRequest(t.Context(), req))
	assert.False(t, req.SentAt.IsZero(), "sent_at should be set by DB")

	t.Run("same direction again is rejected", func(t *testing.T) {
		err := repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID})
		assert.ErrorIs(t, err, ErrRequestExists)
	})

	t.Run("reverse direction is rejected while pending", func(t *testing.T) {
		err := repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: bob.ID, RecipientID: alice.ID})
		assert.ErrorIs(t, err, ErrRequestExists)
	})
}

func Test_CreateRequest_ReciprocalRace(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	// Fire both directions at once; the pair lock must serialize them so
	// exactly one pending edge survives.
	start := make(chan struct{})
	errs := make(chan error, 2)
	for _, pair := range [][2]uuid.UUID{{alice.ID, bob.ID}, {bob.ID, alice.ID}} {
		requester, recipient := pair[0], pair[1]
		go func() {
			<-start
			errs <- repo.CreateRequest(context.Background(), &models.ConnectionRequest{
				RequesterID: requester,
				RecipientID: recipient,
			})
		}()
	}
	close(start)

	var failures int
	for i := 0; i < 2; i++ {
		if err := <-errs; err != nil {
			assert.ErrorIs(t, err, ErrRequestExists)
			failures++
		}
	}
	assert.Equal(t, 1, failures, "exactly one direction should win")

	count, err := testDB.NewSelect().
		Model((*models.ConnectionRequest)(nil)).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func Test_CreateRequest_RaceAgainstAccept(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))

	// Bob accepts while simultaneously sending his own request. Whatever the
	// interleaving, pending and connected edges must never coexist.
	start := make(chan struct{})
	done := make(chan struct{}, 2)
	go func() {
		<-start
		_, _ = repo.AcceptRequest(context.Background(), alice.ID, bob.ID)
		done <- struct{}{}
	}()
	go func() {
		<-start
		_ = repo.CreateRequest(context.Background(), &models.ConnectionRequest{RequesterID: bob.ID, RecipientID: alice.ID})
		done <- struct{}{}
	}()
	close(start)
	<-done
	<-done

	connCount, err := testDB.NewSelect().
		Model((*models.Connection)(nil)).
		Count(context.Background())
	require.NoError(t, err)
	reqCount, err := testDB.NewSelect().
		Model((*models.ConnectionRequest)(nil)).
		Count(context.Background())
	require.NoError(t, err)

	// The accept always lands: either it runs first, or the racing send
	// loses the pair lock and fails without touching the pending edge.
	assert.Equal(t, 1, connCount)
	assert.Zero(t, reqCount, "no pending edge may coexist with a connection")
}

func Test_CreateRequest_RefusesConnectedPair(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))
	_, err := repo.AcceptRequest(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)

	err = repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: bob.ID, RecipientID: alice.ID})
	assert.ErrorIs(t, err, ErrPairConnected)
}

func Test_GetRequest(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))

	got, err := repo.GetRequest(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, alice.ID, got.RequesterID)
	assert.Equal(t, bob.ID, got.RecipientID)

	// The request is directed; the reverse lookup finds nothing.
	reverse, err := repo.GetRequest(t.Context(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.Nil(t, reverse)
}

func Test_AcceptRequest(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	t.Run("accept consumes the request and connects the pair", func(t *testing.T) {
		require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))

		conn, err := repo.AcceptRequest(t.Context(), alice.ID, bob.ID)
		require.NoError(t, err)
		assert.False(t, conn.ConnectedAt.IsZero(), "connected_at should be set by DB")

		gone, err := repo.GetRequest(t.Context(), alice.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, gone)

		// The connection is visible from both sides.
		fromAlice, err := repo.GetConnection(t.Context(), alice.ID, bob.ID)
		require.NoError(t, err)
		require.NotNil(t, fromAlice)
		fromBob, err := repo.GetConnection(t.Context(), bob.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, fromBob)
		assert.Equal(t, fromAlice.UserLoID, fromBob.UserLoID)
		assert.Equal(t, fromAlice.UserHiID, fromBob.UserHiID)
	})

	t.Run("accept without a pending request fails", func(t *testing.T) {
		carol := seedUser(t, "carol")
		_, err := repo.AcceptRequest(t.Context(), alice.ID, carol.ID)
		assert.ErrorIs(t, err, ErrRequestNotFound)

		// Nothing was inserted when the delete found no row.
		conn, err := repo.GetConnection(t.Context(), alice.ID, carol.ID)
		require.NoError(t, err)
		assert.Nil(t, conn)
	})
}

func Test_DeleteRequest(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))

	existed, err := repo.DeleteRequest(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.DeleteRequest(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func Test_DeleteConnection(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))
	_, err := repo.AcceptRequest(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)

	// Either side can tear the edge down.
	existed, err := repo.DeleteConnection(t.Context(), bob.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = repo.DeleteConnection(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.False(t, existed)
}

func Test_ListConnectionUserIDs(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	me := seedUser(t, "me")
	first := seedUser(t, "first")
	second := seedUser(t, "second")

	for _, other := range []*userModels.User{first, second} {
		require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: me.ID, RecipientID: other.ID}))
		_, err := repo.AcceptRequest(t.Context(), me.ID, other.ID)
		require.NoError(t, err)
	}

	ids, err := repo.ListConnectionUserIDs(t.Context(), me.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uuid.UUID{first.ID, second.ID}, ids)

	// A counterpart sees only the shared edge.
	ids, err = repo.ListConnectionUserIDs(t.Context(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{me.ID}, ids)
}

func Test_ListRequests(t *testing.T) {
	cleanupTables(t)
	repo := NewConnectionRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: alice.ID, RecipientID: bob.ID}))
	require.NoError(t, repo.CreateRequest(t.Context(), &models.ConnectionRequest{RequesterID: carol.ID, RecipientID: alice.ID}))

	sent, err := repo.ListSentRequests(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	require.NotNil(t, sent[0].Recipient, "recipient relation should be loaded")
	assert.Equal(t, bob.ID, sent[0].Recipient.ID)

	received, err := repo.ListReceivedRequests(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.NotNil(t, received[0].Requester, "requester relation should be loaded")
	assert.Equal(t, carol.ID, received[0].Requester.ID)
}
