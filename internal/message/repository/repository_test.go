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

	models "github.com/binay-tripathy/CareerTree/internal/message/model"
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
		(*models.Message)(nil),
		(*models.Attachment)(nil),
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
		for _, table := range []string{"attachments", "messages", "users"} {
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

func sendText(t *testing.T, repo *MessageRepository, from, to uuid.UUID, content string) *models.Message {
	t.Helper()
	saved, err := repo.CreateMessage(t.Context(), &models.Message{
		SenderID:   from,
		ReceiverID: to,
		Content:    content,
	})
	require.NoError(t, err)
	return saved
}

func Test_CreateMessage(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	t.Run("text message comes back populated", func(t *testing.T) {
		saved := sendText(t, repo, alice.ID, bob.ID, "hello")

		assert.NotZero(t, saved.ID)
		assert.False(t, saved.CreatedAt.IsZero(), "created_at should be set by DB")
		assert.False(t, saved.IsRead)
		require.NotNil(t, saved.Sender)
		require.NotNil(t, saved.Receiver)
		assert.Equal(t, alice.ID, saved.Sender.ID)
		assert.Equal(t, bob.ID, saved.Receiver.ID)
	})

	t.Run("attachments are stored with the message", func(t *testing.T) {
		saved, err := repo.CreateMessage(t.Context(), &models.Message{
			SenderID:   alice.ID,
			ReceiverID: bob.ID,
			Attachments: []*models.Attachment{
				{URL: "https://cdn/doc.pdf", Kind: models.AttachmentKindDocument, Format: "pdf"},
			},
		})
		require.NoError(t, err)
		require.Len(t, saved.Attachments, 1)
		assert.Equal(t, saved.ID, saved.Attachments[0].MessageID)
		assert.Equal(t, models.AttachmentKindDocument, saved.Attachments[0].Kind)
	})
}

func Test_ListBetween(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")
	carol := seedUser(t, "carol")

	first := sendText(t, repo, alice.ID, bob.ID, "first")
	second := sendText(t, repo, bob.ID, alice.ID, "second")
	third := sendText(t, repo, alice.ID, bob.ID, "third")
	// Traffic with a third user stays out of the pair's history.
	sendText(t, repo, alice.ID, carol.ID, "elsewhere")

	msgs, err := repo.ListBetween(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, first.ID, msgs[0].ID)
	assert.Equal(t, second.ID, msgs[1].ID)
	assert.Equal(t, third.ID, msgs[2].ID)

	// Both participants see the same history.
	fromBob, err := repo.ListBetween(t.Context(), bob.ID, alice.ID)
	require.NoError(t, err)
	require.Len(t, fromBob, 3)
	assert.Equal(t, msgs[0].ID, fromBob[0].ID)
}

func Test_MarkConversationRead(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	alice := seedUser(t, "alice")
	bob := seedUser(t, "bob")

	sendText(t, repo, bob.ID, alice.ID, "one")
	sendText(t, repo, bob.ID, alice.ID, "two")
	// Alice's own outbound message must not be touched.
	outbound := sendText(t, repo, alice.ID, bob.ID, "mine")

	affected, err := repo.MarkConversationRead(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	// Repeat call is a no-op; is_read never moves back.
	affected, err = repo.MarkConversationRead(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	msgs, err := repo.ListBetween(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	for _, m := range msgs {
		if m.ID == outbound.ID {
			assert.False(t, m.IsRead)
		} else {
			assert.True(t, m.IsRead)
		}
	}
}

func Test_LatestPerCounterpart(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	me := seedUser(t, "me")
	carol := seedUser(t, "carol")
	dave := seedUser(t, "dave")
	outsider := seedUser(t, "outsider")

	sendText(t, repo, me.ID, carol.ID, "old to carol")
	carolLatest := sendText(t, repo, carol.ID, me.ID, "carol replied")
	daveLatest := sendText(t, repo, me.ID, dave.ID, "to dave")
	// Outside the allowed counterpart set, so it must not appear.
	sendText(t, repo, outsider.ID, me.ID, "spam")

	latest, err := repo.LatestPerCounterpart(t.Context(), me.ID, []uuid.UUID{carol.ID, dave.ID})
	require.NoError(t, err)
	require.Len(t, latest, 2)

	// Newest conversation first, one row per counterpart.
	assert.Equal(t, daveLatest.ID, latest[0].ID)
	assert.Equal(t, carolLatest.ID, latest[1].ID)
	require.NotNil(t, latest[0].Receiver)
	assert.Equal(t, dave.ID, latest[0].Receiver.ID)

	empty, err := repo.LatestPerCounterpart(t.Context(), me.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func Test_UnreadCounts(t *testing.T) {
	cleanupTables(t)
	repo := NewMessageRepository(testDB, logger.Logger{})
	me := seedUser(t, "me")
	carol := seedUser(t, "carol")
	dave := seedUser(t, "dave")

	sendText(t, repo, carol.ID, me.ID, "one")
	sendText(t, repo, carol.ID, me.ID, "two")
	sendText(t, repo, dave.ID, me.ID, "three")
	// My own outbound messages never count against me.
	sendText(t, repo, me.ID, carol.ID, "reply")

	counts, err := repo.UnreadCounts(t.Context(), me.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts[carol.ID])
	assert.Equal(t, 1, counts[dave.ID])

	_, err = repo.MarkConversationRead(t.Context(), me.ID, carol.ID)
	require.NoError(t, err)

	counts, err = repo.UnreadCounts(t.Context(), me.ID)
	require.NoError(t, err)
	assert.Zero(t, counts[carol.ID])
	assert.Equal(t, 1, counts[dave.ID])
}
