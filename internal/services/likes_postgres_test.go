package services

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"karmaboard/internal/db"
	"karmaboard/internal/models"

	"gorm.io/driver/postgres"
)

// TestLikeService_ConcurrentLikesPostgres races likes on a pooled PostgreSQL
// connection, so several inserts hit the unique index at once. It runs only
// when TEST_DATABASE_URL points at a disposable database.
func TestLikeService_ConcurrentLikesPostgres(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	conn, err := db.Open(postgres.Open(dsn))
	if err != nil {
		t.Fatalf("failed to connect: %v", err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(16)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.Migrate(conn); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	suffix := time.Now().UnixNano()
	author := createUser(t, conn, fmt.Sprintf("author-%d", suffix))
	fan := createUser(t, conn, fmt.Sprintf("fan-%d", suffix))
	post := createPost(t, conn, author, "race")
	t.Cleanup(func() {
		conn.Where("user_id = ?", fan.ID).Delete(&models.Like{})
		conn.Delete(&models.Post{}, post.ID)
		conn.Delete(&models.User{}, []uint{author.ID, fan.ID})
	})

	s := NewLikeService(conn)

	const callers = 32
	var (
		wg       sync.WaitGroup
		start    = make(chan struct{})
		outcomes = make([]LikeOutcome, callers)
		errs     = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			outcomes[i], errs[i] = s.Like(context.Background(), fan.ID, "post", post.ID)
		}(i)
	}
	close(start)
	wg.Wait()

	created := 0
	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Errorf("caller %d: unexpected error: %v", i, errs[i])
			continue
		}
		if outcomes[i] == LikeCreated {
			created++
		} else if outcomes[i] != LikeAlreadyExists {
			t.Errorf("caller %d: undefined outcome %v", i, outcomes[i])
		}
	}
	if created != 1 {
		t.Errorf("want exactly one caller to create the like, got %d", created)
	}

	count, err := s.Count(context.Background(), post.Target())
	if err != nil {
		t.Fatalf("unexpected error counting likes: %v", err)
	}
	if count != 1 {
		t.Errorf("want 1 stored like, got %d", count)
	}
}
