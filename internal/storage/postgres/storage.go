package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/comrade-org/membership/internal/domain/errors"
	"github.com/comrade-org/membership/internal/domain/model"
	"github.com/comrade-org/membership/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage depends on. Tests swap it
// for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type memberRepository struct {
	storage *Storage
}

type notificationRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Members() repository.MemberRepository {
	return &memberRepository{storage: s}
}

func (s *Storage) Notifications() repository.NotificationRepository {
	return &notificationRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS members (
            id SERIAL PRIMARY KEY,
            member_id TEXT NOT NULL,
            full_name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL,
            address TEXT NOT NULL,
            dob DATE NOT NULL,
            membership_type TEXT NOT NULL,
            skills TEXT,
            interests TEXT[] NOT NULL DEFAULT '{}',
            registered_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            CONSTRAINT members_email_key UNIQUE (email),
            CONSTRAINT members_member_id_key UNIQUE (member_id)
        )`,
		`CREATE TABLE IF NOT EXISTS notifications (
            id UUID PRIMARY KEY,
            member_ref BIGINT NOT NULL REFERENCES members(id),
            kind TEXT NOT NULL,
            recipient TEXT NOT NULL,
            subject TEXT NOT NULL,
            body TEXT NOT NULL,
            status TEXT NOT NULL,
            attempts INT NOT NULL DEFAULT 0,
            next_attempt_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            last_error TEXT,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            delivered_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_due ON notifications(status, next_attempt_at)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- MemberRepository implementation ---

func (r *memberRepository) Create(ctx context.Context, member *model.Member, outbox []model.Notification) (*model.Member, error) {
	const insertMember = `INSERT INTO members (member_id, full_name, email, phone, address, dob, membership_type, skills, interests)
                          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                          RETURNING id, registered_at`
	const insertNotification = `INSERT INTO notifications (id, member_ref, kind, recipient, subject, body, status, next_attempt_at)
                                VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`

	stored := *member
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, insertMember,
			member.MemberID, member.FullName, member.Email, member.Phone, member.Address,
			member.DateOfBirth, member.MembershipType, member.Skills, member.Interests,
		).Scan(&stored.ID, &stored.RegisteredAt)
		if err != nil {
			return mapUniqueViolation(err)
		}

		for _, n := range outbox {
			if _, err := tx.Exec(ctx, insertNotification,
				n.ID, stored.ID, n.Kind, n.Recipient, n.Subject, n.Body, model.NotificationStatusPending,
			); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "members_member_id_key":
			return domainErrors.ErrMemberIDTaken
		case "members_email_key":
			return domainErrors.ErrEmailTaken
		}
	}
	return err
}

func (r *memberRepository) GetByMemberID(ctx context.Context, memberID string) (*model.Member, error) {
	const query = `SELECT id, member_id, full_name, email, phone, address, dob, membership_type, skills, interests, registered_at
                   FROM members WHERE member_id=$1`
	var m model.Member
	err := r.storage.pool.QueryRow(ctx, query, memberID).Scan(
		&m.ID, &m.MemberID, &m.FullName, &m.Email, &m.Phone, &m.Address,
		&m.DateOfBirth, &m.MembershipType, &m.Skills, &m.Interests, &m.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// --- NotificationRepository implementation ---

func (r *notificationRepository) ClaimBatch(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	const selectQuery = `SELECT id, member_ref, kind, recipient, subject, body, status, attempts, next_attempt_at, last_error, created_at, delivered_at
                         FROM notifications
                         WHERE status IN ('pending', 'sending') AND next_attempt_at <= NOW()
                         ORDER BY created_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	const leaseQuery = `UPDATE notifications SET status='sending', next_attempt_at=$2 WHERE id = ANY($1)`

	leaseUntil := time.Now().Add(lease)

	var claimed []model.Notification
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		// The open result set owns the transaction connection; it must be
		// drained and closed before any further statement on this tx.
		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.MemberRef, &n.Kind, &n.Recipient, &n.Subject, &n.Body,
				&n.Status, &n.Attempts, &n.NextAttemptAt, &n.LastError, &n.CreatedAt, &n.DeliveredAt); err != nil {
				rows.Close()
				return err
			}
			claimed = append(claimed, n)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(claimed) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(claimed))
		for i := range claimed {
			ids[i] = claimed[i].ID
			claimed[i].Status = model.NotificationStatusSending
			claimed[i].NextAttemptAt = leaseUntil
		}
		_, err = tx.Exec(ctx, leaseQuery, ids, leaseUntil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *notificationRepository) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE notifications SET status='delivered', delivered_at=NOW(), last_error=NULL WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *notificationRepository) Reschedule(ctx context.Context, id uuid.UUID, attempts int, lastError string, nextAttemptAt time.Time) error {
	const query = `UPDATE notifications SET status='pending', attempts=$2, last_error=$3, next_attempt_at=$4 WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id, attempts, lastError, nextAttemptAt)
	return err
}

func (r *notificationRepository) MarkDead(ctx context.Context, id uuid.UUID, attempts int, lastError string) error {
	const query = `UPDATE notifications SET status='dead', attempts=$2, last_error=$3 WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id, attempts, lastError)
	return err
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
