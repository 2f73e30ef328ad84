package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/limbo/lectio/pkg/cleanup"
)

// NewPool opens a pgx pool and registers its closing as a cleanup job.
func NewPool(cfg DBConfig) *pgxpool.Pool {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection pool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}

type PgUnitOfWork struct {
	conn PgConnection
}

func NewUnitOfWorkWithConn(conn PgConnection) *PgUnitOfWork {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for unit of work: " + err.Error())
	}
	return &PgUnitOfWork{
		conn: conn,
	}
}

func bindRepositories(q Querier) *Repositories {
	return &Repositories{
		Users:        &UsersRepository{conn: q},
		Daily:        &DailyProgressRepository{conn: q},
		ChapterReads: &ChapterReadsRepository{conn: q},
		Books:        &BookProgressRepository{conn: q},
		Content:      &ContentRepository{conn: q},
		XPEvents:     &XPEventsRepository{conn: q},
	}
}

func (u *PgUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) (err error) {
	tx, err := u.conn.Begin(ctx)
	if err != nil {
		return dbError("beginning transaction error", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()
	if err = fn(ctx, bindRepositories(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, context.Canceled) {
			return errors.Join(err, dbError("rolling back transaction error", rbErr))
		}
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return dbError("committing transaction error", err)
	}
	return nil
}
