package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/lectio/internal/error_values"
	"github.com/limbo/lectio/pkg/entity"
)

type XPEventsRepository struct {
	conn Querier
}

func NewXPEventsRepoWithConn(conn PgConnection) *XPEventsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for xpEventsRepo: " + err.Error())
	}
	return &XPEventsRepository{
		conn: conn,
	}
}

func (xr *XPEventsRepository) Create(ctx context.Context, ev *entity.XPEvent) error {
	row := xr.conn.QueryRow(ctx, `INSERT INTO xp_events (user_id, amount, reason, created_at) VALUES ($1, $2, $3, $4) RETURNING id;`,
		ev.UserID,
		ev.Amount,
		string(ev.Reason),
		ev.CreatedAt,
	)
	if err := row.Scan(&ev.ID); err != nil {
		if code, _ := pgErrCode(err); code == codeFKViolation {
			return errorvalues.ErrUserNotFound
		}
		return dbError("creating xp event error", err)
	}
	return nil
}

func (xr *XPEventsRepository) ListByUser(ctx context.Context, uid uuid.UUID, limit int) ([]entity.XPEvent, error) {
	rows, err := xr.conn.Query(ctx, `SELECT id, user_id, amount, reason, created_at FROM xp_events WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, dbError("listing xp events error", err)
	}
	defer rows.Close()
	events := make([]entity.XPEvent, 0, limit)
	for rows.Next() {
		var (
			ev     entity.XPEvent
			reason string
		)
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.Amount, &reason, &ev.CreatedAt); err != nil {
			return nil, errors.New("xp event row parsing error: " + err.Error())
		}
		ev.Reason = entity.XPReason(reason)
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("unexpected xp event rows error", err)
	}
	return events, nil
}
