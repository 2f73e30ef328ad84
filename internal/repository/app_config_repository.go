package repository

import (
	"context"
	"errors"
	"log"
)

type AppConfigRepository struct {
	conn Querier
}

func NewAppConfigRepoWithConn(conn PgConnection) *AppConfigRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for appConfigRepo: " + err.Error())
	}
	return &AppConfigRepository{
		conn: conn,
	}
}

func (ar *AppConfigRepository) GetAll(ctx context.Context) (map[string]string, error) {
	rows, err := ar.conn.Query(ctx, `SELECT key, value FROM app_config;`)
	if err != nil {
		return nil, dbError("loading app config error", err)
	}
	defer rows.Close()
	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.New("app config row parsing error: " + err.Error())
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("unexpected app config rows error", err)
	}
	return values, nil
}
