// Package mongodb предоставляет соединение с документной базой MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"cookbook/pkg/logger"
)

// Константы для сообщений logger.
const (
	LogConnecting = "connecting to MongoDB"
	LogConnected  = "successfully connected to MongoDB"
	LogClosing    = "closing MongoDB connection"
)

// Константы для сообщений об ошибках.
const (
	ErrConnect      = "failed to connect to MongoDB"
	ErrPingDatabase = "failed to ping database"
	ErrDisconnect   = "failed to disconnect from MongoDB"
)

// Database представляет соединение с MongoDB и выбранную базу данных.
type Database struct {
	client *mongo.Client
	db     *mongo.Database
}

// New создает новое соединение с MongoDB и проверяет его доступность.
func New(ctx context.Context, uri, dbName string) (*Database, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogConnecting, zap.String("database", dbName))

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Error(ctx, ErrConnect, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrConnect, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		log.Error(ctx, ErrPingDatabase, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}

	log.Info(ctx, LogConnected)

	return &Database{
		client: client,
		db:     client.Database(dbName),
	}, nil
}

// Database возвращает дескриптор выбранной базы данных.
func (d *Database) Database() *mongo.Database {
	return d.db
}

// Ping проверяет доступность базы данных.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", ErrPingDatabase, err)
	}
	return nil
}

// Close закрывает соединение с базой данных.
func (d *Database) Close(ctx context.Context) error {
	log := logger.Log(ctx)
	log.Info(ctx, LogClosing)

	if err := d.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrDisconnect, err)
	}
	return nil
}
