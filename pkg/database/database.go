// Package database provides the MongoDB connection used by the optional
// database-backed ban store.
package database

import (
	"context"
	"sync"
	"time"

	"github.com/AstralStudios/GeminiBotGo/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Database manages the MongoDB connection
type Database struct {
	client          *mongo.Client
	db              *mongo.Database
	IsConnected     bool
	reconnectTicker *time.Ticker
	mu              sync.RWMutex
}

var (
	database *Database
	dbOnce   sync.Once
)

// Init initializes the global database instance
func Init(mongoURL, dbName string) (*Database, error) {
	var err error
	dbOnce.Do(func() {
		database = &Database{}
		err = database.Connect(mongoURL, dbName)
	})
	return database, err
}

// Get returns the global database instance
func Get() *Database {
	return database
}

// Connect establishes a connection to MongoDB
func (d *Database) Connect(mongoURL, dbName string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.IsConnected {
		return nil
	}

	logger.System("Intentando conectar a la base de datos...", "DB")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(mongoURL).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Critical("Fallo al conectar con la base de datos.", "DB")
		d.scheduleReconnect(mongoURL, dbName)
		return err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Critical("Fallo al verificar conexión con la base de datos.", "DB")
		d.scheduleReconnect(mongoURL, dbName)
		return err
	}

	d.client = client
	d.db = client.Database(dbName)
	d.IsConnected = true

	if d.reconnectTicker != nil {
		d.reconnectTicker.Stop()
		d.reconnectTicker = nil
	}

	logger.Success("Conectado exitosamente a la base de datos.", "DB")
	return nil
}

// scheduleReconnect retries the connection every 15 seconds until it succeeds.
// Callers must hold d.mu.
func (d *Database) scheduleReconnect(mongoURL, dbName string) {
	if d.reconnectTicker != nil {
		return
	}

	logger.Warn("Reintentando conexión a la base de datos cada 15s...", "DB")
	d.reconnectTicker = time.NewTicker(15 * time.Second)
	ticker := d.reconnectTicker

	go func() {
		for range ticker.C {
			if err := d.Connect(mongoURL, dbName); err == nil {
				return
			}
		}
	}()
}

// Disconnect closes the MongoDB connection
func (d *Database) Disconnect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.reconnectTicker != nil {
		d.reconnectTicker.Stop()
		d.reconnectTicker = nil
	}

	if d.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	d.IsConnected = false
	logger.System("Cerrando conexión con la base de datos...", "DB")
	return d.client.Disconnect(ctx)
}

// GetCollection returns a collection from the database
func (d *Database) GetCollection(name string) *mongo.Collection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.db == nil {
		return nil
	}
	return d.db.Collection(name)
}

// GetStatus returns a human-readable status and whether the database is online
func (d *Database) GetStatus() (string, bool) {
	if d == nil {
		return "🔴 Sin configurar", false
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.IsConnected {
		return "🟢 Conectada", true
	}
	return "🔴 Desconectada", false
}
