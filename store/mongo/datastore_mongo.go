// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package mongo

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	mopts "go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"

	dconfig "github.com/mendersoftware/devicepanel/config"
	"github.com/mendersoftware/devicepanel/model"
	"github.com/mendersoftware/devicepanel/store"
)

// SetupDataStore returns the mongo data store and optionally runs migrations
func SetupDataStore(automigrate bool) (*DataStoreMongo, error) {
	ctx := context.Background()
	dbClient, err := NewClient(ctx, config.Config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to db")
	}
	dataStore := NewDataStoreWithClient(dbClient, config.Config)
	err = Migrate(ctx, dataStore.dbName, DbVersion, dbClient,
		dataStore.collection, automigrate)
	if err != nil {
		disconnectClient(ctx, dbClient)
		return nil, errors.Wrap(err, "failed to run migrations")
	}
	return dataStore, nil
}

func disconnectClient(parentCtx context.Context, client *mongo.Client) {
	ctx, cancel := context.WithTimeout(parentCtx, 1*time.Second)
	defer cancel()
	_ = client.Disconnect(ctx)
}

// NewClient returns a mongo client
func NewClient(ctx context.Context, c config.Reader) (*mongo.Client, error) {

	clientOptions := mopts.Client()
	mongoURL := c.GetString(dconfig.SettingMongo)
	if !strings.Contains(mongoURL, "://") {
		return nil, errors.Errorf("Invalid mongoURL %q: missing schema.",
			mongoURL)
	}
	clientOptions.ApplyURI(mongoURL)

	username := c.GetString(dconfig.SettingDbUsername)
	if username != "" {
		credentials := mopts.Credential{
			Username: username,
		}
		password := c.GetString(dconfig.SettingDbPassword)
		if password != "" {
			credentials.Password = password
			credentials.PasswordSet = true
		}
		clientOptions.SetAuth(credentials)
	}

	if c.GetBool(dconfig.SettingDbSSL) {
		tlsConfig := &tls.Config{}
		tlsConfig.InsecureSkipVerify = c.GetBool(dconfig.SettingDbSSLSkipVerify)
		clientOptions.SetTLSConfig(tlsConfig)
	}

	// The devices list is re-fetched right after every write, acknowledge
	// writes only once they are committed to the journal.
	clientOptions.SetWriteConcern(writeconcern.New(
		writeconcern.W(1),
		writeconcern.J(true),
	))

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to connect to mongo server")
	}

	// Validate connection
	if err = client.Ping(ctx, nil); err != nil {
		disconnectClient(context.Background(), client)
		return nil, errors.Wrap(err, "Error reaching mongo server")
	}

	return client, nil
}

// DataStoreMongo is the data storage service
type DataStoreMongo struct {
	// client holds the reference to the client used to communicate with the
	// mongodb server.
	client *mongo.Client
	// dbName contains the name of the devicepanel database.
	dbName string
	// collection is the name of the collection of device records.
	collection string
}

// NewDataStoreWithClient initializes a DataStore object
func NewDataStoreWithClient(client *mongo.Client, c config.Reader) *DataStoreMongo {
	dbName := c.GetString(dconfig.SettingDbName)
	if dbName == "" {
		dbName = DbName
	}
	collection := c.GetString(dconfig.SettingDevicesCollection)
	if collection == "" {
		collection = DevicesCollectionName
	}

	return &DataStoreMongo{
		client:     client,
		dbName:     dbName,
		collection: collection,
	}
}

func (db *DataStoreMongo) devices() *mongo.Collection {
	return db.client.Database(db.dbName).Collection(db.collection)
}

// Ping verifies the connection to the database
func (db *DataStoreMongo) Ping(ctx context.Context) error {
	res := db.client.Database(db.dbName).RunCommand(ctx, bson.M{"ping": 1})
	return res.Err()
}

// InsertDevice inserts a new device record, the ID is generated here
func (db *DataStoreMongo) InsertDevice(
	ctx context.Context,
	fields model.DeviceFields,
) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", errors.Wrap(err, "failed to generate device ID")
	}
	device := model.Device{
		ID:      id.String(),
		Nome:    fields.Nome,
		Status:  fields.Status,
		Consumo: fields.Consumo,
	}
	_, err = db.devices().InsertOne(ctx, device)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert device")
	}
	return device.ID, nil
}

// ListDevices returns all the device records in natural order
func (db *DataStoreMongo) ListDevices(ctx context.Context) ([]model.Device, error) {
	cur, err := db.devices().Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	defer cur.Close(ctx)

	devices := []model.Device{}
	if err := cur.All(ctx, &devices); err != nil {
		return nil, errors.Wrap(err, "failed to decode devices")
	}
	return devices, nil
}

// UpdateDeviceStatus updates the status of an existing device
func (db *DataStoreMongo) UpdateDeviceStatus(
	ctx context.Context,
	deviceID string,
	status string,
) error {
	res, err := db.devices().UpdateOne(ctx,
		bson.M{"_id": deviceID},
		bson.M{
			"$set": bson.M{"status": status},
		},
	)
	if err != nil {
		return errors.Wrap(err, "failed to update device status")
	} else if res.MatchedCount == 0 {
		return store.ErrDeviceNotFound
	}
	return nil
}

// Close disconnects the client
func (db *DataStoreMongo) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()
	return db.client.Disconnect(ctx)
}

//nolint:unused
func (db *DataStoreMongo) dropDatabase() error {
	ctx := context.Background()
	err := db.client.Database(db.dbName).Drop(ctx)
	return err
}
