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

package config

import (
	"github.com/mendersoftware/go-lib-micro/config"
)

const (
	// SettingListen is the config key for the listen address
	SettingListen = "listen"
	// SettingListenDefault is the default value for the listen address
	SettingListenDefault = ":8080"

	// SettingAllowedOrigins is the config key for the comma separated
	// list of origins accepted by the API; empty accepts any origin
	SettingAllowedOrigins = "allowed_origins"

	// SettingDataStore is the config key for the record store backend
	SettingDataStore = "datastore"
	// SettingDataStoreDefault is the default record store backend
	SettingDataStoreDefault = DataStoreMongo

	// SettingNatsURI is the config key for the nats uri
	SettingNatsURI = "nats_uri"
	// SettingNatsURIDefault is the default value for the nats uri
	SettingNatsURIDefault = "nats://localhost:4222"

	// SettingMongo is the config key for the mongo URL
	SettingMongo = "mongo_url"
	// SettingMongoDefault is the default value for the mongo URL
	SettingMongoDefault = "mongodb://mender-mongo:27017"

	// SettingDbName is the config key for the mongo database name
	SettingDbName = "mongo_dbname"
	// SettingDbNameDefault is the default value for the mongo database name
	SettingDbNameDefault = "devicepanel"

	// SettingDbSSL is the config key for the mongo SSL setting
	SettingDbSSL = "mongo_ssl"
	// SettingDbSSLDefault is the default value for the mongo SSL setting
	SettingDbSSLDefault = false

	// SettingDbSSLSkipVerify is the config key for the mongo SSL skip verify setting
	SettingDbSSLSkipVerify = "mongo_ssl_skipverify"
	// SettingDbSSLSkipVerifyDefault is the default value for the mongo SSL skip verify setting
	SettingDbSSLSkipVerifyDefault = false

	// SettingDbUsername is the config key for the mongo username
	SettingDbUsername = "mongo_username"

	// SettingDbPassword is the config key for the mongo password
	SettingDbPassword = "mongo_password"

	// SettingDevicesCollection is the config key for the name of the
	// collection holding the device records
	SettingDevicesCollection = "devices_collection"
	// SettingDevicesCollectionDefault is the default devices collection
	SettingDevicesCollectionDefault = "servico"

	// SettingIdentityURL is the config key for the identity gateway url
	SettingIdentityURL = "identity_url"
	// SettingIdentityURLDefault is the default value for the identity gateway url
	SettingIdentityURLDefault = "https://identitytoolkit.googleapis.com"

	// SettingIdentityAPIKey is the config key for the identity gateway API key
	SettingIdentityAPIKey = "identity_api_key"

	// SettingIdentityTimeout is the config key for the identity gateway
	// request timeout in seconds, 0 disables the timeout
	SettingIdentityTimeout = "identity_timeout"
	// SettingIdentityTimeoutDefault is the default identity gateway timeout
	SettingIdentityTimeoutDefault = 0

	// SettingFlowIdleTimeout is the config key for the number of seconds
	// an idle flow is kept in memory
	SettingFlowIdleTimeout = "flow_idle_timeout"
	// SettingFlowIdleTimeoutDefault is the default flow idle timeout
	SettingFlowIdleTimeoutDefault = 1800

	// SettingDebugLog is the config key for the turning on the debug log
	SettingDebugLog = "debug_log"
	// SettingDebugLogDefault is the default value for the debug log enabling
	SettingDebugLogDefault = false
)

// Record store backends
const (
	DataStoreMongo  = "mongo"
	DataStoreMemory = "memory"
)

var (
	// Defaults are the default configuration settings
	Defaults = []config.Default{
		{Key: SettingListen, Value: SettingListenDefault},
		{Key: SettingDataStore, Value: SettingDataStoreDefault},
		{Key: SettingNatsURI, Value: SettingNatsURIDefault},
		{Key: SettingMongo, Value: SettingMongoDefault},
		{Key: SettingDbName, Value: SettingDbNameDefault},
		{Key: SettingDbSSL, Value: SettingDbSSLDefault},
		{Key: SettingDbSSLSkipVerify, Value: SettingDbSSLSkipVerifyDefault},
		{Key: SettingDevicesCollection, Value: SettingDevicesCollectionDefault},
		{Key: SettingIdentityURL, Value: SettingIdentityURLDefault},
		{Key: SettingIdentityTimeout, Value: SettingIdentityTimeoutDefault},
		{Key: SettingFlowIdleTimeout, Value: SettingFlowIdleTimeoutDefault},
		{Key: SettingDebugLog, Value: SettingDebugLogDefault},
	}
)
