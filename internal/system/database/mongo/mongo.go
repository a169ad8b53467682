/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wso2/identity-corporate-onboarding-service/internal/system/config"
)

// MongoDB holds the client and the database handle for the audit store.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

var (
	mongoInstance *MongoDB
	once          sync.Once
	initErr       error
)

// Connect initializes the global MongoDB connection from the runtime configuration.
func Connect() (*MongoDB, error) {
	once.Do(func() {
		cfg := config.GetCOSRuntime().Config.AuditStore

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = fmt.Errorf("failed to connect to audit store: %w", err)
			return
		}

		if err := client.Ping(ctx, nil); err != nil {
			initErr = fmt.Errorf("failed to ping audit store: %w", err)
			return
		}

		mongoInstance = &MongoDB{
			Client:   client,
			Database: client.Database(cfg.Database),
		}
	})

	return mongoInstance, initErr
}

// GetInstance returns the MongoDB instance established by Connect.
func GetInstance() *MongoDB {
	return mongoInstance
}
