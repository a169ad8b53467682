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

package main

import (
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/identity-corporate-onboarding-service/internal/seed"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/config"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/constants"
	mongodb "github.com/wso2/identity-corporate-onboarding-service/internal/system/database/mongo"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/log"
	"github.com/wso2/identity-corporate-onboarding-service/internal/system/managers"
)

func main() {
	cosHome := getCOSHome()
	const configFile = "repository/conf/deployment.yaml"

	envFiles, _ := filepath.Glob("config/*.env")
	_ = godotenv.Load(envFiles...)

	cosConfig, err := config.LoadConfig(cosHome, configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitializeCOSRuntime(cosHome, cosConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize runtime configuration: %v\n", err)
		os.Exit(1)
	}

	if err := log.Init(cosConfig.Log.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	if _, err := mongodb.Connect(); err != nil {
		logger.Fatal("Failed to connect to the audit store", log.Error(err))
	}

	if cosConfig.Seed.Enabled {
		counts, err := seed.LoadSeedData(cosHome, cosConfig.Seed.Directory)
		if err != nil {
			logger.Fatal("Failed to load seed data", log.Error(err))
		}
		logger.Info("Seed load complete",
			log.Int("rules", counts["rules"]),
			log.Int("document_types", counts["document_types"]))
	}

	serverAddr := fmt.Sprintf("%s:%d", cosConfig.Addr.Host, cosConfig.Addr.Port)
	mux := enableCORS(initMultiplexer())

	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.Error(err), log.String("addr", serverAddr))
	}
	logger.Info("WSO2 corporate onboarding service started", log.String("addr", serverAddr))

	server := &http.Server{Handler: mux}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests", log.Error(err))
	}
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer() *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)

	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Fatal("Failed to register the services", log.Error(err))
	}
	return mux
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := "*"
		if allowed := config.GetCOSRuntime().Config.Auth.CORSAllowedOrigins; len(allowed) > 0 {
			origin = strings.Join(allowed, ", ")
		}
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func getCOSHome() string {

	projectHomeFlag := flag.String("cosHome", "", "Path to the corporate onboarding service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir
}
