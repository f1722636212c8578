/*
 * Copyright (c) 2025-2026, WSO2 LLC. (http://www.wso2.com).
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
	stdlog "log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/wso2/liftout-marketplace-service/internal/system/config"
	"github.com/wso2/liftout-marketplace-service/internal/system/constants"
	"github.com/wso2/liftout-marketplace-service/internal/system/log"
	"github.com/wso2/liftout-marketplace-service/internal/system/managers"
	"github.com/wso2/liftout-marketplace-service/internal/system/workers"
)

const configFile = "repository/conf/deployment.yaml"

func main() {

	lmsHome := getLMSHome()

	envFiles, _ := filepath.Glob("config/*.env")
	if len(envFiles) > 0 {
		_ = godotenv.Load(envFiles...)
	}

	lmsConfig, err := config.LoadConfig(lmsHome, configFile)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	if err := config.InitializeLMSRuntime(lmsHome, lmsConfig); err != nil {
		stdlog.Fatalf("Failed to initialize runtime: %v", err)
	}

	if err := log.Init(lmsConfig.Log.LogLevel); err != nil {
		stdlog.Fatalf("Failed to initialize logger: %v", err)
	}
	logger := log.GetLogger()

	validateDataSourceConfig(lmsConfig)

	workers.StartHealthWorker()

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux)
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		logger.Fatal("Failed to register the services.", log.Error(err))
	}

	serverAddr := fmt.Sprintf("%s:%d", lmsConfig.Addr.Host, lmsConfig.Addr.Port)
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener.", log.Error(err))
	}
	logger.Info(fmt.Sprintf("Liftout marketplace service started on: %s", serverAddr))

	server := &http.Server{Handler: enableCORS(mux, lmsConfig.Auth.CORSAllowedOrigins)}
	if err := server.Serve(ln); err != nil {
		logger.Fatal("Failed to serve requests.", log.Error(err))
	}
}

func validateDataSourceConfig(lmsConfig *config.Config) {

	ds := lmsConfig.DataSource
	if ds.Hostname == "" || ds.Port == 0 || ds.Username == "" || ds.Password == "" || ds.Name == "" {
		stdlog.Fatal("One or more PostgreSQL configuration values are missing")
	}
}

func enableCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && originAllowed(origin, allowedOrigins) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.Header().Set("Access-Control-Expose-Headers", "Content-Length")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func originAllowed(origin string, allowedOrigins []string) bool {

	for _, allowed := range allowedOrigins {
		if allowed == "*" || strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

func getLMSHome() string {

	projectHomeFlag := flag.String("lmsHome", "", "Path to the liftout marketplace service home directory")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag
	}
	dir, err := os.Getwd()
	if err != nil {
		stdlog.Fatalf("Failed to get current working directory: %v", err)
	}
	return dir
}
