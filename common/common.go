package common

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	// ProjectID is the GCP project holding the Firestore database and logs.
	ProjectID string

	// GAEService is the app engine service name this process runs as.
	GAEService string

	// GAEVersion is the deployed app engine version.
	GAEVersion string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool
)

const (
	productionProject = "freshcuts-prod"

	TestProjectID = "freshcuts-dev"
)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	IsLocalhost = gin.Mode() != gin.ReleaseMode

	// Local development reads its environment from a .env file.
	if IsLocalhost {
		_ = godotenv.Load()
	}

	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	if ProjectID == "" {
		if !IsLocalhost {
			log.Fatalln("environment variable GOOGLE_CLOUD_PROJECT is not set")
		}

		ProjectID = TestProjectID
	}

	GAEService = GetEnv("GAE_SERVICE", "payment-gateway")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")
	Production = ProjectID == productionProject

	if value := os.Getenv("FIRESTORE_EMULATOR_HOST"); value != "" {
		log.Printf("Using Firestore Emulator: %s", value)
	}
}

// GetEnv returns the value of the environment variable named by key,
// or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}
